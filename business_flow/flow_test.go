package businessflow_test

import (
	"testing"
	"time"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/app/dto"
	businessflow "github.com/ClaudsFalse/fullStackNanodegree-Fyyur/business_flow"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/repository"
	testingutil "github.com/ClaudsFalse/fullStackNanodegree-Fyyur/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flowEnv struct {
	testDB     *testingutil.TestDB
	fixtures   *testingutil.TestFixtures
	venueFlow  businessflow.VenueFlow
	artistFlow businessflow.ArtistFlow
	showFlow   businessflow.ShowFlow
}

// setupFlowTest wires the full flow stack against a throwaway database,
// skipping when Postgres is unreachable
func setupFlowTest(t *testing.T) *flowEnv {
	t.Helper()

	testDB, err := testingutil.SetupTestDB()
	if err != nil {
		t.Skipf("postgres unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = testDB.TeardownTestDB()
	})

	venueRepo := repository.NewVenueRepository(testDB.DB)
	artistRepo := repository.NewArtistRepository(testDB.DB)
	showRepo := repository.NewShowRepository(testDB.DB)

	return &flowEnv{
		testDB:     testDB,
		fixtures:   testingutil.NewTestFixtures(testDB),
		venueFlow:  businessflow.NewVenueFlow(venueRepo, showRepo, testDB.DB),
		artistFlow: businessflow.NewArtistFlow(artistRepo, showRepo, testDB.DB),
		showFlow:   businessflow.NewShowFlow(showRepo, venueRepo, artistRepo, testDB.DB),
	}
}

func testMetadata() *businessflow.ClientMetadata {
	return businessflow.NewClientMetadata("127.0.0.1", "flow-test")
}

func TestCreateShowFlow(t *testing.T) {
	env := setupFlowTest(t)
	ctx := testingutil.CreateTestContext()

	venue, err := env.fixtures.CreateTestVenue("The Musical Hop", "San Francisco", "CA")
	require.NoError(t, err)
	artist, err := env.fixtures.CreateTestArtist("Guns N Petals", "San Francisco", "CA")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		req := &dto.CreateShowRequest{
			VenueID:   venue.ID,
			ArtistID:  artist.ID,
			StartTime: time.Now().UTC().Add(72 * time.Hour),
		}

		res, err := env.showFlow.CreateShow(ctx, req, testMetadata())
		require.NoError(t, err)
		assert.Equal(t, "The Musical Hop", res.Show.VenueName)
		assert.Equal(t, "Guns N Petals", res.Show.ArtistName)
		assert.NotZero(t, res.Show.ID)
	})

	t.Run("MissingVenue", func(t *testing.T) {
		req := &dto.CreateShowRequest{
			VenueID:   venue.ID + 1000,
			ArtistID:  artist.ID,
			StartTime: time.Now().UTC().Add(72 * time.Hour),
		}

		_, err := env.showFlow.CreateShow(ctx, req, testMetadata())
		require.Error(t, err)
		assert.True(t, businessflow.IsShowVenueMissing(err))
	})

	t.Run("MissingArtist", func(t *testing.T) {
		req := &dto.CreateShowRequest{
			VenueID:   venue.ID,
			ArtistID:  artist.ID + 1000,
			StartTime: time.Now().UTC().Add(72 * time.Hour),
		}

		_, err := env.showFlow.CreateShow(ctx, req, testMetadata())
		require.Error(t, err)
		assert.True(t, businessflow.IsShowArtistMissing(err))
	})
}

func TestGetVenueFlowPartitionsShows(t *testing.T) {
	env := setupFlowTest(t)
	ctx := testingutil.CreateTestContext()

	venue, err := env.fixtures.CreateTestVenue("Park Square Live Music & Coffee", "San Francisco", "CA")
	require.NoError(t, err)
	artist, err := env.fixtures.CreateTestArtist("The Wild Sax Band", "San Francisco", "CA")
	require.NoError(t, err)

	_, err = env.fixtures.CreateTestShow(venue.ID, artist.ID, time.Now().UTC().Add(-48*time.Hour))
	require.NoError(t, err)
	_, err = env.fixtures.CreateTestShow(venue.ID, artist.ID, time.Now().UTC().Add(48*time.Hour))
	require.NoError(t, err)

	res, err := env.venueFlow.GetVenue(ctx, venue.ID, testMetadata())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Venue.PastShowsCount)
	assert.Equal(t, 1, res.Venue.UpcomingShowsCount)
	require.Len(t, res.Venue.PastShows, 1)
	require.Len(t, res.Venue.UpcomingShows, 1)
	assert.Equal(t, "The Wild Sax Band", res.Venue.UpcomingShows[0].ArtistName)
}

func TestGetVenueFlowNotFound(t *testing.T) {
	env := setupFlowTest(t)
	ctx := testingutil.CreateTestContext()

	_, err := env.venueFlow.GetVenue(ctx, 424242, testMetadata())
	require.Error(t, err)
	assert.True(t, businessflow.IsVenueNotFound(err))
}

func TestUpdateVenueFlowOverwritesEverything(t *testing.T) {
	env := setupFlowTest(t)
	ctx := testingutil.CreateTestContext()

	venue, err := env.fixtures.CreateTestVenue("The Musical Hop", "San Francisco", "CA")
	require.NoError(t, err)

	req := &dto.UpdateVenueRequest{
		ID: venue.ID,
		CreateVenueRequest: dto.CreateVenueRequest{
			Name:    "The Musical Hop 2.0",
			City:    "Oakland",
			State:   "CA",
			Address: "500 Broadway",
			Genres:  []string{"Funk", "Soul"},
		},
	}

	res, err := env.venueFlow.UpdateVenue(ctx, req, testMetadata())
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop 2.0", res.Venue.Name)
	assert.Equal(t, "Oakland", res.Venue.City)
	assert.Equal(t, []string{"Funk", "Soul"}, res.Venue.Genres)
	// Fields absent from the submission are cleared, not preserved
	assert.Empty(t, res.Venue.Phone)

	refetched, err := env.venueFlow.GetVenue(ctx, venue.ID, testMetadata())
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop 2.0", refetched.Venue.Name)
	assert.Empty(t, refetched.Venue.Phone)
}

func TestDeleteArtistFlowRemovesBookings(t *testing.T) {
	env := setupFlowTest(t)
	ctx := testingutil.CreateTestContext()

	venue, err := env.fixtures.CreateTestVenue("The Dueling Pianos Bar", "New York", "NY")
	require.NoError(t, err)
	artist, err := env.fixtures.CreateTestArtist("Matt Quevedo", "New York", "NY")
	require.NoError(t, err)
	_, err = env.fixtures.CreateTestShow(venue.ID, artist.ID, time.Now().UTC().Add(24*time.Hour))
	require.NoError(t, err)

	_, err = env.artistFlow.DeleteArtist(ctx, artist.ID, testMetadata())
	require.NoError(t, err)

	_, err = env.artistFlow.GetArtist(ctx, artist.ID, testMetadata())
	assert.True(t, businessflow.IsArtistNotFound(err))

	// The venue's page no longer lists the booking
	res, err := env.venueFlow.GetVenue(ctx, venue.ID, testMetadata())
	require.NoError(t, err)
	assert.Zero(t, res.Venue.UpcomingShowsCount)
	assert.Zero(t, res.Venue.PastShowsCount)
}

func TestListVenuesFlowGroupsByLocality(t *testing.T) {
	env := setupFlowTest(t)
	ctx := testingutil.CreateTestContext()

	_, err := env.fixtures.CreateTestVenue("The Musical Hop", "San Francisco", "CA")
	require.NoError(t, err)
	_, err = env.fixtures.CreateTestVenue("Park Square Live Music & Coffee", "San Francisco", "CA")
	require.NoError(t, err)
	_, err = env.fixtures.CreateTestVenue("The Dueling Pianos Bar", "New York", "NY")
	require.NoError(t, err)

	res, err := env.venueFlow.ListVenues(ctx, testMetadata())
	require.NoError(t, err)

	require.Len(t, res.Cities, 2)
	assert.Equal(t, "New York", res.Cities[0].City)
	assert.Equal(t, "San Francisco", res.Cities[1].City)
	assert.Len(t, res.Cities[1].Venues, 2)
}

func TestSearchArtistsFlow(t *testing.T) {
	env := setupFlowTest(t)
	ctx := testingutil.CreateTestContext()

	_, err := env.fixtures.CreateTestArtist("Guns N Petals", "San Francisco", "CA")
	require.NoError(t, err)
	_, err = env.fixtures.CreateTestArtist("The Wild Sax Band", "Seattle", "WA")
	require.NoError(t, err)

	res, err := env.artistFlow.SearchArtists(ctx, &dto.SearchArtistsRequest{SearchTerm: "band"}, testMetadata())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "The Wild Sax Band", res.Data[0].Name)
}
