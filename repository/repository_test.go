package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/models"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/repository"
	testingutil "github.com/ClaudsFalse/fullStackNanodegree-Fyyur/testing"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRepoTest provisions a throwaway database or skips when Postgres is unreachable
func setupRepoTest(t *testing.T) (*testingutil.TestDB, *testingutil.TestFixtures) {
	t.Helper()

	testDB, err := testingutil.SetupTestDB()
	if err != nil {
		t.Skipf("postgres unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = testDB.TeardownTestDB()
	})

	return testDB, testingutil.NewTestFixtures(testDB)
}

func TestVenueRepositorySaveAndByID(t *testing.T) {
	testDB, _ := setupRepoTest(t)
	ctx := context.Background()

	repo := repository.NewVenueRepository(testDB.DB)

	venue := &models.Venue{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Genres:  pq.StringArray{models.GenreJazz},
	}
	require.NoError(t, repo.Save(ctx, venue))
	require.NotZero(t, venue.ID)

	found, err := repo.ByID(ctx, venue.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "The Musical Hop", found.Name)
	assert.Equal(t, pq.StringArray{models.GenreJazz}, found.Genres)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", found.UUID.String())

	missing, err := repo.ByID(ctx, venue.ID+1000)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestVenueRepositorySearchByName(t *testing.T) {
	testDB, fixtures := setupRepoTest(t)
	ctx := context.Background()

	repo := repository.NewVenueRepository(testDB.DB)

	_, err := fixtures.CreateTestVenue("The Musical Hop", "San Francisco", "CA")
	require.NoError(t, err)
	_, err = fixtures.CreateTestVenue("Park Square Live Music & Coffee", "San Francisco", "CA")
	require.NoError(t, err)
	_, err = fixtures.CreateTestVenue("The Dueling Pianos Bar", "New York", "NY")
	require.NoError(t, err)

	t.Run("CaseInsensitiveSubstring", func(t *testing.T) {
		found, err := repo.SearchByName(ctx, "the")
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "The Musical Hop", found[0].Name)
		assert.Equal(t, "The Dueling Pianos Bar", found[1].Name)
	})

	t.Run("EmptyTermMatchesAll", func(t *testing.T) {
		found, err := repo.SearchByName(ctx, "")
		require.NoError(t, err)
		assert.Len(t, found, 3)
	})

	t.Run("NoMatches", func(t *testing.T) {
		found, err := repo.SearchByName(ctx, "zzzzzz")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestVenueRepositoryDeleteCascades(t *testing.T) {
	testDB, fixtures := setupRepoTest(t)
	ctx := context.Background()

	venueRepo := repository.NewVenueRepository(testDB.DB)
	artistRepo := repository.NewArtistRepository(testDB.DB)
	showRepo := repository.NewShowRepository(testDB.DB)

	venue, err := fixtures.CreateTestVenue("The Musical Hop", "San Francisco", "CA")
	require.NoError(t, err)
	artist, err := fixtures.CreateTestArtist("Guns N Petals", "San Francisco", "CA")
	require.NoError(t, err)

	_, err = fixtures.CreateTestShow(venue.ID, artist.ID, time.Now().UTC().Add(24*time.Hour))
	require.NoError(t, err)
	_, err = fixtures.CreateTestShow(venue.ID, artist.ID, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)

	require.NoError(t, venueRepo.Delete(ctx, venue.ID))

	gone, err := venueRepo.ByID(ctx, venue.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	count, err := showRepo.Count(ctx, models.ShowFilter{VenueID: &venue.ID})
	require.NoError(t, err)
	assert.Zero(t, count)

	// The artist on the other side of the booking survives
	stillThere, err := artistRepo.ByID(ctx, artist.ID)
	require.NoError(t, err)
	assert.NotNil(t, stillThere)
}

func TestVenueRepositoryDeleteMissing(t *testing.T) {
	testDB, _ := setupRepoTest(t)
	ctx := context.Background()

	repo := repository.NewVenueRepository(testDB.DB)
	assert.Error(t, repo.Delete(ctx, 424242))
}

func TestArtistRepositoryUpdate(t *testing.T) {
	testDB, fixtures := setupRepoTest(t)
	ctx := context.Background()

	repo := repository.NewArtistRepository(testDB.DB)

	artist, err := fixtures.CreateTestArtist("Guns N Petals", "San Francisco", "CA")
	require.NoError(t, err)

	artist.Name = "The Wild Sax Band"
	artist.City = "Seattle"
	artist.State = "WA"
	artist.Genres = pq.StringArray{models.GenreJazz, models.GenreClassical}
	artist.SeekingVenue = true
	artist.SeekingDescription = "Looking for gigs"
	require.NoError(t, repo.Update(ctx, artist))

	updated, err := repo.ByID(ctx, artist.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "The Wild Sax Band", updated.Name)
	assert.Equal(t, "Seattle", updated.City)
	assert.Equal(t, "WA", updated.State)
	assert.Equal(t, pq.StringArray{models.GenreJazz, models.GenreClassical}, updated.Genres)
	assert.True(t, updated.SeekingVenue)
	assert.NotNil(t, updated.UpdatedAt)

	ghost := &models.Artist{Name: "Nobody"}
	ghost.ID = 424242
	assert.Error(t, repo.Update(ctx, ghost))
}

func TestShowRepositoryCountUpcoming(t *testing.T) {
	testDB, fixtures := setupRepoTest(t)
	ctx := context.Background()

	showRepo := repository.NewShowRepository(testDB.DB)

	venue, err := fixtures.CreateTestVenue("The Musical Hop", "San Francisco", "CA")
	require.NoError(t, err)
	artist, err := fixtures.CreateTestArtist("Guns N Petals", "San Francisco", "CA")
	require.NoError(t, err)

	ref := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)

	_, err = fixtures.CreateTestShow(venue.ID, artist.ID, ref.Add(-time.Hour))
	require.NoError(t, err)
	_, err = fixtures.CreateTestShow(venue.ID, artist.ID, ref) // boundary counts as upcoming
	require.NoError(t, err)
	_, err = fixtures.CreateTestShow(venue.ID, artist.ID, ref.Add(time.Hour))
	require.NoError(t, err)

	byVenue, err := showRepo.CountUpcomingByVenue(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byVenue[venue.ID])

	byArtist, err := showRepo.CountUpcomingByArtist(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byArtist[artist.ID])
}

func TestShowRepositoryListByVenuePreloads(t *testing.T) {
	testDB, fixtures := setupRepoTest(t)
	ctx := context.Background()

	showRepo := repository.NewShowRepository(testDB.DB)

	venue, err := fixtures.CreateTestVenue("The Musical Hop", "San Francisco", "CA")
	require.NoError(t, err)
	artist, err := fixtures.CreateTestArtist("Guns N Petals", "San Francisco", "CA")
	require.NoError(t, err)

	later := time.Now().UTC().Add(48 * time.Hour)
	earlier := time.Now().UTC().Add(24 * time.Hour)
	_, err = fixtures.CreateTestShow(venue.ID, artist.ID, later)
	require.NoError(t, err)
	_, err = fixtures.CreateTestShow(venue.ID, artist.ID, earlier)
	require.NoError(t, err)

	shows, err := showRepo.ListByVenue(ctx, venue.ID)
	require.NoError(t, err)
	require.Len(t, shows, 2)

	// Ordered by start time with both sides joined in
	assert.True(t, shows[0].StartTime.Before(shows[1].StartTime))
	require.NotNil(t, shows[0].Artist)
	assert.Equal(t, "Guns N Petals", shows[0].Artist.Name)
	require.NotNil(t, shows[0].Venue)
	assert.Equal(t, "The Musical Hop", shows[0].Venue.Name)
}
