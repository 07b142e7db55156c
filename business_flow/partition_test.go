package businessflow

import (
	"testing"
	"time"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionShows(t *testing.T) {
	ref := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)

	t.Run("SplitsAroundReference", func(t *testing.T) {
		shows := []*models.Show{
			{ID: 1, StartTime: ref.Add(-48 * time.Hour)},
			{ID: 2, StartTime: ref.Add(24 * time.Hour)},
			{ID: 3, StartTime: ref.Add(-time.Minute)},
			{ID: 4, StartTime: ref.Add(time.Minute)},
		}

		past, upcoming := PartitionShows(shows, ref)

		require.Len(t, past, 2)
		require.Len(t, upcoming, 2)
		assert.Equal(t, uint(1), past[0].ID)
		assert.Equal(t, uint(3), past[1].ID)
		assert.Equal(t, uint(2), upcoming[0].ID)
		assert.Equal(t, uint(4), upcoming[1].ID)
	})

	t.Run("BoundaryIsUpcoming", func(t *testing.T) {
		shows := []*models.Show{
			{ID: 1, StartTime: ref},
		}

		past, upcoming := PartitionShows(shows, ref)

		assert.Empty(t, past)
		require.Len(t, upcoming, 1)
		assert.Equal(t, uint(1), upcoming[0].ID)
	})

	t.Run("EveryShowLandsExactlyOnce", func(t *testing.T) {
		shows := []*models.Show{
			{ID: 1, StartTime: ref.Add(-time.Hour)},
			{ID: 2, StartTime: ref},
			{ID: 3, StartTime: ref.Add(time.Hour)},
			{ID: 4, StartTime: ref.Add(-2 * time.Hour)},
			{ID: 5, StartTime: ref.Add(2 * time.Hour)},
		}

		past, upcoming := PartitionShows(shows, ref)

		assert.Equal(t, len(shows), len(past)+len(upcoming))

		seen := make(map[uint]int)
		for _, s := range past {
			seen[s.ID]++
		}
		for _, s := range upcoming {
			seen[s.ID]++
		}
		for _, s := range shows {
			assert.Equal(t, 1, seen[s.ID])
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		past, upcoming := PartitionShows(nil, ref)

		assert.NotNil(t, past)
		assert.NotNil(t, upcoming)
		assert.Empty(t, past)
		assert.Empty(t, upcoming)
	})
}

func TestGroupVenuesByCity(t *testing.T) {
	t.Run("GroupsByCityAndState", func(t *testing.T) {
		venues := []*models.Venue{
			{ID: 1, Name: "The Musical Hop", City: "Boston", State: "MA"},
			{ID: 2, Name: "The Dueling Pianos Bar", City: "Austin", State: "TX"},
			{ID: 3, Name: "Park Square Live Music & Coffee", City: "Boston", State: "MA"},
		}
		counts := map[uint]int64{1: 2, 3: 1}

		cities := GroupVenuesByCity(venues, counts)

		require.Len(t, cities, 2)
		assert.Equal(t, "Austin", cities[0].City)
		assert.Equal(t, "TX", cities[0].State)
		assert.Equal(t, "Boston", cities[1].City)
		assert.Equal(t, "MA", cities[1].State)

		require.Len(t, cities[1].Venues, 2)
		assert.Equal(t, uint(1), cities[1].Venues[0].ID)
		assert.Equal(t, uint(3), cities[1].Venues[1].ID)
		assert.Equal(t, int64(2), cities[1].Venues[0].NumUpcomingShows)
		assert.Equal(t, int64(1), cities[1].Venues[1].NumUpcomingShows)
	})

	t.Run("SameCityDifferentStateStaysApart", func(t *testing.T) {
		venues := []*models.Venue{
			{ID: 1, Name: "East Side", City: "Springfield", State: "IL"},
			{ID: 2, Name: "West Side", City: "Springfield", State: "MA"},
		}

		cities := GroupVenuesByCity(venues, nil)

		require.Len(t, cities, 2)
		assert.Equal(t, "IL", cities[0].State)
		assert.Equal(t, "MA", cities[1].State)
	})

	t.Run("MissingCountDefaultsToZero", func(t *testing.T) {
		venues := []*models.Venue{
			{ID: 7, Name: "Quiet Room", City: "Reno", State: "NV"},
		}

		cities := GroupVenuesByCity(venues, map[uint]int64{})

		require.Len(t, cities, 1)
		assert.Equal(t, int64(0), cities[0].Venues[0].NumUpcomingShows)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		cities := GroupVenuesByCity(nil, nil)
		assert.Empty(t, cities)
	})
}
