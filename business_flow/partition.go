// Package businessflow contains the core business logic and use cases for show partitioning and city grouping
package businessflow

import (
	"sort"
	"time"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/app/dto"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/models"
)

// PartitionShows splits shows into past and upcoming against a single
// reference instant. A show starting exactly at the reference counts as
// upcoming. Relative order within each half is preserved, and every
// input show lands in exactly one half.
func PartitionShows(shows []*models.Show, ref time.Time) (past, upcoming []*models.Show) {
	past = make([]*models.Show, 0, len(shows))
	upcoming = make([]*models.Show, 0, len(shows))

	for _, show := range shows {
		if show.IsUpcoming(ref) {
			upcoming = append(upcoming, show)
		} else {
			past = append(past, show)
		}
	}

	return past, upcoming
}

// GroupVenuesByCity buckets venues by their (city, state) locality.
// Two venues share a bucket only when both city and state match exactly.
// Buckets come back ordered by city then state, venues within a bucket
// keep their input order, and counts supplies each venue's live
// upcoming-show total.
func GroupVenuesByCity(venues []*models.Venue, counts map[uint]int64) []dto.CityVenuesDTO {
	type localityKey struct {
		city  string
		state string
	}

	buckets := make(map[localityKey][]dto.VenueSummaryDTO)
	for _, venue := range venues {
		key := localityKey{city: venue.City, state: venue.State}
		buckets[key] = append(buckets[key], dto.VenueSummaryDTO{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: counts[venue.ID],
		})
	}

	keys := make([]localityKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].city != keys[j].city {
			return keys[i].city < keys[j].city
		}
		return keys[i].state < keys[j].state
	})

	cities := make([]dto.CityVenuesDTO, 0, len(keys))
	for _, key := range keys {
		cities = append(cities, dto.CityVenuesDTO{
			City:   key.city,
			State:  key.state,
			Venues: buckets[key],
		})
	}

	return cities
}
