// Package testing provides test utilities and database setup for testing the booking directory
package testing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/models"
	"github.com/lib/pq"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestVenue creates a venue in the given city and state
func (tf *TestFixtures) CreateTestVenue(name, city, state string) (*models.Venue, error) {
	suffix := rand.Intn(10000)

	venue := &models.Venue{
		Name:               name,
		City:               city,
		State:              state,
		Address:            fmt.Sprintf("%d Main Street", suffix),
		Phone:              "123-456-7890",
		ImageLink:          "https://example.com/venue.jpg",
		FacebookLink:       "https://facebook.com/venue",
		Website:            "https://example.com",
		Genres:             pq.StringArray{models.GenreJazz, models.GenreBlues},
		SeekingTalent:      false,
		SeekingDescription: "",
	}

	if err := tf.DB.DB.Create(venue).Error; err != nil {
		return nil, fmt.Errorf("failed to create test venue: %w", err)
	}

	return venue, nil
}

// CreateTestArtist creates an artist in the given city and state
func (tf *TestFixtures) CreateTestArtist(name, city, state string) (*models.Artist, error) {
	artist := &models.Artist{
		Name:               name,
		City:               city,
		State:              state,
		Phone:              "321-654-0987",
		ImageLink:          "https://example.com/artist.jpg",
		FacebookLink:       "https://facebook.com/artist",
		Website:            "https://example.com",
		Genres:             pq.StringArray{models.GenreRockNRoll},
		SeekingVenue:       false,
		SeekingDescription: "",
	}

	if err := tf.DB.DB.Create(artist).Error; err != nil {
		return nil, fmt.Errorf("failed to create test artist: %w", err)
	}

	return artist, nil
}

// CreateTestShow books the artist at the venue for the given start time
func (tf *TestFixtures) CreateTestShow(venueID, artistID uint, startTime time.Time) (*models.Show, error) {
	show := &models.Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: startTime,
	}

	if err := tf.DB.DB.Create(show).Error; err != nil {
		return nil, fmt.Errorf("failed to create test show: %w", err)
	}

	return show, nil
}
