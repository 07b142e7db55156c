package models

import (
	"time"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/utils"
	"gorm.io/gorm"
)

// Show represents a booked performance linking an artist to a venue
// Table: shows
// A show is a pure association row: it has no meaning without both sides,
// so both foreign keys are NOT NULL and deletes of either parent remove it.
type Show struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VenueID   uint      `gorm:"not null;index:idx_shows_venue_id" json:"venue_id"`
	ArtistID  uint      `gorm:"not null;index:idx_shows_artist_id" json:"artist_id"`
	StartTime time.Time `gorm:"not null;index:idx_shows_start_time" json:"start_time"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relations
	Venue  *Venue  `gorm:"foreignKey:VenueID;references:ID;constraint:OnDelete:CASCADE" json:"venue,omitempty"`
	Artist *Artist `gorm:"foreignKey:ArtistID;references:ID;constraint:OnDelete:CASCADE" json:"artist,omitempty"`
}

// TableName returns the table name for the model
func (Show) TableName() string {
	return "shows"
}

// BeforeCreate normalizes timestamps
func (s *Show) BeforeCreate(tx *gorm.DB) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = utils.UTCNow()
	}
	s.StartTime = utils.TimeToUTC(s.StartTime)
	return nil
}

// IsUpcoming reports whether the show starts at or after the reference
// instant. The boundary is inclusive: a show starting exactly at ref counts
// as upcoming.
func (s *Show) IsUpcoming(ref time.Time) bool {
	return !s.StartTime.Before(ref)
}

// ShowFilter represents filter criteria for show queries
type ShowFilter struct {
	ID          *uint      `json:"id,omitempty"`
	VenueID     *uint      `json:"venue_id,omitempty"`
	ArtistID    *uint      `json:"artist_id,omitempty"`
	StartsAfter *time.Time `json:"starts_after,omitempty"`
	StartsUntil *time.Time `json:"starts_until,omitempty"`
}
