package models

import (
	"time"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Venue represents a performance venue in the database
// Table: venues
// Genres stored as TEXT[]
// NumUpcomingShows is a denormalized counter kept for read convenience only;
// query paths derive the live count from the shows table instead.
type Venue struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID               uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`
	Name               string         `gorm:"type:varchar(255);not null;index:idx_venues_name" json:"name"`
	City               string         `gorm:"type:varchar(120);not null;index:idx_venues_city" json:"city"`
	State              string         `gorm:"type:varchar(120);not null" json:"state"`
	Address            string         `gorm:"type:varchar(120);not null" json:"address"`
	Phone              string         `gorm:"type:varchar(120)" json:"phone"`
	ImageLink          string         `gorm:"type:varchar(500)" json:"image_link"`
	FacebookLink       string         `gorm:"type:varchar(120)" json:"facebook_link"`
	Website            string         `gorm:"type:varchar(120)" json:"website"`
	Genres             pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"genres"`
	SeekingTalent      bool           `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string         `gorm:"type:text" json:"seeking_description"`
	NumUpcomingShows   uint           `gorm:"not null;default:0" json:"num_upcoming_shows"`

	CreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// Relations
	Shows []Show `gorm:"foreignKey:VenueID;references:ID" json:"shows,omitempty"`
}

// TableName returns the table name for the model
func (Venue) TableName() string {
	return "venues"
}

// BeforeCreate ensures UUID and timestamps are set
func (v *Venue) BeforeCreate(tx *gorm.DB) error {
	if v.UUID == uuid.Nil {
		v.UUID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = utils.UTCNow()
	}
	if v.Genres == nil {
		v.Genres = pq.StringArray{}
	}
	return nil
}

// BeforeUpdate is called before updating a record
func (v *Venue) BeforeUpdate(tx *gorm.DB) error {
	v.UpdatedAt = utils.UTCNowPtr()
	return nil
}

// VenueFilter represents filter criteria for venue queries
type VenueFilter struct {
	ID            *uint      `json:"id,omitempty"`
	UUID          *uuid.UUID `json:"uuid,omitempty"`
	Name          *string    `json:"name,omitempty"`
	City          *string    `json:"city,omitempty"`
	State         *string    `json:"state,omitempty"`
	SeekingTalent *bool      `json:"seeking_talent,omitempty"`
}
