package models

import (
	"time"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Artist represents a performing artist in the database
// Table: artists
// Same shape as Venue minus the street address, with seeking_venue instead
// of seeking_talent.
type Artist struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID               uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`
	Name               string         `gorm:"type:varchar(255);not null;index:idx_artists_name" json:"name"`
	City               string         `gorm:"type:varchar(120);not null" json:"city"`
	State              string         `gorm:"type:varchar(120);not null" json:"state"`
	Phone              string         `gorm:"type:varchar(120)" json:"phone"`
	ImageLink          string         `gorm:"type:varchar(500)" json:"image_link"`
	FacebookLink       string         `gorm:"type:varchar(120)" json:"facebook_link"`
	Website            string         `gorm:"type:varchar(120)" json:"website"`
	Genres             pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"genres"`
	SeekingVenue       bool           `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string         `gorm:"type:text" json:"seeking_description"`

	CreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// Relations
	Shows []Show `gorm:"foreignKey:ArtistID;references:ID" json:"shows,omitempty"`
}

// TableName returns the table name for the model
func (Artist) TableName() string {
	return "artists"
}

// BeforeCreate ensures UUID and timestamps are set
func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == uuid.Nil {
		a.UUID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = utils.UTCNow()
	}
	if a.Genres == nil {
		a.Genres = pq.StringArray{}
	}
	return nil
}

// BeforeUpdate is called before updating a record
func (a *Artist) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = utils.UTCNowPtr()
	return nil
}

// ArtistFilter represents filter criteria for artist queries
type ArtistFilter struct {
	ID           *uint      `json:"id,omitempty"`
	UUID         *uuid.UUID `json:"uuid,omitempty"`
	Name         *string    `json:"name,omitempty"`
	City         *string    `json:"city,omitempty"`
	State        *string    `json:"state,omitempty"`
	SeekingVenue *bool      `json:"seeking_venue,omitempty"`
}
