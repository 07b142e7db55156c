// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"time"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// VenueRepository defines operations for venues
type VenueRepository interface {
	Repository[models.Venue, models.VenueFilter]
	SearchByName(ctx context.Context, term string) ([]*models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id uint) error
}

// ArtistRepository defines operations for artists
type ArtistRepository interface {
	Repository[models.Artist, models.ArtistFilter]
	SearchByName(ctx context.Context, term string) ([]*models.Artist, error)
	Update(ctx context.Context, artist *models.Artist) error
	Delete(ctx context.Context, id uint) error
}

// ShowRepository defines operations for shows
type ShowRepository interface {
	Repository[models.Show, models.ShowFilter]
	ListByVenue(ctx context.Context, venueID uint) ([]*models.Show, error)
	ListByArtist(ctx context.Context, artistID uint) ([]*models.Show, error)
	DeleteByVenue(ctx context.Context, venueID uint) error
	DeleteByArtist(ctx context.Context, artistID uint) error
	CountUpcomingByVenue(ctx context.Context, ref time.Time) (map[uint]int64, error)
	CountUpcomingByArtist(ctx context.Context, ref time.Time) (map[uint]int64, error)
}
