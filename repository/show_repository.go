// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"time"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/models"
	"gorm.io/gorm"
)

// ShowRepositoryImpl implements ShowRepository interface
type ShowRepositoryImpl struct {
	*BaseRepository[models.Show, models.ShowFilter]
}

// NewShowRepository creates a new show repository
func NewShowRepository(db *gorm.DB) ShowRepository {
	return &ShowRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Show, models.ShowFilter](db),
	}
}

// applyFilter applies filter criteria to a GORM query
func (r *ShowRepositoryImpl) applyFilter(query *gorm.DB, filter models.ShowFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.VenueID != nil {
		query = query.Where("venue_id = ?", *filter.VenueID)
	}
	if filter.ArtistID != nil {
		query = query.Where("artist_id = ?", *filter.ArtistID)
	}
	if filter.StartsAfter != nil {
		query = query.Where("start_time >= ?", *filter.StartsAfter)
	}
	if filter.StartsUntil != nil {
		query = query.Where("start_time < ?", *filter.StartsUntil)
	}
	return query
}

// ByFilter retrieves shows based on filter criteria with venue and artist preloaded
func (r *ShowRepositoryImpl) ByFilter(ctx context.Context, filter models.ShowFilter, orderBy string, limit, offset int) ([]*models.Show, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Show{}).
		Preload("Venue").
		Preload("Artist")

	query = r.applyFilter(query, filter)

	if orderBy == "" {
		orderBy = "start_time ASC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var shows []*models.Show
	if err := query.Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}

// ListByVenue retrieves all shows booked at a venue, artist preloaded,
// ordered by start time
func (r *ShowRepositoryImpl) ListByVenue(ctx context.Context, venueID uint) ([]*models.Show, error) {
	filter := models.ShowFilter{VenueID: &venueID}
	return r.ByFilter(ctx, filter, "", 0, 0)
}

// ListByArtist retrieves all shows booked for an artist, venue preloaded,
// ordered by start time
func (r *ShowRepositoryImpl) ListByArtist(ctx context.Context, artistID uint) ([]*models.Show, error) {
	filter := models.ShowFilter{ArtistID: &artistID}
	return r.ByFilter(ctx, filter, "", 0, 0)
}

// Count returns the number of shows matching the filter
func (r *ShowRepositoryImpl) Count(ctx context.Context, filter models.ShowFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Show{})
	query = r.applyFilter(query, filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any show matching the filter exists
func (r *ShowRepositoryImpl) Exists(ctx context.Context, filter models.ShowFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteByVenue removes every show booked at a venue
func (r *ShowRepositoryImpl) DeleteByVenue(ctx context.Context, venueID uint) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}
	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Where("venue_id = ?", venueID).Delete(&models.Show{}).Error
	return err
}

// DeleteByArtist removes every show booked for an artist
func (r *ShowRepositoryImpl) DeleteByArtist(ctx context.Context, artistID uint) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}
	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Where("artist_id = ?", artistID).Delete(&models.Show{}).Error
	return err
}

// upcomingCountRow is the scan target for grouped upcoming-show counts
type upcomingCountRow struct {
	OwnerID uint  `gorm:"column:owner_id"`
	Total   int64 `gorm:"column:total"`
}

// CountUpcomingByVenue derives the live upcoming-show count per venue,
// judged against a single reference instant (inclusive boundary).
// The denormalized num_upcoming_shows column is never consulted.
func (r *ShowRepositoryImpl) CountUpcomingByVenue(ctx context.Context, ref time.Time) (map[uint]int64, error) {
	return r.countUpcomingGrouped(ctx, "venue_id", ref)
}

// CountUpcomingByArtist derives the live upcoming-show count per artist
func (r *ShowRepositoryImpl) CountUpcomingByArtist(ctx context.Context, ref time.Time) (map[uint]int64, error) {
	return r.countUpcomingGrouped(ctx, "artist_id", ref)
}

func (r *ShowRepositoryImpl) countUpcomingGrouped(ctx context.Context, column string, ref time.Time) (map[uint]int64, error) {
	db := r.getDB(ctx)

	var rows []upcomingCountRow
	err := db.Model(&models.Show{}).
		Select(column+" AS owner_id, COUNT(*) AS total").
		Where("start_time >= ?", ref).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.OwnerID] = row.Total
	}
	return counts, nil
}
