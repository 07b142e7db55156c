// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/models"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/utils"
	"gorm.io/gorm"
)

// ArtistRepositoryImpl implements ArtistRepository interface
type ArtistRepositoryImpl struct {
	*BaseRepository[models.Artist, models.ArtistFilter]
}

// NewArtistRepository creates a new artist repository
func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &ArtistRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Artist, models.ArtistFilter](db),
	}
}

// applyFilter applies filter criteria to a GORM query
func (r *ArtistRepositoryImpl) applyFilter(query *gorm.DB, filter models.ArtistFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		query = query.Where("uuid = ?", *filter.UUID)
	}
	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}
	if filter.City != nil {
		query = query.Where("city = ?", *filter.City)
	}
	if filter.State != nil {
		query = query.Where("state = ?", *filter.State)
	}
	if filter.SeekingVenue != nil {
		query = query.Where("seeking_venue = ?", *filter.SeekingVenue)
	}
	return query
}

// ByFilter retrieves artists based on filter criteria
func (r *ArtistRepositoryImpl) ByFilter(ctx context.Context, filter models.ArtistFilter, orderBy string, limit, offset int) ([]*models.Artist, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Artist{})

	query = r.applyFilter(query, filter)

	if orderBy == "" {
		orderBy = "id ASC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var artists []*models.Artist
	if err := query.Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

// SearchByName retrieves artists whose name contains the term, case-insensitive.
// An empty term matches every artist. Results come back in id order.
func (r *ArtistRepositoryImpl) SearchByName(ctx context.Context, term string) ([]*models.Artist, error) {
	db := r.getDB(ctx)

	var artists []*models.Artist
	err := db.Model(&models.Artist{}).
		Where("name ILIKE ?", "%"+term+"%").
		Order("id ASC").
		Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// Count returns the number of artists matching the filter
func (r *ArtistRepositoryImpl) Count(ctx context.Context, filter models.ArtistFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Artist{})
	query = r.applyFilter(query, filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any artist matching the filter exists
func (r *ArtistRepositoryImpl) Exists(ctx context.Context, filter models.ArtistFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update overwrites the editable fields of an artist by ID.
// Edit submissions are full-record overwrites, not patches.
func (r *ArtistRepositoryImpl) Update(ctx context.Context, artist *models.Artist) error {
	if artist == nil {
		return errors.New("artist payload is nil")
	}
	if artist.ID == 0 {
		return errors.New("artist ID is required for update")
	}

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

	updates := map[string]any{
		"name":                artist.Name,
		"city":                artist.City,
		"state":               artist.State,
		"phone":               artist.Phone,
		"image_link":          artist.ImageLink,
		"facebook_link":       artist.FacebookLink,
		"website":             artist.Website,
		"genres":              artist.Genres,
		"seeking_venue":       artist.SeekingVenue,
		"seeking_description": artist.SeekingDescription,
		"updated_at":          utils.UTCNow(),
	}

	result := db.Model(&models.Artist{}).
		Where("id = ?", artist.ID).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("artist not found with ID: " + strconv.Itoa(int(artist.ID)))
	}
	return nil
}

// Delete removes an artist and its dependent shows in one transaction.
func (r *ArtistRepositoryImpl) Delete(ctx context.Context, id uint) error {
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

	if err = db.Where("artist_id = ?", id).Delete(&models.Show{}).Error; err != nil {
		return err
	}

	result := db.Delete(&models.Artist{}, id)
	if result.Error != nil {
		err = result.Error
		return err
	}
	if result.RowsAffected == 0 {
		err = errors.New("artist not found with ID: " + strconv.Itoa(int(id)))
		return err
	}
	return nil
}
