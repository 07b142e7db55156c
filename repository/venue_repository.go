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

// VenueRepositoryImpl implements VenueRepository interface
type VenueRepositoryImpl struct {
	*BaseRepository[models.Venue, models.VenueFilter]
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &VenueRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Venue, models.VenueFilter](db),
	}
}

// applyFilter applies filter criteria to a GORM query
func (r *VenueRepositoryImpl) applyFilter(query *gorm.DB, filter models.VenueFilter) *gorm.DB {
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
	if filter.SeekingTalent != nil {
		query = query.Where("seeking_talent = ?", *filter.SeekingTalent)
	}
	return query
}

// ByFilter retrieves venues based on filter criteria
func (r *VenueRepositoryImpl) ByFilter(ctx context.Context, filter models.VenueFilter, orderBy string, limit, offset int) ([]*models.Venue, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Venue{})

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

	var venues []*models.Venue
	if err := query.Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

// SearchByName retrieves venues whose name contains the term, case-insensitive.
// An empty term matches every venue. Results come back in id order.
func (r *VenueRepositoryImpl) SearchByName(ctx context.Context, term string) ([]*models.Venue, error) {
	db := r.getDB(ctx)

	var venues []*models.Venue
	err := db.Model(&models.Venue{}).
		Where("name ILIKE ?", "%"+term+"%").
		Order("id ASC").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// Count returns the number of venues matching the filter
func (r *VenueRepositoryImpl) Count(ctx context.Context, filter models.VenueFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Venue{})
	query = r.applyFilter(query, filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any venue matching the filter exists
func (r *VenueRepositoryImpl) Exists(ctx context.Context, filter models.VenueFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update overwrites the editable fields of a venue by ID.
// Edit submissions are full-record overwrites, not patches, so every
// editable column is written unconditionally.
func (r *VenueRepositoryImpl) Update(ctx context.Context, venue *models.Venue) error {
	if venue == nil {
		return errors.New("venue payload is nil")
	}
	if venue.ID == 0 {
		return errors.New("venue ID is required for update")
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
		"name":                venue.Name,
		"city":                venue.City,
		"state":               venue.State,
		"address":             venue.Address,
		"phone":               venue.Phone,
		"image_link":          venue.ImageLink,
		"facebook_link":       venue.FacebookLink,
		"website":             venue.Website,
		"genres":              venue.Genres,
		"seeking_talent":      venue.SeekingTalent,
		"seeking_description": venue.SeekingDescription,
		"updated_at":          utils.UTCNow(),
	}

	result := db.Model(&models.Venue{}).
		Where("id = ?", venue.ID).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("venue not found with ID: " + strconv.Itoa(int(venue.ID)))
	}
	return nil
}

// Delete removes a venue and its dependent shows in one transaction.
// The cascade is explicit: dependent shows go first, then the parent row.
func (r *VenueRepositoryImpl) Delete(ctx context.Context, id uint) error {
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

	if err = db.Where("venue_id = ?", id).Delete(&models.Show{}).Error; err != nil {
		return err
	}

	result := db.Delete(&models.Venue{}, id)
	if result.Error != nil {
		err = result.Error
		return err
	}
	if result.RowsAffected == 0 {
		err = errors.New("venue not found with ID: " + strconv.Itoa(int(id)))
		return err
	}
	return nil
}
