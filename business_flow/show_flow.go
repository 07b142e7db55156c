// Package businessflow contains the core business logic and use cases for show bookings
package businessflow

import (
	"context"
	"errors"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/app/dto"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/models"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/repository"
	"gorm.io/gorm"
)

// ShowFlow defines operations for show bookings
type ShowFlow interface {
	ListShows(ctx context.Context, metadata *ClientMetadata) (*dto.ListShowsResponse, error)
	CreateShow(ctx context.Context, req *dto.CreateShowRequest, metadata *ClientMetadata) (*dto.CreateShowResponse, error)
}

// ShowFlowImpl implements ShowFlow
type ShowFlowImpl struct {
	showRepo   repository.ShowRepository
	venueRepo  repository.VenueRepository
	artistRepo repository.ArtistRepository
	db         *gorm.DB
}

// NewShowFlow constructs a ShowFlow
func NewShowFlow(
	showRepo repository.ShowRepository,
	venueRepo repository.VenueRepository,
	artistRepo repository.ArtistRepository,
	db *gorm.DB,
) ShowFlow {
	return &ShowFlowImpl{
		showRepo:   showRepo,
		venueRepo:  venueRepo,
		artistRepo: artistRepo,
		db:         db,
	}
}

// ListShows retrieves every booking with both sides joined in,
// ordered by start time
func (f *ShowFlowImpl) ListShows(ctx context.Context, metadata *ClientMetadata) (*dto.ListShowsResponse, error) {
	shows, err := f.showRepo.ByFilter(ctx, models.ShowFilter{}, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("LIST_SHOWS_FAILED", "Failed to list shows", err)
	}

	items := make([]dto.ShowDTO, 0, len(shows))
	for _, show := range shows {
		items = append(items, toShowDTO(show, show.Venue, show.Artist))
	}

	return &dto.ListShowsResponse{
		Message: "Shows retrieved successfully",
		Shows:   items,
	}, nil
}

// CreateShow books an artist at a venue. Both referenced records must
// exist at commit time; the checks and the insert share one transaction
// and the database foreign keys back them up.
func (f *ShowFlowImpl) CreateShow(ctx context.Context, req *dto.CreateShowRequest, metadata *ClientMetadata) (*dto.CreateShowResponse, error) {
	var (
		show   *models.Show
		venue  *models.Venue
		artist *models.Artist
	)
	err := repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		var err error

		venue, err = f.venueRepo.ByID(txCtx, req.VenueID)
		if err != nil {
			return err
		}
		if venue == nil {
			return ErrShowVenueMissing
		}

		artist, err = f.artistRepo.ByID(txCtx, req.ArtistID)
		if err != nil {
			return err
		}
		if artist == nil {
			return ErrShowArtistMissing
		}

		show = &models.Show{
			VenueID:   req.VenueID,
			ArtistID:  req.ArtistID,
			StartTime: req.StartTime,
		}
		return f.showRepo.Save(txCtx, show)
	})
	if err != nil {
		if IsShowVenueMissing(err) {
			return nil, NewBusinessErrorf("SHOW_VENUE_MISSING", "Venue %d does not exist", ErrShowVenueMissing, req.VenueID)
		}
		if IsShowArtistMissing(err) {
			return nil, NewBusinessErrorf("SHOW_ARTIST_MISSING", "Artist %d does not exist", ErrShowArtistMissing, req.ArtistID)
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, NewBusinessError("SHOW_REFERENCE_MISSING", "Show references a missing record", ErrShowVenueMissing)
		}
		return nil, NewBusinessError("CREATE_SHOW_FAILED", "Failed to create show", err)
	}

	return &dto.CreateShowResponse{
		Message: "Show was successfully listed",
		Show:    toShowDTO(show, venue, artist),
	}, nil
}

// toShowDTO joins a booking with both referenced records
func toShowDTO(show *models.Show, venue *models.Venue, artist *models.Artist) dto.ShowDTO {
	return dto.ShowDTO{
		ID:              show.ID,
		VenueID:         show.VenueID,
		VenueName:       venue.Name,
		ArtistID:        show.ArtistID,
		ArtistName:      artist.Name,
		ArtistImageLink: artist.ImageLink,
		StartTime:       formatShowTime(show.StartTime),
	}
}
