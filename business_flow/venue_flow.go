// Package businessflow contains the core business logic and use cases for venues
package businessflow

import (
	"context"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/app/dto"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/models"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/repository"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/utils"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// VenueFlow defines operations for the venue directory
type VenueFlow interface {
	ListVenues(ctx context.Context, metadata *ClientMetadata) (*dto.ListVenuesResponse, error)
	SearchVenues(ctx context.Context, req *dto.SearchVenuesRequest, metadata *ClientMetadata) (*dto.SearchVenuesResponse, error)
	GetVenue(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.GetVenueResponse, error)
	GetVenueEditForm(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.GetVenueEditFormResponse, error)
	CreateVenue(ctx context.Context, req *dto.CreateVenueRequest, metadata *ClientMetadata) (*dto.CreateVenueResponse, error)
	UpdateVenue(ctx context.Context, req *dto.UpdateVenueRequest, metadata *ClientMetadata) (*dto.UpdateVenueResponse, error)
	DeleteVenue(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteVenueResponse, error)
}

// VenueFlowImpl implements VenueFlow
type VenueFlowImpl struct {
	venueRepo repository.VenueRepository
	showRepo  repository.ShowRepository
	db        *gorm.DB
}

// NewVenueFlow constructs a VenueFlow
func NewVenueFlow(
	venueRepo repository.VenueRepository,
	showRepo repository.ShowRepository,
	db *gorm.DB,
) VenueFlow {
	return &VenueFlowImpl{
		venueRepo: venueRepo,
		showRepo:  showRepo,
		db:        db,
	}
}

// ListVenues retrieves every venue grouped by (city, state) locality,
// each venue carrying its live upcoming-show count
func (f *VenueFlowImpl) ListVenues(ctx context.Context, metadata *ClientMetadata) (*dto.ListVenuesResponse, error) {
	venues, err := f.venueRepo.ByFilter(ctx, models.VenueFilter{}, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("LIST_VENUES_FAILED", "Failed to list venues", err)
	}

	counts, err := f.showRepo.CountUpcomingByVenue(ctx, utils.UTCNow())
	if err != nil {
		return nil, NewBusinessError("LIST_VENUES_FAILED", "Failed to count upcoming shows", err)
	}

	return &dto.ListVenuesResponse{
		Message: "Venues retrieved successfully",
		Cities:  GroupVenuesByCity(venues, counts),
	}, nil
}

// SearchVenues retrieves venues whose name contains the search term,
// case-insensitive. An empty term matches every venue.
func (f *VenueFlowImpl) SearchVenues(ctx context.Context, req *dto.SearchVenuesRequest, metadata *ClientMetadata) (*dto.SearchVenuesResponse, error) {
	venues, err := f.venueRepo.SearchByName(ctx, req.SearchTerm)
	if err != nil {
		return nil, NewBusinessError("SEARCH_VENUES_FAILED", "Failed to search venues", err)
	}

	counts, err := f.showRepo.CountUpcomingByVenue(ctx, utils.UTCNow())
	if err != nil {
		return nil, NewBusinessError("SEARCH_VENUES_FAILED", "Failed to count upcoming shows", err)
	}

	items := make([]dto.VenueSummaryDTO, 0, len(venues))
	for _, venue := range venues {
		items = append(items, dto.VenueSummaryDTO{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: counts[venue.ID],
		})
	}

	return &dto.SearchVenuesResponse{
		Message: "Venues searched successfully",
		Count:   len(items),
		Data:    items,
	}, nil
}

// GetVenue retrieves a venue's full detail view with its shows
// partitioned into past and upcoming against the current instant
func (f *VenueFlowImpl) GetVenue(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.GetVenueResponse, error) {
	venue, err := f.venueRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("GET_VENUE_FAILED", "Failed to get venue", err)
	}
	if venue == nil {
		return nil, NewBusinessErrorf("VENUE_NOT_FOUND", "Venue %d not found", ErrVenueNotFound, id)
	}

	shows, err := f.showRepo.ListByVenue(ctx, id)
	if err != nil {
		return nil, NewBusinessError("GET_VENUE_FAILED", "Failed to list venue shows", err)
	}

	past, upcoming := PartitionShows(shows, utils.UTCNow())

	return &dto.GetVenueResponse{
		Message: "Venue retrieved successfully",
		Venue:   toVenueDetailDTO(venue, past, upcoming),
	}, nil
}

// GetVenueEditForm retrieves the editable fields of a venue for form prefill
func (f *VenueFlowImpl) GetVenueEditForm(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.GetVenueEditFormResponse, error) {
	venue, err := f.venueRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("GET_VENUE_EDIT_FORM_FAILED", "Failed to get venue", err)
	}
	if venue == nil {
		return nil, NewBusinessErrorf("VENUE_NOT_FOUND", "Venue %d not found", ErrVenueNotFound, id)
	}

	return &dto.GetVenueEditFormResponse{
		Message: "Venue retrieved successfully",
		Venue:   ToVenueEditFormDTO(venue),
	}, nil
}

// CreateVenue records a new venue from a full form submission
func (f *VenueFlowImpl) CreateVenue(ctx context.Context, req *dto.CreateVenueRequest, metadata *ClientMetadata) (*dto.CreateVenueResponse, error) {
	if err := validateVenueSubmission(req); err != nil {
		return nil, err
	}

	venue := &models.Venue{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Address:            req.Address,
		Phone:              req.Phone,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		Website:            req.Website,
		Genres:             pq.StringArray(req.Genres),
		SeekingTalent:      req.SeekingTalent,
		SeekingDescription: req.SeekingDescription,
	}

	if err := f.venueRepo.Save(ctx, venue); err != nil {
		return nil, NewBusinessError("CREATE_VENUE_FAILED", "Failed to create venue", err)
	}

	return &dto.CreateVenueResponse{
		Message: "Venue " + venue.Name + " was successfully listed",
		Venue:   toVenueDetailDTO(venue, nil, nil),
	}, nil
}

// UpdateVenue overwrites every editable field of an existing venue.
// The existence check and the overwrite run in one transaction.
func (f *VenueFlowImpl) UpdateVenue(ctx context.Context, req *dto.UpdateVenueRequest, metadata *ClientMetadata) (*dto.UpdateVenueResponse, error) {
	if err := validateVenueSubmission(&req.CreateVenueRequest); err != nil {
		return nil, err
	}

	var updated *models.Venue
	err := repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		venue, err := f.venueRepo.ByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		if venue == nil {
			return ErrVenueNotFound
		}

		venue.Name = req.Name
		venue.City = req.City
		venue.State = req.State
		venue.Address = req.Address
		venue.Phone = req.Phone
		venue.ImageLink = req.ImageLink
		venue.FacebookLink = req.FacebookLink
		venue.Website = req.Website
		venue.Genres = pq.StringArray(req.Genres)
		venue.SeekingTalent = req.SeekingTalent
		venue.SeekingDescription = req.SeekingDescription

		if err := f.venueRepo.Update(txCtx, venue); err != nil {
			return err
		}

		updated = venue
		return nil
	})
	if err != nil {
		if IsVenueNotFound(err) {
			return nil, NewBusinessErrorf("VENUE_NOT_FOUND", "Venue %d not found", ErrVenueNotFound, req.ID)
		}
		return nil, NewBusinessError("UPDATE_VENUE_FAILED", "Failed to update venue", err)
	}

	return &dto.UpdateVenueResponse{
		Message: "Venue " + updated.Name + " was successfully updated",
		Venue:   toVenueDetailDTO(updated, nil, nil),
	}, nil
}

// DeleteVenue removes a venue together with every show booked at it
func (f *VenueFlowImpl) DeleteVenue(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteVenueResponse, error) {
	var name string
	err := repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		venue, err := f.venueRepo.ByID(txCtx, id)
		if err != nil {
			return err
		}
		if venue == nil {
			return ErrVenueNotFound
		}
		name = venue.Name

		return f.venueRepo.Delete(txCtx, id)
	})
	if err != nil {
		if IsVenueNotFound(err) {
			return nil, NewBusinessErrorf("VENUE_NOT_FOUND", "Venue %d not found", ErrVenueNotFound, id)
		}
		return nil, NewBusinessError("DELETE_VENUE_FAILED", "Failed to delete venue", err)
	}

	return &dto.DeleteVenueResponse{
		Message: "Venue " + name + " was successfully deleted",
	}, nil
}

// toVenueDetailDTO converts a venue and its partitioned shows to the detail view
func toVenueDetailDTO(venue *models.Venue, past, upcoming []*models.Show) dto.VenueDetailDTO {
	return dto.VenueDetailDTO{
		ID:                 venue.ID,
		UUID:               venue.UUID.String(),
		Name:               venue.Name,
		Genres:             genresToStrings(venue.Genres),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		ImageLink:          venue.ImageLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		PastShows:          toVenueShowDTOs(past),
		UpcomingShows:      toVenueShowDTOs(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func toVenueShowDTOs(shows []*models.Show) []dto.VenueShowDTO {
	out := make([]dto.VenueShowDTO, 0, len(shows))
	for _, show := range shows {
		out = append(out, dto.VenueShowDTO{
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       formatShowTime(show.StartTime),
		})
	}
	return out
}

// ToVenueEditFormDTO projects a venue onto its editable fields
func ToVenueEditFormDTO(venue *models.Venue) dto.VenueEditFormDTO {
	return dto.VenueEditFormDTO{
		ID:                 venue.ID,
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		ImageLink:          venue.ImageLink,
		FacebookLink:       venue.FacebookLink,
		Website:            venue.Website,
		Genres:             genresToStrings(venue.Genres),
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
	}
}
