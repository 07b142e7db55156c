// Package businessflow contains the core business logic and use cases for artists
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

// ArtistFlow defines operations for the artist directory
type ArtistFlow interface {
	ListArtists(ctx context.Context, metadata *ClientMetadata) (*dto.ListArtistsResponse, error)
	SearchArtists(ctx context.Context, req *dto.SearchArtistsRequest, metadata *ClientMetadata) (*dto.SearchArtistsResponse, error)
	GetArtist(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.GetArtistResponse, error)
	GetArtistEditForm(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.GetArtistEditFormResponse, error)
	CreateArtist(ctx context.Context, req *dto.CreateArtistRequest, metadata *ClientMetadata) (*dto.CreateArtistResponse, error)
	UpdateArtist(ctx context.Context, req *dto.UpdateArtistRequest, metadata *ClientMetadata) (*dto.UpdateArtistResponse, error)
	DeleteArtist(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteArtistResponse, error)
}

// ArtistFlowImpl implements ArtistFlow
type ArtistFlowImpl struct {
	artistRepo repository.ArtistRepository
	showRepo   repository.ShowRepository
	db         *gorm.DB
}

// NewArtistFlow constructs an ArtistFlow
func NewArtistFlow(
	artistRepo repository.ArtistRepository,
	showRepo repository.ShowRepository,
	db *gorm.DB,
) ArtistFlow {
	return &ArtistFlowImpl{
		artistRepo: artistRepo,
		showRepo:   showRepo,
		db:         db,
	}
}

// ListArtists retrieves every artist as a flat summary list in id order
func (f *ArtistFlowImpl) ListArtists(ctx context.Context, metadata *ClientMetadata) (*dto.ListArtistsResponse, error) {
	artists, err := f.artistRepo.ByFilter(ctx, models.ArtistFilter{}, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("LIST_ARTISTS_FAILED", "Failed to list artists", err)
	}

	counts, err := f.showRepo.CountUpcomingByArtist(ctx, utils.UTCNow())
	if err != nil {
		return nil, NewBusinessError("LIST_ARTISTS_FAILED", "Failed to count upcoming shows", err)
	}

	items := make([]dto.ArtistSummaryDTO, 0, len(artists))
	for _, artist := range artists {
		items = append(items, dto.ArtistSummaryDTO{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: counts[artist.ID],
		})
	}

	return &dto.ListArtistsResponse{
		Message: "Artists retrieved successfully",
		Artists: items,
	}, nil
}

// SearchArtists retrieves artists whose name contains the search term,
// case-insensitive. An empty term matches every artist.
func (f *ArtistFlowImpl) SearchArtists(ctx context.Context, req *dto.SearchArtistsRequest, metadata *ClientMetadata) (*dto.SearchArtistsResponse, error) {
	artists, err := f.artistRepo.SearchByName(ctx, req.SearchTerm)
	if err != nil {
		return nil, NewBusinessError("SEARCH_ARTISTS_FAILED", "Failed to search artists", err)
	}

	counts, err := f.showRepo.CountUpcomingByArtist(ctx, utils.UTCNow())
	if err != nil {
		return nil, NewBusinessError("SEARCH_ARTISTS_FAILED", "Failed to count upcoming shows", err)
	}

	items := make([]dto.ArtistSummaryDTO, 0, len(artists))
	for _, artist := range artists {
		items = append(items, dto.ArtistSummaryDTO{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: counts[artist.ID],
		})
	}

	return &dto.SearchArtistsResponse{
		Message: "Artists searched successfully",
		Count:   len(items),
		Data:    items,
	}, nil
}

// GetArtist retrieves an artist's full detail view with its shows
// partitioned into past and upcoming against the current instant
func (f *ArtistFlowImpl) GetArtist(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.GetArtistResponse, error) {
	artist, err := f.artistRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("GET_ARTIST_FAILED", "Failed to get artist", err)
	}
	if artist == nil {
		return nil, NewBusinessErrorf("ARTIST_NOT_FOUND", "Artist %d not found", ErrArtistNotFound, id)
	}

	shows, err := f.showRepo.ListByArtist(ctx, id)
	if err != nil {
		return nil, NewBusinessError("GET_ARTIST_FAILED", "Failed to list artist shows", err)
	}

	past, upcoming := PartitionShows(shows, utils.UTCNow())

	return &dto.GetArtistResponse{
		Message: "Artist retrieved successfully",
		Artist:  toArtistDetailDTO(artist, past, upcoming),
	}, nil
}

// GetArtistEditForm retrieves the editable fields of an artist for form prefill
func (f *ArtistFlowImpl) GetArtistEditForm(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.GetArtistEditFormResponse, error) {
	artist, err := f.artistRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("GET_ARTIST_EDIT_FORM_FAILED", "Failed to get artist", err)
	}
	if artist == nil {
		return nil, NewBusinessErrorf("ARTIST_NOT_FOUND", "Artist %d not found", ErrArtistNotFound, id)
	}

	return &dto.GetArtistEditFormResponse{
		Message: "Artist retrieved successfully",
		Artist:  ToArtistEditFormDTO(artist),
	}, nil
}

// CreateArtist records a new artist from a full form submission
func (f *ArtistFlowImpl) CreateArtist(ctx context.Context, req *dto.CreateArtistRequest, metadata *ClientMetadata) (*dto.CreateArtistResponse, error) {
	if err := validateArtistSubmission(req); err != nil {
		return nil, err
	}

	artist := &models.Artist{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Phone:              req.Phone,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		Website:            req.Website,
		Genres:             pq.StringArray(req.Genres),
		SeekingVenue:       req.SeekingVenue,
		SeekingDescription: req.SeekingDescription,
	}

	if err := f.artistRepo.Save(ctx, artist); err != nil {
		return nil, NewBusinessError("CREATE_ARTIST_FAILED", "Failed to create artist", err)
	}

	return &dto.CreateArtistResponse{
		Message: "Artist " + artist.Name + " was successfully listed",
		Artist:  toArtistDetailDTO(artist, nil, nil),
	}, nil
}

// UpdateArtist overwrites every editable field of an existing artist.
// The existence check and the overwrite run in one transaction.
func (f *ArtistFlowImpl) UpdateArtist(ctx context.Context, req *dto.UpdateArtistRequest, metadata *ClientMetadata) (*dto.UpdateArtistResponse, error) {
	if err := validateArtistSubmission(&req.CreateArtistRequest); err != nil {
		return nil, err
	}

	var updated *models.Artist
	err := repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		artist, err := f.artistRepo.ByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		if artist == nil {
			return ErrArtistNotFound
		}

		artist.Name = req.Name
		artist.City = req.City
		artist.State = req.State
		artist.Phone = req.Phone
		artist.ImageLink = req.ImageLink
		artist.FacebookLink = req.FacebookLink
		artist.Website = req.Website
		artist.Genres = pq.StringArray(req.Genres)
		artist.SeekingVenue = req.SeekingVenue
		artist.SeekingDescription = req.SeekingDescription

		if err := f.artistRepo.Update(txCtx, artist); err != nil {
			return err
		}

		updated = artist
		return nil
	})
	if err != nil {
		if IsArtistNotFound(err) {
			return nil, NewBusinessErrorf("ARTIST_NOT_FOUND", "Artist %d not found", ErrArtistNotFound, req.ID)
		}
		return nil, NewBusinessError("UPDATE_ARTIST_FAILED", "Failed to update artist", err)
	}

	return &dto.UpdateArtistResponse{
		Message: "Artist " + updated.Name + " was successfully updated",
		Artist:  toArtistDetailDTO(updated, nil, nil),
	}, nil
}

// DeleteArtist removes an artist together with every show booked for it
func (f *ArtistFlowImpl) DeleteArtist(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteArtistResponse, error) {
	var name string
	err := repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		artist, err := f.artistRepo.ByID(txCtx, id)
		if err != nil {
			return err
		}
		if artist == nil {
			return ErrArtistNotFound
		}
		name = artist.Name

		return f.artistRepo.Delete(txCtx, id)
	})
	if err != nil {
		if IsArtistNotFound(err) {
			return nil, NewBusinessErrorf("ARTIST_NOT_FOUND", "Artist %d not found", ErrArtistNotFound, id)
		}
		return nil, NewBusinessError("DELETE_ARTIST_FAILED", "Failed to delete artist", err)
	}

	return &dto.DeleteArtistResponse{
		Message: "Artist " + name + " was successfully deleted",
	}, nil
}

// toArtistDetailDTO converts an artist and its partitioned shows to the detail view
func toArtistDetailDTO(artist *models.Artist, past, upcoming []*models.Show) dto.ArtistDetailDTO {
	return dto.ArtistDetailDTO{
		ID:                 artist.ID,
		UUID:               artist.UUID.String(),
		Name:               artist.Name,
		Genres:             genresToStrings(artist.Genres),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		ImageLink:          artist.ImageLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		PastShows:          toArtistShowDTOs(past),
		UpcomingShows:      toArtistShowDTOs(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func toArtistShowDTOs(shows []*models.Show) []dto.ArtistShowDTO {
	out := make([]dto.ArtistShowDTO, 0, len(shows))
	for _, show := range shows {
		out = append(out, dto.ArtistShowDTO{
			VenueID:        show.VenueID,
			VenueName:      show.Venue.Name,
			VenueImageLink: show.Venue.ImageLink,
			StartTime:      formatShowTime(show.StartTime),
		})
	}
	return out
}

// ToArtistEditFormDTO projects an artist onto its editable fields
func ToArtistEditFormDTO(artist *models.Artist) dto.ArtistEditFormDTO {
	return dto.ArtistEditFormDTO{
		ID:                 artist.ID,
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		ImageLink:          artist.ImageLink,
		FacebookLink:       artist.FacebookLink,
		Website:            artist.Website,
		Genres:             genresToStrings(artist.Genres),
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
	}
}
