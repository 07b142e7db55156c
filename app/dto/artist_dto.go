package dto

// CreateArtistRequest carries a full artist submission. Edit submissions
// reuse the same shape because the form posts every field back.
type CreateArtistRequest struct {
	Name               string   `json:"name" validate:"required,min=1,max=120"`
	City               string   `json:"city" validate:"required,min=1,max=120"`
	State              string   `json:"state" validate:"required,us_state"`
	Phone              string   `json:"phone" validate:"omitempty,phone_format"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `json:"website" validate:"omitempty,url,max=120"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,genre"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" validate:"omitempty,max=500"`
}

type UpdateArtistRequest struct {
	ID uint `json:"-"`
	CreateArtistRequest
}

// ArtistSummaryDTO is the list/search row shape
type ArtistSummaryDTO struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

type ListArtistsResponse struct {
	Message string             `json:"message"`
	Artists []ArtistSummaryDTO `json:"artists"`
}

type SearchArtistsRequest struct {
	SearchTerm string `json:"search_term"`
}

type SearchArtistsResponse struct {
	Message string             `json:"message"`
	Count   int                `json:"count"`
	Data    []ArtistSummaryDTO `json:"data"`
}

// ArtistShowDTO is a show as seen from the artist's detail page
type ArtistShowDTO struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type ArtistDetailDTO struct {
	ID                 uint            `json:"id"`
	UUID               string          `json:"uuid"`
	Name               string          `json:"name"`
	Genres             []string        `json:"genres"`
	City               string          `json:"city"`
	State              string          `json:"state"`
	Phone              string          `json:"phone"`
	Website            string          `json:"website"`
	FacebookLink       string          `json:"facebook_link"`
	ImageLink          string          `json:"image_link"`
	SeekingVenue       bool            `json:"seeking_venue"`
	SeekingDescription string          `json:"seeking_description"`
	PastShows          []ArtistShowDTO `json:"past_shows"`
	UpcomingShows      []ArtistShowDTO `json:"upcoming_shows"`
	PastShowsCount     int             `json:"past_shows_count"`
	UpcomingShowsCount int             `json:"upcoming_shows_count"`
}

type GetArtistResponse struct {
	Message string          `json:"message"`
	Artist  ArtistDetailDTO `json:"artist"`
}

type CreateArtistResponse struct {
	Message string          `json:"message"`
	Artist  ArtistDetailDTO `json:"artist"`
}

type UpdateArtistResponse struct {
	Message string          `json:"message"`
	Artist  ArtistDetailDTO `json:"artist"`
}

type DeleteArtistResponse struct {
	Message string `json:"message"`
}

// ArtistEditFormDTO is the editable-fields view used to prefill the edit form
type ArtistEditFormDTO struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	Genres             []string `json:"genres"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

type GetArtistEditFormResponse struct {
	Message string            `json:"message"`
	Artist  ArtistEditFormDTO `json:"artist"`
}
