package dto

// CreateVenueRequest carries a full venue submission. Edit submissions
// reuse the same shape because the form posts every field back.
type CreateVenueRequest struct {
	Name               string   `json:"name" validate:"required,min=1,max=120"`
	City               string   `json:"city" validate:"required,min=1,max=120"`
	State              string   `json:"state" validate:"required,us_state"`
	Address            string   `json:"address" validate:"required,min=1,max=120"`
	Phone              string   `json:"phone" validate:"omitempty,phone_format"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `json:"website" validate:"omitempty,url,max=120"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,genre"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" validate:"omitempty,max=500"`
}

type UpdateVenueRequest struct {
	ID uint `json:"-"`
	CreateVenueRequest
}

// VenueSummaryDTO is the list/search row shape
type VenueSummaryDTO struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

// CityVenuesDTO groups venues under one (city, state) locality
type CityVenuesDTO struct {
	City   string            `json:"city"`
	State  string            `json:"state"`
	Venues []VenueSummaryDTO `json:"venues"`
}

type ListVenuesResponse struct {
	Message string          `json:"message"`
	Cities  []CityVenuesDTO `json:"cities"`
}

type SearchVenuesRequest struct {
	SearchTerm string `json:"search_term"`
}

type SearchVenuesResponse struct {
	Message string            `json:"message"`
	Count   int               `json:"count"`
	Data    []VenueSummaryDTO `json:"data"`
}

// VenueShowDTO is a show as seen from the venue's detail page
type VenueShowDTO struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

type VenueDetailDTO struct {
	ID                 uint           `json:"id"`
	UUID               string         `json:"uuid"`
	Name               string         `json:"name"`
	Genres             []string       `json:"genres"`
	Address            string         `json:"address"`
	City               string         `json:"city"`
	State              string         `json:"state"`
	Phone              string         `json:"phone"`
	Website            string         `json:"website"`
	FacebookLink       string         `json:"facebook_link"`
	ImageLink          string         `json:"image_link"`
	SeekingTalent      bool           `json:"seeking_talent"`
	SeekingDescription string         `json:"seeking_description"`
	PastShows          []VenueShowDTO `json:"past_shows"`
	UpcomingShows      []VenueShowDTO `json:"upcoming_shows"`
	PastShowsCount     int            `json:"past_shows_count"`
	UpcomingShowsCount int            `json:"upcoming_shows_count"`
}

type GetVenueResponse struct {
	Message string         `json:"message"`
	Venue   VenueDetailDTO `json:"venue"`
}

type CreateVenueResponse struct {
	Message string         `json:"message"`
	Venue   VenueDetailDTO `json:"venue"`
}

type UpdateVenueResponse struct {
	Message string         `json:"message"`
	Venue   VenueDetailDTO `json:"venue"`
}

type DeleteVenueResponse struct {
	Message string `json:"message"`
}

// VenueEditFormDTO is the editable-fields view used to prefill the edit form
type VenueEditFormDTO struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	Genres             []string `json:"genres"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

type GetVenueEditFormResponse struct {
	Message string           `json:"message"`
	Venue   VenueEditFormDTO `json:"venue"`
}
