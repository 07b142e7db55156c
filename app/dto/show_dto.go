package dto

import "time"

// CreateShowRequest books an artist at a venue for a start time.
// Both referenced records must already exist.
type CreateShowRequest struct {
	VenueID   uint      `json:"venue_id" validate:"required,min=1"`
	ArtistID  uint      `json:"artist_id" validate:"required,min=1"`
	StartTime time.Time `json:"start_time" validate:"required"`
}

// ShowDTO is the denormalized listing row joining both sides of a booking
type ShowDTO struct {
	ID              uint   `json:"id"`
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

type ListShowsResponse struct {
	Message string    `json:"message"`
	Shows   []ShowDTO `json:"shows"`
}

type CreateShowResponse struct {
	Message string  `json:"message"`
	Show    ShowDTO `json:"show"`
}
