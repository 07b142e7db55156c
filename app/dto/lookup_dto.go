package dto

// ListGenresResponse returns the canonical genre vocabulary
type ListGenresResponse struct {
	Message string   `json:"message"`
	Genres  []string `json:"genres"`
}

// ListStatesResponse returns the accepted US state and territory codes
type ListStatesResponse struct {
	Message string   `json:"message"`
	States  []string `json:"states"`
}
