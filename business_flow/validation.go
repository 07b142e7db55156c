package businessflow

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/app/dto"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/models"
)

// phonePattern accepts 123-456-7890, (123) 456-7890, 123.456.7890 and 1234567890
var phonePattern = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)

// ValidationError reports field-level problems with a submission.
// Handlers map it to a 400 with the per-field messages.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// AsValidationError unwraps err to a ValidationError when one is present
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}

// validateVenueSubmission is the authoritative check on venue writes,
// independent of which entry point produced the request
func validateVenueSubmission(req *dto.CreateVenueRequest) error {
	ve := &ValidationError{}

	if strings.TrimSpace(req.Name) == "" {
		ve.add("name", "Name is required")
	}
	if strings.TrimSpace(req.City) == "" {
		ve.add("city", "City is required")
	}
	if strings.TrimSpace(req.Address) == "" {
		ve.add("address", "Address is required")
	}
	validateState(ve, req.State)
	validatePhone(ve, req.Phone)
	validateGenres(ve, req.Genres)

	return ve.orNil()
}

// validateArtistSubmission is the artist counterpart of validateVenueSubmission
func validateArtistSubmission(req *dto.CreateArtistRequest) error {
	ve := &ValidationError{}

	if strings.TrimSpace(req.Name) == "" {
		ve.add("name", "Name is required")
	}
	if strings.TrimSpace(req.City) == "" {
		ve.add("city", "City is required")
	}
	validateState(ve, req.State)
	validatePhone(ve, req.Phone)
	validateGenres(ve, req.Genres)

	return ve.orNil()
}

func validateState(ve *ValidationError, state string) {
	if state == "" {
		ve.add("state", "State is required")
		return
	}
	if !models.IsValidState(state) {
		ve.add("state", fmt.Sprintf("State %q is not a valid US state code", state))
	}
}

func validatePhone(ve *ValidationError, phone string) {
	if phone != "" && !phonePattern.MatchString(phone) {
		ve.add("phone", "Phone number must be in format 123-456-7890")
	}
}

func validateGenres(ve *ValidationError, genres []string) {
	if len(genres) == 0 {
		ve.add("genres", "At least one genre is required")
		return
	}
	for _, genre := range genres {
		if !models.IsValidGenre(genre) {
			ve.add("genres", fmt.Sprintf("Genre %q is not a recognized genre", genre))
		}
	}
}
