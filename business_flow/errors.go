// Package businessflow contains the core business logic and use cases for the booking directory
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Venue-related errors
	ErrVenueNotFound = errors.New("venue not found")

	// Artist-related errors
	ErrArtistNotFound = errors.New("artist not found")

	// Show-related errors
	ErrShowNotFound      = errors.New("show not found")
	ErrShowVenueMissing  = errors.New("show references a venue that does not exist")
	ErrShowArtistMissing = errors.New("show references an artist that does not exist")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsVenueNotFound(err error) bool {
	return errors.Is(err, ErrVenueNotFound)
}

func IsArtistNotFound(err error) bool {
	return errors.Is(err, ErrArtistNotFound)
}

func IsShowNotFound(err error) bool {
	return errors.Is(err, ErrShowNotFound)
}

func IsShowVenueMissing(err error) bool {
	return errors.Is(err, ErrShowVenueMissing)
}

func IsShowArtistMissing(err error) bool {
	return errors.Is(err, ErrShowArtistMissing)
}
