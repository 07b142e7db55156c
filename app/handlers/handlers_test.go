package handlers

import (
	"testing"
	"time"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/app/dto"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() *validator.Validate {
	v := validator.New()
	registerDirectoryValidations(v)
	return v
}

func validVenueRequest() dto.CreateVenueRequest {
	return dto.CreateVenueRequest{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
		Genres:  []string{"Jazz", "Reggae"},
	}
}

func TestVenueRequestValidation(t *testing.T) {
	v := newTestValidator()

	t.Run("ValidRequest", func(t *testing.T) {
		req := validVenueRequest()
		assert.NoError(t, v.Struct(&req))
	})

	t.Run("MissingName", func(t *testing.T) {
		req := validVenueRequest()
		req.Name = ""
		assert.Error(t, v.Struct(&req))
	})

	t.Run("BadPhone", func(t *testing.T) {
		req := validVenueRequest()
		req.Phone = "abc"
		err := v.Struct(&req)
		require.Error(t, err)

		fieldErrs, ok := err.(validator.ValidationErrors)
		require.True(t, ok)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "phone_format", fieldErrs[0].Tag())
		assert.Equal(t, "Phone number must be in format 123-456-7890", getValidationErrorMessage(fieldErrs[0]))
	})

	t.Run("PhoneFormats", func(t *testing.T) {
		valid := []string{"123-456-7890", "(123) 456-7890", "123.456.7890", "1234567890"}
		for _, phone := range valid {
			req := validVenueRequest()
			req.Phone = phone
			assert.NoError(t, v.Struct(&req), phone)
		}

		invalid := []string{"12-456-7890", "123-456-789", "phone", "+1 123 456 7890"}
		for _, phone := range invalid {
			req := validVenueRequest()
			req.Phone = phone
			assert.Error(t, v.Struct(&req), phone)
		}
	})

	t.Run("EmptyPhoneAllowed", func(t *testing.T) {
		req := validVenueRequest()
		req.Phone = ""
		assert.NoError(t, v.Struct(&req))
	})

	t.Run("UnknownGenre", func(t *testing.T) {
		req := validVenueRequest()
		req.Genres = []string{"Jazz", "Shoegaze"}
		err := v.Struct(&req)
		require.Error(t, err)

		fieldErrs := err.(validator.ValidationErrors)
		assert.Equal(t, "genre", fieldErrs[0].Tag())
	})

	t.Run("EmptyGenres", func(t *testing.T) {
		req := validVenueRequest()
		req.Genres = nil
		assert.Error(t, v.Struct(&req))
	})

	t.Run("UnknownState", func(t *testing.T) {
		req := validVenueRequest()
		req.State = "XX"
		err := v.Struct(&req)
		require.Error(t, err)

		fieldErrs := err.(validator.ValidationErrors)
		assert.Equal(t, "us_state", fieldErrs[0].Tag())
	})

	t.Run("BadFacebookLink", func(t *testing.T) {
		req := validVenueRequest()
		req.FacebookLink = "not a url"
		assert.Error(t, v.Struct(&req))
	})
}

func TestArtistRequestValidation(t *testing.T) {
	v := newTestValidator()

	req := dto.CreateArtistRequest{
		Name:   "Guns N Petals",
		City:   "San Francisco",
		State:  "CA",
		Phone:  "326-123-5000",
		Genres: []string{"Rock n Roll"},
	}
	assert.NoError(t, v.Struct(&req))

	req.State = "California"
	assert.Error(t, v.Struct(&req))
}

func TestShowRequestValidation(t *testing.T) {
	v := newTestValidator()

	req := dto.CreateShowRequest{
		VenueID:   1,
		ArtistID:  2,
		StartTime: time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC),
	}
	assert.NoError(t, v.Struct(&req))

	req.VenueID = 0
	assert.Error(t, v.Struct(&req))

	req.VenueID = 1
	req.StartTime = time.Time{}
	assert.Error(t, v.Struct(&req))
}
