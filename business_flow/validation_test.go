package businessflow

import (
	"context"
	"testing"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVenueSubmission() dto.CreateVenueRequest {
	return dto.CreateVenueRequest{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
		Genres:  []string{"Jazz", "Reggae"},
	}
}

func TestValidateVenueSubmission(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		req := validVenueSubmission()
		assert.NoError(t, validateVenueSubmission(&req))
	})

	t.Run("BadPhone", func(t *testing.T) {
		req := validVenueSubmission()
		req.Phone = "abc"

		err := validateVenueSubmission(&req)
		require.Error(t, err)

		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "phone")
	})

	t.Run("EmptyPhoneAllowed", func(t *testing.T) {
		req := validVenueSubmission()
		req.Phone = ""
		assert.NoError(t, validateVenueSubmission(&req))
	})

	t.Run("UnknownState", func(t *testing.T) {
		req := validVenueSubmission()
		req.State = "XX"

		ve, ok := AsValidationError(validateVenueSubmission(&req))
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "state")
	})

	t.Run("UnknownGenre", func(t *testing.T) {
		req := validVenueSubmission()
		req.Genres = []string{"Jazz", "Shoegaze"}

		ve, ok := AsValidationError(validateVenueSubmission(&req))
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "genres")
	})

	t.Run("CollectsEveryProblem", func(t *testing.T) {
		req := dto.CreateVenueRequest{}

		ve, ok := AsValidationError(validateVenueSubmission(&req))
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "name")
		assert.Contains(t, ve.Fields, "city")
		assert.Contains(t, ve.Fields, "address")
		assert.Contains(t, ve.Fields, "state")
		assert.Contains(t, ve.Fields, "genres")
	})
}

func TestValidateArtistSubmission(t *testing.T) {
	req := dto.CreateArtistRequest{
		Name:   "Guns N Petals",
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Rock n Roll"},
	}
	assert.NoError(t, validateArtistSubmission(&req))

	req.Phone = "12-34"
	ve, ok := AsValidationError(validateArtistSubmission(&req))
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "phone")
}

// An invalid submission must be rejected before any repository call,
// so a flow with no wired repositories still fails cleanly.
func TestUpdateVenueFlowRejectsBadSubmission(t *testing.T) {
	flow := NewVenueFlow(nil, nil, nil)

	req := &dto.UpdateVenueRequest{
		ID:                 1,
		CreateVenueRequest: validVenueSubmission(),
	}
	req.Phone = "abc"

	_, err := flow.UpdateVenue(context.Background(), req, NewClientMetadata("127.0.0.1", "test"))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
