package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreVocabulary(t *testing.T) {
	assert.Len(t, Genres, 19)

	assert.True(t, IsValidGenre(GenreJazz))
	assert.True(t, IsValidGenre("Rock n Roll"))
	assert.True(t, IsValidGenre("R&B"))
	assert.True(t, IsValidGenre("Other"))

	assert.False(t, IsValidGenre("jazz"))
	assert.False(t, IsValidGenre("Polka"))
	assert.False(t, IsValidGenre(""))

	assert.True(t, ValidGenres([]string{GenreBlues, GenreSoul}))
	assert.True(t, ValidGenres(nil))
	assert.False(t, ValidGenres([]string{GenreBlues, "Shoegaze"}))
}

func TestStateVocabulary(t *testing.T) {
	assert.Len(t, States, 51)

	assert.True(t, IsValidState("CA"))
	assert.True(t, IsValidState("NY"))
	assert.True(t, IsValidState("DC"))

	assert.False(t, IsValidState("ca"))
	assert.False(t, IsValidState("XX"))
	assert.False(t, IsValidState(""))
}

func TestShowIsUpcoming(t *testing.T) {
	ref := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)

	before := Show{StartTime: ref.Add(-time.Second)}
	exact := Show{StartTime: ref}
	after := Show{StartTime: ref.Add(time.Second)}

	assert.False(t, before.IsUpcoming(ref))
	assert.True(t, exact.IsUpcoming(ref))
	assert.True(t, after.IsUpcoming(ref))
}

func TestVenueBeforeCreate(t *testing.T) {
	venue := &Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street"}

	require.NoError(t, venue.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, venue.UUID)
	assert.False(t, venue.CreatedAt.IsZero())
	assert.NotNil(t, venue.Genres)
}

func TestArtistBeforeCreate(t *testing.T) {
	artist := &Artist{Name: "Guns N Petals", City: "San Francisco", State: "CA"}

	require.NoError(t, artist.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, artist.UUID)
	assert.False(t, artist.CreatedAt.IsZero())
	assert.NotNil(t, artist.Genres)
}

func TestShowBeforeCreateNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	local := time.Date(2026, 5, 21, 21, 30, 0, 0, loc)

	show := &Show{VenueID: 1, ArtistID: 1, StartTime: local}
	require.NoError(t, show.BeforeCreate(nil))

	assert.Equal(t, time.UTC, show.StartTime.Location())
	assert.True(t, show.StartTime.Equal(local))
}
