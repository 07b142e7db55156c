package models

// Genre vocabulary used for form choices on venues and artists.
// Stored in the database as text[] via pq.StringArray.
const (
	GenreAlternative    = "Alternative"
	GenreBlues          = "Blues"
	GenreClassical      = "Classical"
	GenreCountry        = "Country"
	GenreElectronic     = "Electronic"
	GenreFolk           = "Folk"
	GenreFunk           = "Funk"
	GenreHipHop         = "Hip-Hop"
	GenreHeavyMetal     = "Heavy Metal"
	GenreInstrumental   = "Instrumental"
	GenreJazz           = "Jazz"
	GenreMusicalTheatre = "Musical Theatre"
	GenrePop            = "Pop"
	GenrePunk           = "Punk"
	GenreRnB            = "R&B"
	GenreReggae         = "Reggae"
	GenreRockNRoll      = "Rock n Roll"
	GenreSoul           = "Soul"
	GenreOther          = "Other"
)

// Genres lists every valid genre in display order
var Genres = []string{
	GenreAlternative,
	GenreBlues,
	GenreClassical,
	GenreCountry,
	GenreElectronic,
	GenreFolk,
	GenreFunk,
	GenreHipHop,
	GenreHeavyMetal,
	GenreInstrumental,
	GenreJazz,
	GenreMusicalTheatre,
	GenrePop,
	GenrePunk,
	GenreRnB,
	GenreReggae,
	GenreRockNRoll,
	GenreSoul,
	GenreOther,
}

var genreSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Genres))
	for _, g := range Genres {
		m[g] = struct{}{}
	}
	return m
}()

// IsValidGenre reports whether g belongs to the genre vocabulary
func IsValidGenre(g string) bool {
	_, ok := genreSet[g]
	return ok
}

// ValidGenres reports whether every element of gs belongs to the vocabulary
func ValidGenres(gs []string) bool {
	for _, g := range gs {
		if !IsValidGenre(g) {
			return false
		}
	}
	return true
}
