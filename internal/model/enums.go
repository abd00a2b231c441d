package model

import "strings"

// StateCodes is the closed set of region codes a listing may use. Form
// validation rejects anything outside this list.
var StateCodes = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

// GenreTags is the closed set of genre tags. None of the values may contain
// a comma because genre sets are persisted as comma-joined text.
var GenreTags = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic",
	"Folk", "Funk", "Hip-Hop", "Heavy Metal", "Instrumental",
	"Jazz", "Musical Theatre", "Pop", "Punk", "R&B", "Reggae",
	"Rock n Roll", "Soul", "Other",
}

var (
	stateSet = toSet(StateCodes)
	genreSet = toSet(GenreTags)
)

func toSet(vals []string) map[string]struct{} {
	s := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// ValidState reports whether code is a member of StateCodes.
func ValidState(code string) bool {
	_, ok := stateSet[code]
	return ok
}

// ValidGenre reports whether tag is a member of GenreTags.
func ValidGenre(tag string) bool {
	_, ok := genreSet[tag]
	return ok
}

// Genres is a set of genre tags. It is stored in the database as a single
// comma-joined string column.
type Genres []string

// JoinGenres encodes a genre set for storage.
func JoinGenres(g Genres) string {
	return strings.Join(g, ",")
}

// SplitGenres decodes a stored genre column back into a set. An empty column
// yields an empty set rather than a one-element set holding "".
func SplitGenres(s string) Genres {
	if s == "" {
		return Genres{}
	}
	return Genres(strings.Split(s, ","))
}
