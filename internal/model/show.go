package model

import "time"

// Show is the join record expressing "this artist performs at this venue at
// this time". Whether a show is past or upcoming is computed against the
// clock at read time, never stored.
//
// StartTime is persisted as a naive timestamp and treated as UTC everywhere.
type Show struct {
	ID        int64     // shows.id
	VenueID   int64     // shows.venue_id, references venues.id
	ArtistID  int64     // shows.artist_id, references artists.id
	StartTime time.Time // shows.start_time
}
