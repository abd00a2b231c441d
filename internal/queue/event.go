// Package queue defines message payloads exchanged over the message broker.
package queue

// ListingCreatedEvent is published when a venue or artist is successfully
// listed. Kind is "venue" or "artist". It carries enough for downstream
// consumers to notify or index without querying the primary database.
type ListingCreatedEvent struct {
	Kind  string `json:"kind"`
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

// ShowScheduledEvent is published when a show is successfully scheduled.
type ShowScheduledEvent struct {
	ShowID    int64  `json:"show_id"`
	VenueID   int64  `json:"venue_id"`
	ArtistID  int64  `json:"artist_id"`
	StartTime string `json:"start_time"`
}
