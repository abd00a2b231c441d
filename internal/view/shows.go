package view

import "github.com/okalik/bandstand/internal/repository"

// ShowLine is one entry in the shows index.
type ShowLine struct {
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ListShows shapes the shows index.
func ListShows(shows []repository.ShowListing) []ShowLine {
	out := make([]ShowLine, 0, len(shows))
	for _, s := range shows {
		out = append(out, ShowLine{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       Stamp(s.StartTime),
		})
	}
	return out
}
