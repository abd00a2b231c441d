package view

import (
	"time"

	"github.com/okalik/bandstand/internal/model"
	"github.com/okalik/bandstand/internal/repository"
)

// ArtistLine is one artist entry in the artists index.
type ArtistLine struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArtistResult is one artist entry in a search result list.
type ArtistResult struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// ArtistSearchResults is the payload of POST /artists/search.
type ArtistSearchResults struct {
	Count int            `json:"count"`
	Data  []ArtistResult `json:"data"`
}

// ArtistShow is one show on the artist detail page, seen from the artist's
// side.
type ArtistShow struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ArtistPage is the full artist detail payload with its shows split into past
// and upcoming.
type ArtistPage struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              string       `json:"phone"`
	WebsiteLink        string       `json:"website_link"`
	FacebookLink       string       `json:"facebook_link"`
	SeekingVenue       bool         `json:"seeking_venue"`
	SeekingDescription string       `json:"seeking_description"`
	ImageLink          string       `json:"image_link"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// ListArtists shapes the artists index.
func ListArtists(artists []repository.ArtistSummary) []ArtistLine {
	out := make([]ArtistLine, 0, len(artists))
	for _, a := range artists {
		out = append(out, ArtistLine{ID: a.ID, Name: a.Name})
	}
	return out
}

// SearchArtists shapes artist search rows into the search response.
func SearchArtists(artists []repository.ArtistSummary) ArtistSearchResults {
	data := make([]ArtistResult, 0, len(artists))
	for _, a := range artists {
		data = append(data, ArtistResult{
			ID:               a.ID,
			Name:             a.Name,
			NumUpcomingShows: a.UpcomingCount,
		})
	}
	return ArtistSearchResults{Count: len(data), Data: data}
}

// ArtistDetail assembles the artist page, splitting the artist's shows
// against now. A show starting exactly at now counts as past.
func ArtistDetail(a *model.Artist, shows []repository.VenueAppearance, now time.Time) ArtistPage {
	page := ArtistPage{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             a.Genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		WebsiteLink:        a.WebsiteLink,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          []ArtistShow{},
		UpcomingShows:      []ArtistShow{},
	}
	for _, s := range shows {
		entry := ArtistShow{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      Stamp(s.StartTime),
		}
		if s.StartTime.After(now) {
			page.UpcomingShows = append(page.UpcomingShows, entry)
		} else {
			page.PastShows = append(page.PastShows, entry)
		}
	}
	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)
	return page
}
