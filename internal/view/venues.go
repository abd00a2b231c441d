package view

import (
	"time"

	"github.com/okalik/bandstand/internal/model"
	"github.com/okalik/bandstand/internal/repository"
)

// VenueLine is one venue entry in an area group or a search result list.
type VenueLine struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueArea groups the venues sharing one (city, state) pair.
type VenueArea struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Venues []VenueLine `json:"venues"`
}

// VenueSearchResults is the payload of POST /venues/search.
type VenueSearchResults struct {
	Count int         `json:"count"`
	Data  []VenueLine `json:"data"`
}

// VenueShow is one show on the venue detail page, seen from the venue's side.
type VenueShow struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenuePage is the full venue detail payload with its shows split into past
// and upcoming.
type VenuePage struct {
	ID                 int64       `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	Address            string      `json:"address"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	WebsiteLink        string      `json:"website_link"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingTalent      bool        `json:"seeking_talent"`
	SeekingDescription string      `json:"seeking_description"`
	ImageLink          string      `json:"image_link"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// GroupVenuesByLocation partitions venues by their (city, state) pair. Groups
// are emitted in the order each distinct pair is first seen while scanning
// the input, and venues keep their relative order inside a group. Neither the
// groups nor their members are sorted alphabetically.
func GroupVenuesByLocation(venues []repository.VenueSummary) []VenueArea {
	type locKey struct{ city, state string }

	var order []locKey
	grouped := make(map[locKey][]VenueLine)
	for _, v := range venues {
		key := locKey{v.City, v.State}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], VenueLine{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: v.ShowCount,
		})
	}

	areas := make([]VenueArea, 0, len(order))
	for _, key := range order {
		areas = append(areas, VenueArea{
			City:   key.city,
			State:  key.state,
			Venues: grouped[key],
		})
	}
	return areas
}

// SearchVenues shapes venue search rows into the search response.
func SearchVenues(venues []repository.VenueSummary) VenueSearchResults {
	data := make([]VenueLine, 0, len(venues))
	for _, v := range venues {
		data = append(data, VenueLine{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: v.ShowCount,
		})
	}
	return VenueSearchResults{Count: len(data), Data: data}
}

// VenueDetail assembles the venue page, splitting the venue's shows against
// now. A show starting exactly at now counts as past.
func VenueDetail(v *model.Venue, shows []repository.ArtistAppearance, now time.Time) VenuePage {
	page := VenuePage{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             v.Genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		WebsiteLink:        v.WebsiteLink,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          []VenueShow{},
		UpcomingShows:      []VenueShow{},
	}
	for _, s := range shows {
		entry := VenueShow{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       Stamp(s.StartTime),
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
