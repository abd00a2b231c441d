package model

// Artist represents a performer listed in the directory. It corresponds to a
// row in the `artists` table. An artist owns zero or more shows.
type Artist struct {
	ID                 int64  // artists.id
	Name               string // artists.name
	City               string // artists.city
	State              string // artists.state
	Phone              string // artists.phone (optional)
	Genres             Genres // artists.genres, comma-joined in storage
	ImageLink          string // artists.image_link (optional URL)
	FacebookLink       string // artists.facebook_link (optional URL)
	WebsiteLink        string // artists.website_link (optional URL)
	SeekingVenue       bool   // artists.seeking_venue
	SeekingDescription string // artists.seeking_description (optional)
}
