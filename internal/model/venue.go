package model

// Venue represents a place that hosts live shows. It corresponds to a row in
// the `venues` table. A venue owns zero or more shows.
//
// Genres holds the decoded genre set; the repository layer joins and splits
// the comma-separated column on the way in and out.
type Venue struct {
	ID                 int64  // venues.id
	Name               string // venues.name
	City               string // venues.city
	State              string // venues.state
	Address            string // venues.address
	Phone              string // venues.phone (optional)
	Genres             Genres // venues.genres, comma-joined in storage
	ImageLink          string // venues.image_link (optional URL)
	FacebookLink       string // venues.facebook_link (optional URL)
	WebsiteLink        string // venues.website_link (optional URL)
	SeekingTalent      bool   // venues.seeking_talent
	SeekingDescription string // venues.seeking_description (optional)
}
