package form

import (
	"net/url"

	"github.com/okalik/bandstand/internal/model"
)

// ArtistForm carries the raw fields of an artist create/edit submission. It
// mirrors VenueForm minus the street address.
type ArtistForm struct {
	Name               string   `validate:"required"`
	City               string   `validate:"required"`
	State              string   `validate:"required,us_state"`
	Phone              string   `validate:"omitempty,phone"`
	Genres             []string `validate:"required,min=1,dive,genre"`
	ImageLink          string   `validate:"omitempty,url"`
	FacebookLink       string   `validate:"omitempty,url"`
	WebsiteLink        string   `validate:"omitempty,url"`
	SeekingVenue       bool
	SeekingDescription string
}

// ParseArtistForm reads a posted form body into an ArtistForm.
func ParseArtistForm(values url.Values) ArtistForm {
	return ArtistForm{
		Name:               values.Get("name"),
		City:               values.Get("city"),
		State:              values.Get("state"),
		Phone:              values.Get("phone"),
		Genres:             values["genres"],
		ImageLink:          values.Get("image_link"),
		FacebookLink:       values.Get("facebook_link"),
		WebsiteLink:        values.Get("website_link"),
		SeekingVenue:       checkbox(values, "seeking_venue"),
		SeekingDescription: values.Get("seeking_description"),
	}
}

// Validate applies every field rule and, on success, maps the form into an
// Artist ready for persistence.
func (f ArtistForm) Validate() (model.Artist, Errors) {
	if errs := checkStruct(f); errs != nil {
		return model.Artist{}, errs
	}
	return model.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             model.Genres(f.Genres),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}, nil
}
