package form

import (
	"net/url"

	"github.com/okalik/bandstand/internal/model"
)

// VenueForm carries the raw fields of a venue create/edit submission.
type VenueForm struct {
	Name               string   `validate:"required"`
	City               string   `validate:"required"`
	State              string   `validate:"required,us_state"`
	Address            string   `validate:"required"`
	Phone              string   `validate:"omitempty,phone"`
	Genres             []string `validate:"required,min=1,dive,genre"`
	ImageLink          string   `validate:"omitempty,url"`
	FacebookLink       string   `validate:"omitempty,url"`
	WebsiteLink        string   `validate:"omitempty,url"`
	SeekingTalent      bool
	SeekingDescription string
}

// ParseVenueForm reads a posted form body into a VenueForm. Multi-select
// fields keep every submitted value; checkboxes default to false.
func ParseVenueForm(values url.Values) VenueForm {
	return VenueForm{
		Name:               values.Get("name"),
		City:               values.Get("city"),
		State:              values.Get("state"),
		Address:            values.Get("address"),
		Phone:              values.Get("phone"),
		Genres:             values["genres"],
		ImageLink:          values.Get("image_link"),
		FacebookLink:       values.Get("facebook_link"),
		WebsiteLink:        values.Get("website_link"),
		SeekingTalent:      checkbox(values, "seeking_talent"),
		SeekingDescription: values.Get("seeking_description"),
	}
}

// Validate applies every field rule and, on success, maps the form into a
// Venue ready for persistence. On failure the returned Errors lists each
// offending field; no partial result is produced.
func (f VenueForm) Validate() (model.Venue, Errors) {
	if errs := checkStruct(f); errs != nil {
		return model.Venue{}, errs
	}
	return model.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             model.Genres(f.Genres),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}, nil
}
