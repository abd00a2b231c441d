package form

import (
	"net/url"
	"strconv"
	"time"

	"github.com/okalik/bandstand/internal/model"
)

// startTimeLayouts are the accepted wire formats for a show's start time.
// Values are parsed as naive timestamps and treated as UTC.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ShowForm carries the raw fields of a show create submission. IDs arrive as
// strings from the form and are only converted after validation passes.
type ShowForm struct {
	VenueID   string `validate:"required,number"`
	ArtistID  string `validate:"required,number"`
	StartTime string `validate:"required"`
}

// ParseShowForm reads a posted form body into a ShowForm.
func ParseShowForm(values url.Values) ShowForm {
	return ShowForm{
		VenueID:   values.Get("venue_id"),
		ArtistID:  values.Get("artist_id"),
		StartTime: values.Get("start_time"),
	}
}

// Validate checks the field rules and parses the typed values. The start time
// must match one of the accepted layouts; there is no future-only constraint.
func (f ShowForm) Validate() (model.Show, Errors) {
	errs := checkStruct(f)

	var show model.Show
	if f.StartTime != "" {
		t, ok := parseStartTime(f.StartTime)
		if !ok {
			errs = append(errs, FieldError{Field: "StartTime", Rule: "datetime"})
		}
		show.StartTime = t
	}
	if errs != nil {
		return model.Show{}, errs
	}

	// number rule already passed, so these conversions cannot fail
	show.VenueID, _ = strconv.ParseInt(f.VenueID, 10, 64)
	show.ArtistID, _ = strconv.ParseInt(f.ArtistID, 10, 64)
	return show, nil
}

func parseStartTime(s string) (time.Time, bool) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
