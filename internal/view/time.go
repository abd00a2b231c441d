// Package view builds the presentation data the directory pages consume. All
// functions here are pure transformations over rows already loaded by the
// repositories; the clock is always passed in by the caller.
package view

import "time"

// stampLayout renders a start time the way the pages expect it:
// millisecond-truncated ISO-8601 with a literal Z suffix. Stored times are
// naive and treated as UTC, so the value is formatted as-is.
const stampLayout = "2006-01-02T15:04:05.000Z"

// Stamp formats a show start time for external consumption.
func Stamp(t time.Time) string {
	return t.Format(stampLayout)
}
