// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/teaser/pkg/constants"
)

const (
	// DateLayout is the short en-US date rendering.
	DateLayout = constants.DateLayout

	// TimeLayout is the 24 hour time rendering.
	TimeLayout = constants.TimeLayout
)

// isoLayouts are tried in order. Layouts without a zone are read as UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
}

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseISO parses an ISO-8601 date or date-time string and returns it in UTC.
func ParseISO(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q", value)
}

// FormatUTC renders t in UTC as an en-US short date, followed by the 24 hour
// time when withTime is set.
func FormatUTC(t time.Time, withTime bool) string {
	t = t.UTC()
	if !withTime {
		return t.Format(DateLayout)
	}
	return t.Format(DateLayout) + " " + t.Format(TimeLayout)
}

// DaysUntil returns the number of whole days from now until t, rounding up
// partial days. Past dates return a negative or zero count.
func DaysUntil(now, t time.Time) int {
	d := t.Sub(now)
	days := int(d / (24 * time.Hour))
	if d > 0 && d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
