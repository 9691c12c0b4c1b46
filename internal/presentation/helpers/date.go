package helpers

import (
	"fmt"
	"strings"
	"time"
)

// layouts without an offset are read in the caller's location
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

const dateLayout = "2006-01-02"

// ParseExpenseDate accepts a calendar date or a timestamp. A bare date, or an empty value
// (today), becomes midnight in now's location, which is the configured reporting zone.
func ParseExpenseDate(value string, now time.Time) (time.Time, error) {
	loc := now.Location()
	value = strings.TrimSpace(value)
	if value == "" {
		year, month, day := now.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
	}

	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", value)
}
