package storage

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date column format. All entity dates are
// day-granular; no timestamps are stored.
const DateLayout = "2006-01-02"

// FormatDate renders a calendar date for storage.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a stored calendar date.
// POST: Returns the date at midnight UTC, or an error for malformed input
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse stored date %q: %w", value, err)
	}
	return t, nil
}
