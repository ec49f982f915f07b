package repository

import (
	"fmt"
	"time"
)

// ParseTime parses a stored date string in "2006-01-02" or RFC3339 format
// and normalizes it to UTC. SQLite stores both event dates (date-only) and
// record timestamps (RFC3339) as TEXT.
func ParseTime(str string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", str)
	if err == nil {
		return t.UTC(), nil
	}

	t, err = time.Parse(time.RFC3339, str)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
	}
	return t.UTC(), nil
}
