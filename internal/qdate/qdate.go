// Package qdate converts between Quicken's native timestamp representation
// and ISO-8601 date strings. Quicken stores times as seconds since the
// Core Data epoch (2001-01-01 UTC), 978307200 seconds after the Unix epoch.
package qdate

import (
	"fmt"
	"time"
)

// epochOffset is the number of seconds between the Unix epoch (1970)
// and the Core Data epoch (2001) used by Quicken.
const epochOffset = 978307200

// Layout is the canonical date format used throughout the application.
// Fixed-width and zero-padded, so lexicographic order equals chronological order.
const Layout = "2006-01-02"

// Decode converts a Quicken timestamp to a YYYY-MM-DD string in UTC.
func Decode(qsec int64) string {
	return time.Unix(qsec+epochOffset, 0).UTC().Format(Layout)
}

// Encode converts a YYYY-MM-DD string to a Quicken timestamp (midnight UTC).
func Encode(date string) (int64, error) {
	t, err := time.ParseInLocation(Layout, date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", date, err)
	}
	return t.Unix() - epochOffset, nil
}

// Valid reports whether date is a well-formed YYYY-MM-DD string.
func Valid(date string) bool {
	_, err := time.ParseInLocation(Layout, date, time.UTC)
	return err == nil
}

// Today returns the current date in canonical format (UTC).
func Today() string {
	return time.Now().UTC().Format(Layout)
}
