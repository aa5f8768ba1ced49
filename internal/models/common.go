package models

import "time"

// TimeLayout is the layout every *_date column is stored with. Dates
// live in the store as text; parsing for display must never fail hard
// (see ParseStoredTime).
const TimeLayout = "2006-01-02 15:04:05"

// Now returns the current time formatted for storage.
func Now() string {
	return time.Now().Format(TimeLayout)
}

// ParseStoredTime parses a stored date string. Malformed or empty
// values yield the current time so rendering never aborts on bad data.
func ParseStoredTime(s string) time.Time {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Now()
	}
	return t
}
