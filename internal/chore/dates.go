package chore

import "time"

// ParseDate parses a stored YYYY-MM-DD date into a UTC midnight time.
// It is best-effort: callers drop entries whose dates fail to parse rather
// than treating that as an error.
func ParseDate(s string) (time.Time, bool) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// DateOf reduces t to its calendar date, normalized to UTC midnight so it
// is directly comparable with parsed log dates. The calendar date is taken
// from t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole number of days from a to b. Both arguments
// must be UTC-midnight dates; the result is negative when b precedes a.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
