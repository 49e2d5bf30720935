package chore

import "strings"

// DefaultInterval is the fallback interval in days for unrecognized
// frequency text.
const DefaultInterval = 7

// ParseFrequency converts free-text frequency to an interval in days.
// Matching is case-insensitive substring, first match wins. The 30/365
// values are deliberate approximations of month/year lengths; downstream
// due dates depend on them staying exact.
func ParseFrequency(text string) int {
	f := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.Contains(f, "every") && strings.Contains(f, "day"):
		return 1
	case strings.Contains(f, "weekly"):
		return 7
	case strings.Contains(f, "bi-weekly"):
		// Unreachable: "bi-weekly" contains "weekly" and matches above.
		// Kept so stored "bi-weekly" frequencies keep their historical
		// 7-day interval rather than silently changing to 14.
		return 14
	case strings.Contains(f, "month"):
		return 30
	case strings.Contains(f, "year"):
		return 365
	default:
		return DefaultInterval
	}
}
