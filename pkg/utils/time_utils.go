package utils

import (
	"fmt"
	"time"
)

// TimeOfDay buckets an hour of day into the coarse labels used by behavior
// tracking and itinerary hints.
func TimeOfDay(t time.Time) string {
	hour := t.Hour()
	switch {
	case hour < 6:
		return "night"
	case hour < 12:
		return "morning"
	case hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

// FormatDuration renders a minute count as the display string shown on
// itinerary cards, e.g. "45 min" or "2h 30m".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
