package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// The global logger is used because this runs while config is loading
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// DaysBetween returns the whole days from a to b, rounded to the nearest day
func DaysBetween(a, b time.Time) int {
	hours := b.Sub(a).Hours()
	if hours >= 0 {
		return int(hours/24 + 0.5)
	}
	return -int(-hours/24 + 0.5)
}

// StartOfDay truncates t to midnight UTC
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
