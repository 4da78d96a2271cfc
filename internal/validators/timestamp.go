package validators

import (
	"time"
)

// ISO8601 format with Z suffix
const ISO8601UTC = "2006-01-02T15:04:05Z"

// FormatUTCTimestamp formats time.Time to UTC ISO 8601 string
// Always returns format: 2025-11-10T14:30:00Z
func FormatUTCTimestamp(t time.Time) string {
	return t.UTC().Format(ISO8601UTC)
}

// EpochSeconds returns t as fractional seconds since the Unix epoch.
func EpochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// IsRecent reports whether t lies within window of now, in either direction.
func IsRecent(t time.Time, window time.Duration) bool {
	d := time.Since(t)
	if d < 0 {
		d = -d
	}
	return d <= window
}

// FromEpochSeconds is the inverse of EpochSeconds
func FromEpochSeconds(s float64) time.Time {
	return time.Unix(0, int64(s*float64(time.Second)))
}
