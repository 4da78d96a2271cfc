package validators

import (
	"testing"
	"time"
)

// TestFormatUTCTimestamp tests timestamp formatting
func TestFormatUTCTimestamp(t *testing.T) {
	// Create a specific time in a non-UTC zone
	loc := time.FixedZone("UTC+2", 2*60*60)
	testTime := time.Date(2025, 11, 10, 16, 30, 0, 0, loc)

	got := FormatUTCTimestamp(testTime)
	want := "2025-11-10T14:30:00Z"

	if got != want {
		t.Errorf("FormatUTCTimestamp() = %q, want %q", got, want)
	}
}

// TestEpochSeconds tests conversion to fractional Unix seconds
func TestEpochSeconds(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{"epoch", time.Unix(0, 0), 0},
		{"whole seconds", time.Unix(1700000000, 0), 1700000000},
		{"half second", time.Unix(1700000000, 500_000_000), 1700000000.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EpochSeconds(tt.t); got != tt.want {
				t.Errorf("EpochSeconds() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestIsRecent tests the recency window check
func TestIsRecent(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"now", now, true},
		{"slightly past", now.Add(-time.Second), true},
		{"slightly future", now.Add(time.Second), true},
		{"an hour ago", now.Add(-time.Hour), false},
		{"an hour ahead", now.Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRecent(tt.t, 5*time.Second); got != tt.want {
				t.Errorf("IsRecent() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestFromEpochSeconds tests the round trip through fractional seconds
func TestFromEpochSeconds(t *testing.T) {
	want := time.Unix(1700000000, 500_000_000)
	got := FromEpochSeconds(EpochSeconds(want))
	if d := got.Sub(want); d > time.Microsecond || d < -time.Microsecond {
		t.Errorf("FromEpochSeconds(EpochSeconds(%v)) = %v", want, got)
	}
}
