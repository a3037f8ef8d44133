package vast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		expected int
	}{
		{"empty", "", 0},
		{"30 seconds", "00:00:30", 30},
		{"1 minute 30 seconds", "00:01:30", 90},
		{"1 hour", "01:00:00", 3600},
		{"with milliseconds", "00:00:15.250", 15},
		{"missing parts", "01:30", 0},
		{"garbage", "abc", 0},
		{"negative part", "00:-1:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDuration(tt.duration))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected string
	}{
		{"zero", 0, "00:00:00"},
		{"negative", -5, "00:00:00"},
		{"30 seconds", 30, "00:00:30"},
		{"1 minute 30 seconds", 90, "00:01:30"},
		{"1 hour 30 minutes 45 seconds", 5445, "01:30:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.seconds))
		})
	}
}

func TestDurationRoundTrip(t *testing.T) {
	for _, seconds := range []int{0, 1, 59, 60, 3599, 3600, 5445} {
		assert.Equal(t, seconds, ParseDuration(FormatDuration(seconds)))
	}
}
