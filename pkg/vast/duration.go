package vast

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDuration converts a VAST duration ("HH:MM:SS" or "HH:MM:SS.mmm")
// to whole seconds. Returns 0 for anything it cannot parse, which matches
// how players treat unusable durations.
func ParseDuration(duration string) int {
	if duration == "" {
		return 0
	}

	// Strip milliseconds.
	if idx := strings.Index(duration, "."); idx != -1 {
		duration = duration[:idx]
	}

	parts := strings.Split(duration, ":")
	if len(parts) != 3 {
		return 0
	}

	var total int
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}

// FormatDuration renders whole seconds as "HH:MM:SS". Negative input
// clamps to zero.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
