package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts a "HH:MM" or "HH:MM:SS" time-of-day into
// minutes since midnight. Seconds are accepted and discarded.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time of day: %q", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time of day: %q", s)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time of day: %q", s)
	}

	return h*60 + m, nil
}

// Clock formats minutes since midnight as "HH:MM:SS".
func Clock(min int) string {
	return fmt.Sprintf("%02d:%02d:00", min/60, min%60)
}
