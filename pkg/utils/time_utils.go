// utils/timeutil.go
package utils

import (
	"fmt"
	"time"
)

const (
	ClockLayout = "15:04:05"
	DateLayout  = "2006-01-02"
)

// FormatTimeForDisplay renders a "HH:MM:SS" clock value the way the
// schedule grid shows it, e.g. "13:05:00" -> "1:05 PM".
func FormatTimeForDisplay(clock string) string {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		// fall back to the raw value rather than hiding the slot
		return clock
	}
	return t.Format("3:04 PM")
}

// ParseClock validates and normalizes a clock string. "9:00" and
// "09:00" both come back as "09:00:00".
func ParseClock(clock string) (string, error) {
	for _, layout := range []string{ClockLayout, "15:04", "3:04"} {
		if t, err := time.Parse(layout, clock); err == nil {
			return t.Format(ClockLayout), nil
		}
	}
	return "", fmt.Errorf("invalid clock value %q", clock)
}

// ParseDate parses a date-only value in the API's wire format.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// Today truncates now to midnight UTC so date-only comparisons
// (upcoming vs past retreats) ignore the time of day.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
