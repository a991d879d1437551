package util

import (
	"strings"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	clock12Layout = "3:04 PM"
)

// ValidClock12 reports whether s is a 12-hour clock time with an AM/PM
// marker, e.g. "9:30 AM" or "09:30 PM".
func ValidClock12(s string) bool {
	_, err := time.Parse(clock12Layout, strings.ToUpper(strings.TrimSpace(s)))
	return err == nil
}

// NormalizeClock12 re-renders a valid 12-hour time in canonical "3:04 PM"
// form. Returns the input unchanged when it does not parse.
func NormalizeClock12(s string) string {
	t, err := time.Parse(clock12Layout, strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return s
	}
	return t.Format(clock12Layout)
}

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// Today returns the server's calendar date at YYYY-MM-DD granularity.
func Today() string {
	return time.Now().Format(dateLayout)
}

// DateBefore reports whether a sorts strictly before b; both must be
// YYYY-MM-DD strings, which compare correctly as plain strings.
func DateBefore(a, b string) bool {
	return a < b
}
