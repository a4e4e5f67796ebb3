package utils

import (
	"strings"
	"time"
)

const (
	layoutDate = "2006-01-02"
	layoutTime = "15:04"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(layoutDate, strings.TrimSpace(s))
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ValidClock reports whether s is a well-formed HH:MM time of day.
func ValidClock(s string) bool {
	_, err := time.Parse(layoutTime, strings.TrimSpace(s))
	return err == nil
}

// FormatDate formats time to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}
