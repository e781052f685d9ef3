// Package timeutil provides clock string parsing and formatting utilities.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	maxHour   = 23
	maxMinute = 59
)

// ErrInvalidClock is returned when a clock string is not a valid "HH:MM" time.
var ErrInvalidClock = errors.New("invalid clock time, expected HH:MM")

// ParseClock parses a 24-hour "HH:MM" (or "H:MM") string into hour and minute.
//
// Examples:
//   - "09:30" → 9, 30
//   - "7:05"  → 7, 5
//   - "23:59" → 23, 59
func ParseClock(s string) (int, int, error) {
	hourPart, minutePart, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found || len(minutePart) != 2 || hourPart == "" || len(hourPart) > 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > maxHour {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > maxMinute {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return hour, minute, nil
}

// FormatClock formats hour and minute as a zero-padded "HH:MM" string.
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
