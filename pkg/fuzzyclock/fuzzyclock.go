// Package fuzzyclock renders a clock time as a fuzzy English phrase such as
// "quarter past three" or "ten till noon".
//
// The minute is bucketed into bands of the chosen [Resolution]. Times in the
// first half of the hour are described relative to the current hour ("past"),
// times beyond the half-hour band relative to the next hour ("till").
//
// All functions are pure and safe for concurrent use.
package fuzzyclock

import (
	"fmt"
	"time"
)

const (
	hoursPerDay    = 24
	hoursPerHalf   = 12
	minutesPerHour = 60
	halfHour       = 30
)

// Resolution is the width in minutes of a fuzzy minute band.
type Resolution int

// Supported resolutions.
const (
	Five    Resolution = 5
	Ten     Resolution = 10
	Fifteen Resolution = 15
)

// Resolutions lists every supported resolution, finest first.
var Resolutions = []Resolution{Five, Ten, Fifteen}

// hourWords is indexed by hour mod 12; index 0 is only used for midnight.
var hourWords = [hoursPerHalf]string{
	"midnight", "one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten", "eleven",
}

// minuteWords maps a resolution to its band words, indexed by distance/resolution.
var minuteWords = map[Resolution][]string{
	Five:    {"", "five", "ten", "quarter", "twenty", "twenty-five", "half"},
	Ten:     {"", "ten", "twenty", "half"},
	Fifteen: {"", "quarter", "half"},
}

// ParseResolution converts an integer number of minutes into a Resolution.
func ParseResolution(minutes int) (Resolution, error) {
	r := Resolution(minutes)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: got %d", errInvalidResolution, minutes)
	}
	return r, nil
}

// Valid reports whether r is one of the supported resolutions.
func (r Resolution) Valid() bool {
	_, ok := minuteWords[r]
	return ok
}

// String returns the resolution as a number of minutes.
func (r Resolution) String() string {
	return fmt.Sprintf("%d", int(r))
}

// ToFuzzyTime returns the fuzzy phrase for hour:minute at resolution r.
//
// Examples:
//
//	ToFuzzyTime(3, 17, Five)   → "quarter past three"
//	ToFuzzyTime(3, 50, Five)   → "ten till four"
//	ToFuzzyTime(23, 50, Ten)   → "ten till midnight"
//	ToFuzzyTime(0, 2, Fifteen) → "midnight"
func ToFuzzyTime(hour, minute int, r Resolution) (string, error) {
	if err := validateHour(hour); err != nil {
		return "", err
	}
	minuteWord, err := MinuteWord(minute, r)
	if err != nil {
		return "", err
	}

	if minuteWord == "" {
		return onTheHour(hour), nil
	}

	if !IsHalfPastHour(minute, r) {
		return minuteWord + " past " + hourWord(hour), nil
	}
	return minuteWord + " till " + hourWord(IncrementHour(hour)), nil
}

// FromTime returns the fuzzy phrase for the wall-clock time of t.
func FromTime(t time.Time, r Resolution) (string, error) {
	return ToFuzzyTime(t.Hour(), t.Minute(), r)
}

// HourWord returns the word for a 24-hour clock hour: "midnight", "noon",
// or "one" through "eleven".
func HourWord(hour int) (string, error) {
	if err := validateHour(hour); err != nil {
		return "", err
	}
	return hourWord(hour), nil
}

// MinuteWord returns the band word for minute at resolution r.
// An empty string means the minute falls in the on-the-hour band.
func MinuteWord(minute int, r Resolution) (string, error) {
	if minute < 0 || minute >= minutesPerHour {
		return "", fmt.Errorf("%w: got %d", errInvalidMinute, minute)
	}
	words, ok := minuteWords[r]
	if !ok {
		return "", fmt.Errorf("%w: got %d", errInvalidResolution, int(r))
	}

	// Till the hour, the distance counts down from the next hour so that
	// minute 59 lands in the first band.
	var band int
	if IsHalfPastHour(minute, r) {
		band = (minutesPerHour-1-minute)/int(r) + 1
	} else {
		band = minute / int(r)
	}
	return words[band], nil
}

// IsHalfPastHour reports whether minute is beyond the half-hour band, in
// which case the phrase refers to the upcoming hour.
func IsHalfPastHour(minute int, r Resolution) bool {
	return minute >= halfHour+int(r)
}

// IncrementHour returns the next hour, wrapping 23 to 0.
func IncrementHour(hour int) int {
	return (hour + 1) % hoursPerDay
}

func hourWord(hour int) string {
	if hour == hoursPerHalf {
		return "noon"
	}
	return hourWords[hour%hoursPerHalf]
}

func onTheHour(hour int) string {
	if hour == 0 || hour == hoursPerHalf {
		return hourWord(hour)
	}
	return hourWord(hour) + " o'clock"
}

func validateHour(hour int) error {
	if hour < 0 || hour >= hoursPerDay {
		return fmt.Errorf("%w: got %d", errInvalidHour, hour)
	}
	return nil
}
