package timeutil_test

import (
	"testing"

	"github.com/sgaunet/fuzzy-clock/internal/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
	}{
		{name: "midnight", input: "00:00", wantHour: 0, wantMinute: 0},
		{name: "morning", input: "09:30", wantHour: 9, wantMinute: 30},
		{name: "single digit hour", input: "7:05", wantHour: 7, wantMinute: 5},
		{name: "noon", input: "12:00", wantHour: 12, wantMinute: 0},
		{name: "last minute of the day", input: "23:59", wantHour: 23, wantMinute: 59},
		{name: "surrounding whitespace", input: " 15:17 ", wantHour: 15, wantMinute: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := timeutil.ParseClock(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMinute, minute)
		})
	}
}

func TestParseClock_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "no colon", input: "0930"},
		{name: "hour out of range", input: "24:00"},
		{name: "minute out of range", input: "10:60"},
		{name: "single digit minute", input: "10:5"},
		{name: "three digit hour", input: "100:00"},
		{name: "negative hour", input: "-1:00"},
		{name: "letters", input: "ab:cd"},
		{name: "seconds", input: "10:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := timeutil.ParseClock(tt.input)
			assert.ErrorIs(t, err, timeutil.ErrInvalidClock)
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		hour, minute int
		expected     string
	}{
		{0, 0, "00:00"},
		{9, 5, "09:05"},
		{23, 59, "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, timeutil.FormatClock(tt.hour, tt.minute))
		})
	}
}

func TestFormatClock_RoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += 7 {
			h, m, err := timeutil.ParseClock(timeutil.FormatClock(hour, minute))
			require.NoError(t, err)
			assert.Equal(t, hour, h)
			assert.Equal(t, minute, m)
		}
	}
}
