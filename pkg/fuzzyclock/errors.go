package fuzzyclock

import "errors"

// Error definitions for input validation.
var (
	errInvalidHour       = errors.New("hour must be between 0 and 23")
	errInvalidMinute     = errors.New("minute must be between 0 and 59")
	errInvalidResolution = errors.New("resolution must be one of 5, 10 or 15")

	// Exported errors for testing and external use.
	ErrInvalidHour       = errInvalidHour
	ErrInvalidMinute     = errInvalidMinute
	ErrInvalidResolution = errInvalidResolution
)
