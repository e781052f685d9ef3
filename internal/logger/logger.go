// Package logger provides logging utilities for fuzzy-clock using the bullets library.
//
// Log output goes to stderr so that stdout only carries the rendered phrase
// and can be piped into other tools.
//
// Usage:
//
//	log := logger.NewLogger("debug")
//	log.Debug("Configuration loaded")
//
//	silentLog := logger.NoLogger() // Suppresses all output
package logger

import (
	"io"
	"os"

	"github.com/sgaunet/bullets"
)

// ParseLevel maps a level name to a bullets level.
// Unknown names fall back to info.
func ParseLevel(logLevel string) bullets.Level {
	switch logLevel {
	case "debug":
		return bullets.DebugLevel
	case "warn":
		return bullets.WarnLevel
	case "error":
		return bullets.ErrorLevel
	default:
		return bullets.InfoLevel
	}
}

// NewLogger creates a new logger that writes to stderr at the specified level.
func NewLogger(logLevel string) *bullets.Logger {
	return NewLoggerTo(os.Stderr, logLevel)
}

// NewLoggerTo creates a logger writing to w at the specified level.
func NewLoggerTo(w io.Writer, logLevel string) *bullets.Logger {
	logger := bullets.New(w)
	logger.SetLevel(ParseLevel(logLevel))
	return logger
}

// NoLogger creates a logger that suppresses all output by setting the level to Fatal.
func NoLogger() *bullets.Logger {
	logger := bullets.New(io.Discard)
	logger.SetLevel(bullets.FatalLevel)
	return logger
}
