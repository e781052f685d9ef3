// Package config handles loading and validation of user configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sgaunet/fuzzy-clock/pkg/fuzzyclock"
	"gopkg.in/yaml.v3"
)

// ResolutionEnvVar overrides the configured resolution when set.
const ResolutionEnvVar = "FUZZY_CLOCK_RESOLUTION"

const (
	defaultInterval = time.Minute
	minInterval     = time.Second
	maxInterval     = time.Hour
)

var (
	errInvalidResolution = errors.New("resolution must be one of 5, 10 or 15")
	errInvalidInterval   = errors.New("watch interval must be between 1s and 1h")
	errInvalidEnvValue   = errors.New("invalid " + ResolutionEnvVar + " value")

	// Exported errors for testing and external use.
	ErrInvalidResolution = errInvalidResolution
	ErrInvalidInterval   = errInvalidInterval
	ErrInvalidEnvValue   = errInvalidEnvValue
)

// Config represents the complete configuration for fuzzy-clock.
type Config struct {
	Resolution int         `yaml:"resolution"`
	Color      bool        `yaml:"color"`
	Copy       bool        `yaml:"copy"`
	Watch      WatchConfig `yaml:"watch"`
}

// WatchConfig contains settings for the watch command.
type WatchConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Resolution: int(fuzzyclock.Five),
		Color:      true,
		Copy:       false,
		Watch: WatchConfig{
			Interval: defaultInterval,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yml"
	}
	return filepath.Join(home, ".config", "fuzzy-clock", "config.yml")
}

// Load reads the configuration file from the user's home directory.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom reads the configuration from path. A missing file is not an error:
// defaults are used. Environment overrides are applied after the file.
func LoadFrom(path string) (*Config, error) {
	config := Default()

	// #nosec G304 - Reading config from user's home directory is intentional
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func applyEnvOverrides(c *Config) error {
	v := os.Getenv(ResolutionEnvVar)
	if v == "" {
		return nil
	}
	resolution, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %q", errInvalidEnvValue, v)
	}
	c.Resolution = resolution
	return nil
}

// Validate checks that all configuration values are within range.
func (c *Config) Validate() error {
	if !fuzzyclock.Resolution(c.Resolution).Valid() {
		return fmt.Errorf("%w: got %d", errInvalidResolution, c.Resolution)
	}

	if c.Watch.Interval < minInterval || c.Watch.Interval > maxInterval {
		return fmt.Errorf("%w: got %s", errInvalidInterval, c.Watch.Interval)
	}

	return nil
}

// FuzzyResolution returns the configured resolution as a fuzzyclock.Resolution.
func (c *Config) FuzzyResolution() fuzzyclock.Resolution {
	return fuzzyclock.Resolution(c.Resolution)
}
