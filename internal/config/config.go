// Package config loads seatperm settings from defaults, an optional
// seatperm.yml file and SEATPERM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/dusk-indust/seatperm/internal/seating"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SEATPERM_"

// Config holds settings for one run of the seating search.
type Config struct {
	Seats           int    `yaml:"seats" env:"SEATS"`
	StartingMatches int    `yaml:"startingMatches" env:"STARTING_MATCHES"`
	Threshold       int    `yaml:"threshold" env:"THRESHOLD"`
	Policy          string `yaml:"policy" env:"POLICY"`

	// Limit is the maximum number of arrangements to display.
	Limit int `yaml:"limit" env:"LIMIT"`

	// MaxSeats bounds Seats to keep the factorial search tractable.
	// Zero disables the bound. The whole candidate set is held in memory:
	// at 10 seats with no starting matches that is 10! = 3,628,800
	// arrangements of 10 ints, roughly 380 MB; 11 seats is about 4.5 GB and
	// 12 seats about 58 GB.
	MaxSeats int `yaml:"maxSeats" env:"MAX_SEATS"`

	Workers int    `yaml:"workers" env:"WORKERS"`
	Verbose bool   `yaml:"verbose" env:"VERBOSE"`
	Format  string `yaml:"format" env:"FORMAT"`
}

// Default returns the seven-seat, one-starting-match, funded-at-two scenario.
func Default() Config {
	return Config{
		Seats:           7,
		StartingMatches: 1,
		Threshold:       2,
		Policy:          seating.StrictBelow.String(),
		Limit:           10,
		MaxSeats:        10,
		Workers:         1,
		Format:          FormatText,
	}
}

// Load reads seatperm.yml or seatperm.yaml from dir on top of Default.
// Returns the defaults (not an error) if no config file exists; any other
// read failure is returned.
func Load(dir string) (*Config, error) {
	cfg := Default()
	for _, name := range []string{"seatperm.yml", "seatperm.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		break
	}
	return &cfg, nil
}

// ApplyEnv overlays SEATPERM_* environment variables onto cfg. Unset
// variables leave the current value alone.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the settings a caller is responsible for, including the
// seat bound, then the search parameters themselves.
func (c *Config) Validate() error {
	if c.MaxSeats > 0 && c.Seats > c.MaxSeats {
		return fmt.Errorf("%w: %d seats exceeds the limit of %d", seating.ErrInvalidInput, c.Seats, c.MaxSeats)
	}
	if c.Limit < 0 {
		return fmt.Errorf("%w: display limit %d is negative", seating.ErrInvalidInput, c.Limit)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", seating.ErrInvalidInput, c.Workers)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", seating.ErrInvalidInput, c.Format)
	}

	params, err := c.Params()
	if err != nil {
		return err
	}
	return params.Validate()
}

// Params converts the search settings to seating.Params.
func (c *Config) Params() (seating.Params, error) {
	policy, err := seating.ParsePolicy(c.Policy)
	if err != nil {
		return seating.Params{}, err
	}
	return seating.Params{
		Seats:           c.Seats,
		StartingMatches: c.StartingMatches,
		Threshold:       c.Threshold,
		Policy:          policy,
	}, nil
}
