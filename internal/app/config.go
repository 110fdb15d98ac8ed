package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// CastPath points to a .hcl cast file or a directory of them. Empty
	// means the built-in cast (clock producer + console displayer).
	CastPath string

	LogFormat string
	LogLevel  string

	// Runs is how many full fan-out passes to execute. Zero means one.
	Runs int
}

// NewConfig validates and normalizes a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Runs < 0 {
		return nil, errors.New("Runs must not be negative")
	}
	if cfg.Runs == 0 {
		cfg.Runs = 1
	}
	return &cfg, nil
}
