// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package engine

import "fmt"

// Config holds engine tuning parameters.
type Config struct {
	// MaxResults caps the number of places returned by any branch.
	MaxResults int `koanf:"max_results"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *Config {
	return &Config{MaxResults: 5}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.MaxResults < 1 {
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	}
	return nil
}
