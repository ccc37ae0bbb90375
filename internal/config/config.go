// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

// Package config loads and validates the application configuration.
//
// Configuration is merged from three layers in order: struct defaults, an
// optional YAML file, and DALAT_-prefixed environment variables. Later
// layers override earlier ones, so a container deployment can run with
// nothing but environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Log     LogConfig     `koanf:"log"`
	Catalog CatalogConfig `koanf:"catalog"`
	Weather WeatherConfig `koanf:"weather"`
	Engine  EngineConfig  `koanf:"engine"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RateLimitRPM is the per-IP request budget per minute.
	RateLimitRPM int `koanf:"rate_limit_rpm" validate:"min=1"`

	// CORSOrigins lists allowed origins; "*" allows any.
	CORSOrigins []string `koanf:"cors_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// CatalogConfig holds catalog store settings.
type CatalogConfig struct {
	// Path is the JSON place catalog file, re-read on every request.
	Path string `koanf:"path" validate:"required"`
}

// WeatherConfig holds weather signal settings.
type WeatherConfig struct {
	// Provider selects the signal implementation: openweather or static.
	Provider string `koanf:"provider" validate:"oneof=openweather static"`

	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	City    string        `koanf:"city"`
	Timeout time.Duration `koanf:"timeout"`

	// StaticCondition and StaticTempC back the static provider, used in
	// development and tests.
	StaticCondition   string  `koanf:"static_condition"`
	StaticDescription string  `koanf:"static_description"`
	StaticTempC       float64 `koanf:"static_temp_c"`
}

// EngineConfig holds engine tuning parameters.
type EngineConfig struct {
	MaxResults int `koanf:"max_results" validate:"min=1"`
}

// Default returns the built-in defaults, valid without any file or
// environment input except the weather API key.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimitRPM:    120,
			CORSOrigins:     []string{"*"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Catalog: CatalogConfig{
			Path: "./data/places.json",
		},
		Weather: WeatherConfig{
			Provider:          "openweather",
			BaseURL:           "https://api.openweathermap.org/data/2.5/weather",
			City:              "Da Lat,VN",
			Timeout:           5 * time.Second,
			StaticCondition:   "Clouds",
			StaticDescription: "overcast clouds",
			StaticTempC:       20,
		},
		Engine: EngineConfig{
			MaxResults: 5,
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if c.Weather.Provider == "openweather" && c.Weather.APIKey == "" {
		return fmt.Errorf("config validation: weather.api_key is required for the openweather provider")
	}
	return nil
}
