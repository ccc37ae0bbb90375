// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

// Package weather supplies the raw weather signal the engine consumes.
//
// The Client talks to an OpenWeather-compatible current-conditions endpoint
// behind a circuit breaker, so a flapping provider fails fast instead of
// tying up request handlers. The engine only ever sees the condition label,
// description, and temperature; normalization to a canonical class happens
// inside the engine.
package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/dalatguide/dalatguide/internal/engine"
)

// ErrProviderStatus indicates a non-200 response from the weather provider.
var ErrProviderStatus = errors.New("weather: provider returned non-OK status")

// breakerFailureThreshold is the consecutive-failure count that opens the
// breaker.
const breakerFailureThreshold = 3

// Client fetches current conditions from an OpenWeather-compatible API.
type Client struct {
	baseURL string
	apiKey  string
	city    string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[engine.WeatherReading]
	logger  zerolog.Logger
}

// providerResponse is the subset of the provider payload the engine needs.
type providerResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// NewClient creates a provider client.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewClient(baseURL, apiKey, city string, timeout time.Duration, logger zerolog.Logger) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		city:    city,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "weather").Logger(),
	}
	c.breaker = gobreaker.NewCircuitBreaker[engine.WeatherReading](gobreaker.Settings{
		Name:    "weather-provider",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
		},
	})
	return c
}

// Current fetches the current reading through the circuit breaker.
func (c *Client) Current(ctx context.Context) (engine.WeatherReading, error) {
	return c.breaker.Execute(func() (engine.WeatherReading, error) {
		return c.fetch(ctx)
	})
}

func (c *Client) fetch(ctx context.Context) (engine.WeatherReading, error) {
	var zero engine.WeatherReading

	q := url.Values{}
	q.Set("q", c.city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return zero, fmt.Errorf("weather: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("weather: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("%w: %d", ErrProviderStatus, resp.StatusCode)
	}

	var payload providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return zero, fmt.Errorf("weather: decode response: %w", err)
	}

	reading := engine.WeatherReading{TempC: payload.Main.Temp}
	if len(payload.Weather) > 0 {
		reading.Condition = payload.Weather[0].Main
		reading.Description = payload.Weather[0].Description
	}

	c.logger.Debug().
		Str("condition", reading.Condition).
		Float64("temp_c", reading.TempC).
		Msg("weather reading fetched")

	return reading, nil
}

// Static is a fixed weather signal for development and tests.
type Static struct {
	Reading engine.WeatherReading
}

// Current returns the configured reading.
func (s *Static) Current(_ context.Context) (engine.WeatherReading, error) {
	return s.Reading, nil
}
