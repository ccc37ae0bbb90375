// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrNoCatalog indicates the engine was constructed without a catalog
// provider. The engine must not be invoked with an unavailable catalog.
var ErrNoCatalog = errors.New("engine: catalog provider is required")

// ErrNoWeather indicates the engine was constructed without a weather
// signal.
var ErrNoWeather = errors.New("engine: weather signal is required")

// Engine is the recommendation and chat classification facade. It is
// stateless beyond its injected collaborators and safe for concurrent use:
// every call is an independent pure computation over a freshly loaded
// catalog snapshot.
type Engine struct {
	cfg     *Config
	logger  zerolog.Logger
	catalog CatalogProvider
	weather WeatherSignal
}

// New creates an engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg *Config, catalog CatalogProvider, weather WeatherSignal, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if catalog == nil {
		return nil, ErrNoCatalog
	}
	if weather == nil {
		return nil, ErrNoWeather
	}
	return &Engine{
		cfg:     cfg,
		logger:  logger.With().Str("component", "engine").Logger(),
		catalog: catalog,
		weather: weather,
	}, nil
}

// Recommend returns the currently-open places ranked by fitness for the
// current weather, each decorated with the active class and a directions
// link. The catalog is read fresh on every call.
func (e *Engine) Recommend(ctx context.Context, now time.Time) (*Recommendation, error) {
	reading, err := e.weather.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("weather signal: %w", err)
	}
	class := ClassifyCondition(reading.Condition, reading.Description)

	places, err := e.catalog.Places(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	ranked := RankByWeather(openPlaces(places, now), class)

	e.logger.Debug().
		Str("weather", class.String()).
		Float64("temp_c", reading.TempC).
		Int("catalog", len(places)).
		Int("ranked", len(ranked)).
		Msg("recommendation computed")

	return &Recommendation{
		Success: true,
		Weather: class,
		TempC:   reading.TempC,
		Message: recommendMessage(class),
		Places:  e.decorate(ranked, class.String()),
	}, nil
}

// Chat classifies a free-text query and dispatches it to the matching
// intent handler. Branches are tried in a fixed order, first match wins;
// the search handler is the catch-all.
func (e *Engine) Chat(ctx context.Context, query string, now time.Time) (*Result, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return &Result{
			Success:     false,
			Intent:      IntentUnmatched,
			Message:     msgPromptInput,
			Places:      []PlaceResult{},
			Suggestions: querySuggestions,
		}, nil
	}

	for _, rule := range e.rules() {
		if !containsAny(trimmed, rule.keywords) {
			continue
		}
		res, err := rule.handle(ctx, trimmed, now)
		if err != nil {
			return nil, err
		}
		e.logChat(trimmed, res)
		return res, nil
	}

	res, err := e.handleSearch(ctx, trimmed, now)
	if err != nil {
		return nil, err
	}
	e.logChat(trimmed, res)
	return res, nil
}

func (e *Engine) logChat(query string, res *Result) {
	e.logger.Debug().
		Str("intent", res.Intent.String()).
		Bool("success", res.Success).
		Int("places", len(res.Places)).
		Int("query_len", len(query)).
		Msg("chat query classified")
}

// recommendMessage phrases the recommendation headline for the class.
func recommendMessage(class WeatherClass) string {
	switch class {
	case WeatherRainy:
		return "Trời đang mưa, đây là những địa điểm trong nhà phù hợp:"
	case WeatherSunny:
		return "Trời nắng đẹp, đây là những địa điểm ngoài trời đáng đi:"
	case WeatherClear:
		return "Trời quang đãng, đây là những địa điểm ngắm cảnh lý tưởng:"
	default:
		return "Thời tiết mát mẻ, đây là những địa điểm gợi ý cho bạn:"
	}
}
