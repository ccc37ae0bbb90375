// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// WeatherClass is the canonical weather classification used for ranking and
// advice lookup. Raw provider conditions are always reduced to one of these
// four values, never stored.
type WeatherClass int

const (
	// WeatherCloudy is the default class for overcast, misty, and any
	// unrecognized condition.
	WeatherCloudy WeatherClass = iota
	// WeatherRainy covers rain, drizzle, and thunderstorms.
	WeatherRainy
	// WeatherSunny is a clear daytime reading.
	WeatherSunny
	// WeatherClear is an explicit "clear sky" reading.
	WeatherClear
)

// String returns the canonical lowercase name of the class.
func (c WeatherClass) String() string {
	switch c {
	case WeatherRainy:
		return "rainy"
	case WeatherSunny:
		return "sunny"
	case WeatherClear:
		return "clear"
	default:
		return "cloudy"
	}
}

// MarshalJSON encodes the class as its canonical string name.
func (c WeatherClass) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

// UnmarshalJSON decodes a canonical class name. Unknown names degrade to
// cloudy, matching the normalizer's fallback policy.
func (c *WeatherClass) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("weather class: %w", err)
	}
	*c = ParseWeatherClass(s)
	return nil
}

// ParseWeatherClass maps a canonical class name back to its value.
// Unknown names degrade to cloudy.
func ParseWeatherClass(s string) WeatherClass {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rainy":
		return WeatherRainy
	case "sunny":
		return WeatherSunny
	case "clear":
		return WeatherClear
	default:
		return WeatherCloudy
	}
}

// Intent classifies the purpose of a free-text query. It exists only for the
// duration of one query's handling and is never persisted.
type Intent int

const (
	// IntentUnmatched is an empty query or one no branch claimed.
	IntentUnmatched Intent = iota
	// IntentFashion asks what to wear.
	IntentFashion
	// IntentActivity asks what to do or where to go.
	IntentActivity
	// IntentBudgetCheap asks for cheap or free places.
	IntentBudgetCheap
	// IntentBudgetExpensive asks for upscale places.
	IntentBudgetExpensive
	// IntentTimeSearch is a keyword search narrowed by a mentioned time.
	IntentTimeSearch
	// IntentKeywordSearch matched one or more place-type keywords.
	IntentKeywordSearch
	// IntentNameSearch matched by raw substring against names/descriptions.
	IntentNameSearch
)

// String returns a stable identifier for the intent, used in logs and metrics.
func (i Intent) String() string {
	switch i {
	case IntentFashion:
		return "fashion"
	case IntentActivity:
		return "activity"
	case IntentBudgetCheap:
		return "budget_cheap"
	case IntentBudgetExpensive:
		return "budget_expensive"
	case IntentTimeSearch:
		return "time_search"
	case IntentKeywordSearch:
		return "keyword_search"
	case IntentNameSearch:
		return "name_search"
	default:
		return "unmatched"
	}
}

// MarshalJSON encodes the intent as its string identifier.
func (i Intent) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(i.String())), nil
}

// UnmarshalJSON decodes an intent identifier. Unknown values decode as
// unmatched.
func (i *Intent) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("intent: %w", err)
	}
	*i = ParseIntent(s)
	return nil
}

// ParseIntent maps an intent identifier back to its value. Unknown names
// map to unmatched.
func ParseIntent(s string) Intent {
	switch s {
	case "fashion":
		return IntentFashion
	case "activity":
		return IntentActivity
	case "budget_cheap":
		return IntentBudgetCheap
	case "budget_expensive":
		return IntentBudgetExpensive
	case "time_search":
		return IntentTimeSearch
	case "keyword_search":
		return IntentKeywordSearch
	case "name_search":
		return IntentNameSearch
	default:
		return IntentUnmatched
	}
}

// Place is a read-only snapshot of one catalog record. The catalog layer owns
// the authoritative data; the engine treats every field as validated except
// for the documented optional ones (Hours, BestWeather, PriceRange).
type Place struct {
	// ID is the stable catalog identifier.
	ID int `json:"id"`

	// Name is the Vietnamese display name.
	Name string `json:"name"`

	// NameEN is the optional localized name.
	NameEN string `json:"name_en,omitempty"`

	// Description is the Vietnamese description.
	Description string `json:"description,omitempty"`

	// DescriptionEN is the optional localized description.
	DescriptionEN string `json:"description_en,omitempty"`

	// Type is one tag from the closed place-type vocabulary (cafe,
	// restaurant, waterfall, indoor, viewpoint, outdoor, garden, adventure,
	// museum). Unrecognized types never match weather or keyword rules and
	// fall through to generic search.
	Type string `json:"type"`

	// BestWeather lists the canonical classes this place is ideal for.
	// Absent means no weather affinity, not an error.
	BestWeather []WeatherClass `json:"best_weather,omitempty"`

	// Hours is the opening window. Nil means always open.
	Hours *OpeningHours `json:"opening_hours,omitempty"`

	// PriceRange is free text such as "30.000 - 80.000 VND" or "Miễn phí".
	// The first embedded number is used for budget filtering; absent counts
	// as cheap.
	PriceRange string `json:"price_range,omitempty"`

	// Lat and Lng are used only to synthesize a directions link.
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// HasBestWeather reports whether the place lists the class as ideal.
func (p *Place) HasBestWeather(class WeatherClass) bool {
	for _, c := range p.BestWeather {
		if c == class {
			return true
		}
	}
	return false
}

// PlaceResult is a place decorated for presentation: openness, the weather
// class it was ranked under, and a directions link.
type PlaceResult struct {
	Place

	// IsOpen is always true for surfaced places; the pipeline filters
	// closed places out before ranking.
	IsOpen bool `json:"is_open"`

	// Weather is the class the recommendation was ranked under. Omitted for
	// chat search results, which are weather-independent.
	Weather string `json:"weather,omitempty"`

	// DirectionsURL is a deep link to the map provider's routing view.
	DirectionsURL string `json:"directions_url"`
}

// Result is the uniform response shape shared by every chat branch.
type Result struct {
	Success          bool          `json:"success"`
	Intent           Intent        `json:"intent"`
	Message          string        `json:"message"`
	Places           []PlaceResult `json:"places"`
	FashionTip       string        `json:"fashion_tip,omitempty"`
	Activity         string        `json:"activity,omitempty"`
	GoogleSearchLink string        `json:"google_search_link,omitempty"`
	Suggestions      []string      `json:"suggestions,omitempty"`
}

// Recommendation is the output of the weather-based recommendation entry
// point.
type Recommendation struct {
	Success bool          `json:"success"`
	Weather WeatherClass  `json:"weather"`
	TempC   float64       `json:"temp_c"`
	Message string        `json:"message"`
	Places  []PlaceResult `json:"places"`
}

// WeatherReading is the raw weather signal the engine consumes: the
// provider's condition label, its free-text description, and the metric
// temperature.
type WeatherReading struct {
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	TempC       float64 `json:"temp_c"`
}

// CatalogProvider supplies the full place snapshot. Implemented by the
// catalog package; defined here so the engine has no internal dependencies.
type CatalogProvider interface {
	// Places returns the fully materialized catalog. The engine re-reads it
	// on every request and never caches.
	Places(ctx context.Context) ([]Place, error)
}

// WeatherSignal supplies the current raw weather reading on demand.
type WeatherSignal interface {
	Current(ctx context.Context) (WeatherReading, error)
}
