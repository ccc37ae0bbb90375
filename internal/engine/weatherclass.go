// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package engine

import "strings"

// ClassifyCondition reduces a raw provider condition to a canonical class.
//
// The function is total: any (label, description) pair, including empty
// strings, yields exactly one class. Rules are evaluated in order, first
// match wins:
//
//  1. rain / drizzle / thunderstorm anywhere -> rainy
//  2. label "clear": "clear sky" description without a night mention ->
//     clear, any other clear reading -> sunny
//  3. clouds / mist / fog / haze -> cloudy
//  4. anything else -> cloudy
//
// Unknown conditions silently degrade to cloudy rather than erroring, so a
// provider taxonomy change can never break recommendations.
func ClassifyCondition(label, description string) WeatherClass {
	l := strings.ToLower(strings.TrimSpace(label))
	d := strings.ToLower(strings.TrimSpace(description))
	combined := l + " " + d

	for _, w := range []string{"rain", "drizzle", "thunderstorm"} {
		if strings.Contains(combined, w) {
			return WeatherRainy
		}
	}

	if l == "clear" {
		if strings.Contains(d, "clear sky") && !strings.Contains(d, "night") {
			return WeatherClear
		}
		return WeatherSunny
	}

	for _, w := range []string{"clouds", "cloud", "mist", "fog", "haze"} {
		if strings.Contains(combined, w) {
			return WeatherCloudy
		}
	}

	return WeatherCloudy
}
