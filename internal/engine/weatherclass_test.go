// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package engine

import "testing"

func TestClassifyCondition(t *testing.T) {
	tests := []struct {
		name        string
		label       string
		description string
		want        WeatherClass
	}{
		{"rain label", "Rain", "light rain", WeatherRainy},
		{"drizzle", "Drizzle", "drizzle", WeatherRainy},
		{"thunderstorm", "Thunderstorm", "thunderstorm with rain", WeatherRainy},
		{"rain only in description", "Unknown", "heavy rain showers", WeatherRainy},
		{"clear sky", "Clear", "clear sky", WeatherClear},
		{"bare clear", "Clear", "", WeatherSunny},
		{"clear at night", "Clear", "clear sky at night", WeatherSunny},
		{"clouds", "Clouds", "overcast clouds", WeatherCloudy},
		{"mist", "Mist", "mist", WeatherCloudy},
		{"fog", "Fog", "", WeatherCloudy},
		{"haze", "Haze", "haze", WeatherCloudy},
		{"unknown condition", "Tornado", "tornado", WeatherCloudy},
		{"empty input", "", "", WeatherCloudy},
		{"rain wins over clouds", "Clouds", "rain and clouds", WeatherRainy},
		{"case insensitive", "RAIN", "", WeatherRainy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyCondition(tt.label, tt.description); got != tt.want {
				t.Errorf("ClassifyCondition(%q, %q) = %v, want %v",
					tt.label, tt.description, got, tt.want)
			}
		})
	}
}

// The normalizer is total: any input yields exactly one of the four classes.
func TestClassifyConditionTotal(t *testing.T) {
	inputs := []string{"", "snow", "Squall", "dust", "xyz", "ash", "sand"}
	for _, label := range inputs {
		for _, desc := range inputs {
			got := ClassifyCondition(label, desc)
			switch got {
			case WeatherRainy, WeatherSunny, WeatherCloudy, WeatherClear:
			default:
				t.Fatalf("ClassifyCondition(%q, %q) returned invalid class %d", label, desc, got)
			}
		}
	}
}

func TestParseWeatherClass(t *testing.T) {
	for _, c := range []WeatherClass{WeatherRainy, WeatherSunny, WeatherCloudy, WeatherClear} {
		if got := ParseWeatherClass(c.String()); got != c {
			t.Errorf("ParseWeatherClass(%q) = %v, want %v", c.String(), got, c)
		}
	}
	if got := ParseWeatherClass("monsoon"); got != WeatherCloudy {
		t.Errorf("unknown class should degrade to cloudy, got %v", got)
	}
}
