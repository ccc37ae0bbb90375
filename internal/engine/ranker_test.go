// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package engine

import (
	"testing"
	"time"
)

func place(id int, typ string, best ...WeatherClass) Place {
	return Place{ID: id, Name: "p", Type: typ, BestWeather: best, Lat: 11.94, Lng: 108.44}
}

func ids(places []Place) []int {
	out := make([]int, len(places))
	for i, p := range places {
		out[i] = p.ID
	}
	return out
}

func TestRankByWeatherRainy(t *testing.T) {
	places := []Place{
		place(1, "waterfall", WeatherSunny),
		place(2, "cafe"),
		place(3, "outdoor", WeatherRainy),
		place(4, "museum", WeatherRainy),
	}

	got := ids(RankByWeather(places, WeatherRainy))

	// Waterfall excluded: neither rain-suitable nor rainy affinity.
	// Rainy affinity ranks first, stable within tiers.
	want := []int{3, 4, 2}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

// Scenario: rainy weather, one open cafe with rainy affinity and one open
// waterfall with sunny affinity. Only the cafe survives.
func TestRankByWeatherRainyExcludesOutdoor(t *testing.T) {
	places := []Place{
		place(1, "cafe", WeatherRainy),
		place(2, "waterfall", WeatherSunny),
	}
	got := RankByWeather(places, WeatherRainy)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("want only the cafe, got %v", ids(got))
	}
}

func TestRankByWeatherSunnyScoring(t *testing.T) {
	places := []Place{
		place(1, "cafe", WeatherSunny),      // affinity only: score 1
		place(2, "waterfall"),               // outdoor only: score 2
		place(3, "viewpoint", WeatherSunny), // outdoor + affinity: score 3
		place(4, "museum"),                  // excluded
		place(5, "outdoor"),                 // outdoor only: score 2, after 2
	}

	got := ids(RankByWeather(places, WeatherSunny))
	want := []int{3, 2, 5, 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

// The ranker is a pure subset filter: it never fabricates entries and
// identical inputs yield identical output.
func TestRankByWeatherNoFabricationAndDeterminism(t *testing.T) {
	places := []Place{
		place(1, "cafe", WeatherCloudy),
		place(2, "garden", WeatherCloudy),
		place(3, "viewpoint"),
		place(4, "unknown-type"),
	}

	first := ids(RankByWeather(places, WeatherCloudy))
	second := ids(RankByWeather(places, WeatherCloudy))
	if len(first) != len(second) {
		t.Fatal("non-deterministic result length")
	}
	in := map[int]bool{1: true, 2: true, 3: true, 4: true}
	for i := range first {
		if first[i] != second[i] {
			t.Fatal("non-deterministic ordering")
		}
		if !in[first[i]] {
			t.Fatalf("fabricated place %d", first[i])
		}
	}
	// Unrecognized type must not crash and must not match.
	for _, id := range first {
		if id == 4 {
			t.Error("unknown type should not match cloudy rules")
		}
	}
}

func TestOpenPlacesFiltersClosed(t *testing.T) {
	evening := &OpeningHours{Open: 18 * 60, Close: 2 * 60}
	daytime := &OpeningHours{Open: 8 * 60, Close: 17 * 60}
	places := []Place{
		{ID: 1, Type: "cafe", Hours: evening},
		{ID: 2, Type: "cafe", Hours: daytime},
		{ID: 3, Type: "cafe"}, // no hours: always open
	}

	at := time.Date(2026, 3, 14, 20, 30, 0, 0, time.Local)
	got := ids(openPlaces(places, at))
	want := []int{1, 3}
	if len(got) != len(want) || got[0] != 1 || got[1] != 3 {
		t.Fatalf("got %v, want %v", got, want)
	}
}
