// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package engine

import (
	"sort"
	"time"
)

// rainySuitable lists place types that work in the rain regardless of the
// place's own weather affinity.
var rainySuitable = map[string]bool{
	"indoor":     true,
	"cafe":       true,
	"museum":     true,
	"restaurant": true,
}

// outdoorSuitable lists place types favored in sunny, cloudy, and clear
// weather.
var outdoorSuitable = map[string]bool{
	"outdoor":   true,
	"waterfall": true,
	"viewpoint": true,
}

// RankByWeather filters and orders places by fitness for the class.
//
// Rainy keeps rain-suitable types and places that list rainy as ideal, with
// the explicit rainy affinity ranking first. Every other class keeps places
// whose affinity matches or whose type is outdoor-suitable, ordered by
// 2x(outdoor type) + 1x(affinity match). Both orderings are stable: ties
// preserve the input order, so identical inputs always produce identical
// output. The function never fabricates entries; the result is a subset of
// the input.
func RankByWeather(places []Place, class WeatherClass) []Place {
	type scored struct {
		place Place
		score int
	}

	kept := make([]scored, 0, len(places))
	for _, p := range places {
		if class == WeatherRainy {
			affinity := p.HasBestWeather(WeatherRainy)
			if !rainySuitable[p.Type] && !affinity {
				continue
			}
			s := 0
			if affinity {
				s = 1
			}
			kept = append(kept, scored{place: p, score: s})
			continue
		}

		affinity := p.HasBestWeather(class)
		outdoor := outdoorSuitable[p.Type]
		if !affinity && !outdoor {
			continue
		}
		s := 0
		if outdoor {
			s += 2
		}
		if affinity {
			s++
		}
		kept = append(kept, scored{place: p, score: s})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	out := make([]Place, len(kept))
	for i, s := range kept {
		out[i] = s.place
	}
	return out
}

// openPlaces narrows the catalog to places open at t.
func openPlaces(places []Place, t time.Time) []Place {
	out := make([]Place, 0, len(places))
	for _, p := range places {
		if p.Hours.OpenAt(t) {
			out = append(out, p)
		}
	}
	return out
}
