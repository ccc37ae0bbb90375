// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

// Package engine implements the recommendation and query classification core.
//
// The engine is a pure function of (catalog snapshot, weather reading, wall
// clock, query text). It filters places by opening hours, ranks them by
// fitness for the current weather, and routes free-text Vietnamese/English
// queries to one of a fixed set of intents (fashion advice, activity advice,
// budget search, time-scoped search, keyword search, name search) with a
// web-search fallback when nothing matches.
//
// The package has no dependencies on other internal packages. Collaborators
// are injected through the CatalogProvider and WeatherSignal interfaces so
// the storage and weather-provider layers can be swapped without touching
// classification logic.
//
// Design constraints carried over from the production behavior this engine
// reproduces:
//
//   - Unknown weather conditions degrade to cloudy, never to an error.
//   - Keyword matching is case-insensitive substring containment, not
//     token-based. Diacritic and ASCII-folded Vietnamese variants are both
//     present in the keyword table.
//   - Intent branches are evaluated in a fixed order, first match wins.
//   - Results are capped at the configured maximum and every surfaced place
//     carries a synthesized directions link.
package engine
