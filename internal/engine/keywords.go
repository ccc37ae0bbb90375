// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package engine

import "strings"

// keywordTags maps surface keywords to place-type tags. Vietnamese entries
// carry both the diacritic and the ASCII-folded spelling so queries typed
// without diacritics still match. Matching is substring containment on the
// lower-cased query, not token-based, and every matched keyword contributes
// its tags (union, not first match).
var keywordTags = map[string][]string{
	// cafe
	"cà phê":  {"cafe"},
	"ca phe":  {"cafe"},
	"cafe":    {"cafe"},
	"coffee":  {"cafe"},
	"trà sữa": {"cafe"},
	"tra sua": {"cafe"},

	// restaurant
	"nhà hàng":   {"restaurant"},
	"nha hang":   {"restaurant"},
	"quán ăn":    {"restaurant"},
	"quan an":    {"restaurant"},
	"ăn uống":    {"restaurant"},
	"an uong":    {"restaurant"},
	"restaurant": {"restaurant"},
	"food":       {"restaurant"},

	// waterfall
	"thác":      {"waterfall"},
	"thac":      {"waterfall"},
	"waterfall": {"waterfall"},

	// viewpoint
	"view":      {"viewpoint"},
	"ngắm cảnh": {"viewpoint"},
	"ngam canh": {"viewpoint"},
	"săn mây":   {"viewpoint"},
	"san may":   {"viewpoint"},
	"đồi":       {"viewpoint"},

	// indoor
	"trong nhà": {"indoor"},
	"trong nha": {"indoor"},
	"indoor":    {"indoor"},

	// outdoor
	"ngoài trời": {"outdoor"},
	"ngoai troi": {"outdoor"},
	"outdoor":    {"outdoor"},
	"cắm trại":   {"outdoor"},
	"cam trai":   {"outdoor"},
	"picnic":     {"outdoor"},

	// garden
	"vườn":   {"garden"},
	"vuon":   {"garden"},
	"garden": {"garden"},
	"hoa":    {"garden"},

	// adventure
	"mạo hiểm":  {"adventure"},
	"mao hiem":  {"adventure"},
	"adventure": {"adventure"},
	"trekking":  {"adventure"},
	"leo núi":   {"adventure"},
	"leo nui":   {"adventure"},

	// museum
	"bảo tàng": {"museum"},
	"bao tang": {"museum"},
	"museum":   {"museum"},

	// weather words expand to the matching suitability sets
	"mưa":  {"indoor", "cafe", "museum", "restaurant"},
	"mua":  {"indoor", "cafe", "museum", "restaurant"},
	"nắng": {"outdoor", "waterfall", "viewpoint"},
	"nang": {"outdoor", "waterfall", "viewpoint"},
}

// ExtractTags returns the set of place-type tags whose keywords appear in
// the query. The result is empty, never nil, when nothing matches.
func ExtractTags(query string) map[string]struct{} {
	q := strings.ToLower(query)
	tags := make(map[string]struct{})
	for keyword, kwTags := range keywordTags {
		if strings.Contains(q, keyword) {
			for _, t := range kwTags {
				tags[t] = struct{}{}
			}
		}
	}
	return tags
}

// containsAny reports whether the lower-cased query contains any of the
// given keywords. It backs the intent predicates in the classifier.
func containsAny(query string, keywords []string) bool {
	q := strings.ToLower(query)
	for _, k := range keywords {
		if strings.Contains(q, k) {
			return true
		}
	}
	return false
}
