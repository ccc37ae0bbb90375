// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package engine

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"30.000 - 80.000 VND", 30000, true},
		{"1,500,000 VND", 1500000, true},
		{"45000", 45000, true},
		{"Miễn phí", 0, false},
		{"", 0, false},
		{"liên hệ", 0, false},
	}

	for _, tt := range tests {
		got, ok := parsePrice(tt.text)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parsePrice(%q) = (%d, %v), want (%d, %v)", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsCheap(t *testing.T) {
	tests := []struct {
		price string
		want  bool
	}{
		{"", true},           // absent price counts as cheap
		{"Miễn phí", true},   // explicit free
		{"mien phi", true},   // folded variant
		{"15.000 VND", true}, // under threshold
		{"49.999 VND", true},
		{"50.000 VND", false}, // at threshold is not cheap
		{"200.000 VND", false},
	}
	for _, tt := range tests {
		p := Place{PriceRange: tt.price}
		if got := isCheap(&p); got != tt.want {
			t.Errorf("isCheap(%q) = %v, want %v", tt.price, got, tt.want)
		}
	}
}

func TestIsExpensive(t *testing.T) {
	tests := []struct {
		price string
		want  bool
	}{
		{"", false}, // no price never qualifies
		{"Miễn phí", false},
		{"150.000 VND", false}, // at threshold is not expensive
		{"150.001 VND", true},
		{"500.000 - 1.000.000 VND", true},
	}
	for _, tt := range tests {
		p := Place{PriceRange: tt.price}
		if got := isExpensive(&p); got != tt.want {
			t.Errorf("isExpensive(%q) = %v, want %v", tt.price, got, tt.want)
		}
	}
}

// The medium band exists in the classification helper but no chat keyword
// routes to it; only cheap and expensive are reachable from free text.
func TestBudgetBand(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{"30.000", "cheap"},
		{"", "cheap"},
		{"100.000", "medium"},
		{"200.000", "expensive"},
	}
	for _, tt := range tests {
		if got := budgetBand(tt.price); got != tt.want {
			t.Errorf("budgetBand(%q) = %q, want %q", tt.price, got, tt.want)
		}
	}
}
