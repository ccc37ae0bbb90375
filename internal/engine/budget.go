// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// Budget thresholds in VND. Places between the two are the "medium" band.
const (
	cheapBelowVND     = 50000
	expensiveAboveVND = 150000
)

// pricePattern matches the first embedded number in a price text, allowing
// "." and "," thousand separators ("30.000", "1,500,000").
var pricePattern = regexp.MustCompile(`\d[\d.,]*`)

// parsePrice extracts the first number embedded in a price text. It returns
// false when the text is empty, marked free, or carries no number.
func parsePrice(priceRange string) (int, bool) {
	s := strings.TrimSpace(priceRange)
	if s == "" {
		return 0, false
	}
	m := pricePattern.FindString(s)
	if m == "" {
		return 0, false
	}
	m = strings.NewReplacer(".", "", ",", "").Replace(m)
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// isCheap reports whether a place qualifies for the budget-cheap branch:
// no price, explicitly free, or first embedded number under the cheap
// threshold. Absent price counting as cheap is deliberate.
func isCheap(p *Place) bool {
	s := strings.ToLower(strings.TrimSpace(p.PriceRange))
	if s == "" || strings.Contains(s, "miễn phí") || strings.Contains(s, "mien phi") || strings.Contains(s, "free") {
		return true
	}
	n, ok := parsePrice(p.PriceRange)
	if !ok {
		return true
	}
	return n < cheapBelowVND
}

// isExpensive reports whether the first embedded number exceeds the
// expensive threshold. Places without a price never qualify.
func isExpensive(p *Place) bool {
	n, ok := parsePrice(p.PriceRange)
	return ok && n > expensiveAboveVND
}

// budgetBand classifies a price text into cheap, medium, or expensive.
// No query keyword currently routes to the medium band; the classifier only
// reaches cheap and expensive. The band is kept so the classification stays
// in one place if a trigger is ever added.
func budgetBand(priceRange string) string {
	n, ok := parsePrice(priceRange)
	if !ok || n < cheapBelowVND {
		return "cheap"
	}
	if n > expensiveAboveVND {
		return "expensive"
	}
	return "medium"
}
