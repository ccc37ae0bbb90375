// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package engine

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Intent trigger keywords. Each Vietnamese phrase appears with its
// ASCII-folded spelling where the folded form is unambiguous enough to keep
// substring matching from misfiring (bare "re" or "dat" would hit inside
// unrelated words).
var (
	fashionKeywords = []string{
		"mặc", "mac gi", "trang phục", "trang phuc",
		"quần áo", "quan ao", "outfit", "wear",
	}
	activityKeywords = []string{
		"làm gì", "lam gi", "hoạt động", "hoat dong",
		"đi đâu", "di dau", "nên đi", "nen di",
		"what to do", "where to go",
	}
	cheapKeywords = []string{
		"rẻ", "gia re", "bình dân", "binh dan",
		"tiết kiệm", "tiet kiem", "miễn phí", "mien phi",
		"cheap", "budget", "free",
	}
	expensiveKeywords = []string{
		"sang trọng", "sang trong", "đắt", "dat tien",
		"cao cấp", "cao cap", "luxury", "expensive",
	}
)

// Fixed response texts. The chat contract always succeeds at the domain
// level, so these cover every branch including the no-match fallback.
const (
	msgPromptInput    = "Bạn muốn tìm gì ở Đà Lạt? Hãy nhập câu hỏi hoặc từ khóa nhé!"
	msgFashion        = "Gợi ý trang phục hôm nay:"
	msgActivity       = "Gợi ý hoạt động theo thời tiết hôm nay:"
	msgCheapPlaces    = "Những địa điểm giá rẻ đáng ghé:"
	msgUpscalePlaces  = "Những địa điểm sang trọng dành cho bạn:"
	msgKeywordResults = "Đây là những địa điểm phù hợp với từ khóa của bạn:"
	msgNameResults    = "Mình tìm thấy những địa điểm này cho bạn:"
	msgNoResults      = "Mình chưa tìm thấy địa điểm phù hợp, bạn thử tìm trên Google nhé:"
)

// querySuggestions are offered whenever the engine cannot act on the query.
var querySuggestions = []string{
	"Hôm nay nên đi đâu?",
	"Quán cà phê view đẹp",
	"Địa điểm giá rẻ",
	"Trời lạnh nên mặc gì?",
}

// searchSuffix is appended to the raw query when building the web-search
// fallback link.
const searchSuffix = "Đà Lạt Du Lịch"

// chatRule pairs an intent predicate with its handler. Rules are evaluated
// top to bottom, first match wins, no fallthrough.
type chatRule struct {
	intent   Intent
	keywords []string
	handle   func(ctx context.Context, query string, now time.Time) (*Result, error)
}

// rules returns the ordered intent dispatch table. Order is part of the
// contract: fashion precedes activity, both precede budget, and the search
// branches are the catch-all.
func (e *Engine) rules() []chatRule {
	return []chatRule{
		{IntentFashion, fashionKeywords, e.handleFashion},
		{IntentActivity, activityKeywords, e.handleActivity},
		{IntentBudgetCheap, cheapKeywords, e.handleCheap},
		{IntentBudgetExpensive, expensiveKeywords, e.handleExpensive},
	}
}

// handleFashion answers what-to-wear queries from the current reading.
// No places are returned.
func (e *Engine) handleFashion(ctx context.Context, _ string, _ time.Time) (*Result, error) {
	reading, err := e.weather.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("weather signal: %w", err)
	}
	class := ClassifyCondition(reading.Condition, reading.Description)
	return &Result{
		Success:    true,
		Intent:     IntentFashion,
		Message:    msgFashion,
		Places:     []PlaceResult{},
		FashionTip: fashionAdvice(class, reading.TempC),
	}, nil
}

// handleActivity answers what-to-do queries with the fixed per-class block.
// No places are returned.
func (e *Engine) handleActivity(ctx context.Context, _ string, _ time.Time) (*Result, error) {
	reading, err := e.weather.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("weather signal: %w", err)
	}
	class := ClassifyCondition(reading.Condition, reading.Description)
	return &Result{
		Success:  true,
		Intent:   IntentActivity,
		Message:  msgActivity,
		Places:   []PlaceResult{},
		Activity: activityAdvice[class],
	}, nil
}

// handleCheap returns places that are free, unpriced, or under the cheap
// threshold.
func (e *Engine) handleCheap(ctx context.Context, _ string, _ time.Time) (*Result, error) {
	places, err := e.catalog.Places(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	kept := make([]Place, 0, len(places))
	for i := range places {
		if isCheap(&places[i]) {
			kept = append(kept, places[i])
		}
	}
	return &Result{
		Success: true,
		Intent:  IntentBudgetCheap,
		Message: msgCheapPlaces,
		Places:  e.decorate(kept, ""),
	}, nil
}

// handleExpensive returns places priced above the expensive threshold.
func (e *Engine) handleExpensive(ctx context.Context, _ string, _ time.Time) (*Result, error) {
	places, err := e.catalog.Places(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	kept := make([]Place, 0, len(places))
	for i := range places {
		if isExpensive(&places[i]) {
			kept = append(kept, places[i])
		}
	}
	return &Result{
		Success: true,
		Intent:  IntentBudgetExpensive,
		Message: msgUpscalePlaces,
		Places:  e.decorate(kept, ""),
	}, nil
}

// handleSearch is the catch-all: keyword narrowing, optional time-of-day
// narrowing, then raw substring search against names and descriptions, and
// finally the web-search fallback link.
func (e *Engine) handleSearch(ctx context.Context, query string, now time.Time) (*Result, error) {
	places, err := e.catalog.Places(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	tags := ExtractTags(query)
	narrowed := places
	if len(tags) > 0 {
		narrowed = make([]Place, 0, len(places))
		for _, p := range places {
			if _, ok := tags[p.Type]; ok {
				narrowed = append(narrowed, p)
			}
		}
	}

	// A mentioned time narrows further to places open at that time, using
	// only the time-of-day component against today's date.
	if hour, minute, ok := ExtractTime(query); ok {
		at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		open := openPlaces(narrowed, at)
		if len(open) > 0 {
			return &Result{
				Success: true,
				Intent:  IntentTimeSearch,
				Message: fmt.Sprintf("Những địa điểm đang mở cửa lúc %02d:%02d:", hour, minute),
				Places:  e.decorate(open, ""),
			}, nil
		}
	}

	if len(tags) > 0 && len(narrowed) > 0 {
		return &Result{
			Success: true,
			Intent:  IntentKeywordSearch,
			Message: msgKeywordResults,
			Places:  e.decorate(narrowed, ""),
		}, nil
	}

	if matched := searchByName(places, query); len(matched) > 0 {
		return &Result{
			Success: true,
			Intent:  IntentNameSearch,
			Message: msgNameResults,
			Places:  e.decorate(matched, ""),
		}, nil
	}

	return &Result{
		Success:          false,
		Intent:           IntentUnmatched,
		Message:          msgNoResults,
		Places:           []PlaceResult{},
		GoogleSearchLink: searchURL(query),
		Suggestions:      querySuggestions,
	}, nil
}

// searchByName matches the raw query as a case-insensitive substring of the
// name, localized name, description, or localized description.
func searchByName(places []Place, query string) []Place {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	matched := make([]Place, 0, len(places))
	for _, p := range places {
		for _, field := range []string{p.Name, p.NameEN, p.Description, p.DescriptionEN} {
			if field != "" && strings.Contains(strings.ToLower(field), q) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

// decorate caps the list at the configured maximum and attaches the
// presentation fields. Surfaced places are always marked open; closed
// places are filtered out before this point wherever openness applies.
func (e *Engine) decorate(places []Place, weather string) []PlaceResult {
	limit := e.cfg.MaxResults
	if len(places) < limit {
		limit = len(places)
	}
	out := make([]PlaceResult, 0, limit)
	for _, p := range places[:limit] {
		out = append(out, PlaceResult{
			Place:         p,
			IsOpen:        true,
			Weather:       weather,
			DirectionsURL: directionsURL(p.Lat, p.Lng),
		})
	}
	return out
}

// directionsURL builds a map-provider routing link for the coordinates.
func directionsURL(lat, lng float64) string {
	return "https://www.google.com/maps/dir/?api=1&destination=" +
		strconv.FormatFloat(lat, 'f', 6, 64) + "," +
		strconv.FormatFloat(lng, 'f', 6, 64)
}

// searchURL builds the web-search fallback link from the raw query.
func searchURL(query string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(query+" "+searchSuffix)
}
