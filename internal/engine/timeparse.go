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

// Time-of-day mention patterns, tried in priority order. PM-style mentions
// win over AM-style, which win over bare 24-hour forms, so "8 giờ tối" is
// 20:00 even though the generic pattern would also match it.
var (
	// pmPattern: "3pm", "3 giờ chiều", "8h tối", "9 đêm"
	pmPattern = regexp.MustCompile(`(\d{1,2})(?:[h:](\d{2}))?\s*(?:giờ|gio|h)?\s*(?:pm|chiều|chieu|tối|toi|đêm|dem)`)

	// amPattern: "7am", "7 giờ sáng", "7h sáng", "7 buổi sáng"
	amPattern = regexp.MustCompile(`(\d{1,2})(?:[h:](\d{2}))?\s*(?:giờ|gio|h)?\s*(?:am|sáng|sang)`)

	// clockPattern: literal 24-hour forms "20h30", "20h", "20 giờ", "20:30 h"
	clockPattern = regexp.MustCompile(`(\d{1,2})(?:[h:](\d{2})\s*(?:giờ|gio|h)?|\s*(?:giờ|gio|h))`)
)

// ExtractTime parses an approximate time-of-day mention out of free text.
// It returns the hour and minute plus whether anything matched. Values whose
// hour lands outside [0, 24) after AM/PM adjustment are discarded.
func ExtractTime(query string) (hour, minute int, ok bool) {
	q := strings.ToLower(query)

	if m := pmPattern.FindStringSubmatch(q); m != nil {
		hour, minute = submatchClock(m)
		if hour != 12 {
			hour += 12
		}
		return validate(hour, minute)
	}

	if m := amPattern.FindStringSubmatch(q); m != nil {
		hour, minute = submatchClock(m)
		if hour == 12 {
			hour = 0
		}
		return validate(hour, minute)
	}

	if m := clockPattern.FindStringSubmatch(q); m != nil {
		hour, minute = submatchClock(m)
		return validate(hour, minute)
	}

	return 0, 0, false
}

// submatchClock pulls hour and optional minute out of a pattern match.
func submatchClock(m []string) (hour, minute int) {
	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	return hour, minute
}

// validate discards mentions outside the representable day.
func validate(hour, minute int) (int, int, bool) {
	if hour < 0 || hour >= 24 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
