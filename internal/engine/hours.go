// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// OpeningHours is a daily opening window in minutes since midnight. Windows
// may wrap past midnight (Close < Open). The [00:00, 23:59] window is the
// 24/7 notation and is always open.
type OpeningHours struct {
	// Open is the opening minute of day, 0-1439.
	Open int

	// Close is the closing minute of day, 0-1439. A value below Open means
	// the window crosses midnight.
	Close int
}

// allDayClose is the closing minute of the 24/7 notation, 23:59.
const allDayClose = 23*60 + 59

// OpenAtMinute reports whether the window contains the given minute of day.
// All comparisons are on local wall-clock minutes; the caller owns timezone
// handling.
func (h *OpeningHours) OpenAtMinute(minute int) bool {
	if h == nil {
		return true
	}
	if h.Open == 0 && h.Close == allDayClose {
		return true
	}
	if h.Close < h.Open {
		return minute >= h.Open || minute <= h.Close
	}
	return minute >= h.Open && minute <= h.Close
}

// OpenAt reports whether the window contains the time-of-day component of t.
func (h *OpeningHours) OpenAt(t time.Time) bool {
	return h.OpenAtMinute(t.Hour()*60 + t.Minute())
}

// hoursJSON is the wire form of an opening window, "HH:MM" strings.
type hoursJSON struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// MarshalJSON encodes the window as {"open":"HH:MM","close":"HH:MM"}.
func (h OpeningHours) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"open":%q,"close":%q}`,
		formatMinute(h.Open), formatMinute(h.Close))), nil
}

// UnmarshalJSON decodes {"open":"HH:MM","close":"HH:MM"}.
func (h *OpeningHours) UnmarshalJSON(data []byte) error {
	var raw hoursJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("opening hours: %w", err)
	}
	open, err := parseClockMinute(raw.Open)
	if err != nil {
		return fmt.Errorf("opening hours open: %w", err)
	}
	closing, err := parseClockMinute(raw.Close)
	if err != nil {
		return fmt.Errorf("opening hours close: %w", err)
	}
	h.Open = open
	h.Close = closing
	return nil
}

// parseClockMinute parses "HH:MM" into a minute of day.
func parseClockMinute(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("malformed clock value %q", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour out of range in %q", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute out of range in %q", s)
	}
	return hour*60 + minute, nil
}

func formatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
