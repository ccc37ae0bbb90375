// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package engine

import (
	"testing"
	"time"
)

func TestOpeningHoursNilAlwaysOpen(t *testing.T) {
	var h *OpeningHours
	for _, m := range []int{0, 360, 719, 1439} {
		if !h.OpenAtMinute(m) {
			t.Errorf("nil hours: minute %d should be open", m)
		}
	}
}

func TestOpeningHoursAllDayNotation(t *testing.T) {
	h := &OpeningHours{Open: 0, Close: 23*60 + 59}
	for m := 0; m < 1440; m++ {
		if !h.OpenAtMinute(m) {
			t.Fatalf("24/7 window: minute %d should be open", m)
		}
	}
}

func TestOpeningHoursPlainWindow(t *testing.T) {
	h := &OpeningHours{Open: 8 * 60, Close: 17 * 60}

	tests := []struct {
		name   string
		minute int
		want   bool
	}{
		{"before open", 7*60 + 59, false},
		{"at open", 8 * 60, true},
		{"midday", 12 * 60, true},
		{"at close", 17 * 60, true},
		{"after close", 17*60 + 1, false},
		{"midnight", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.OpenAtMinute(tt.minute); got != tt.want {
				t.Errorf("OpenAtMinute(%d) = %v, want %v", tt.minute, got, tt.want)
			}
		})
	}
}

// A midnight-crossing window must be open exactly when the minute is at or
// after the opening minute, or at or before the closing minute.
func TestOpeningHoursMidnightWraparound(t *testing.T) {
	h := &OpeningHours{Open: 18 * 60, Close: 2 * 60}
	for m := 0; m < 1440; m++ {
		want := m >= 18*60 || m <= 2*60
		if got := h.OpenAtMinute(m); got != want {
			t.Fatalf("wraparound window: OpenAtMinute(%d) = %v, want %v", m, got, want)
		}
	}
}

func TestOpeningHoursOpenAtUsesTimeOfDayOnly(t *testing.T) {
	h := &OpeningHours{Open: 18 * 60, Close: 2 * 60}
	at := time.Date(2026, 3, 14, 20, 30, 0, 0, time.Local)
	if !h.OpenAt(at) {
		t.Error("20:30 should be inside 18:00-02:00")
	}
	at = time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	if h.OpenAt(at) {
		t.Error("12:00 should be outside 18:00-02:00")
	}
}

func TestOpeningHoursJSONRoundTrip(t *testing.T) {
	var h OpeningHours
	if err := h.UnmarshalJSON([]byte(`{"open":"08:30","close":"22:00"}`)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if h.Open != 8*60+30 || h.Close != 22*60 {
		t.Errorf("got open=%d close=%d", h.Open, h.Close)
	}

	if err := h.UnmarshalJSON([]byte(`{"open":"25:00","close":"22:00"}`)); err == nil {
		t.Error("hour 25 should be rejected")
	}
	if err := h.UnmarshalJSON([]byte(`{"open":"0800","close":"22:00"}`)); err == nil {
		t.Error("missing colon should be rejected")
	}
}
