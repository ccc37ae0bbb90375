// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package engine

import "testing"

func TestExtractTime(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		hour    int
		minute  int
		matched bool
	}{
		{"pm english", "mở cửa lúc 3pm không", 15, 0, true},
		{"pm vietnamese chieu", "3 giờ chiều", 15, 0, true},
		{"pm vietnamese toi", "8h tối có quán nào mở", 20, 0, true},
		{"pm vietnamese dem", "9 đêm", 21, 0, true},
		{"pm twelve stays twelve", "12 giờ chiều", 12, 0, true},
		{"am english", "7am", 7, 0, true},
		{"am vietnamese", "7 giờ sáng", 7, 0, true},
		{"am twelve is midnight", "12 giờ sáng", 0, 0, true},
		{"generic h form", "quán mở lúc 20h30", 20, 30, true},
		{"generic gio form", "20 giờ", 20, 0, true},
		{"generic bare h", "mở lúc 9h", 9, 0, true},
		{"no time", "quán cà phê đẹp", 0, 0, false},
		{"out of range generic", "99 giờ", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, ok := ExtractTime(tt.query)
			if ok != tt.matched {
				t.Fatalf("ExtractTime(%q) matched=%v, want %v", tt.query, ok, tt.matched)
			}
			if !ok {
				return
			}
			if hour != tt.hour || minute != tt.minute {
				t.Errorf("ExtractTime(%q) = %02d:%02d, want %02d:%02d",
					tt.query, hour, minute, tt.hour, tt.minute)
			}
		})
	}
}

// A PM mention that adjusts out of range is discarded without falling back
// to the generic pattern.
func TestExtractTimeDiscardsOutOfRangePM(t *testing.T) {
	if _, _, ok := ExtractTime("20h tối"); ok {
		t.Error("20h tối adjusts to 32 and must be discarded")
	}
}

// Round-trip with the availability evaluator: "20h30" against a place open
// 18:00-02:00 is open.
func TestExtractTimeRoundTripWithHours(t *testing.T) {
	hour, minute, ok := ExtractTime("quán nào mở lúc 20h30")
	if !ok {
		t.Fatal("expected a time match")
	}
	h := &OpeningHours{Open: 18 * 60, Close: 2 * 60}
	if !h.OpenAtMinute(hour*60 + minute) {
		t.Errorf("20:30 should be open for an 18:00-02:00 window")
	}
}
