package search

import (
	"testing"
	"time"
)

func TestParseQueryDate_ExplicitLayouts(t *testing.T) {
	tests := []struct {
		query                   string
		year, month, day        int
		hour, minute            int
		checkYear, checkTime    bool
	}{
		{query: "3/15/2024", year: 2024, month: 3, day: 15, checkYear: true},
		{query: "03/15/2024", year: 2024, month: 3, day: 15, checkYear: true},
		{query: "15/3/2024", year: 2024, month: 3, day: 15, checkYear: true},
		{query: "15-03-2024", year: 2024, month: 3, day: 15, checkYear: true},
		{query: "2024/03/15", year: 2024, month: 3, day: 15, checkYear: true},
		{query: "2024-03-15", year: 2024, month: 3, day: 15, checkYear: true},
		{query: "2024.03.15", year: 2024, month: 3, day: 15, checkYear: true},
		{query: "3/15", month: 3, day: 15},
		{query: "15/3", month: 3, day: 15}, // day-first once month is exhausted
		{query: "03/2024", year: 2024, month: 3, day: 1, checkYear: true},
		{query: "2024-03", year: 2024, month: 3, day: 1, checkYear: true},
		{query: "14:30", hour: 14, minute: 30, checkTime: true},
		{query: "2:30 PM", hour: 14, minute: 30, checkTime: true},
		{query: "3/15/2024 14:32", year: 2024, month: 3, day: 15, hour: 14, minute: 32, checkYear: true, checkTime: true},
		{query: "2024-03-15 14:32", year: 2024, month: 3, day: 15, hour: 14, minute: 32, checkYear: true, checkTime: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := ParseQueryDate(tt.query, time.UTC)
			if !got.IsDate {
				t.Fatalf("ParseQueryDate(%q) not recognized", tt.query)
			}
			if tt.checkYear && got.Value.Year() != tt.year {
				t.Errorf("year = %d, want %d", got.Value.Year(), tt.year)
			}
			if tt.month != 0 && int(got.Value.Month()) != tt.month {
				t.Errorf("month = %d, want %d", got.Value.Month(), tt.month)
			}
			if tt.day != 0 && got.Value.Day() != tt.day {
				t.Errorf("day = %d, want %d", got.Value.Day(), tt.day)
			}
			if tt.checkTime {
				if got.Value.Hour() != tt.hour || got.Value.Minute() != tt.minute {
					t.Errorf("time = %02d:%02d, want %02d:%02d",
						got.Value.Hour(), got.Value.Minute(), tt.hour, tt.minute)
				}
			}
		})
	}
}

func TestParseQueryDate_DigitRuns(t *testing.T) {
	tests := []struct {
		query            string
		year, month, day int
	}{
		{"20240315", 2024, 3, 15}, // year-first
		{"03152024", 2024, 3, 15}, // month-first-then-year
		{"15032024", 2024, 3, 15}, // day-first-then-year
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := ParseQueryDate(tt.query, time.UTC)
			if !got.IsDate {
				t.Fatalf("ParseQueryDate(%q) not recognized", tt.query)
			}
			y, m, d := got.Value.Date()
			if y != tt.year || int(m) != tt.month || d != tt.day {
				t.Errorf("date = %04d-%02d-%02d, want %04d-%02d-%02d", y, m, d, tt.year, tt.month, tt.day)
			}
		})
	}
}

func TestParseQueryDate_DigitRunWithSeparators(t *testing.T) {
	// Explicit layout wins before the digit-run heuristic sees it.
	got := ParseQueryDate("2024.03.15", time.UTC)
	if !got.IsDate || got.Value.Year() != 2024 {
		t.Fatalf("result = %+v", got)
	}
}

func TestParseQueryDate_Rejections(t *testing.T) {
	queries := []string{
		"",
		"acme",
		"hello world",
		"2024",     // bare 4-digit run is too short
		"123456",   // 6 digits can never satisfy an 8-digit interpretation
		"99999999", // year out of the 2000-2050 window
		"20241301", // month 13 fails year-first, and no other interpretation passes
		"3/15/24 at noon",
	}
	for _, q := range queries {
		if got := ParseQueryDate(q, time.UTC); got.IsDate {
			t.Errorf("ParseQueryDate(%q) = %v, want not-a-date", q, got.Value)
		}
	}
}

func TestParseQueryDate_FirstLayoutWins(t *testing.T) {
	// "1/2" is ambiguous; month-first sits earlier in the catalogue.
	got := ParseQueryDate("1/2", time.UTC)
	if !got.IsDate {
		t.Fatal("not recognized")
	}
	if int(got.Value.Month()) != 1 || got.Value.Day() != 2 {
		t.Errorf("got %02d/%02d, want month-first 01/02", got.Value.Month(), got.Value.Day())
	}
}
