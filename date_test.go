package carteira

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name       string
		start, end Date
		want       int
	}{
		{"same day", NewDate(2026, 8, 28), NewDate(2026, 8, 28), 0},
		{"one day", NewDate(2026, 8, 28), NewDate(2026, 8, 29), 1},
		{"across month", NewDate(2026, 8, 28), NewDate(2026, 9, 2), 5},
		{"full year", NewDate(2025, 8, 28), NewDate(2026, 8, 28), 365},
		{"leap year", NewDate(2024, 1, 1), NewDate(2025, 1, 1), 366},
		{"end before start clamps to zero", NewDate(2026, 8, 28), NewDate(2026, 8, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name       string
		start, end Date
		want       int
	}{
		{"same month", NewDate(2026, 8, 1), NewDate(2026, 8, 28), 0},
		{"next month", NewDate(2026, 8, 28), NewDate(2026, 9, 1), 1},
		{"ignores day of month", NewDate(2026, 1, 31), NewDate(2026, 2, 1), 1},
		{"across year", NewDate(2025, 11, 15), NewDate(2026, 2, 15), 3},
		{"negative", NewDate(2026, 5, 1), NewDate(2026, 3, 31), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthsBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("MonthsBetween(%v, %v) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestAddMonthsNormalizes(t *testing.T) {
	// Jan 31 + 1 month normalizes into March, per time.Date semantics.
	got := NewDate(2026, time.January, 31).AddMonths(1)
	want := NewDate(2026, time.March, 3)
	if got != want {
		t.Errorf("AddMonths(1) = %v, want %v", got, want)
	}
}

func TestDate_JSON(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		expected string
	}{
		{"zero date", Date{}, `""`},
		{"normal date", NewDate(2024, 5, 21), `"2024-05-21"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.date)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("json.Marshal() = %s, want %s", got, tt.expected)
			}
			var back Date
			if err := json.Unmarshal(got, &back); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}
			if back != tt.date {
				t.Errorf("round trip = %v, want %v", back, tt.date)
			}
		})
	}
}
