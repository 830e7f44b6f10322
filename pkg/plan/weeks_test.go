package plan

import (
	"testing"

	"github.com/goalgrid/goalgrid/pkg/errors"
)

func TestStartWeek(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2015, 2}, // 53 ISO weeks
		{2020, 2}, // 53 ISO weeks
		{2024, 1},
		{2025, 1},
		{2026, 2}, // Jan 1 is a Thursday: 53 ISO weeks
		{2027, 1},
	}

	for _, tt := range tests {
		if got := StartWeek(tt.year); got != tt.want {
			t.Errorf("StartWeek(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestWeekDays(t *testing.T) {
	tests := []struct {
		name string
		year int
		row  int
		want string
	}{
		// ISO week 1 of 2025 runs Mon Dec 30 2024 - Sun Jan 5 2025.
		{name: "2025 row 1 spans year boundary", year: 2025, row: 1, want: "30-3"},
		{name: "2025 row 2", year: 2025, row: 2, want: "6-10"},
		{name: "2025 row 3", year: 2025, row: 3, want: "13-17"},
		// 2026 has 53 ISO weeks, so row 1 is ISO week 2 (Mon Jan 5).
		{name: "2026 row 1 starts at ISO week 2", year: 2026, row: 1, want: "5-9"},
		{name: "2026 row 2", year: 2026, row: 2, want: "12-16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WeekDays(tt.year, tt.row)
			if err != nil {
				t.Fatalf("WeekDays(%d, %d): %v", tt.year, tt.row, err)
			}
			if got != tt.want {
				t.Errorf("WeekDays(%d, %d) = %q, want %q", tt.year, tt.row, got, tt.want)
			}
		})
	}
}

func TestWeekDaysOutOfRange(t *testing.T) {
	for _, row := range []int{0, 53} {
		if _, err := WeekDays(2025, row); !errors.Is(err, errors.ErrCodeWeekOutOfRange) {
			t.Errorf("WeekDays(2025, %d) error = %v, want WEEK_OUT_OF_RANGE", row, err)
		}
	}
}
