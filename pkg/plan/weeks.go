package plan

import (
	"fmt"
	"time"
)

// StartWeek returns the ISO week number the grid's first row maps to for
// the given year. Years with 53 ISO weeks start at week 2 so the 52 rows
// line up with the rest of the year.
func StartWeek(year int) int {
	// Dec 28 always falls in the last ISO week of its year.
	_, wk := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	if wk == 53 {
		return 2
	}
	return 1
}

// isoWeek1Monday returns the Monday of ISO week 1, which is the week
// containing January 4.
func isoWeek1Monday(year int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7 // days since Monday
	return jan4.AddDate(0, 0, -offset)
}

// WeekDays returns the Monday-to-Friday day-number label for a grid row,
// e.g. "6-10" for the week of Jan 6. Rows outside 1..52 are rejected.
func WeekDays(year, row int) (string, error) {
	if err := checkWeek(row); err != nil {
		return "", err
	}

	isoWeek := StartWeek(year) + row - 1
	monday := isoWeek1Monday(year).AddDate(0, 0, (isoWeek-1)*7)
	friday := monday.AddDate(0, 0, 4)
	return fmt.Sprintf("%d-%d", monday.Day(), friday.Day()), nil
}
