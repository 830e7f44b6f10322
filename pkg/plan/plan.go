// Package plan models the annual planning calendar behind the goal
// tracker grid.
//
// A year is 52 planning weeks: four quarters of 13 weeks each. The last
// week of every quarter (13, 26, 39, 52) is a catch-up week reserved for
// quarter-end reflection and carries no month. The remaining 48 weeks map
// onto 12 months of exactly 4 planning weeks each.
package plan

import (
	"fmt"

	"github.com/goalgrid/goalgrid/pkg/errors"
)

// Calendar constants for the planning year.
const (
	WeeksPerYear    = 52
	WeeksPerQuarter = 13
	WeeksPerMonth   = 4
	MonthsPerYear   = 12
	QuartersPerYear = 4
)

// Week is one row of the planning year. Month is 0 for catch-up weeks.
type Week struct {
	Number  int
	Quarter int
	Month   int
	CatchUp bool
}

// checkWeek validates a week number against the 1..52 range.
func checkWeek(w int) error {
	if w < 1 || w > WeeksPerYear {
		return errors.New(errors.ErrCodeWeekOutOfRange, "week %d out of range 1..%d", w, WeeksPerYear)
	}
	return nil
}

// IsCatchUp reports whether w is one of the four quarter-end catch-up
// weeks. Out-of-range weeks are never catch-up weeks.
func IsCatchUp(w int) bool {
	return w >= 1 && w <= WeeksPerYear && w%WeeksPerQuarter == 0
}

// QuarterForWeek returns the quarter (1..4) containing week w.
func QuarterForWeek(w int) (int, error) {
	if err := checkWeek(w); err != nil {
		return 0, err
	}
	return (w-1)/WeeksPerQuarter + 1, nil
}

// MonthForWeek returns the month (1..12) for week w, or 0 for catch-up
// weeks. Non-catch-up weeks are counted 4 per month, skipping the four
// catch-up weeks from the running count.
func MonthForWeek(w int) (int, error) {
	if err := checkWeek(w); err != nil {
		return 0, err
	}
	if IsCatchUp(w) {
		return 0, nil
	}

	// Number of catch-up weeks before w.
	skipped := (w - 1) / WeeksPerQuarter
	idx := w - skipped // 1..48
	return (idx-1)/WeeksPerMonth + 1, nil
}

// CatchUpMessage returns the guidance string for a catch-up week.
func CatchUpMessage(w int) (string, error) {
	if err := checkWeek(w); err != nil {
		return "", err
	}
	if !IsCatchUp(w) {
		return "", errors.New(errors.ErrCodeWeekOutOfRange, "week %d is not a catch-up week", w)
	}

	q := (w-1)/WeeksPerQuarter + 1
	if q == QuartersPerYear {
		return "Close out Q4. Set next year's goals.", nil
	}
	return fmt.Sprintf("Close out Q%d. Set Q%d goals.", q, q+1), nil
}

// Weeks returns all 52 week entries in order.
func Weeks() []Week {
	weeks := make([]Week, WeeksPerYear)
	for w := 1; w <= WeeksPerYear; w++ {
		quarter, _ := QuarterForWeek(w)
		month, _ := MonthForWeek(w)
		weeks[w-1] = Week{
			Number:  w,
			Quarter: quarter,
			Month:   month,
			CatchUp: IsCatchUp(w),
		}
	}
	return weeks
}

// QuarterWeeks returns the first and last week of quarter q.
func QuarterWeeks(q int) (first, last int, err error) {
	if q < 1 || q > QuartersPerYear {
		return 0, 0, errors.New(errors.ErrCodeQuarterOutOfRange, "quarter %d out of range 1..%d", q, QuartersPerYear)
	}
	first = (q-1)*WeeksPerQuarter + 1
	return first, first + WeeksPerQuarter - 1, nil
}

// MonthWeeks returns the week numbers belonging to month m, in order.
// Every month has exactly 4 weeks; catch-up weeks belong to no month.
func MonthWeeks(m int) ([]int, error) {
	if m < 1 || m > MonthsPerYear {
		return nil, errors.New(errors.ErrCodeMonthOutOfRange, "month %d out of range 1..%d", m, MonthsPerYear)
	}

	weeks := make([]int, 0, WeeksPerMonth)
	for w := 1; w <= WeeksPerYear; w++ {
		if month, _ := MonthForWeek(w); month == m {
			weeks = append(weeks, w)
		}
	}
	return weeks, nil
}

// monthAbbrevs are the three-letter month labels drawn in the monthly
// column.
var monthAbbrevs = [MonthsPerYear]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthAbbrev returns the three-letter abbreviation for month m.
func MonthAbbrev(m int) (string, error) {
	if m < 1 || m > MonthsPerYear {
		return "", errors.New(errors.ErrCodeMonthOutOfRange, "month %d out of range 1..%d", m, MonthsPerYear)
	}
	return monthAbbrevs[m-1], nil
}
