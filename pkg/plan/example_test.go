package plan_test

import (
	"fmt"

	"github.com/goalgrid/goalgrid/pkg/plan"
)

// Demonstrates the week-to-month mapping, including a catch-up week
// with no month.
func ExampleMonthForWeek() {
	for _, w := range []int{1, 12, 13, 14} {
		month, _ := plan.MonthForWeek(w)
		fmt.Printf("week %d: month %d\n", w, month)
	}
	// Output:
	// week 1: month 1
	// week 12: month 3
	// week 13: month 0
	// week 14: month 4
}

func ExampleCatchUpMessage() {
	msg, _ := plan.CatchUpMessage(26)
	fmt.Println(msg)
	// Output:
	// Close out Q2. Set Q3 goals.
}
