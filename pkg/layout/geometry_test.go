package layout

import (
	"math"
	"testing"

	"github.com/goalgrid/goalgrid/pkg/config"
	"github.com/goalgrid/goalgrid/pkg/errors"
	"github.com/goalgrid/goalgrid/pkg/plan"
)

func defaultGeometry(t *testing.T) *Geometry {
	t.Helper()
	cfg := config.Default()
	cfg.ApplyDefaults()
	g, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return g
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestComputeDefaultFits(t *testing.T) {
	cfg := config.Default()
	g := defaultGeometry(t)

	usableW := g.PageW - Inches(cfg.Page.Margins.Left) - Inches(cfg.Page.Margins.Right)
	if g.GridWidth() > usableW {
		t.Errorf("grid width %v exceeds usable width %v", g.GridWidth(), usableW)
	}

	usableH := g.PageH - Inches(cfg.Page.Margins.Top) - Inches(cfg.Page.Margins.Bottom)
	contentH := g.Header.H + float64(plan.WeeksPerYear)*g.RowHeight()
	if contentH > usableH {
		t.Errorf("content height %v exceeds usable height %v", contentH, usableH)
	}
}

func TestComputeCentersGrid(t *testing.T) {
	cfg := config.Default()
	g := defaultGeometry(t)

	marginLeft := Inches(cfg.Page.Margins.Left)
	marginRight := Inches(cfg.Page.Margins.Right)
	if g.GridLeft() < marginLeft {
		t.Errorf("grid left %v intrudes into left margin %v", g.GridLeft(), marginLeft)
	}

	leftGap := g.GridLeft() - marginLeft
	rightGap := (g.PageW - marginRight) - g.GridRight()
	if !almostEqual(leftGap, rightGap) {
		t.Errorf("grid not centered: left gap %v, right gap %v", leftGap, rightGap)
	}
}

func TestComputeColumnOrder(t *testing.T) {
	g := defaultGeometry(t)

	prev := g.ColumnX(ColQuarterly)
	for _, c := range []Column{ColMonthly, ColWeekly, ColCheckbox} {
		if got := g.ColumnX(c); got != prev+g.ColumnWidth(c-1) {
			t.Errorf("column %d x = %v, want %v", c, got, prev+g.ColumnWidth(c-1))
		}
		prev = g.ColumnX(c)
	}
	if !almostEqual(g.GridRight(), g.ColumnX(ColCheckbox)+g.ColumnWidth(ColCheckbox)) {
		t.Errorf("GridRight() = %v inconsistent with checkbox column", g.GridRight())
	}
}

func TestComputeWidthOverflow(t *testing.T) {
	cfg := config.Default()
	cfg.ApplyDefaults()
	// Bypass config validation to prove the engine checks for itself.
	cfg.Layout.WeeklyColumnWidth = 6.0

	_, err := Compute(cfg)
	if !errors.Is(err, errors.ErrCodeLayoutOverflow) {
		t.Errorf("Compute error = %v, want LAYOUT_OVERFLOW", err)
	}
}

func TestComputeHeightOverflow(t *testing.T) {
	cfg := config.Default()
	cfg.ApplyDefaults()
	// 52 * 0.2in + 0.5in header = 10.9in > 10in usable.
	cfg.Layout.RowHeight = 0.2

	_, err := Compute(cfg)
	if !errors.Is(err, errors.ErrCodeLayoutOverflow) {
		t.Errorf("Compute error = %v, want LAYOUT_OVERFLOW", err)
	}
}

func TestRowPositions(t *testing.T) {
	g := defaultGeometry(t)

	row1, err := g.Row(1)
	if err != nil {
		t.Fatalf("Row(1): %v", err)
	}
	if !almostEqual(row1.Y, g.Header.Bottom()) {
		t.Errorf("row 1 top = %v, want header bottom %v", row1.Y, g.Header.Bottom())
	}

	for w := 2; w <= plan.WeeksPerYear; w++ {
		prev, _ := g.Row(w - 1)
		row, err := g.Row(w)
		if err != nil {
			t.Fatalf("Row(%d): %v", w, err)
		}
		if !almostEqual(row.Y, prev.Bottom()) {
			t.Errorf("row %d top = %v, want %v", w, row.Y, prev.Bottom())
		}
	}

	if _, err := g.Row(53); !errors.Is(err, errors.ErrCodeWeekOutOfRange) {
		t.Errorf("Row(53) error = %v, want WEEK_OUT_OF_RANGE", err)
	}
}

func TestQuarterBox(t *testing.T) {
	g := defaultGeometry(t)

	box, err := g.QuarterBox(1)
	if err != nil {
		t.Fatalf("QuarterBox(1): %v", err)
	}

	row1, _ := g.Row(1)
	row13, _ := g.Row(13)
	if !almostEqual(box.Y, row1.Y) {
		t.Errorf("Q1 box top = %v, want row 1 top %v", box.Y, row1.Y)
	}
	if !almostEqual(box.Bottom(), row13.Bottom()) {
		t.Errorf("Q1 box bottom = %v, want row 13 bottom %v", box.Bottom(), row13.Bottom())
	}
	if !almostEqual(box.X, g.GridLeft()) || !almostEqual(box.Right(), g.GridRight()) {
		t.Errorf("Q1 box spans %v..%v, want full grid %v..%v", box.X, box.Right(), g.GridLeft(), g.GridRight())
	}

	if _, err := g.QuarterBox(0); !errors.Is(err, errors.ErrCodeQuarterOutOfRange) {
		t.Errorf("QuarterBox(0) error = %v, want QUARTER_OUT_OF_RANGE", err)
	}
}

func TestMonthBox(t *testing.T) {
	g := defaultGeometry(t)

	box, err := g.MonthBox(1)
	if err != nil {
		t.Fatalf("MonthBox(1): %v", err)
	}

	row1, _ := g.Row(1)
	row4, _ := g.Row(4)
	if !almostEqual(box.Y, row1.Y) || !almostEqual(box.Bottom(), row4.Bottom()) {
		t.Errorf("Jan box spans rows %v..%v, want %v..%v", box.Y, box.Bottom(), row1.Y, row4.Bottom())
	}
	if !almostEqual(box.X, g.ColumnX(ColMonthly)) {
		t.Errorf("Jan box left = %v, want monthly column %v (quarterly column excluded)", box.X, g.ColumnX(ColMonthly))
	}
	if !almostEqual(box.Right(), g.GridRight()) {
		t.Errorf("Jan box right = %v, want grid right %v", box.Right(), g.GridRight())
	}

	// April starts after the Q1 catch-up week.
	april, err := g.MonthBox(4)
	if err != nil {
		t.Fatalf("MonthBox(4): %v", err)
	}
	row14, _ := g.Row(14)
	if !almostEqual(april.Y, row14.Y) {
		t.Errorf("Apr box top = %v, want row 14 top %v", april.Y, row14.Y)
	}
}

func TestCheckboxAlwaysSquare(t *testing.T) {
	cfg := config.Default()
	cfg.ApplyDefaults()
	// Deliberately larger than the row height; the engine must not trust it.
	cfg.Layout.CheckboxSize = 0.5

	g, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	for _, w := range []int{1, 26, 52} {
		box, err := g.Checkbox(w)
		if err != nil {
			t.Fatalf("Checkbox(%d): %v", w, err)
		}
		if box.W != box.H {
			t.Errorf("Checkbox(%d) = %vx%v, want square", w, box.W, box.H)
		}
		if box.H > g.RowHeight() {
			t.Errorf("Checkbox(%d) height %v exceeds row height %v", w, box.H, g.RowHeight())
		}

		cell, _ := g.Cell(w, ColCheckbox)
		if !almostEqual(box.CenterX(), cell.CenterX()) || !almostEqual(box.CenterY(), cell.CenterY()) {
			t.Errorf("Checkbox(%d) not centered in its cell", w)
		}
	}
}
