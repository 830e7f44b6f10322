package layout

import (
	"github.com/goalgrid/goalgrid/pkg/config"
	"github.com/goalgrid/goalgrid/pkg/errors"
	"github.com/goalgrid/goalgrid/pkg/plan"
)

// PointsPerInch converts configured inches to PDF points.
const PointsPerInch = 72.0

// headerHeightIn is the vertical space reserved for the title and goal
// lines above the grid.
const headerHeightIn = 0.5

const eps = 1e-9

// Column identifies one of the four grid columns, left to right.
type Column int

const (
	ColQuarterly Column = iota
	ColMonthly
	ColWeekly
	ColCheckbox
	numColumns
)

// Geometry holds the absolute page coordinates for every grid element.
// Compute is the only constructor; a Geometry is never mutated after it
// is built.
type Geometry struct {
	// PageW and PageH are the page dimensions in points.
	PageW, PageH float64
	// Header is the block between the top margin and the grid.
	Header Rect

	colX    [numColumns]float64
	colW    [numColumns]float64
	gridTop float64
	rowH    float64
	boxSide float64
}

// Inches converts a configured inch value to points.
func Inches(in float64) float64 { return in * PointsPerInch }

// Compute derives the full page geometry from a validated configuration.
//
// The grid is centered horizontally inside the usable width. Two overflow
// conditions are rejected before any drawing can happen: a grid wider
// than the usable width, and 52 rows plus the header taller than the
// usable height.
func Compute(cfg *config.Config) (*Geometry, error) {
	g := &Geometry{
		PageW: Inches(config.LetterWidthIn),
		PageH: Inches(config.LetterHeightIn),
	}

	marginTop := Inches(cfg.Page.Margins.Top)
	marginBottom := Inches(cfg.Page.Margins.Bottom)
	marginLeft := Inches(cfg.Page.Margins.Left)
	marginRight := Inches(cfg.Page.Margins.Right)

	g.colW = [numColumns]float64{
		ColQuarterly: Inches(cfg.Layout.QuarterlyColumnWidth),
		ColMonthly:   Inches(cfg.Layout.MonthlyColumnWidth),
		ColWeekly:    Inches(cfg.Layout.WeeklyColumnWidth),
		ColCheckbox:  Inches(cfg.Layout.CheckboxSize),
	}

	gridW := 0.0
	for _, w := range g.colW {
		gridW += w
	}
	usableW := g.PageW - marginLeft - marginRight
	if gridW > usableW+eps {
		return nil, errors.New(errors.ErrCodeLayoutOverflow,
			"grid width %.2fpt exceeds usable width %.2fpt by %.2fpt", gridW, usableW, gridW-usableW)
	}

	// Center the grid inside the usable width.
	x := marginLeft + (usableW-gridW)/2
	for c := ColQuarterly; c < numColumns; c++ {
		g.colX[c] = x
		x += g.colW[c]
	}

	headerH := Inches(headerHeightIn)
	g.rowH = Inches(cfg.Layout.RowHeight)
	usableH := g.PageH - marginTop - marginBottom
	contentH := headerH + float64(plan.WeeksPerYear)*g.rowH
	if contentH > usableH+eps {
		return nil, errors.New(errors.ErrCodeLayoutOverflow,
			"header plus %d rows need %.2fpt but only %.2fpt is usable", plan.WeeksPerYear, contentH, usableH)
	}

	g.Header = Rect{X: g.colX[ColQuarterly], Y: marginTop, W: gridW, H: headerH}
	g.gridTop = marginTop + headerH

	// Checkboxes are always square, whatever the configured size says:
	// the side is clamped to the row height.
	g.boxSide = g.colW[ColCheckbox]
	if g.boxSide > g.rowH {
		g.boxSide = g.rowH
	}

	return g, nil
}

// GridLeft returns the x-coordinate of the grid's left edge.
func (g *Geometry) GridLeft() float64 { return g.colX[ColQuarterly] }

// GridRight returns the x-coordinate of the grid's right edge.
func (g *Geometry) GridRight() float64 { return g.colX[ColCheckbox] + g.colW[ColCheckbox] }

// GridWidth returns the total width of the four columns.
func (g *Geometry) GridWidth() float64 { return g.GridRight() - g.GridLeft() }

// ColumnX returns the left edge of a column.
func (g *Geometry) ColumnX(c Column) float64 { return g.colX[c] }

// ColumnWidth returns the width of a column.
func (g *Geometry) ColumnWidth(c Column) float64 { return g.colW[c] }

// RowHeight returns the height of one week row.
func (g *Geometry) RowHeight() float64 { return g.rowH }

// Row returns the full-width rectangle of week w's row.
func (g *Geometry) Row(w int) (Rect, error) {
	if w < 1 || w > plan.WeeksPerYear {
		return Rect{}, errors.New(errors.ErrCodeWeekOutOfRange, "week %d out of range 1..%d", w, plan.WeeksPerYear)
	}
	return Rect{
		X: g.GridLeft(),
		Y: g.gridTop + float64(w-1)*g.rowH,
		W: g.GridWidth(),
		H: g.rowH,
	}, nil
}

// Cell returns the rectangle where week w's row crosses column c.
func (g *Geometry) Cell(w int, c Column) (Rect, error) {
	row, err := g.Row(w)
	if err != nil {
		return Rect{}, err
	}
	return Rect{X: g.colX[c], Y: row.Y, W: g.colW[c], H: row.H}, nil
}

// QuarterBox returns the bounding rectangle of quarter q: its 13 rows
// across all four columns.
func (g *Geometry) QuarterBox(q int) (Rect, error) {
	first, last, err := plan.QuarterWeeks(q)
	if err != nil {
		return Rect{}, err
	}
	top, _ := g.Row(first)
	bottom, _ := g.Row(last)
	return Rect{
		X: g.GridLeft(),
		Y: top.Y,
		W: g.GridWidth(),
		H: bottom.Bottom() - top.Y,
	}, nil
}

// MonthBox returns the bounding rectangle of month m: its 4 rows across
// the monthly, weekly and checkbox columns only.
func (g *Geometry) MonthBox(m int) (Rect, error) {
	weeks, err := plan.MonthWeeks(m)
	if err != nil {
		return Rect{}, err
	}
	top, _ := g.Row(weeks[0])
	bottom, _ := g.Row(weeks[len(weeks)-1])
	return Rect{
		X: g.colX[ColMonthly],
		Y: top.Y,
		W: g.GridRight() - g.colX[ColMonthly],
		H: bottom.Bottom() - top.Y,
	}, nil
}

// Checkbox returns the square checkbox rectangle for week w, centered in
// the checkbox column cell. Width and height are always equal.
func (g *Geometry) Checkbox(w int) (Rect, error) {
	cell, err := g.Cell(w, ColCheckbox)
	if err != nil {
		return Rect{}, err
	}
	return Rect{
		X: cell.CenterX() - g.boxSide/2,
		Y: cell.CenterY() - g.boxSide/2,
		W: g.boxSide,
		H: g.boxSide,
	}, nil
}
