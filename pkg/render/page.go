package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goalgrid/goalgrid/pkg/config"
	"github.com/goalgrid/goalgrid/pkg/errors"
	"github.com/goalgrid/goalgrid/pkg/layout"
	"github.com/goalgrid/goalgrid/pkg/plan"
)

// Drawing offsets carried over from the print design, in inches.
const (
	padX          = 0.1    // horizontal padding for labels inside a column
	linePad       = 0.05   // inset of writing lines from column edges
	goalLineGap   = 0.6    // gap between the "Goal:" label and its line
	goalLineDrop  = 0.20   // second goal line below the first
	titleDrop     = 0.10   // title baseline below the header top
	weeklyTrimL   = 0.325  // left trim of weekly writing lines
	weeklyTrimR   = 0.2375 // right trim of weekly writing lines
	dayBandStart  = 0.03   // day-range label band offset from column left
	dayBandWidth  = 0.25   // day-range label band width
	guidanceStart = 0.43   // catch-up guidance offset from column left
)

// Stroke widths in points.
const (
	quarterBoxStroke = 1.0
	monthBoxStroke   = 0.75
	writingLineWidth = 0.5
	checkboxStroke   = 1.0
)

// linesPerQuarter is how many writable goal lines each quarter gets.
const linesPerQuarter = 6

// Document is a fully composed, not yet written tracker page.
type Document struct {
	canvas *Canvas
}

// Generate composes the tracker page for the given year. All geometry is
// validated before the first drawing call; a nil Document is returned on
// any failure.
func Generate(cfg *config.Config, year int) (*Document, error) {
	geo, err := layout.Compute(cfg)
	if err != nil {
		return nil, err
	}

	p := &page{
		cfg:    cfg,
		geo:    geo,
		canvas: NewCanvas(geo.PageW, geo.PageH),
		year:   year,
	}
	if err := p.compose(); err != nil {
		return nil, err
	}
	if err := p.canvas.Err(); err != nil {
		return nil, err
	}
	return &Document{canvas: p.canvas}, nil
}

// Write writes the document to w and closes it.
func (d *Document) Write(w io.Writer) error {
	return d.canvas.Output(w)
}

// WriteFile writes the document to path, creating parent directories as
// needed.
func (d *Document) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "create output directory %s", dir)
		}
	}
	return d.canvas.OutputFile(path)
}

// page carries the read-only state shared by the drawing passes.
type page struct {
	cfg    *config.Config
	geo    *layout.Geometry
	canvas *Canvas
	year   int
}

// compose draws all sections in a single linear pass: header first, then
// grid chrome, then the four columns left to right.
func (p *page) compose() error {
	p.drawHeader()
	if err := p.drawGrid(); err != nil {
		return err
	}
	if err := p.drawQuarterlyColumn(); err != nil {
		return err
	}
	if err := p.drawMonthlyColumn(); err != nil {
		return err
	}
	if err := p.drawWeeklyColumn(); err != nil {
		return err
	}
	return p.drawCheckboxColumn()
}

// drawHeader renders the title block and the goal label with two
// writable lines. The left 40% of the grid width holds the title, the
// right 60% the goal lines.
func (p *page) drawHeader() {
	fonts := p.cfg.Fonts
	text := p.cfg.Colors.Text

	gridLeft := p.geo.GridLeft()
	gridRight := p.geo.GridRight()
	rightX := gridLeft + p.geo.GridWidth()*0.4
	pad := layout.Inches(padX)

	// Text draws at the baseline; push it down by an approximate ascent
	// so the glyphs stay inside the header block.
	baseline := p.geo.Header.Y + layout.Inches(titleDrop) + fonts.TitleSize*0.6

	title := fmt.Sprintf("Goal Tracker for %d", p.year)
	p.canvas.Text(title, gridLeft+pad, baseline, fonts.Family, FontBold, fonts.TitleSize, text)

	p.canvas.Text("Goal:", rightX+pad, baseline, fonts.Family, FontRegular, fonts.GoalLineSize, text)

	lineStart := rightX + pad + layout.Inches(goalLineGap)
	lineEnd := gridRight - pad
	p.canvas.Line(lineStart, baseline, lineEnd, baseline, writingLineWidth, text)
	second := baseline + layout.Inches(goalLineDrop)
	p.canvas.Line(lineStart, second, lineEnd, second, writingLineWidth, text)
}

// drawGrid renders the row stripes, the weekly writing lines and the
// quarter/month grouping boxes.
func (p *page) drawGrid() error {
	colors := p.cfg.Colors

	if p.cfg.Layout.ShowRowStripes {
		if err := p.drawRowStripes(); err != nil {
			return err
		}
	}

	// A trimmed writing line at the bottom of every week row, spanning
	// the weekly and checkbox columns.
	for w := 1; w <= plan.WeeksPerYear; w++ {
		cell, err := p.geo.Cell(w, layout.ColWeekly)
		if err != nil {
			return err
		}
		y := cell.Bottom()
		start := cell.X + layout.Inches(weeklyTrimL)
		end := p.geo.GridRight() - layout.Inches(weeklyTrimR)
		p.canvas.Line(start, y, end, y, p.cfg.Layout.WeeklyLineWeight, colors.Text)
	}

	for q := 1; q <= plan.QuartersPerYear; q++ {
		box, err := p.geo.QuarterBox(q)
		if err != nil {
			return err
		}
		p.canvas.Rect(box, quarterBoxStroke, colors.GridLine)
	}

	for m := 1; m <= plan.MonthsPerYear; m++ {
		box, err := p.geo.MonthBox(m)
		if err != nil {
			return err
		}
		p.canvas.Rect(box, monthBoxStroke, colors.GridLine)
	}

	return nil
}

// drawRowStripes shades the monthly column on even months and the weekly
// column on even weeks.
func (p *page) drawRowStripes() error {
	stripe := *p.cfg.Colors.RowStripe

	for w := 1; w <= plan.WeeksPerYear; w++ {
		month, err := plan.MonthForWeek(w)
		if err != nil {
			return err
		}
		if month > 0 && month%2 == 0 {
			cell, err := p.geo.Cell(w, layout.ColMonthly)
			if err != nil {
				return err
			}
			p.canvas.FillRect(cell, stripe)
		}
		if w%2 == 0 {
			cell, err := p.geo.Cell(w, layout.ColWeekly)
			if err != nil {
				return err
			}
			p.canvas.FillRect(cell, stripe)
		}
	}
	return nil
}

// drawQuarterlyColumn renders the quarter labels and six writable goal
// lines on the first six rows of each quarter. Rows seven through
// thirteen stay blank for free-form notes.
func (p *page) drawQuarterlyColumn() error {
	fonts := p.cfg.Fonts
	text := p.cfg.Colors.Text
	labelPad := layout.Inches(p.cfg.Layout.LabelPaddingY)

	colX := p.geo.ColumnX(layout.ColQuarterly)
	colW := p.geo.ColumnWidth(layout.ColQuarterly)
	inset := layout.Inches(linePad)

	for q := 1; q <= plan.QuartersPerYear; q++ {
		first, _, err := plan.QuarterWeeks(q)
		if err != nil {
			return err
		}
		top, err := p.geo.Row(first)
		if err != nil {
			return err
		}

		label := fmt.Sprintf("Q%d", q)
		baseline := top.CenterY() + labelPad
		p.canvas.Text(label, colX+layout.Inches(padX), baseline, fonts.Family, FontRegular, fonts.QuarterLabelSize, text)

		for line := 0; line < linesPerQuarter; line++ {
			row, err := p.geo.Row(first + line)
			if err != nil {
				return err
			}
			y := row.Bottom()
			p.canvas.Line(colX+inset, y, colX+colW-inset, y, writingLineWidth, text)
		}
	}
	return nil
}

// drawMonthlyColumn renders the month labels and one writable line per
// constituent week. Catch-up rows belong to no month and stay completely
// blank here.
func (p *page) drawMonthlyColumn() error {
	fonts := p.cfg.Fonts
	text := p.cfg.Colors.Text
	labelPad := layout.Inches(p.cfg.Layout.LabelPaddingY)

	colX := p.geo.ColumnX(layout.ColMonthly)
	colW := p.geo.ColumnWidth(layout.ColMonthly)
	inset := layout.Inches(linePad)

	for m := 1; m <= plan.MonthsPerYear; m++ {
		weeks, err := plan.MonthWeeks(m)
		if err != nil {
			return err
		}
		top, err := p.geo.Row(weeks[0])
		if err != nil {
			return err
		}

		abbrev, err := plan.MonthAbbrev(m)
		if err != nil {
			return err
		}
		baseline := top.CenterY() + labelPad
		p.canvas.Text(abbrev, colX+layout.Inches(padX), baseline, fonts.Family, FontRegular, fonts.MonthLabelSize, text)

		for _, w := range weeks {
			row, err := p.geo.Row(w)
			if err != nil {
				return err
			}
			y := row.Bottom()
			p.canvas.Line(colX+inset, y, colX+colW-inset, y, writingLineWidth, text)
		}
	}
	return nil
}

// drawWeeklyColumn renders the Monday-to-Friday day-range label on every
// row, right-aligned within a narrow band at the column start, plus the
// oblique guidance text on catch-up rows.
func (p *page) drawWeeklyColumn() error {
	fonts := p.cfg.Fonts
	weekCol := *p.cfg.Colors.WeekNumber
	labelPad := layout.Inches(p.cfg.Layout.LabelPaddingY)

	colX := p.geo.ColumnX(layout.ColWeekly)
	bandEnd := colX + layout.Inches(dayBandStart) + layout.Inches(dayBandWidth)

	for w := 1; w <= plan.WeeksPerYear; w++ {
		row, err := p.geo.Row(w)
		if err != nil {
			return err
		}
		baseline := row.CenterY() + labelPad

		days, err := plan.WeekDays(p.year, w)
		if err != nil {
			return err
		}
		daySize := fonts.WeekNumberSize - 1
		if daySize < 1 {
			daySize = fonts.WeekNumberSize
		}
		p.canvas.TextRight(days, bandEnd, baseline, fonts.Family, FontRegular, daySize, weekCol)

		if plan.IsCatchUp(w) {
			msg, err := plan.CatchUpMessage(w)
			if err != nil {
				return err
			}
			p.canvas.Text(msg, colX+layout.Inches(guidanceStart), baseline, fonts.Family, FontOblique, fonts.WeekNumberSize, weekCol)
		}
	}
	return nil
}

// drawCheckboxColumn renders one square outline per row.
func (p *page) drawCheckboxColumn() error {
	text := p.cfg.Colors.Text

	for w := 1; w <= plan.WeeksPerYear; w++ {
		box, err := p.geo.Checkbox(w)
		if err != nil {
			return err
		}
		p.canvas.Rect(box, checkboxStroke, text)
	}
	return nil
}
