// Package render draws the goal tracker page onto a PDF canvas.
//
// It is split into two layers: Canvas, a thin wrapper over gofpdf that
// issues line/rectangle/text primitives in page coordinates, and the
// page composer in page.go, which walks the precomputed geometry and
// calls the primitives in a single linear pass.
package render

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/goalgrid/goalgrid/pkg/config"
	"github.com/goalgrid/goalgrid/pkg/errors"
	"github.com/goalgrid/goalgrid/pkg/layout"
)

// FontStyle selects a variant of the configured font family.
type FontStyle string

const (
	FontRegular FontStyle = ""
	FontBold    FontStyle = "B"
	FontOblique FontStyle = "I"
)

// Canvas wraps a single-page PDF document. Coordinates are in points
// with the origin at the top-left corner. Every primitive resets stroke
// and fill colors to black afterwards, so calls stay order-independent.
type Canvas struct {
	pdf *gofpdf.Fpdf
}

// NewCanvas creates a one-page portrait canvas of the given size in
// points.
func NewCanvas(pageW, pageH float64) *Canvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()
	return &Canvas{pdf: pdf}
}

// Line draws a straight line with the given stroke width and color.
func (c *Canvas) Line(x1, y1, x2, y2, width float64, col config.RGB) {
	c.pdf.SetLineWidth(width)
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.Line(x1, y1, x2, y2)
	c.pdf.SetDrawColor(0, 0, 0)
}

// DashedLine draws a line with the given on/off dash pattern in points.
func (c *Canvas) DashedLine(x1, y1, x2, y2, width float64, col config.RGB, dash []float64) {
	c.pdf.SetDashPattern(dash, 0)
	c.Line(x1, y1, x2, y2, width, col)
	c.pdf.SetDashPattern([]float64{}, 0)
}

// Rect draws a rectangle outline.
func (c *Canvas) Rect(r layout.Rect, width float64, col config.RGB) {
	c.pdf.SetLineWidth(width)
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.Rect(r.X, r.Y, r.W, r.H, "D")
	c.pdf.SetDrawColor(0, 0, 0)
}

// FillRect draws a filled rectangle without an outline.
func (c *Canvas) FillRect(r layout.Rect, col config.RGB) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
	c.pdf.Rect(r.X, r.Y, r.W, r.H, "F")
	c.pdf.SetFillColor(0, 0, 0)
}

// Text draws s with its baseline at (x, y), extending to the right.
func (c *Canvas) Text(s string, x, y float64, family string, style FontStyle, size float64, col config.RGB) {
	c.pdf.SetFont(family, string(style), size)
	c.pdf.SetTextColor(col.R, col.G, col.B)
	c.pdf.Text(x, y, s)
	c.pdf.SetTextColor(0, 0, 0)
}

// TextRight draws s right-aligned so it ends at (x, y).
func (c *Canvas) TextRight(s string, x, y float64, family string, style FontStyle, size float64, col config.RGB) {
	c.pdf.SetFont(family, string(style), size)
	c.Text(s, x-c.pdf.GetStringWidth(s), y, family, style, size, col)
}

// TextWidth measures s in the given font, in points.
func (c *Canvas) TextWidth(s, family string, style FontStyle, size float64) float64 {
	c.pdf.SetFont(family, string(style), size)
	return c.pdf.GetStringWidth(s)
}

// Err returns the first drawing error recorded by the underlying
// document, if any. gofpdf accumulates errors instead of returning them
// per call.
func (c *Canvas) Err() error {
	if c.pdf.Err() {
		return errors.Wrap(errors.ErrCodeInternal, c.pdf.Error(), "pdf drawing failed")
	}
	return nil
}

// Output writes the finished document to w and closes it.
func (c *Canvas) Output(w io.Writer) error {
	if err := c.pdf.Output(w); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write pdf")
	}
	return nil
}

// OutputFile writes the finished document to path and closes it.
func (c *Canvas) OutputFile(path string) error {
	if err := c.pdf.OutputFileAndClose(path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
