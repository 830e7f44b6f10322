// Package layout converts the configured dimensions into absolute page
// coordinates for every element of the tracker grid.
//
// All coordinates are in PDF points (72 per inch) with the origin at the
// top-left corner of the page and y increasing downward, matching the
// canvas the render package draws on. Geometry is computed once per
// generation run and is immutable afterwards.
package layout

// Rect is an axis-aligned rectangle in page coordinates. X and Y locate
// the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center point.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center point.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }
