package deck

import "github.com/matzehuels/stackdeck/pkg/errors"

// Point is a position on a slide, measured from its top-left corner.
type Point struct {
	X, Y EMU
}

// Rect is the (left, top, width, height) box a primitive is drawn into.
type Rect struct {
	Left   EMU `json:"left"`
	Top    EMU `json:"top"`
	Width  EMU `json:"width"`
	Height EMU `json:"height"`
}

// Box builds a Rect from a position and a size.
func Box(left, top, width, height EMU) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// InchBox builds a Rect from values in inches.
func InchBox(left, top, width, height float64) Rect {
	return Rect{Left: Inches(left), Top: Inches(top), Width: Inches(width), Height: Inches(height)}
}

func (r Rect) Right() EMU    { return r.Left + r.Width }
func (r Rect) Bottom() EMU   { return r.Top + r.Height }
func (r Rect) Origin() Point { return Point{X: r.Left, Y: r.Top} }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Offset moves r by (dx, dy) without resizing it.
func (r Rect) Offset(dx, dy EMU) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

// Inset shrinks r by dx on the left and right and dy on the top and bottom.
func (r Rect) Inset(dx, dy EMU) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Width: r.Width - 2*dx, Height: r.Height - 2*dy}
}

// Contains reports whether o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	return o.Left >= r.Left && o.Top >= r.Top && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Validate reports an INVALID_GEOMETRY error when any coordinate is negative
// or when the box has no visible area.
func (r Rect) Validate() error {
	if r.Left < 0 || r.Top < 0 {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"position must be non-negative, got (%d, %d)", r.Left, r.Top)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"size must be positive, got %dx%d", r.Width, r.Height)
	}
	return nil
}
