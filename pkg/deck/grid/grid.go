// Package grid places repeated tiles on a slide in row-major order.
//
// A [Grid] maps a zero-based item index to a position:
//
//	col, row = i % Columns, i / Columns
//	position = (Origin.X + col*Stride.X, Origin.Y + row*Stride.Y)
//
// With four columns, index 5 lands at column 1, row 1.
package grid

import (
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
)

// Grid is a fixed-pitch layout of tiles.
type Grid struct {
	Origin  deck.Point // top-left of item 0
	Stride  deck.Point // distance between neighbouring columns (X) and rows (Y)
	Columns int
}

// Inches builds a grid from values in inches.
func Inches(x0, y0, dx, dy float64, columns int) Grid {
	return Grid{
		Origin:  deck.Point{X: deck.Inches(x0), Y: deck.Inches(y0)},
		Stride:  deck.Point{X: deck.Inches(dx), Y: deck.Inches(dy)},
		Columns: columns,
	}
}

// Row returns a single-row grid, used for step flows and metric strips.
func Row(x0, y0, dx float64, count int) Grid {
	return Inches(x0, y0, dx, 0, max(1, count))
}

// Validate requires at least one column and a non-negative origin.
func (g Grid) Validate() error {
	if g.Columns < 1 {
		return errors.New(errors.ErrCodeInvalidGeometry, "grid needs at least one column, got %d", g.Columns)
	}
	if g.Origin.X < 0 || g.Origin.Y < 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "grid origin must be non-negative")
	}
	return nil
}

// Cell returns the column and row of item i.
func (g Grid) Cell(i int) (col, row int) {
	cols := max(1, g.Columns)
	return i % cols, i / cols
}

// Position returns the top-left corner of item i.
func (g Grid) Position(i int) deck.Point {
	col, row := g.Cell(i)
	return deck.Point{
		X: g.Origin.X + deck.EMU(col)*g.Stride.X,
		Y: g.Origin.Y + deck.EMU(row)*g.Stride.Y,
	}
}

// Rect returns the box of item i for a tile of the given size.
func (g Grid) Rect(i int, width, height deck.EMU) deck.Rect {
	p := g.Position(i)
	return deck.Box(p.X, p.Y, width, height)
}

// Rows returns how many rows n items occupy.
func (g Grid) Rows(n int) int {
	if n <= 0 {
		return 0
	}
	cols := max(1, g.Columns)
	return (n + cols - 1) / cols
}

// Place calls fn for each of n items with its index and tile box, stopping at
// the first error.
func (g Grid) Place(n int, width, height deck.EMU, fn func(i int, r deck.Rect) error) error {
	if err := g.Validate(); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := fn(i, g.Rect(i, width, height)); err != nil {
			return err
		}
	}
	return nil
}
