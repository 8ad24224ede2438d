package grid

import (
	"fmt"
	"testing"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
)

func TestPosition(t *testing.T) {
	g := Grid{
		Origin:  deck.Point{X: 100, Y: 200},
		Stride:  deck.Point{X: 10, Y: 20},
		Columns: 4,
	}
	tests := []struct {
		i        int
		col, row int
		x, y     deck.EMU
	}{
		{0, 0, 0, 100, 200},
		{3, 3, 0, 130, 200},
		{4, 0, 1, 100, 220},
		{5, 1, 1, 110, 220},
		{11, 3, 2, 130, 240},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.i), func(t *testing.T) {
			col, row := g.Cell(tt.i)
			if col != tt.col || row != tt.row {
				t.Errorf("Cell = (%d, %d), want (%d, %d)", col, row, tt.col, tt.row)
			}
			p := g.Position(tt.i)
			if p.X != tt.x || p.Y != tt.y {
				t.Errorf("Position = (%d, %d), want (%d, %d)", p.X, p.Y, tt.x, tt.y)
			}
		})
	}
}

func TestFeatureGridLayout(t *testing.T) {
	g := Inches(0.5, 3.0, 3.15, 2.15, 4)
	r := g.Rect(5, deck.Inches(2.95), deck.Inches(1.9))
	if r.Left != deck.Inches(0.5)+deck.Inches(3.15) {
		t.Errorf("Left = %d", r.Left)
	}
	if r.Top != deck.Inches(3.0)+deck.Inches(2.15) {
		t.Errorf("Top = %d", r.Top)
	}
	if g.Rows(8) != 2 || g.Rows(9) != 3 || g.Rows(0) != 0 {
		t.Errorf("Rows = %d/%d/%d", g.Rows(8), g.Rows(9), g.Rows(0))
	}
}

func TestPlace(t *testing.T) {
	var got []deck.Rect
	err := Row(0.2, 2.0, 1.85, 7).Place(7, deck.Inches(1.6), deck.Inches(1.8), func(i int, r deck.Rect) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 7 {
		t.Fatalf("placed %d, want 7", len(got))
	}
	for i, r := range got {
		if r.Top != deck.Inches(2.0) {
			t.Errorf("item %d Top = %d, want single row", i, r.Top)
		}
	}

	err = Grid{}.Place(1, 1, 1, func(int, deck.Rect) error { return nil })
	if !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("zero columns: err = %v, want INVALID_GEOMETRY", err)
	}
}

func ExampleGrid_Position() {
	g := Grid{Origin: deck.Point{X: 0, Y: 0}, Stride: deck.Point{X: 1, Y: 1}, Columns: 4}
	fmt.Println(g.Position(5))
	// Output: {1 1}
}
