package layout

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/archive/vmath"
)

// ErrSpanTooWide is returned when an item cannot fit in the column count
var ErrSpanTooWide = errors.New("span wider than grid")

// Span is an item's size in grid tracks
type Span struct {
	Cols, Rows int
}

// Slot is a placed item: top-left track and size
type Slot struct {
	Col, Row   int
	Cols, Rows int
}

// AutoPlace positions items row-major with a sparse cursor
// Each item goes at the first free position at or after the previous item; rows grow as needed
// Returns the slots in item order and the number of rows used
func AutoPlace(spans []Span, cols int) ([]Slot, int, error) {
	var occupied [][]bool
	ensure := func(rows int) {
		for len(occupied) < rows {
			occupied = append(occupied, make([]bool, cols))
		}
	}
	fits := func(row, col int, s Span) bool {
		if col+s.Cols > cols {
			return false
		}
		ensure(row + s.Rows)
		for r := row; r < row+s.Rows; r++ {
			for c := col; c < col+s.Cols; c++ {
				if occupied[r][c] {
					return false
				}
			}
		}
		return true
	}

	slots := make([]Slot, 0, len(spans))
	row, col := 0, 0
	used := 0
	for i, s := range spans {
		if s.Cols < 1 {
			s.Cols = 1
		}
		if s.Rows < 1 {
			s.Rows = 1
		}
		if s.Cols > cols {
			return nil, 0, fmt.Errorf("item %d: %w", i, ErrSpanTooWide)
		}
		for !fits(row, col, s) {
			col++
			if col >= cols {
				col = 0
				row++
			}
		}
		for r := row; r < row+s.Rows; r++ {
			for c := col; c < col+s.Cols; c++ {
				occupied[r][c] = true
			}
		}
		slots = append(slots, Slot{Col: col, Row: row, Cols: s.Cols, Rows: s.Rows})
		used = max(used, row+s.Rows)
		col += s.Cols
	}
	return slots, used, nil
}

// Track returns the cell rectangle of a slot inside area split into cols x rows with gap
// Remainder cells go to the last track so the grid fills area exactly
func Track(area vmath.CellRect, cols, rows, gap int, s Slot) vmath.CellRect {
	colW := (area.W - gap*(cols-1)) / cols
	rowH := (area.H - gap*(rows-1)) / rows

	x := area.X + s.Col*(colW+gap)
	y := area.Y + s.Row*(rowH+gap)
	w := s.Cols*colW + (s.Cols-1)*gap
	h := s.Rows*rowH + (s.Rows-1)*gap

	if s.Col+s.Cols == cols {
		w = area.X + area.W - x
	}
	if s.Row+s.Rows == rows {
		h = area.Y + area.H - y
	}
	return vmath.CellRect{X: x, Y: y, W: w, H: h}
}
