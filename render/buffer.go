package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/archive/vmath"
)

// Attr is a cell text attribute bitmask
type Attr uint8

const AttrNone Attr = 0

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
	cont  bool // Right half of a wide rune
}

// Buffer is a compositor backed by a cell array, flushed to the screen once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	size := max(width, 0) * max(height, 0)
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns the buffer dimensions in cells
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to the page background using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: RgbBackground, Bg: RgbBackground}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero outside the buffer
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// ===== COMPOSITOR API =====

// Set composites a cell with the specified blend mode
// A zero rune keeps the existing glyph and only blends colors
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64, attrs Attr) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	if r != 0 {
		dst.Rune = r
		dst.Attrs = attrs
		dst.cont = false
	}
	if flags&flagBg != 0 {
		dst.Bg = apply(op, dst.Bg, bg, alpha)
	}
	if flags&flagFg != 0 {
		dst.Fg = apply(op, dst.Fg, fg, alpha)
	}
}

// SetString writes s from (x, y) and returns the number of columns used
// Text stops at the buffer edge; wide runes take two cells
func (b *Buffer) SetString(x, y int, s string, fg, bg RGB, mode BlendMode, alpha float64, attrs Attr) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > b.width {
			break
		}
		b.Set(col, y, r, fg, bg, mode, alpha, attrs)
		if w == 2 && b.inBounds(col+1, y) {
			b.Set(col+1, y, ' ', fg, bg, mode, alpha, attrs)
			b.cells[y*b.width+col+1].cont = true
		}
		col += w
	}
	return col - x
}

// SetFgString writes s keeping the existing background
func (b *Buffer) SetFgString(x, y int, s string, fg RGB, alpha float64, attrs Attr) int {
	mode := BlendFgOnly
	if alpha < 1 {
		mode = BlendAlphaFg
	}
	return b.SetString(x, y, s, fg, RGB{}, mode, alpha, attrs)
}

// Fill composites r over every cell of rect
func (b *Buffer) Fill(rect vmath.CellRect, r rune, fg, bg RGB, mode BlendMode, alpha float64) {
	x0, y0 := max(rect.X, 0), max(rect.Y, 0)
	x1, y1 := min(rect.X+rect.W, b.width), min(rect.Y+rect.H, b.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.Set(x, y, r, fg, bg, mode, alpha, AttrNone)
		}
	}
}

// Row returns the runes of line y as a string, blanks for empty cells
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	out := make([]rune, 0, b.width)
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		switch {
		case c.cont:
			continue
		case c.Rune == 0:
			out = append(out, ' ')
		default:
			out = append(out, c.Rune)
		}
	}
	return string(out)
}

// Style converts a cell to its tcell style
func (c Cell) Style() tcell.Style {
	st := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(c.Bg.Tcell())
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// Flush copies the buffer onto screen; the caller shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.cont {
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, c.Style())
		}
	}
}
