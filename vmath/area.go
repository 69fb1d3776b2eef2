package vmath

// Rect is an axis-aligned rectangle, X/Y is the top-left corner
type Rect struct {
	X, Y, W, H float64
}

// R is shorthand for Rect{x, y, w, h}
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether p lies inside r, right and bottom edges excluded
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the rectangle midpoint
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Translate shifts r by d
func (r Rect) Translate(d Vec2) Rect {
	return Rect{r.X + d.X, r.Y + d.Y, r.W, r.H}
}

// Inset shrinks r by dx on both sides horizontally and dy vertically
func (r Rect) Inset(dx, dy float64) Rect {
	w := r.W - 2*dx
	h := r.H - 2*dy
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{r.X + dx, r.Y + dy, w, h}
}

// Empty reports a zero-area rectangle
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// LerpRect interpolates position and size between a and b
func LerpRect(a, b Rect, t float64) Rect {
	return Rect{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		W: Lerp(a.W, b.W, t),
		H: Lerp(a.H, b.H, t),
	}
}

// CellRect is a rectangle on the terminal grid
type CellRect struct {
	X, Y, W, H int
}

// ToPixels converts a cell rectangle into pixel space
func (c CellRect) ToPixels(cellW, cellH float64) Rect {
	return Rect{
		X: float64(c.X) * cellW,
		Y: float64(c.Y) * cellH,
		W: float64(c.W) * cellW,
		H: float64(c.H) * cellH,
	}
}

// ToCells snaps a pixel rectangle onto the terminal grid
func (r Rect) ToCells(cellW, cellH float64) CellRect {
	x0, y0 := Round(r.X/cellW), Round(r.Y/cellH)
	x1, y1 := Round((r.X+r.W)/cellW), Round((r.Y+r.H)/cellH)
	return CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether cell (x, y) lies inside c
func (c CellRect) Contains(x, y int) bool {
	return x >= c.X && x < c.X+c.W && y >= c.Y && y < c.Y+c.H
}
