package vmath

import "math"

// Vec2 is a point or displacement in logical pixels
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t)}
}

// CellToPixel returns the pixel-space center of terminal cell (cx, cy)
func CellToPixel(cx, cy int, cellW, cellH float64) Vec2 {
	return Vec2{
		X: (float64(cx) + 0.5) * cellW,
		Y: (float64(cy) + 0.5) * cellH,
	}
}

// PixelToCell returns the terminal cell containing pixel point p
func PixelToCell(p Vec2, cellW, cellH float64) (cx, cy int) {
	return int(math.Floor(p.X / cellW)), int(math.Floor(p.Y / cellH))
}
