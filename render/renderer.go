package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/page"
	"github.com/lixenwraith/archive/vmath"
)

// Renderer draws page frames onto a tcell screen through a compositing buffer
type Renderer struct {
	screen tcell.Screen
	buf    *Buffer
}

// New creates a renderer sized to screen
func New(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{screen: screen, buf: NewBuffer(w, h)}
}

// Draw composes f and shows it
func (r *Renderer) Draw(f *page.Frame) {
	w, h := r.screen.Size()
	if bw, bh := r.buf.Size(); bw != w || bh != h {
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}
	Compose(r.buf, f)
	r.buf.Flush(r.screen)
	r.screen.Show()
}

// Buffer exposes the last composed frame
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Compose paints f into b back to front: page sections, overlay, curtain, follower, HUD
func Compose(b *Buffer, f *page.Frame) {
	drawHeader(b, f)
	for i := range f.Widgets {
		drawCard(b, f, i)
	}
	drawGallery(b, f)
	drawFooter(b, f)
	if f.Expand.Visible {
		drawOverlay(b, f)
	}
	drawCover(b, f)
	drawFollower(b, f)
	drawDebug(b, f.Debug)
}

// ===== HELPERS =====

// cells snaps a screen pixel rect onto the terminal grid
func cells(r vmath.Rect) vmath.CellRect {
	return r.ToCells(constants.CellWidthPx, constants.CellHeightPx)
}

// riseCells converts a vertical pixel offset to whole rows
func riseCells(px float64) int {
	return int(math.Round(px / constants.CellHeightPx))
}

// fit truncates s to w columns
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "…")
}

// centered returns the x that centers s inside [x, x+w)
func centered(x, w int, s string) int {
	return x + max((w-runewidth.StringWidth(s))/2, 0)
}

// box draws a filled card with a light outline
func box(b *Buffer, r vmath.CellRect, surface, border RGB, alpha float64) {
	if r.W < 2 || r.H < 2 || alpha <= 0 {
		return
	}
	b.Fill(r, ' ', surface, surface, BlendAlpha, alpha)
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x1; x++ {
		b.Set(x, r.Y, '─', border, RGB{}, BlendAlphaFg, alpha, AttrNone)
		b.Set(x, y1, '─', border, RGB{}, BlendAlphaFg, alpha, AttrNone)
	}
	for y := r.Y + 1; y < y1; y++ {
		b.Set(r.X, y, '│', border, RGB{}, BlendAlphaFg, alpha, AttrNone)
		b.Set(x1, y, '│', border, RGB{}, BlendAlphaFg, alpha, AttrNone)
	}
	b.Set(r.X, r.Y, '╭', border, RGB{}, BlendAlphaFg, alpha, AttrNone)
	b.Set(x1, r.Y, '╮', border, RGB{}, BlendAlphaFg, alpha, AttrNone)
	b.Set(r.X, y1, '╰', border, RGB{}, BlendAlphaFg, alpha, AttrNone)
	b.Set(x1, y1, '╯', border, RGB{}, BlendAlphaFg, alpha, AttrNone)
}

// pen writes faded text inside a card's inner area
type pen struct {
	b     *Buffer
	area  vmath.CellRect // Inner area, text clipped to its width
	alpha float64
}

func (p pen) text(dx, dy int, s string, fg RGB, attrs Attr) {
	y := p.area.Y + dy
	if dy < 0 || dy >= p.area.H || p.alpha <= 0 {
		return
	}
	p.b.SetFgString(p.area.X+dx, y, fit(s, p.area.W-dx), fg, p.alpha, attrs)
}

func (p pen) center(dy int, s string, fg RGB, attrs Attr) {
	s = fit(s, p.area.W)
	p.text(centered(0, p.area.W, s), dy, s, fg, attrs)
}

func (p pen) right(dy int, s string, fg RGB, attrs Attr) {
	s = fit(s, p.area.W)
	p.text(max(p.area.W-runewidth.StringWidth(s), 0), dy, s, fg, attrs)
}

// inner is r without its outline and one column of padding
func inner(r vmath.CellRect) vmath.CellRect {
	return vmath.CellRect{X: r.X + 2, Y: r.Y + 1, W: max(r.W-4, 0), H: max(r.H-2, 0)}
}
