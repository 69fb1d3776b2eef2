package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/gallery"
	"github.com/lixenwraith/archive/page"
	"github.com/lixenwraith/archive/pointer"
	"github.com/lixenwraith/archive/preload"
	"github.com/lixenwraith/archive/vmath"
)

// drawGallery paints the pinned strip; every row of an item is sheared by the scroll skew
func drawGallery(b *Buffer, f *page.Frame) {
	_, h := b.Size()
	top := int(math.Floor(f.Gallery.ScreenY / constants.CellHeightPx))
	if top >= h || top+f.Geom.Rows <= 0 {
		return
	}

	section := vmath.CellRect{X: 0, Y: top, W: f.Geom.Cols, H: f.Geom.Rows}
	title := pen{b: b, area: vmath.CellRect{X: constants.PageMarginCells, Y: top + 1, W: section.W - 2*constants.PageMarginCells, H: 1}, alpha: 1}
	title.text(0, 0, strings.ToUpper(f.Content.Calendar.Destination), RgbMuted, AttrBold)
	title.right(0, fmt.Sprintf("%02d / %02d", activePlace(f), len(f.Content.Gallery)), RgbMuted, AttrNone)

	for i, item := range f.Gallery.Items {
		if i >= len(f.Content.Gallery) {
			break
		}
		drawPlace(b, f, i, item)
	}

	// Progress rail along the section's last row
	rail := vmath.CellRect{X: constants.PageMarginCells, Y: top + section.H - 1, W: section.W - 2*constants.PageMarginCells, H: 1}
	b.Fill(rail, '─', RgbBorder, RGB{}, BlendFgOnly, 1)
	done := int(math.Round(f.Gallery.Progress * float64(rail.W)))
	b.Fill(vmath.CellRect{X: rail.X, Y: rail.Y, W: done, H: 1}, '━', RgbAccent, RGB{}, BlendFgOnly, 1)
}

// activePlace is the 1-based item nearest the strip's current offset
func activePlace(f *page.Frame) int {
	n := len(f.Gallery.Items)
	if n == 0 {
		return 0
	}
	return min(int(math.Round(f.Gallery.Progress*float64(n-1)))+1, n)
}

func drawPlace(b *Buffer, f *page.Frame, i int, item vmath.Rect) {
	r := cells(item)
	_, h := b.Size()
	if r.X >= f.Geom.Cols || r.X+r.W <= 0 || r.Y >= h || r.Y+r.H <= 0 {
		return
	}
	place := f.Content.Gallery[i]
	center := item.Y + item.H/2

	// shift returns the sheared column offset of row y
	shift := func(y int) int {
		dy := (float64(y)+0.5)*constants.CellHeightPx - center
		return int(math.Round(gallery.Shear(f.Gallery.Skew, dy) / constants.CellWidthPx))
	}

	for y := r.Y; y < r.Y+r.H; y++ {
		row := vmath.CellRect{X: r.X + shift(y), Y: y, W: r.W, H: 1}
		b.Fill(row, ' ', RgbCard, RgbCard, BlendReplace, 1)
		left, right := '│', '│'
		switch y {
		case r.Y:
			left, right = '╭', '╮'
		case r.Y + r.H - 1:
			left, right = '╰', '╯'
		}
		if y == r.Y || y == r.Y+r.H-1 {
			b.Fill(vmath.CellRect{X: row.X + 1, Y: y, W: r.W - 2, H: 1}, '─', RgbBorder, RGB{}, BlendFgOnly, 1)
		}
		b.Set(row.X, y, left, RgbBorder, RGB{}, BlendFgOnly, 1, AttrNone)
		b.Set(row.X+r.W-1, y, right, RgbBorder, RGB{}, BlendFgOnly, 1, AttrNone)
	}

	text := func(dy int, s string, fg RGB, attrs Attr) {
		y := r.Y + dy
		s = fit(s, r.W-4)
		b.SetFgString(centered(r.X+shift(y), r.W, s), y, s, fg, 1, attrs)
	}
	text(2, fmt.Sprintf("%02d", i+1), RgbDim, AttrNone)
	text(r.H/2, strings.ToUpper(place.Name), RgbBright, AttrBold)
	text(r.H/2+1, place.Subtitle, RgbAccent, AttrItalic)
}

func drawFooter(b *Buffer, f *page.Frame) {
	_, h := b.Size()
	r := cells(page.OnScreen(f.Geom.Footer, f.ScrollY))
	if r.Y >= h || r.Y+r.H <= 0 {
		return
	}
	ft := f.Content.Footer
	b.Fill(r, ' ', RgbBackground, RgbBackground, BlendReplace, 1)
	b.Fill(vmath.CellRect{X: r.X, Y: r.Y, W: r.W, H: 1}, '─', RgbBorder, RGB{}, BlendFgOnly, 1)

	p := pen{b: b, area: vmath.CellRect{X: constants.PageMarginCells, Y: r.Y, W: r.W - 2*constants.PageMarginCells, H: r.H}, alpha: 1}
	p.text(0, 2, ft.Mark, RgbBright, AttrBold)
	p.right(2, strings.ToUpper(ft.CuratedLabel), RgbMuted, AttrNone)
	p.right(3, ft.Curator, RgbInk, AttrItalic)

	footer := page.OnScreen(f.Geom.Footer, f.ScrollY)
	for i, link := range ft.Links {
		c := cells(page.FooterLink(footer, ft.Links, i))
		b.SetFgString(c.X, c.Y, link.Label, RgbInk, 1, AttrUnderline)
	}
	p.text(0, r.H-2, ft.Copyright, RgbDim, AttrNone)
}

// drawCover paints the preload curtain, sliding upward during the exit phase
func drawCover(b *Buffer, f *page.Frame) {
	c := f.Cover
	if c.Phase == preload.PhaseDone {
		return
	}
	w, h := b.Size()
	offset := int(math.Round(c.Exit * float64(h)))
	b.Fill(vmath.CellRect{W: w, H: h - offset}, ' ', RgbCurtain, RgbCurtain, BlendReplace, 1)
	if c.Phase == preload.PhaseIdle {
		return
	}

	// Title fills left to right from its outline
	title := []rune(f.Content.Title)
	y := h/2 - 1 - offset
	x := centered(0, w, string(title))
	revealed := int(math.Round(c.Fill * float64(len(title))))
	for i, r := range title {
		fg, attrs := RgbTitleOutline, AttrDim
		if i < revealed {
			fg, attrs = RgbBright, AttrBold
		}
		if y >= 0 {
			b.Set(x+i, y, r, fg, RgbCurtain, BlendReplace, 1, attrs)
		}
	}

	bar := min(w/3, 24)
	bx := centered(0, w, strings.Repeat(" ", bar))
	if y+2 >= 0 {
		b.Fill(vmath.CellRect{X: bx, Y: y + 2, W: bar, H: 1}, '─', RgbTitleOutline, RGB{}, BlendFgOnly, 1)
		b.Fill(vmath.CellRect{X: bx, Y: y + 2, W: int(math.Round(c.Fill * float64(bar))), H: 1}, '━', RgbBright, RGB{}, BlendFgOnly, 1)
	}

	caption := f.Content.Preload.Caption
	if c.Caption > 0 && y+4 >= 0 {
		b.SetFgString(centered(0, w, caption), y+4, caption, RgbCaption, c.Caption, AttrNone)
	}
}

// drawFollower inverts the cells under the pointer disc
func drawFollower(b *Buffer, f *page.Frame) {
	st := f.Follower
	if !st.Visible {
		return
	}
	cx := st.Pos.X / constants.CellWidthPx
	cy := st.Pos.Y / constants.CellHeightPx
	rx := max(st.Size/2/constants.CellWidthPx, 0.5)
	ry := max(st.Size/2/constants.CellHeightPx, 0.5)

	tone := RgbFollower
	if st.Class.Kind == pointer.KindMagnetic {
		tone = RgbFollowerMagnet
	}
	alpha := 1.0
	if st.Pressed {
		alpha = 0.7
	}

	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		for x := int(math.Floor(cx - rx)); x <= int(math.Ceil(cx+rx)); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy > 1 {
				continue
			}
			b.Set(x, y, 0, tone, tone, BlendDifference, alpha, AttrNone)
		}
	}

	if st.Class.Kind == pointer.KindMagnetic && st.Class.Label != "" {
		label := st.Class.Label
		lx := int(math.Round(cx)) - len([]rune(label))/2
		b.SetString(lx, int(math.Floor(cy)), label, RgbBlack, tone, BlendReplace, 1, AttrBold)
	}
}

// drawDebug stacks status lines in the top right corner
func drawDebug(b *Buffer, lines []string) {
	if len(lines) == 0 {
		return
	}
	w, _ := b.Size()
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width = min(width+2, w)
	x := w - width
	b.Fill(vmath.CellRect{X: x, Y: 0, W: width, H: len(lines)}, ' ', RgbBlack, RgbBlack, BlendAlpha, 0.8)
	for i, l := range lines {
		b.SetFgString(x+1, i, fit(l, width-2), RgbMuted, 1, AttrNone)
	}
}
