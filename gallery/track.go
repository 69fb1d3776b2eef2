package gallery

import (
	"github.com/lixenwraith/archive/vmath"
)

// Track is the scroll-pinned horizontal content strip
// Items are laid out left to right; vertical scroll inside the pinned span maps 1:1 to horizontal offset
type Track struct {
	widths    []float64
	starts    []float64
	viewportW float64
	content   float64
	maxScroll float64
	progress  float64
}

// Layout recomputes item positions and maxScroll, called on mount and resize
// Progress is kept so a resize mid-scrub does not jump
func (t *Track) Layout(itemWidths []float64, viewportW float64) {
	t.widths = append(t.widths[:0], itemWidths...)
	t.starts = t.starts[:0]
	t.content = 0
	for _, w := range itemWidths {
		t.starts = append(t.starts, t.content)
		t.content += max(w, 0)
	}
	t.viewportW = viewportW
	t.maxScroll = max(t.content-viewportW, 0)
}

// MaxScroll returns contentWidth - viewportWidth, never negative
func (t *Track) MaxScroll() float64 {
	return t.maxScroll
}

// ContentWidth returns the sum of item widths
func (t *Track) ContentWidth() float64 {
	return t.content
}

// PinSpan returns the vertical scroll distance the section stays pinned for
func (t *Track) PinSpan() float64 {
	return t.maxScroll
}

// Pin maps page scroll to the section's screen position and scrub progress
// Before the span the section scrolls in normally, inside it is frozen at the top of the
// viewport, after it the section scrolls away with progress held at 1
func (t *Track) Pin(pageScrollY, sectionTop float64) (screenY, progress float64) {
	into := pageScrollY - sectionTop
	switch {
	case into <= 0:
		screenY, progress = -into, 0
	case into >= t.maxScroll:
		screenY, progress = t.maxScroll-into, 1
	default:
		screenY, progress = 0, into/t.maxScroll
	}
	t.progress = progress
	return screenY, progress
}

// SetProgress scrubs the track directly, clamped to [0,1]
func (t *Track) SetProgress(p float64) {
	t.progress = vmath.Clamp01(p)
}

// Progress returns the current scrub progress
func (t *Track) Progress() float64 {
	return t.progress
}

// Offset returns the strip translation: -progress * maxScroll
func (t *Track) Offset() float64 {
	if t.progress <= 0 {
		return 0
	}
	return -t.progress * t.maxScroll
}

// ItemSpan returns item i's horizontal extent in viewport space at the current offset
func (t *Track) ItemSpan(i int) (x, w float64) {
	if i < 0 || i >= len(t.starts) {
		return 0, 0
	}
	return t.starts[i] + t.Offset(), t.widths[i]
}

// Len returns the number of items
func (t *Track) Len() int {
	return len(t.widths)
}
