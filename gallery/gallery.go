package gallery

import (
	"time"

	"github.com/lixenwraith/archive/engine"
)

// Gallery owns the pinned section: track layout, velocity sampling and skew
type Gallery struct {
	Track   Track
	Skew    *Skew
	Sampler VelocitySampler

	sched      *engine.FrameScheduler
	items      int
	sectionTop float64
	screenY    float64
}

// New creates a gallery of n viewport-wide items
func New(sched *engine.FrameScheduler, n int) *Gallery {
	return &Gallery{
		Skew:  NewSkew(),
		sched: sched,
		items: n,
	}
}

// Resize lays the strip out for a new viewport; each item spans one viewport width
func (g *Gallery) Resize(viewportW, sectionTop float64) {
	widths := make([]float64, g.items)
	for i := range widths {
		widths[i] = viewportW
	}
	g.Track.Layout(widths, viewportW)
	g.sectionTop = sectionTop
	g.Sampler.Reset()
}

// Observe feeds one scroll integration step into the pin and the skew sampler
func (g *Gallery) Observe(pageScrollY float64, dt time.Duration) {
	g.screenY, _ = g.Track.Pin(pageScrollY, g.sectionTop)
	v := g.Sampler.Sample(pageScrollY, dt)
	if g.Skew.Offer(SkewCandidate(v)) {
		g.sched.Schedule(g.Skew)
	}
}

// ScreenY returns the section's top edge in viewport space
func (g *Gallery) ScreenY() float64 {
	return g.screenY
}

// SectionTop returns the section's page coordinate
func (g *Gallery) SectionTop() float64 {
	return g.sectionTop
}

// Height returns the page height consumed by the section including its pinned span
func (g *Gallery) Height(viewportH float64) float64 {
	return viewportH + g.Track.PinSpan()
}

// Release cancels the skew animator
func (g *Gallery) Release() {
	g.sched.Cancel(g.Skew)
}
