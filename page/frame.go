package page

import (
	"time"

	"github.com/lixenwraith/archive/ambient"
	"github.com/lixenwraith/archive/content"
	"github.com/lixenwraith/archive/expand"
	"github.com/lixenwraith/archive/gate"
	"github.com/lixenwraith/archive/layout"
	"github.com/lixenwraith/archive/pointer"
	"github.com/lixenwraith/archive/preload"
	"github.com/lixenwraith/archive/receipt"
	"github.com/lixenwraith/archive/vmath"
)

// Frame is everything the renderer needs for one draw, captured on the loop goroutine
type Frame struct {
	Now     time.Time
	Content *content.Content
	State   State
	Geom    Geometry
	ScrollY float64
	Widgets []Widget

	Cover    preload.Cover
	Blocking bool

	Header    Entrance
	Entrances []Entrance // Widget order

	Follower pointer.State
	Gate     GateView
	Flip     float64 // Dossier flip in [0,1], back face shown past 0.5
	Mood     MoodView
	Gauge    ambient.GaugeState
	Clock    CountdownView
	Gallery  GalleryView
	Expand   ExpandView

	Receipt    *receipt.Receipt
	RedirectIn time.Duration

	Debug []string
	Scene *layout.Scene
}

// GateView is the quiz widget snapshot
type GateView struct {
	Index    int
	Len      int
	Step     gate.Step
	Failed   bool
	Unlocked bool
	Shake    float64 // Horizontal offset in pixels
}

// MoodView is the playlist widget snapshot
type MoodView struct {
	Active int
	Fade   Entrance
}

// CountdownView is the calendar widget snapshot
type CountdownView struct {
	Days, Hours int
	Done        bool
	Month       ambient.Month
}

// GalleryView is the pinned section snapshot
type GalleryView struct {
	ScreenY  float64 // Section top edge, screen space, pixels
	Progress float64
	Offset   float64
	Skew     float64 // Degrees
	Items    []vmath.Rect
}

// ExpandView is the overlay snapshot
type ExpandView struct {
	Visible  bool
	Shown    string
	Bounds   vmath.Rect
	Progress float64
	Backdrop float64
	Payload  expand.Payload
}

// Card returns widget i's on-screen rect including its entrance rise
func (f *Frame) Card(i int) vmath.Rect {
	r := OnScreen(f.Geom.Cards[i], f.ScrollY)
	if i < len(f.Entrances) {
		r.Y += f.Entrances[i].Rise
	}
	return r
}

// WidgetIndex returns the index of widget id, or -1
func (f *Frame) WidgetIndex(id string) int {
	for i, w := range f.Widgets {
		if w.ID == id {
			return i
		}
	}
	return -1
}
