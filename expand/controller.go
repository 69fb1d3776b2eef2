package expand

import (
	"time"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/engine"
	"github.com/lixenwraith/archive/physics"
	"github.com/lixenwraith/archive/vmath"
)

// Payload selects what the expanded overlay renders
type Payload int

const (
	// PayloadGeneric is the detail placeholder shown for ordinary widgets
	PayloadGeneric Payload = iota
	// PayloadBooking is the application form, reserved for one widget
	PayloadBooking
)

// State is the focused widget, empty when nothing is expanded
type State struct {
	Selected string
}

// Controller drives the shared-geometry morph between a grid cell and the overlay
// One element interpolates its bounds continuously; there is never more than one expanded widget
type Controller struct {
	sched   *engine.FrameScheduler
	special string

	state State
	shown string     // Rendered identity, outlives Selected while the close morph runs
	from  vmath.Rect // Cell bounds the morph starts from
	morph *physics.Tween
}

// NewController creates a controller where special is the only id with booking payload
func NewController(sched *engine.FrameScheduler, special string) *Controller {
	return &Controller{
		sched:   sched,
		special: special,
		morph:   physics.NewTween(0, vmath.Power3Out),
	}
}

// Select focuses id, morphing out of from
// Selecting while another widget is focused replaces it
func (c *Controller) Select(id string, from vmath.Rect) {
	if id == "" {
		c.Close()
		return
	}
	if id == c.state.Selected {
		c.from = from
		return
	}
	replacing := c.shown != "" && c.shown != id
	c.state.Selected = id
	c.shown = id
	c.from = from
	if replacing {
		c.morph.StartFrom(0, 1, constants.ExpandDuration)
	} else {
		c.morph.Start(1, c.remaining(1))
	}
	c.sched.Schedule(c)
}

// Close clears the selection and reverses the morph back into the cell
func (c *Controller) Close() {
	if c.state.Selected == "" {
		return
	}
	c.state.Selected = ""
	c.morph.Start(0, c.remaining(0))
	c.sched.Schedule(c)
}

// Sync applies an externally owned selection, used by the page reducer
func (c *Controller) Sync(selected string, from vmath.Rect) {
	if selected == "" {
		c.Close()
		return
	}
	c.Select(selected, from)
}

// remaining scales the duration by the distance left so reversals keep a constant speed
func (c *Controller) remaining(to float64) time.Duration {
	dist := to - c.morph.Value()
	if dist < 0 {
		dist = -dist
	}
	return time.Duration(float64(constants.ExpandDuration) * vmath.Clamp01(dist))
}

// Update implements engine.Animator
func (c *Controller) Update(dt time.Duration) bool {
	active := c.morph.Update(dt)
	if !active && c.state.Selected == "" {
		c.shown = ""
	}
	return active
}

// State returns the expansion state
func (c *Controller) State() State {
	return c.state
}

// Selected returns the focused identity
func (c *Controller) Selected() (string, bool) {
	return c.state.Selected, c.state.Selected != ""
}

// Shown returns the identity rendered in the overlay, including during the close morph
func (c *Controller) Shown() string {
	return c.shown
}

// Visible reports whether the overlay is on screen
func (c *Controller) Visible() bool {
	return c.shown != ""
}

// Progress returns the morph position, 0 at the cell and 1 at the overlay
func (c *Controller) Progress() float64 {
	return c.morph.Value()
}

// Bounds interpolates the shown element between its cell and the overlay rect
func (c *Controller) Bounds(overlay vmath.Rect) vmath.Rect {
	return vmath.LerpRect(c.from, overlay, c.morph.Value())
}

// Backdrop returns the dimming opacity in [0, BackdropMaxOpacity]
func (c *Controller) Backdrop() float64 {
	return constants.BackdropMaxOpacity * vmath.Clamp01(c.morph.Value())
}

// PayloadFor returns the overlay content kind for id
func (c *Controller) PayloadFor(id string) Payload {
	if id != "" && id == c.special {
		return PayloadBooking
	}
	return PayloadGeneric
}
