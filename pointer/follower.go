package pointer

import (
	"time"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/engine"
	"github.com/lixenwraith/archive/events"
	"github.com/lixenwraith/archive/physics"
	"github.com/lixenwraith/archive/vmath"
)

// offscreen is where the follower rests before the first pointer event
var offscreen = vmath.V2(-100, -100)

// State is the follower snapshot handed to the renderer
type State struct {
	Pos     vmath.Vec2 // Spring output, never the raw pointer
	Size    float64    // Displayed diameter in pixels
	Class   Classification
	Pressed bool
	Visible bool
}

// Follower smooths the pointer through a spring pair and sizes itself by hover class
// Scheduled on the frame scheduler only while the spring or size tween is moving
type Follower struct {
	sched  *engine.FrameScheduler
	spring *physics.Spring2
	size   *physics.Tween

	raw     vmath.Vec2
	class   Classification
	pressed bool
	seen    bool
}

// NewFollower creates a follower resting off-screen at the resting size
func NewFollower(sched *engine.FrameScheduler, cfg physics.SpringConfig) *Follower {
	f := &Follower{
		sched:  sched,
		spring: physics.NewSpring2(cfg),
		size:   physics.NewTween(constants.FollowerSizeResting, vmath.BackOut),
	}
	f.spring.Snap(offscreen)
	return f
}

// Attach subscribes the follower to pointer events and ties the subscriptions to scope
func (f *Follower) Attach(bus *events.Bus, scope *engine.Scope) {
	scope.Add(bus.Subscribe(events.EventPointerMove, func(ev events.Event) {
		f.OnMove(ev.Payload.(*events.PointerPayload).Pos)
	}))
	scope.Add(bus.Subscribe(events.EventPointerOver, func(ev events.Event) {
		f.OnOver(Classify(ev.Payload.(*events.OverPayload).Chain))
	}))
	scope.Add(bus.Subscribe(events.EventPointerDown, func(events.Event) { f.pressed = true }))
	scope.Add(bus.Subscribe(events.EventPointerUp, func(events.Event) { f.pressed = false }))
	scope.AddAnimator(f.sched, f)
}

// OnMove sets the spring target to the raw pointer position
func (f *Follower) OnMove(pos vmath.Vec2) {
	f.raw = pos
	f.seen = true
	f.spring.SetTarget(pos)
	f.sched.Schedule(f)
}

// OnOver replaces the classification as a whole and retargets the size tier
func (f *Follower) OnOver(c Classification) {
	if c == f.class {
		return
	}
	f.class = c
	f.size.Start(TierSize(c), constants.FollowerSizeDuration)
	f.sched.Schedule(f)
}

// Update implements engine.Animator
func (f *Follower) Update(dt time.Duration) bool {
	moving := f.spring.Update(dt)
	sizing := f.size.Update(dt)
	return moving || sizing
}

// Position returns the smoothed follower position
func (f *Follower) Position() vmath.Vec2 {
	return f.spring.Value()
}

// Raw returns the last raw pointer position
func (f *Follower) Raw() vmath.Vec2 {
	return f.raw
}

// Classification returns the current hover class
func (f *Follower) Classification() Classification {
	return f.class
}

// Settled reports whether the follower has converged and stopped consuming frames
func (f *Follower) Settled() bool {
	return f.spring.Settled() && f.size.Done()
}

// State returns the render snapshot
func (f *Follower) State() State {
	return State{
		Pos:     f.spring.Value(),
		Size:    f.size.Value(),
		Class:   f.class,
		Pressed: f.pressed,
		Visible: f.seen,
	}
}
