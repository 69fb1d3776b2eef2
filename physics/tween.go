package physics

import (
	"time"

	"github.com/lixenwraith/archive/vmath"
)

// Tween is a time-based eased transition between two scalars
type Tween struct {
	from     float64
	to       float64
	duration time.Duration
	elapsed  time.Duration
	ease     vmath.Easing
}

// NewTween creates a finished tween resting at v
func NewTween(v float64, ease vmath.Easing) *Tween {
	if ease == nil {
		ease = vmath.Linear
	}
	return &Tween{from: v, to: v, ease: ease}
}

// Start begins a transition from the current value to `to`
func (t *Tween) Start(to float64, duration time.Duration) {
	t.StartFrom(t.Value(), to, duration)
}

// StartFrom begins a transition with an explicit origin
func (t *Tween) StartFrom(from, to float64, duration time.Duration) {
	t.from, t.to = from, to
	t.duration = duration
	t.elapsed = 0
}

// Set jumps to v with no transition
func (t *Tween) Set(v float64) {
	t.from, t.to = v, v
	t.duration, t.elapsed = 0, 0
}

// Update advances the tween, false once finished
func (t *Tween) Update(dt time.Duration) bool {
	if t.Done() {
		return false
	}
	t.elapsed += dt
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
	return !t.Done()
}

// Progress returns normalized elapsed time in [0,1]
func (t *Tween) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return vmath.Clamp01(float64(t.elapsed) / float64(t.duration))
}

// Value returns the eased value at the current time
func (t *Tween) Value() float64 {
	return vmath.Lerp(t.from, t.to, t.ease(t.Progress()))
}

// Done reports whether the transition reached its end
func (t *Tween) Done() bool {
	return t.elapsed >= t.duration
}

func (t *Tween) From() float64 { return t.from }
func (t *Tween) To() float64   { return t.to }
