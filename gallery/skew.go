package gallery

import (
	"math"
	"time"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/physics"
	"github.com/lixenwraith/archive/vmath"
)

// SkewCandidate maps scroll velocity (px/s) to a skew angle in degrees
func SkewCandidate(velocity float64) float64 {
	return vmath.Clamp(velocity/constants.SkewVelocityDivisor, -constants.SkewMaxDegrees, constants.SkewMaxDegrees)
}

// Skew is the transient shear applied to gallery items
// A new angle only takes over when it is larger in magnitude than the one decaying
type Skew struct {
	tween *physics.Tween
}

// NewSkew creates a relaxed skew at 0
func NewSkew() *Skew {
	return &Skew{tween: physics.NewTween(0, vmath.Power3Out)}
}

// Offer proposes a candidate angle, returns true if it replaced the current one
// An accepted candidate restarts the decay toward 0
func (s *Skew) Offer(candidate float64) bool {
	candidate = vmath.Clamp(candidate, -constants.SkewMaxDegrees, constants.SkewMaxDegrees)
	if math.Abs(candidate) <= math.Abs(s.Value()) {
		return false
	}
	s.tween.StartFrom(candidate, 0, constants.SkewDecayDuration)
	return true
}

// Update implements engine.Animator
func (s *Skew) Update(dt time.Duration) bool {
	return s.tween.Update(dt)
}

// Value returns the current angle in degrees
func (s *Skew) Value() float64 {
	return s.tween.Value()
}

// Active reports whether the skew is still relaxing
func (s *Skew) Active() bool {
	return !s.tween.Done()
}

// Shear returns the horizontal displacement of a row dy pixels below an element's center
func Shear(degrees, dy float64) float64 {
	return -dy * math.Tan(degrees*math.Pi/180)
}

// VelocitySampler derives scroll velocity from successive positions
type VelocitySampler struct {
	last     float64
	velocity float64
	primed   bool
}

// Sample records pos after dt and returns the velocity in px/s
// The first sample only primes the sampler
func (v *VelocitySampler) Sample(pos float64, dt time.Duration) float64 {
	if !v.primed || dt <= 0 {
		v.last, v.primed = pos, true
		v.velocity = 0
		return 0
	}
	v.velocity = (pos - v.last) / dt.Seconds()
	v.last = pos
	return v.velocity
}

// Velocity returns the most recent sample
func (v *VelocitySampler) Velocity() float64 {
	return v.velocity
}

// Reset forgets the previous position
func (v *VelocitySampler) Reset() {
	*v = VelocitySampler{}
}
