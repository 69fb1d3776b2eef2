package physics

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/vmath"
)

// SpringConfig describes a damped second-order system in physical terms
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	Epsilon   float64 // Settle threshold for both displacement and velocity
}

// PointerSpring is the follower configuration
var PointerSpring = SpringConfig{
	Stiffness: constants.FollowerStiffness,
	Damping:   constants.FollowerDamping,
	Mass:      constants.FollowerMass,
	Epsilon:   constants.SpringEpsilon,
}

// AngularFrequency returns sqrt(k/m)
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(c.Stiffness / c.Mass)
}

// DampingRatio returns c / (2*sqrt(k*m))
func (c SpringConfig) DampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// Spring smooths a scalar toward a target
// Integration is delegated to harmonica; coefficients are cached per step size
type Spring struct {
	cfg     SpringConfig
	solver  harmonica.Spring
	stepDt  time.Duration
	value   float64
	vel     float64
	target  float64
	settled bool
	moved   bool // Target changed since the last step
}

// NewSpring creates a settled spring resting at 0
func NewSpring(cfg SpringConfig) *Spring {
	if cfg.Mass <= 0 {
		cfg.Mass = 1
	}
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = constants.SpringEpsilon
	}
	return &Spring{cfg: cfg, settled: true}
}

// SetTarget moves the equilibrium point, waking the spring if it moved
func (s *Spring) SetTarget(v float64) {
	if v == s.target && s.settled {
		return
	}
	s.target = v
	s.settled = false
	s.moved = true
}

// Snap places value and target at v with zero velocity
func (s *Spring) Snap(v float64) {
	s.value, s.target, s.vel = v, v, 0
	s.settled = true
	s.moved = false
}

// Update integrates one step of length dt
// Returns false once converged, at which point value equals target exactly
func (s *Spring) Update(dt time.Duration) bool {
	if s.settled {
		return false
	}
	if dt <= 0 {
		return true
	}
	if dt != s.stepDt {
		s.solver = harmonica.NewSpring(dt.Seconds(), s.cfg.AngularFrequency(), s.cfg.DampingRatio())
		s.stepDt = dt
	}

	s.value, s.vel = s.solver.Update(s.value, s.vel, s.target)

	// A step that consumed a fresh target never settles, output always lags input
	if s.moved {
		s.moved = false
		return true
	}

	if vmath.ApproxEqual(s.value, s.target, s.cfg.Epsilon) && math.Abs(s.vel) < s.cfg.Epsilon {
		s.value, s.vel = s.target, 0
		s.settled = true
		return false
	}
	return true
}

func (s *Spring) Value() float64    { return s.value }
func (s *Spring) Velocity() float64 { return s.vel }
func (s *Spring) Target() float64   { return s.target }
func (s *Spring) Settled() bool     { return s.settled }

// Spring2 smooths a 2-vector with independent per-axis springs
type Spring2 struct {
	x, y *Spring
}

// NewSpring2 creates a settled vector spring at the origin
func NewSpring2(cfg SpringConfig) *Spring2 {
	return &Spring2{x: NewSpring(cfg), y: NewSpring(cfg)}
}

// SetTarget moves the equilibrium point
func (s *Spring2) SetTarget(v vmath.Vec2) {
	s.x.SetTarget(v.X)
	s.y.SetTarget(v.Y)
}

// Snap places the spring at v at rest
func (s *Spring2) Snap(v vmath.Vec2) {
	s.x.Snap(v.X)
	s.y.Snap(v.Y)
}

// Update integrates both axes, false once both converged
func (s *Spring2) Update(dt time.Duration) bool {
	ax := s.x.Update(dt)
	ay := s.y.Update(dt)
	return ax || ay
}

func (s *Spring2) Value() vmath.Vec2  { return vmath.V2(s.x.Value(), s.y.Value()) }
func (s *Spring2) Target() vmath.Vec2 { return vmath.V2(s.x.Target(), s.y.Target()) }
func (s *Spring2) Settled() bool      { return s.x.Settled() && s.y.Settled() }
