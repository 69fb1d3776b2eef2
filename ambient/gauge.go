package ambient

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/engine"
	"github.com/lixenwraith/archive/vmath"
)

// Draw is one injected random sample for the gauge
// Snap and Spread are uniform in [0,1); Retarget marks a period boundary
type Draw struct {
	Retarget bool
	Snap     float64
	Spread   float64
}

// GaugeState is the randomized ambient metric
// Critical follows the target, not the eased value
type GaugeState struct {
	Value    float64
	Target   float64
	From     float64
	Elapsed  time.Duration // Since the last retarget
	Critical bool
}

// InitialGauge is the settled state at mount
func InitialGauge() GaugeState {
	return GaugeState{
		Value:   constants.GaugeInitial,
		Target:  constants.GaugeInitial,
		From:    constants.GaugeInitial,
		Elapsed: constants.GaugeTransition,
	}
}

// GaugeTarget maps a draw to a target: GaugeMax when Snap exceeds GaugeSnapThreshold,
// otherwise uniform in [GaugeSpreadMin, GaugeSpreadMin+GaugeSpreadWidth)
func GaugeTarget(d Draw) float64 {
	if d.Snap > constants.GaugeSnapThreshold {
		return constants.GaugeMax
	}
	return constants.GaugeSpreadMin + d.Spread*constants.GaugeSpreadWidth
}

// NextGauge is the pure gauge transition
// A retarget draw restarts the eased transition from the current value; elapsed then
// advances the transition
func NextGauge(prev GaugeState, draw Draw, elapsed time.Duration) GaugeState {
	next := prev
	if draw.Retarget {
		next.From = prev.Value
		next.Target = GaugeTarget(draw)
		next.Critical = next.Target > constants.GaugeCriticalThreshold
		next.Elapsed = 0
	}

	next.Elapsed = min(next.Elapsed+max(elapsed, 0), constants.GaugeTransition)
	t := float64(next.Elapsed) / float64(constants.GaugeTransition)
	next.Value = vmath.Clamp(vmath.Lerp(next.From, next.Target, vmath.EaseInOut(t)), 0, constants.GaugeMax)
	return next
}

// Settled reports whether the transition has reached its target
func (s GaugeState) Settled() bool {
	return s.Elapsed >= constants.GaugeTransition
}

// Gauge retargets on a fixed timer period and eases on animation frames
type Gauge struct {
	state GaugeState
	rng   *rand.Rand
	sched *engine.FrameScheduler
	timer *engine.Timer
}

// NewGauge creates a gauge drawing from rng
func NewGauge(rng *rand.Rand, sched *engine.FrameScheduler) *Gauge {
	return &Gauge{state: InitialGauge(), rng: rng, sched: sched}
}

// Start arms the retarget period and ties it to scope
func (g *Gauge) Start(timers *engine.TimerQueue, scope *engine.Scope) {
	if g.timer.Active() {
		return
	}
	g.timer = scope.AddTimer(timers.Every(constants.GaugePeriod, g.retarget))
	scope.AddAnimator(g.sched, g)
}

func (g *Gauge) retarget() {
	draw := Draw{Retarget: true, Snap: g.rng.Float64(), Spread: g.rng.Float64()}
	g.state = NextGauge(g.state, draw, 0)
	g.sched.Schedule(g)
}

// Update implements engine.Animator
func (g *Gauge) Update(dt time.Duration) bool {
	g.state = NextGauge(g.state, Draw{}, dt)
	return !g.state.Settled()
}

// State returns the current gauge snapshot
func (g *Gauge) State() GaugeState {
	return g.state
}
