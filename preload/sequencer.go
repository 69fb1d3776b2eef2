package preload

import (
	"time"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/engine"
	"github.com/lixenwraith/archive/vmath"
)

// Phase is the curtain stage
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFill
	PhaseHold
	PhaseExit
	PhaseDone
)

// Cover is the curtain as a function of time
type Cover struct {
	Phase   Phase
	Fill    float64 // Title reveal in [0,1]
	Caption float64 // Caption opacity in [0,1]
	Exit    float64 // Upward slide as a fraction of the viewport height in [0,1]
}

// Sequencer is the one-shot blocking curtain
// Visuals are a pure function of time since Start; the ready signal comes from a timer
type Sequencer struct {
	startedAt time.Time
	started   bool
	ready     bool
	timer     *engine.Timer

	// OnReady fires exactly once when the curtain is fully out of view
	OnReady func()
}

// New creates an idle sequencer
func New(onReady func()) *Sequencer {
	return &Sequencer{OnReady: onReady}
}

// Start begins the curtain at the queue's current time, no-op after the first call
func (s *Sequencer) Start(timers *engine.TimerQueue, scope *engine.Scope) {
	if s.started {
		return
	}
	s.started = true
	s.startedAt = timers.Now()
	s.timer = scope.AddTimer(timers.After(Total(), s.finish))
}

func (s *Sequencer) finish() {
	if s.ready {
		return
	}
	s.ready = true
	if s.OnReady != nil {
		s.OnReady()
	}
}

// Total returns the full curtain length including the exit slide
func Total() time.Duration {
	return constants.PreloadHoldUntil + constants.PreloadExitDuration
}

// Blocking reports whether input must be ignored
func (s *Sequencer) Blocking() bool {
	return !s.ready
}

// Ready reports whether the ready signal has fired
func (s *Sequencer) Ready() bool {
	return s.ready
}

// Cover returns the curtain state at now
func (s *Sequencer) Cover(now time.Time) Cover {
	if s.ready {
		return Cover{Phase: PhaseDone, Fill: 1, Caption: 1, Exit: 1}
	}
	if !s.started {
		return Cover{Phase: PhaseIdle}
	}
	return CoverAt(now.Sub(s.startedAt))
}

// CoverAt evaluates the curtain timeline at elapsed
func CoverAt(elapsed time.Duration) Cover {
	c := Cover{
		Fill:    vmath.EaseInOut(ratio(elapsed, 0, constants.PreloadFillDuration)),
		Caption: ratio(elapsed, constants.PreloadCaptionDelay, constants.PreloadCaptionFade),
		Exit:    vmath.EaseCurtain(ratio(elapsed, constants.PreloadHoldUntil, constants.PreloadExitDuration)),
	}
	switch {
	case elapsed < constants.PreloadFillDuration:
		c.Phase = PhaseFill
	case elapsed < constants.PreloadHoldUntil:
		c.Phase = PhaseHold
	case elapsed < Total():
		c.Phase = PhaseExit
	default:
		c.Phase = PhaseDone
	}
	return c
}

// ratio maps elapsed into [0,1] over the window starting at delay
func ratio(elapsed, delay, d time.Duration) float64 {
	if d <= 0 {
		if elapsed >= delay {
			return 1
		}
		return 0
	}
	return vmath.Clamp01(float64(elapsed-delay) / float64(d))
}
