package gate

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/engine"
	"github.com/lixenwraith/archive/vmath"
)

var (
	// ErrUnlocked is returned for any answer after the gate opened
	ErrUnlocked = errors.New("gate already unlocked")
	// ErrInvalidAnswer is returned for a choice outside the current step's answers
	ErrInvalidAnswer = errors.New("answer index out of range")
	// ErrNoSteps is returned when constructing a gate without steps
	ErrNoSteps = errors.New("gate has no steps")
)

// Step is one quiz question
type Step struct {
	Prompt  string
	Answers []string
	Correct int
}

// Result is the outcome of one answer
type Result int

const (
	ResultWrong Result = iota
	ResultAdvanced
	ResultUnlocked
)

func (r Result) String() string {
	switch r {
	case ResultAdvanced:
		return "advanced"
	case ResultUnlocked:
		return "unlocked"
	default:
		return "wrong"
	}
}

// Option configures a Machine
type Option func(*Machine)

// WithOnUnlock registers the callback fired exactly once when the last step is passed
func WithOnUnlock(fn func()) Option {
	return func(m *Machine) { m.onUnlock = fn }
}

// WithOnFail registers a callback fired on every wrong answer
func WithOnFail(fn func()) Option {
	return func(m *Machine) { m.onFail = fn }
}

// WithFailPulse overrides how long the failed flag stays raised
func WithFailPulse(d time.Duration) Option {
	return func(m *Machine) { m.pulse = d }
}

// Machine is the ordered quiz gate
// States are Step(i) for i in [0,N) and the terminal Unlocked (index == N)
type Machine struct {
	steps  []Step
	index  int
	timers *engine.TimerQueue

	failed    bool
	failedAt  time.Time
	failTimer *engine.Timer
	pulse     time.Duration

	onUnlock func()
	onFail   func()
	fired    bool
	closed   bool
}

// New validates steps and creates a machine at Step(0)
// Steps are copied so later mutation by the caller cannot change the gate
func New(steps []Step, timers *engine.TimerQueue, opts ...Option) (*Machine, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	own := make([]Step, len(steps))
	for i, s := range steps {
		if s.Correct < 0 || s.Correct >= len(s.Answers) {
			return nil, fmt.Errorf("step %d: correct index %d with %d answers: %w", i, s.Correct, len(s.Answers), ErrInvalidAnswer)
		}
		own[i] = Step{
			Prompt:  s.Prompt,
			Answers: append([]string(nil), s.Answers...),
			Correct: s.Correct,
		}
	}

	m := &Machine{
		steps:  own,
		timers: timers,
		pulse:  constants.GateFailPulse,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Answer submits a choice for the current step
// A correct answer advances, or unlocks after the last step; a wrong one raises the
// transient failed flag and leaves the index unchanged
func (m *Machine) Answer(choice int) (Result, error) {
	if m.Unlocked() {
		return ResultUnlocked, ErrUnlocked
	}
	step := m.steps[m.index]
	if choice < 0 || choice >= len(step.Answers) {
		return ResultWrong, ErrInvalidAnswer
	}

	if choice != step.Correct {
		m.fail()
		return ResultWrong, nil
	}

	m.clearFail()
	m.index++
	if m.index < len(m.steps) {
		return ResultAdvanced, nil
	}

	if !m.fired {
		m.fired = true
		if m.onUnlock != nil {
			m.onUnlock()
		}
	}
	return ResultUnlocked, nil
}

// Without a timer queue the failed flag holds until the next correct answer
func (m *Machine) fail() {
	m.failed = true
	if m.onFail != nil {
		m.onFail()
	}
	if m.timers == nil {
		return
	}
	m.failedAt = m.timers.Now()
	// Repeated failures restart the pulse
	m.failTimer.Stop()
	if !m.closed {
		m.failTimer = m.timers.After(m.pulse, func() {
			m.failed = false
			m.failTimer = nil
		})
	}
}

func (m *Machine) clearFail() {
	m.failed = false
	m.failTimer.Stop()
	m.failTimer = nil
}

// Index returns the current step index in [0, N]
func (m *Machine) Index() int {
	return m.index
}

// Len returns N
func (m *Machine) Len() int {
	return len(m.steps)
}

// Current returns the active step, false once unlocked
func (m *Machine) Current() (Step, bool) {
	if m.Unlocked() {
		return Step{}, false
	}
	return m.steps[m.index], true
}

// Failed reports the transient wrong-answer flag
func (m *Machine) Failed() bool {
	return m.failed
}

// Unlocked reports the terminal state
func (m *Machine) Unlocked() bool {
	return m.index >= len(m.steps)
}

// ShakeOffset returns the horizontal shake in pixels at time now
// Zero outside the shake window of the most recent failure
func (m *Machine) ShakeOffset(now time.Time) float64 {
	if !m.failed {
		return 0
	}
	return Shake(now.Sub(m.failedAt), constants.GateShakeDuration, constants.GateShakeAmplitudePx)
}

// Close releases the pending fail timer
func (m *Machine) Close() {
	m.closed = true
	m.failTimer.Stop()
	m.failTimer = nil
}

// shakeKeys are the x keyframes as multiples of the amplitude
var shakeKeys = [...]float64{0, -1, 1, -1, 1, 0}

// Shake evaluates the keyframed shake at elapsed into a window of length d
func Shake(elapsed, d time.Duration, amplitude float64) float64 {
	if elapsed <= 0 || elapsed >= d {
		return 0
	}
	segments := float64(len(shakeKeys) - 1)
	pos := float64(elapsed) * segments / float64(d)
	i := int(pos)
	return amplitude * vmath.Lerp(shakeKeys[i], shakeKeys[i+1], pos-float64(i))
}
