package engine

import (
	"time"

	"github.com/lixenwraith/archive/constants"
)

// Animator is a per-frame integrator (spring, tween, decay)
// Update returns false once settled; the scheduler then stops calling it until rescheduled
// Implementations must be comparable (pointer receivers)
type Animator interface {
	Update(dt time.Duration) bool
}

// FrameScheduler is the single animation-frame driver
// Runs registered animators on a fixed step, independent of the render rate
// Single-threaded: all calls happen on the loop goroutine
type FrameScheduler struct {
	step time.Duration

	active  []Animator
	pending []Animator
	members map[Animator]struct{}
	inStep  bool

	// Fixed-step accumulator with catch-up bound
	last        time.Time
	started     bool
	accumulator time.Duration

	frames uint64
}

// NewFrameScheduler creates a scheduler with the given fixed step, defaults to FrameInterval
func NewFrameScheduler(step time.Duration) *FrameScheduler {
	if step <= 0 {
		step = constants.FrameInterval
	}
	return &FrameScheduler{
		step:    step,
		members: make(map[Animator]struct{}),
	}
}

// Schedule registers an animator for upcoming frames, no-op if already active
// Animators scheduled during a step join on the next step
func (fs *FrameScheduler) Schedule(a Animator) {
	if a == nil {
		return
	}
	if _, ok := fs.members[a]; ok {
		return
	}
	fs.members[a] = struct{}{}
	if fs.inStep {
		fs.pending = append(fs.pending, a)
		return
	}
	fs.active = append(fs.active, a)
}

// Cancel removes an animator; its output simply stops being applied
func (fs *FrameScheduler) Cancel(a Animator) {
	if _, ok := fs.members[a]; !ok {
		return
	}
	delete(fs.members, a)
	fs.pending = removeAnimator(fs.pending, a)
	if !fs.inStep {
		fs.active = removeAnimator(fs.active, a)
	}
}

// Advance runs every whole step elapsed since the previous call
// Returns the number of steps executed
func (fs *FrameScheduler) Advance(now time.Time) int {
	if !fs.started {
		fs.started = true
		fs.last = now
		return 0
	}

	elapsed := now.Sub(fs.last)
	fs.last = now
	if elapsed <= 0 {
		return 0
	}
	fs.accumulator += elapsed

	steps := 0
	for fs.accumulator >= fs.step {
		if steps == constants.MaxCatchUpSteps {
			// Too far behind, drop the backlog rather than spiral
			fs.accumulator = 0
			break
		}
		fs.Step()
		fs.accumulator -= fs.step
		steps++
	}
	return steps
}

// Step runs exactly one fixed step over all active animators
func (fs *FrameScheduler) Step() {
	fs.inStep = true
	kept := fs.active[:0]
	for _, a := range fs.active {
		if _, ok := fs.members[a]; !ok {
			continue // Cancelled by an earlier animator in this step
		}
		if a.Update(fs.step) {
			kept = append(kept, a)
		} else {
			delete(fs.members, a)
		}
	}
	// Drop animators cancelled after they ran in this step
	filtered := kept[:0]
	for _, a := range kept {
		if _, ok := fs.members[a]; ok {
			filtered = append(filtered, a)
		}
	}
	kept = filtered
	// Clear tail references for GC
	for i := len(kept); i < len(fs.active); i++ {
		fs.active[i] = nil
	}
	fs.active = kept
	fs.inStep = false

	// A cancel-then-reschedule inside the step can leave the animator in both lists
	for _, a := range fs.pending {
		if !containsAnimator(fs.active, a) {
			fs.active = append(fs.active, a)
		}
	}
	fs.pending = fs.pending[:0]
	fs.frames++
}

// Active returns the number of animators consuming frames
func (fs *FrameScheduler) Active() int {
	return len(fs.members)
}

// IsActive reports whether a is currently scheduled
func (fs *FrameScheduler) IsActive(a Animator) bool {
	_, ok := fs.members[a]
	return ok
}

// Frames returns the number of fixed steps executed
func (fs *FrameScheduler) Frames() uint64 {
	return fs.frames
}

// StepSize returns the fixed step duration
func (fs *FrameScheduler) StepSize() time.Duration {
	return fs.step
}

func containsAnimator(list []Animator, a Animator) bool {
	for _, x := range list {
		if x == a {
			return true
		}
	}
	return false
}

func removeAnimator(list []Animator, a Animator) []Animator {
	for i, x := range list {
		if x == a {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}
