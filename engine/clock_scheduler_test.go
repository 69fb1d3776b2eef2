package engine

import (
	"testing"
	"time"
)

// countdownAnimator stays active for a fixed number of steps
type countdownAnimator struct {
	remaining int
	calls     int
	lastDt    time.Duration
}

func (c *countdownAnimator) Update(dt time.Duration) bool {
	c.calls++
	c.lastDt = dt
	c.remaining--
	return c.remaining > 0
}

// TestFrameSchedulerDropsSettled verifies settled animators stop consuming frames
func TestFrameSchedulerDropsSettled(t *testing.T) {
	fs := NewFrameScheduler(10 * time.Millisecond)
	a := &countdownAnimator{remaining: 3}
	fs.Schedule(a)

	for i := 0; i < 10; i++ {
		fs.Step()
	}

	if a.calls != 3 {
		t.Errorf("Expected 3 updates before settling, got %d", a.calls)
	}
	if fs.Active() != 0 || fs.IsActive(a) {
		t.Errorf("Expected no active animators, got %d", fs.Active())
	}
	if fs.Frames() != 10 {
		t.Errorf("Expected 10 frames, got %d", fs.Frames())
	}
}

// TestFrameSchedulerFixedStep verifies Advance runs whole fixed steps only
func TestFrameSchedulerFixedStep(t *testing.T) {
	fs := NewFrameScheduler(10 * time.Millisecond)
	a := &countdownAnimator{remaining: 1000}
	fs.Schedule(a)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if n := fs.Advance(base); n != 0 {
		t.Fatalf("Expected first Advance to only anchor time, ran %d steps", n)
	}
	if n := fs.Advance(base.Add(25 * time.Millisecond)); n != 2 {
		t.Errorf("Expected 2 steps for 25ms, got %d", n)
	}
	// 5ms carried over + 5ms = one more step
	if n := fs.Advance(base.Add(30 * time.Millisecond)); n != 1 {
		t.Errorf("Expected carried remainder to complete a step, got %d", n)
	}
	if a.lastDt != 10*time.Millisecond {
		t.Errorf("Expected fixed dt 10ms, got %v", a.lastDt)
	}
}

// TestFrameSchedulerCatchUpBound verifies a stall does not replay unbounded steps
func TestFrameSchedulerCatchUpBound(t *testing.T) {
	fs := NewFrameScheduler(10 * time.Millisecond)
	fs.Schedule(&countdownAnimator{remaining: 1000})

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fs.Advance(base)
	n := fs.Advance(base.Add(5 * time.Second))
	if n > 8 {
		t.Errorf("Expected catch-up bounded to 8 steps, got %d", n)
	}
	if n := fs.Advance(base.Add(5*time.Second + 10*time.Millisecond)); n != 1 {
		t.Errorf("Expected backlog dropped after stall, got %d steps", n)
	}
}

// TestFrameSchedulerScheduleIdempotent verifies double scheduling runs once per step
func TestFrameSchedulerScheduleIdempotent(t *testing.T) {
	fs := NewFrameScheduler(0)
	a := &countdownAnimator{remaining: 100}
	fs.Schedule(a)
	fs.Schedule(a)
	fs.Step()
	if a.calls != 1 {
		t.Errorf("Expected one update per step, got %d", a.calls)
	}
}

// cancellingAnimator cancels a peer during its own update
type cancellingAnimator struct {
	fs     *FrameScheduler
	victim Animator
}

func (c *cancellingAnimator) Update(time.Duration) bool {
	c.fs.Cancel(c.victim)
	return true
}

// TestFrameSchedulerCancelDuringStep verifies cancellation inside a step is honored
func TestFrameSchedulerCancelDuringStep(t *testing.T) {
	fs := NewFrameScheduler(0)
	victim := &countdownAnimator{remaining: 100}
	fs.Schedule(&cancellingAnimator{fs: fs, victim: victim})
	fs.Schedule(victim)

	fs.Step()
	fs.Step()

	if victim.calls != 0 {
		t.Errorf("Expected cancelled animator never to run, ran %d times", victim.calls)
	}
	if fs.Active() != 1 {
		t.Errorf("Expected only the cancelling animator active, got %d", fs.Active())
	}
}

// schedulingAnimator schedules another animator on its first update
type schedulingAnimator struct {
	fs    *FrameScheduler
	child Animator
	done  bool
}

func (s *schedulingAnimator) Update(time.Duration) bool {
	if !s.done {
		s.fs.Schedule(s.child)
		s.done = true
	}
	return false
}

// TestFrameSchedulerScheduleDuringStep verifies late joiners start on the next step
func TestFrameSchedulerScheduleDuringStep(t *testing.T) {
	fs := NewFrameScheduler(0)
	child := &countdownAnimator{remaining: 5}
	fs.Schedule(&schedulingAnimator{fs: fs, child: child})

	fs.Step()
	if child.calls != 0 {
		t.Errorf("Expected child to wait for the next step, got %d calls", child.calls)
	}
	fs.Step()
	if child.calls != 1 {
		t.Errorf("Expected child to run on the next step, got %d calls", child.calls)
	}
}
