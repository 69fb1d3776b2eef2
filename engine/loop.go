package engine

import (
	"context"
	"time"
)

// Loop is the cooperative run loop: one goroutine owns every component
// Raw input arrives over a channel; each frame advances timers, then animators, then draws
type Loop[E any] struct {
	Clock     Clock
	Interval  time.Duration
	Timers    *TimerQueue
	Scheduler *FrameScheduler

	// OnEvent handles one raw input event, returning false requests exit
	OnEvent func(ev E) bool
	// OnFrame runs after timers and animators advanced for this frame
	OnFrame func(now time.Time)
}

// Run blocks until ctx is cancelled, the source closes, or OnEvent requests exit
func (l *Loop[E]) Run(ctx context.Context, source <-chan E) error {
	interval := l.Interval
	if interval <= 0 {
		interval = l.Scheduler.StepSize()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.Frame(l.Clock.Now())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-source:
			if !ok {
				return nil
			}
			if l.OnEvent != nil && !l.OnEvent(ev) {
				return nil
			}

		case <-ticker.C:
			l.Frame(l.Clock.Now())
		}
	}
}

// Frame executes one frame at the given time
// Exposed so tests can drive the loop deterministically
func (l *Loop[E]) Frame(now time.Time) {
	l.Timers.Advance(now)
	l.Scheduler.Advance(now)
	if l.OnFrame != nil {
		l.OnFrame(now)
	}
}
