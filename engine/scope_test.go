package engine

import (
	"testing"
	"time"
)

// TestScopeReleasesInReverse verifies LIFO release and single execution
func TestScopeReleasesInReverse(t *testing.T) {
	s := NewScope()
	var order []int
	s.Add(func() { order = append(order, 1) })
	s.Add(func() { order = append(order, 2) })
	s.Add(func() { order = append(order, 3) })

	s.Close()
	s.Close()

	if len(order) != 3 || order[0] != 3 || order[2] != 1 {
		t.Errorf("Expected release order [3 2 1], got %v", order)
	}
	if !s.Closed() {
		t.Error("Expected scope closed")
	}
}

// TestScopeReleasesTimersAndAnimators verifies teardown leaves nothing running
func TestScopeReleasesTimersAndAnimators(t *testing.T) {
	q := NewTimerQueue(epoch)
	fs := NewFrameScheduler(0)
	s := NewScope()

	fired := 0
	s.AddTimer(q.Every(time.Second, func() { fired++ }))
	a := &countdownAnimator{remaining: 100}
	fs.Schedule(a)
	s.AddAnimator(fs, a)

	s.Close()

	q.Advance(epoch.Add(10 * time.Second))
	fs.Step()
	if fired != 0 || q.Len() != 0 {
		t.Errorf("Expected released timer, fired=%d pending=%d", fired, q.Len())
	}
	if a.calls != 0 || fs.Active() != 0 {
		t.Errorf("Expected released animator, calls=%d active=%d", a.calls, fs.Active())
	}
}

func TestScopeAddAfterClose(t *testing.T) {
	s := NewScope()
	s.Close()
	ran := false
	s.Add(func() { ran = true })
	if !ran {
		t.Error("Expected release on closed scope to run immediately")
	}
}
