package engine

import (
	"container/heap"
	"time"
)

// Timer is a one-shot or periodic callback owned by a TimerQueue
type Timer struct {
	queue    *TimerQueue
	deadline time.Time
	period   time.Duration // 0 = one-shot
	fn       func()
	index    int // Heap index, -1 when not queued
	seq      uint64
}

// Stop cancels the timer, returns false if it already fired or was stopped
func (t *Timer) Stop() bool {
	if t == nil || t.index < 0 {
		return false
	}
	heap.Remove(&t.queue.heap, t.index)
	return true
}

// Active reports whether the timer is still pending
func (t *Timer) Active() bool {
	return t != nil && t.index >= 0
}

// Deadline returns the next firing time
func (t *Timer) Deadline() time.Time {
	return t.deadline
}

// TimerQueue schedules callbacks against the loop clock
// Independent of rendering: timers fire from Advance based on elapsed time only
// Single-threaded: callbacks run on the caller of Advance and may add or stop timers
type TimerQueue struct {
	heap timerHeap
	now  time.Time
	seq  uint64
}

// NewTimerQueue creates a queue whose clock starts at now
func NewTimerQueue(now time.Time) *TimerQueue {
	return &TimerQueue{now: now}
}

// Now returns the queue's current time
func (q *TimerQueue) Now() time.Time {
	return q.now
}

// After schedules fn once, d from now
func (q *TimerQueue) After(d time.Duration, fn func()) *Timer {
	return q.add(d, 0, fn)
}

// Every schedules fn every period, first firing one period from now
func (q *TimerQueue) Every(period time.Duration, fn func()) *Timer {
	if period <= 0 {
		panic("engine: non-positive timer period")
	}
	return q.add(period, period, fn)
}

func (q *TimerQueue) add(d, period time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	q.seq++
	t := &Timer{
		queue:    q,
		deadline: q.now.Add(d),
		period:   period,
		fn:       fn,
		index:    -1,
		seq:      q.seq,
	}
	heap.Push(&q.heap, t)
	return t
}

// Advance moves the queue clock to now and fires every due timer in deadline order
// A periodic timer that fell several periods behind fires once and re-arms past now
// Returns the number of callbacks fired
func (q *TimerQueue) Advance(now time.Time) int {
	if now.After(q.now) {
		q.now = now
	}

	fired := 0
	for len(q.heap) > 0 {
		t := q.heap[0]
		if t.deadline.After(q.now) {
			break
		}

		if t.period > 0 {
			for !t.deadline.After(q.now) {
				t.deadline = t.deadline.Add(t.period)
			}
			heap.Fix(&q.heap, 0)
		} else {
			heap.Pop(&q.heap)
		}

		t.fn()
		fired++
	}
	return fired
}

// Len returns the number of pending timers
func (q *TimerQueue) Len() int {
	return len(q.heap)
}

// timerHeap orders timers by deadline, then by creation order
type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
