package engine

import (
	"sync"
	"time"
)

// MockClock is a manually stepped Clock for deterministic loop tests
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockClock creates a clock frozen at start
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// SetTime jumps to t, backwards jumps included
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d and returns the new reading
func (m *MockClock) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// Drive advances by step n times, running one loop frame after each step
func (m *MockClock) Drive(frame func(time.Time), step time.Duration, n int) {
	for range n {
		frame(m.Advance(step))
	}
}
