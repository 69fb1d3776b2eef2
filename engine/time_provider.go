package engine

import "time"

// Clock supplies the current time to animators and timers
type Clock interface {
	Now() time.Time
}

// MonotonicClock provides the real system time with monotonic clock readings
type MonotonicClock struct{}

// NewMonotonicClock creates a new monotonic clock
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

// Now returns the current time with monotonic clock reading
func (MonotonicClock) Now() time.Time {
	return time.Now()
}
