package gallery

import (
	"math"
	"time"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/vmath"
)

// SmoothScroll eases the page scroll position toward the wheel target
// Each 60Hz frame closes SmoothScrollLerp of the remaining distance
type SmoothScroll struct {
	current float64
	target  float64
	limit   float64

	// OnScroll runs after each integration step with the new position
	OnScroll func(y float64, dt time.Duration)
}

// NewSmoothScroll creates a scroller at the top of a page limit pixels tall beyond the viewport
func NewSmoothScroll(limit float64) *SmoothScroll {
	return &SmoothScroll{limit: max(limit, 0)}
}

// ScrollBy moves the target by delta, clamped to the page
func (s *SmoothScroll) ScrollBy(delta float64) {
	s.target = vmath.Clamp(s.target+delta, 0, s.limit)
}

// ScrollTo moves the target to y, clamped to the page
func (s *SmoothScroll) ScrollTo(y float64) {
	s.target = vmath.Clamp(y, 0, s.limit)
}

// Jump places both position and target at y without easing
func (s *SmoothScroll) Jump(y float64) {
	s.target = vmath.Clamp(y, 0, s.limit)
	s.current = s.target
}

// SetLimit updates the scrollable height, re-clamping position and target
func (s *SmoothScroll) SetLimit(limit float64) {
	s.limit = max(limit, 0)
	s.target = vmath.Clamp(s.target, 0, s.limit)
	s.current = vmath.Clamp(s.current, 0, s.limit)
}

// Update implements engine.Animator
func (s *SmoothScroll) Update(dt time.Duration) bool {
	if s.current == s.target {
		return false
	}
	frames := dt.Seconds() * constants.FrameRate
	k := 1 - math.Pow(1-constants.SmoothScrollLerp, frames)
	s.current += (s.target - s.current) * k
	if math.Abs(s.target-s.current) < constants.SmoothScrollEpsilon {
		s.current = s.target
	}
	if s.OnScroll != nil {
		s.OnScroll(s.current, dt)
	}
	return s.current != s.target
}

// Y returns the current page scroll
func (s *SmoothScroll) Y() float64 {
	return s.current
}

// Target returns the scroll destination
func (s *SmoothScroll) Target() float64 {
	return s.target
}

// Limit returns the maximum scroll
func (s *SmoothScroll) Limit() float64 {
	return s.limit
}
