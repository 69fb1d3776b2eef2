package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/vmath"
)

const step = constants.FrameInterval

// TestSpringConfigConversion verifies physical parameters map to harmonica's
func TestSpringConfigConversion(t *testing.T) {
	w := PointerSpring.AngularFrequency()
	if math.Abs(w-math.Sqrt(600)) > 1e-9 {
		t.Errorf("Expected angular frequency sqrt(600), got %v", w)
	}
	z := PointerSpring.DampingRatio()
	want := 20 / (2 * math.Sqrt(150))
	if math.Abs(z-want) > 1e-9 {
		t.Errorf("Expected damping ratio %v, got %v", want, z)
	}
}

// TestSpringConverges verifies the value settles on the target and stops
func TestSpringConverges(t *testing.T) {
	s := NewSpring(PointerSpring)
	s.SetTarget(250)

	frames := 0
	for s.Update(step) {
		frames++
		if frames > 10*constants.FrameRate {
			t.Fatalf("Spring did not settle within 10s, value=%v vel=%v", s.Value(), s.Velocity())
		}
	}

	if s.Value() != 250 {
		t.Errorf("Expected settled value 250, got %v", s.Value())
	}
	if !s.Settled() {
		t.Error("Expected spring to report settled")
	}
	// Settled springs stop consuming frames
	if s.Update(step) {
		t.Error("Expected settled spring to return false on Update")
	}
}

// TestSpringStrictLag verifies output never equals a fresh target on the same tick
func TestSpringStrictLag(t *testing.T) {
	s := NewSpring(PointerSpring)
	targets := []float64{10, 10.001, 400, -3, 0.002, 77}
	for _, target := range targets {
		s.SetTarget(target)
		if !s.Update(step) {
			t.Fatalf("Expected spring to stay active on the tick after SetTarget(%v)", target)
		}
		if s.Value() == target {
			t.Errorf("Rendered value equals raw target %v on the same tick", target)
		}
	}
}

// TestSpringSnap verifies Snap places the spring at rest
func TestSpringSnap(t *testing.T) {
	s := NewSpring(PointerSpring)
	s.SetTarget(100)
	s.Update(step)
	s.Snap(42)
	if s.Value() != 42 || s.Target() != 42 || s.Velocity() != 0 || !s.Settled() {
		t.Errorf("Snap(42) left value=%v target=%v vel=%v settled=%v",
			s.Value(), s.Target(), s.Velocity(), s.Settled())
	}
}

// TestSpring2ConvergesToLatest verifies the vector spring chases the newest target
func TestSpring2ConvergesToLatest(t *testing.T) {
	s := NewSpring2(PointerSpring)
	path := []vmath.Vec2{{X: 10, Y: 10}, {X: 80, Y: 40}, {X: 300, Y: 120}}
	for _, p := range path {
		s.SetTarget(p)
		s.Update(step)
	}

	latest := path[len(path)-1]
	startDist := s.Value().Dist(latest)
	for i := 0; i < 5*constants.FrameRate; i++ {
		if !s.Update(step) {
			break
		}
	}
	if !s.Settled() {
		t.Fatal("Expected vector spring to settle")
	}
	if got := s.Value(); got != latest {
		t.Errorf("Expected settled position %+v, got %+v (distance before settling %v)", latest, got, startDist)
	}
}

// TestSpringZeroDt verifies a zero step keeps the spring active without moving it
func TestSpringZeroDt(t *testing.T) {
	s := NewSpring(PointerSpring)
	s.SetTarget(5)
	if !s.Update(0) {
		t.Error("Expected zero-dt update to report active")
	}
	if s.Value() != 0 {
		t.Errorf("Expected zero-dt update not to move, got %v", s.Value())
	}
}
