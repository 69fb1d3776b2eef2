package physics

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/archive/vmath"
)

func TestTweenRunsToCompletion(t *testing.T) {
	tw := NewTween(0, vmath.Linear)
	tw.Start(100, time.Second)

	tw.Update(250 * time.Millisecond)
	if got := tw.Value(); math.Abs(got-25) > 1e-9 {
		t.Errorf("Expected 25 at quarter time, got %v", got)
	}

	if tw.Update(time.Second) {
		t.Error("Expected tween to report finished after overshooting duration")
	}
	if tw.Value() != 100 || !tw.Done() {
		t.Errorf("Expected final value 100 and done, got %v done=%v", tw.Value(), tw.Done())
	}
}

// TestTweenRetargetFromCurrent verifies Start continues from the displayed value
func TestTweenRetargetFromCurrent(t *testing.T) {
	tw := NewTween(0, vmath.Linear)
	tw.Start(100, time.Second)
	tw.Update(500 * time.Millisecond)

	tw.Start(0, time.Second)
	if tw.From() != 50 {
		t.Errorf("Expected retarget origin 50, got %v", tw.From())
	}
	if tw.Value() != 50 {
		t.Errorf("Expected no jump on retarget, got %v", tw.Value())
	}
}

func TestTweenSet(t *testing.T) {
	tw := NewTween(3, nil)
	tw.Set(9)
	if tw.Value() != 9 || !tw.Done() || tw.Update(time.Millisecond) {
		t.Errorf("Expected Set to finish immediately at 9, got %v", tw.Value())
	}
}
