package vmath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{-25, -20, 20, -20},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

// TestEasingEndpoints verifies every curve maps 0->0 and 1->1
func TestEasingEndpoints(t *testing.T) {
	curves := map[string]Easing{
		"Linear":      Linear,
		"Power3Out":   Power3Out,
		"BackOut":     BackOut,
		"EaseInOut":   EaseInOut,
		"EaseCurtain": EaseCurtain,
	}
	for name, ease := range curves {
		if got := ease(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := ease(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

// TestEaseInOutSymmetry verifies ease-in-out is point symmetric around the midpoint
func TestEaseInOutSymmetry(t *testing.T) {
	if got := EaseInOut(0.5); math.Abs(got-0.5) > 1e-4 {
		t.Errorf("EaseInOut(0.5) = %v, want 0.5", got)
	}
	for _, x := range []float64{0.1, 0.25, 0.4} {
		a := EaseInOut(x)
		b := EaseInOut(1 - x)
		if math.Abs(a+b-1) > 1e-4 {
			t.Errorf("EaseInOut(%v) + EaseInOut(%v) = %v, want 1", x, 1-x, a+b)
		}
	}
}

// TestPower3OutMonotonic verifies the decay curve never moves backwards
func TestPower3OutMonotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := Power3Out(float64(i) / 100)
		if v < prev {
			t.Fatalf("Power3Out decreased at step %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

// TestBackOutOvershoots verifies the back curve passes its target before settling
func TestBackOutOvershoots(t *testing.T) {
	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = math.Max(peak, BackOut(float64(i)/100))
	}
	if peak <= 1 {
		t.Errorf("Expected BackOut to overshoot 1, peak %v", peak)
	}
}

func TestLerpRect(t *testing.T) {
	a := R(0, 0, 10, 10)
	b := R(100, 50, 200, 100)
	mid := LerpRect(a, b, 0.5)
	want := R(50, 25, 105, 55)
	if mid != want {
		t.Errorf("LerpRect midpoint = %+v, want %+v", mid, want)
	}
	if LerpRect(a, b, 0) != a || LerpRect(a, b, 1) != b {
		t.Error("LerpRect endpoints must equal inputs")
	}
}

func TestCellPixelRoundTrip(t *testing.T) {
	p := CellToPixel(3, 7, 8, 16)
	cx, cy := PixelToCell(p, 8, 16)
	if cx != 3 || cy != 7 {
		t.Errorf("PixelToCell(CellToPixel(3,7)) = (%d,%d), want (3,7)", cx, cy)
	}

	cr := CellRect{X: 2, Y: 1, W: 10, H: 4}
	if back := cr.ToPixels(8, 16).ToCells(8, 16); back != cr {
		t.Errorf("CellRect round trip = %+v, want %+v", back, cr)
	}
}
