package vmath

import "math"

// Easing maps normalized time t in [0,1] to progress
// Inputs outside [0,1] are clamped; outputs may overshoot for back curves
type Easing func(t float64) float64

// Linear is the identity curve
func Linear(t float64) float64 {
	return Clamp01(t)
}

// Power3Out decelerates with a cubic falloff
func Power3Out(t float64) float64 {
	t = Clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

// backOvershoot is the standard back-curve overshoot constant
const backOvershoot = 1.70158

// BackOut overshoots the target slightly before settling
func BackOut(t float64) float64 {
	t = Clamp01(t) - 1
	return t*t*((backOvershoot+1)*t+backOvershoot) + 1
}

var (
	// EaseInOut is the CSS ease-in-out curve
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)

	// EaseCurtain is the slow-in slow-out curve used by the preloader and headings
	EaseCurtain = CubicBezier(0.76, 0, 0.24, 1)
)

// CubicBezier builds a CSS-style timing function with control points (x1,y1), (x2,y2)
// x1 and x2 are clamped to [0,1] so the curve stays a function of time
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	x1 = Clamp01(x1)
	x2 = Clamp01(x2)

	// Polynomial coefficients: B(s) = ((a*s + b)*s + c)*s
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	solve := func(x float64) float64 {
		// Newton-Raphson, converges in a few steps for well-behaved curves
		s := x
		for i := 0; i < 8; i++ {
			err := sampleX(s) - x
			if math.Abs(err) < 1e-7 {
				return s
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= err / d
		}

		// Bisection fallback for flat slopes
		lo, hi := 0.0, 1.0
		s = x
		for i := 0; i < 40; i++ {
			v := sampleX(s)
			if math.Abs(v-x) < 1e-7 {
				break
			}
			if v < x {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}

	return func(t float64) float64 {
		t = Clamp01(t)
		if t == 0 || t == 1 {
			return t
		}
		return sampleY(solve(t))
	}
}
