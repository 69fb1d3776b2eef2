package constants

import "time"

// Pointer Follower
const (
	// FollowerStiffness, FollowerDamping, FollowerMass tune the pointer spring
	FollowerStiffness = 300.0
	FollowerDamping   = 20.0
	FollowerMass      = 0.5

	// SpringEpsilon is the settle threshold for position and velocity (px, px/s)
	SpringEpsilon = 0.01

	// FollowerSizeResting is the follower diameter with nothing interactive hovered
	FollowerSizeResting = 32.0
	// FollowerSizeInteractive is the diameter over links, buttons and clickables
	FollowerSizeInteractive = 60.0
	// FollowerSizeMagnetic is the diameter over a magnetic target carrying a label
	FollowerSizeMagnetic = 100.0

	// FollowerSizeDuration is the backOut tween length between size tiers
	FollowerSizeDuration = 300 * time.Millisecond

	// MagneticDefaultLabel is shown when a magnetic target carries no label
	MagneticDefaultLabel = "OPEN"
)

// Gallery Track
const (
	// SkewVelocityDivisor maps scroll velocity (px/s) to skew degrees
	SkewVelocityDivisor = -300.0
	// SkewMaxDegrees clamps skew in both directions
	SkewMaxDegrees = 20.0
	// SkewDecayDuration is the power3-out relaxation toward zero
	SkewDecayDuration = 800 * time.Millisecond

	// SmoothScrollLerp is the per-frame interpolation factor of page scrolling
	SmoothScrollLerp = 0.1
	// SmoothScrollEpsilon snaps the smoothed scroll onto its target (px)
	SmoothScrollEpsilon = 0.5
	// WheelStepPx is the scroll distance of one wheel notch
	WheelStepPx = 100.0
	// KeyScrollStepPx is the scroll distance of one arrow/page key press
	KeyScrollStepPx = 48.0
)

// Expand Transition
const (
	// ExpandDuration is the shared-geometry morph length, both directions
	ExpandDuration = 450 * time.Millisecond
	// BackdropMaxOpacity is the backdrop dim level at full expansion
	BackdropMaxOpacity = 0.8
)
