package constants

import "time"

// Preload Curtain
const (
	// PreloadFillDuration is the outline-to-filled title reveal
	PreloadFillDuration = 3 * time.Second
	// PreloadCaptionDelay is when the caption line appears
	PreloadCaptionDelay = 2500 * time.Millisecond
	// PreloadCaptionFade is the caption fade-in length
	PreloadCaptionFade = 500 * time.Millisecond
	// PreloadHoldUntil is when the curtain starts sliding out
	PreloadHoldUntil = 3500 * time.Millisecond
	// PreloadExitDuration is the slide-out length
	PreloadExitDuration = time.Second
)

// Page Entrance
const (
	HeaderEntranceDelay    = 500 * time.Millisecond
	HeaderEntranceDuration = time.Second

	WidgetEntranceDelay    = 800 * time.Millisecond
	WidgetEntranceStagger  = 100 * time.Millisecond
	WidgetEntranceDuration = 500 * time.Millisecond

	// EntranceRisePx is the vertical travel of widget entrances
	EntranceRisePx = 20.0
	// HeaderRisePx is the vertical travel of the header entrance
	HeaderRisePx = 50.0

	// MoodFadeDuration is the playlist mood swap fade
	MoodFadeDuration = 300 * time.Millisecond
	// MoodRisePx is the vertical travel of the mood swap
	MoodRisePx = 10.0
)

// Gate
const (
	// GateFailPulse is how long the failed flag stays raised after a wrong answer
	GateFailPulse = time.Second
	// GateShakeDuration is the horizontal shake played at the start of the pulse
	GateShakeDuration = 400 * time.Millisecond
	// GateShakeAmplitudePx is the shake keyframe magnitude
	GateShakeAmplitudePx = 10.0
)

// Ambient Animators
const (
	// GaugeInitial is the gauge value at mount
	GaugeInitial = 96.0
	// GaugePeriod is the retarget interval
	GaugePeriod = 3 * time.Second
	// GaugeTransition is the eased move toward a new target
	GaugeTransition = 2 * time.Second
	// GaugeSnapThreshold: uniform draws above it snap the target to GaugeMax (30%)
	GaugeSnapThreshold = 0.7
	// GaugeMax is the forced target and the upper bound of the value
	GaugeMax = 100.0
	// GaugeSpreadMin and GaugeSpreadWidth bound the uniform target draw
	GaugeSpreadMin   = 95.0
	GaugeSpreadWidth = 1.5
	// GaugeCriticalThreshold is exceeded by critical targets
	GaugeCriticalThreshold = 98.5

	// CountdownTick is the countdown recompute interval
	CountdownTick = time.Second
)

// Booking Flow
const (
	// RedirectDelay is the pause between submission and the outbound redirect
	RedirectDelay = 5 * time.Second
	// MessageMaxLength bounds the free-text reason field
	MessageMaxLength = 280
	// CardFlipDuration is the dossier front/back flip
	CardFlipDuration = 600 * time.Millisecond
)
