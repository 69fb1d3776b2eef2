package constants

import "time"

// Audio Cues
const (
	AudioSampleRate = 48000
	AudioBufferTime = 100 * time.Millisecond

	ClickToneHz    = 880.0
	ClickDuration  = 40 * time.Millisecond
	ErrorBuzzHz    = 120.0
	ErrorDuration  = 150 * time.Millisecond
	UnlockDuration = 450 * time.Millisecond
	SubmitDuration = 250 * time.Millisecond

	// CueGain scales every generated cue
	CueGain = 0.2
)
