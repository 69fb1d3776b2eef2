package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/archive/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays feedback cues through the system speaker
// Every Play call is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	played      [4]int
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	sm := &SoundManager{
		mixer: &beep.Mixer{},
	}
	return sm
}

// Initialize opens the speaker; safe to call twice
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferTime))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup drops queued cues and disables playback
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// Speaker stays open, an empty mixer keeps the device silent
	sm.initialized = false
}

// Play queues cue c
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || c < CueClick || c > CueSubmit {
		return
	}
	sm.played[c]++

	speaker.Lock()
	sm.mixer.Add(Streamer(c, sampleRate))
	speaker.Unlock()
}

// Played returns how many times c was queued
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if c < CueClick || c > CueSubmit {
		return 0
	}
	return sm.played[c]
}

// PlayClick plays the selection tick
func (sm *SoundManager) PlayClick() { sm.Play(CueClick) }

// PlayError plays a short error buzz sound
func (sm *SoundManager) PlayError() { sm.Play(CueError) }

// PlayUnlock plays the rising unlock chime
func (sm *SoundManager) PlayUnlock() { sm.Play(CueUnlock) }

// PlaySubmit plays the submit confirmation
func (sm *SoundManager) PlaySubmit() { sm.Play(CueSubmit) }
