package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/archive/constants"
)

// Cue identifies one feedback sound
type Cue int

const (
	CueClick Cue = iota
	CueError
	CueUnlock
	CueSubmit
)

func (c Cue) String() string {
	switch c {
	case CueClick:
		return "click"
	case CueError:
		return "error"
	case CueUnlock:
		return "unlock"
	case CueSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// note is one segment of a cue
type note struct {
	freq float64
	dur  time.Duration
}

// cueNotes maps each cue to its note sequence
func cueNotes(c Cue) []note {
	switch c {
	case CueClick:
		return []note{{constants.ClickToneHz, constants.ClickDuration}}
	case CueUnlock:
		// C5 E5 G5 C6
		step := constants.UnlockDuration / 4
		return []note{{523.25, step}, {659.25, step}, {783.99, step}, {1046.5, step}}
	case CueSubmit:
		half := constants.SubmitDuration / 2
		return []note{{587.33, half}, {880, half}}
	default:
		return nil
	}
}

// Streamer returns a finite streamer for c at sample rate sr
func Streamer(c Cue, sr beep.SampleRate) beep.Streamer {
	if c == CueError {
		return beep.Take(sr.N(constants.ErrorDuration), NewBuzzGenerator(sr, constants.ErrorBuzzHz))
	}
	return NewToneSequence(sr, cueNotes(c))
}

// ToneSequence plays sine notes back to back with a short attack and release per note
type ToneSequence struct {
	sr    beep.SampleRate
	notes []note
	idx   int
	pos   int
}

// NewToneSequence creates a sequence generator
func NewToneSequence(sr beep.SampleRate, notes []note) *ToneSequence {
	return &ToneSequence{sr: sr, notes: notes}
}

func (g *ToneSequence) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && g.idx < len(g.notes) {
		nt := g.notes[g.idx]
		total := g.sr.N(nt.dur)
		if g.pos >= total {
			g.idx++
			g.pos = 0
			continue
		}
		t := float64(g.pos) / float64(g.sr)
		sample := constants.CueGain * envelope(g.pos, total, g.sr.N(5*time.Millisecond)) * math.Sin(2*math.Pi*nt.freq*t)
		samples[n][0] = sample
		samples[n][1] = sample
		g.pos++
		n++
	}
	return n, n > 0
}

func (g *ToneSequence) Err() error {
	return nil
}

// envelope ramps linearly over ramp samples at both ends of a note
func envelope(pos, total, ramp int) float64 {
	if ramp <= 0 {
		return 1
	}
	if pos < ramp {
		return float64(pos) / float64(ramp)
	}
	if tail := total - pos; tail < ramp {
		return float64(tail) / float64(ramp)
	}
	return 1
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Odd-ish harmonic stack for a harsh edge
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		attack := math.Min(t/0.02, 1.0)
		sample *= attack * constants.CueGain

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
