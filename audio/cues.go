// Package audio plays short synthesised sound cues for game events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate every cue is generated at.
const SampleRate = beep.SampleRate(44100)

// Cue is a game event with a sound.
type Cue uint8

const (
	Eat Cue = iota
	Die
	Win
)

func (c Cue) String() string {
	switch c {
	case Eat:
		return "Eat"
	case Die:
		return "Die"
	case Win:
		return "Win"
	default:
		return "Unknown"
	}
}

// Sound builds a fresh streamer for c at volume in (0, 1].
func Sound(c Cue, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case Eat:
		// Short rising blip.
		s = beep.Seq(
			Tone(SampleRate, 660, Square, 40*time.Millisecond, 2*time.Millisecond, 10*time.Millisecond),
			Tone(SampleRate, 990, Square, 50*time.Millisecond, 2*time.Millisecond, 20*time.Millisecond),
		)
	case Die:
		s = beep.Seq(
			Tone(SampleRate, 220, Triangle, 120*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond),
			Tone(SampleRate, 110, Triangle, 250*time.Millisecond, 5*time.Millisecond, 150*time.Millisecond),
		)
	case Win:
		// C major arpeggio.
		s = beep.Seq(
			Tone(SampleRate, 523.25, Sine, 100*time.Millisecond, 5*time.Millisecond, 20*time.Millisecond),
			Tone(SampleRate, 659.25, Sine, 100*time.Millisecond, 5*time.Millisecond, 20*time.Millisecond),
			Tone(SampleRate, 783.99, Sine, 100*time.Millisecond, 5*time.Millisecond, 20*time.Millisecond),
			Tone(SampleRate, 1046.5, Sine, 300*time.Millisecond, 5*time.Millisecond, 200*time.Millisecond),
		)
	default:
		return beep.Silence(0)
	}
	return withVolume(s, volume)
}

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
