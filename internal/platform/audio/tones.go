// Package audio plays short synthesized tones for game cues.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Note is a single sine tone.
type Note struct {
	Freq float64 // Hz
	Dur  time.Duration
}

// Note frequencies (Hz).
const (
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
	noteE6 = 1318.51
	noteG6 = 1567.98
	noteA3 = 220.00
	noteF3 = 174.61
	noteG4 = 392.00
	noteE4 = 329.63
	noteC4 = 261.63
)

var cueTones = map[core.Cue][]Note{
	core.CueStart:   {{noteC5, 70 * time.Millisecond}, {noteE5, 70 * time.Millisecond}, {noteG5, 110 * time.Millisecond}},
	core.CueBonus:   {{noteG5, 60 * time.Millisecond}, {noteC6, 140 * time.Millisecond}},
	core.CueCollect: {{noteE6, 50 * time.Millisecond}, {noteG6, 90 * time.Millisecond}},
	core.CueWrong:   {{noteA3, 90 * time.Millisecond}, {noteF3, 140 * time.Millisecond}},
	core.CueFail:    {{noteG4, 180 * time.Millisecond}, {noteE4, 180 * time.Millisecond}, {noteC4, 360 * time.Millisecond}},
	core.CueWin: {
		{noteC5, 90 * time.Millisecond}, {noteE5, 90 * time.Millisecond},
		{noteG5, 90 * time.Millisecond}, {noteC6, 300 * time.Millisecond},
	},
}

// Tones returns the notes played for a cue.
func Tones(c core.Cue) []Note {
	return cueTones[c]
}

// Sequence builds a streamer playing notes back to back at the given volume
// (0 to 1).
func Sequence(sr beep.SampleRate, notes []Note, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.0fHz: %w", n.Freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.Dur), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales a stream linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
