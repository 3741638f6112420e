// Package audio plays the game's sound cues.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/pyknoid/internal/assets"
)

// Player plays a cue once, without blocking the caller.
type Player interface {
	Play(cue assets.Cue)
}

// Silent discards every cue.
type Silent struct{}

// Play does nothing.
func (Silent) Play(assets.Cue) {}

// releaseTime is the fade-out at the end of every tone, avoiding a click.
const releaseTime = 10 * time.Millisecond

// Tone builds a finite sine streamer for a cue at the given volume (0 to 1).
func Tone(sr beep.SampleRate, cue assets.Cue, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, cue.Freq)
	if err != nil {
		return nil, err
	}
	total := sr.N(time.Duration(cue.Duration * float64(time.Second)))
	shaped := &release{
		streamer: beep.Take(total, sine),
		total:    total,
		release:  min(sr.N(releaseTime), total),
	}
	return newVolume(shaped, volume), nil
}

// release fades the last samples of a stream to zero.
type release struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func (r *release) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.streamer.Stream(samples)
	start := r.total - r.release
	for i := 0; i < n; i++ {
		if r.position >= start && r.release > 0 {
			vol := float64(r.total-r.position) / float64(r.release)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		r.position++
	}
	return n, ok
}

func (r *release) Err() error { return r.streamer.Err() }

// newVolume scales a stream linearly; 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
