package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pyknoid/internal/assets"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestToneLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	s, err := Tone(sr, assets.Cue{Name: "block", Freq: 440, Duration: 0.25}, 1)
	require.NoError(t, err)

	samples := drain(s)
	require.Len(t, samples, sr.N(250*time.Millisecond))
}

func TestToneVolumeAndRelease(t *testing.T) {
	sr := beep.SampleRate(8000)
	s, err := Tone(sr, assets.Cue{Name: "paddle", Freq: 440, Duration: 0.1}, 0.5)
	require.NoError(t, err)

	samples := drain(s)
	require.NotEmpty(t, samples)
	for _, smp := range samples {
		require.LessOrEqual(t, math.Abs(smp[0]), 0.5+1e-9)
	}
	last := samples[len(samples)-1]
	require.Less(t, math.Abs(last[0]), 0.05, "tone should fade out")
}

func TestToneMuted(t *testing.T) {
	sr := beep.SampleRate(8000)
	s, err := Tone(sr, assets.Cue{Name: "wall", Freq: 300, Duration: 0.05}, 0)
	require.NoError(t, err)

	for _, smp := range drain(s) {
		require.Zero(t, smp[0])
	}
}

func TestToneRejectsAliasedFrequency(t *testing.T) {
	_, err := Tone(beep.SampleRate(8000), assets.Cue{Name: "x", Freq: 6000, Duration: 0.1}, 1)
	require.Error(t, err)
}

func TestSilent(t *testing.T) {
	var p Player = Silent{}
	p.Play(assets.Cue{Name: "menu", Freq: 500, Duration: 0.1})
}
