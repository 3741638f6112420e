package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/pyknoid/internal/assets"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays cues on the local sound device through one shared mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	logger *log.Logger
	closed bool
}

// NewSpeaker initializes the sound device. Callers fall back to Silent on error.
func NewSpeaker(volume float64, logger *log.Logger) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play mixes the cue into the output.
func (s *Speaker) Play(cue assets.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	tone, err := Tone(sampleRate, cue, s.volume)
	if err != nil {
		s.logger.Warn("cannot play cue", "cue", cue.Name, "err", err)
		return
	}
	speaker.Lock()
	s.mixer.Add(tone)
	speaker.Unlock()
}

// Close stops every playing cue.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.closed = true
}
