// Package audio plays the game's sound effects through the system speaker.
// Every effect is synthesized, so there are no asset files to ship.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/leap-of-faith/internal/games/leap"
)

// Config controls the speaker.
type Config struct {
	SampleRate int     // Output sample rate in Hz
	Volume     float64 // Master volume, 0 to 1
	Music      float64 // Background loop level relative to Volume, 0 disables it
	Buffer     time.Duration
}

// DefaultConfig returns the default speaker settings.
func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,
		Volume:     0.5,
		Music:      0.25,
		Buffer:     100 * time.Millisecond,
	}
}

// BeepSink mixes effects into a single speaker stream. Play never blocks
// on audio; a sink that failed to start stays silent.
type BeepSink struct {
	mu     sync.Mutex
	cfg    Config
	rate   beep.SampleRate
	mixer  *beep.Mixer
	logger *log.Logger
	ready  bool
	music  *beep.Ctrl // Created on first use, paused between runs
}

var (
	_ leap.SoundSink   = (*BeepSink)(nil)
	_ leap.MusicPlayer = (*BeepSink)(nil)
)

// NewBeepSink opens the speaker. The error is returned for logging;
// callers usually fall back to Nop.
func NewBeepSink(cfg Config, logger *log.Logger) (*BeepSink, error) {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = DefaultConfig().Buffer
	}
	cfg.Volume = min(max(cfg.Volume, 0), 1)
	cfg.Music = min(max(cfg.Music, 0), 1)
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &BeepSink{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	if err := speaker.Init(s.rate, s.rate.N(cfg.Buffer)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.ready = true
	logger.Debug("speaker ready", "sample_rate", cfg.SampleRate, "volume", cfg.Volume)
	return s, nil
}

// Play starts an effect on top of whatever is playing.
func (s *BeepSink) Play(id leap.SoundID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	st := Effect(id, s.rate, s.cfg.Volume)
	if st == nil {
		s.logger.Warn("unknown sound", "id", int(id))
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Music resumes or pauses the background loop.
func (s *BeepSink) Music(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready || s.cfg.Music <= 0 {
		return
	}
	if s.music == nil {
		if !on {
			return
		}
		s.music = &beep.Ctrl{
			Streamer: beep.Loop(-1, Theme(s.rate, s.cfg.Volume*s.cfg.Music)),
			Paused:   true,
		}
		speaker.Lock()
		s.mixer.Add(s.music)
		speaker.Unlock()
	}

	speaker.Lock()
	s.music.Paused = !on
	speaker.Unlock()
}

// Close stops all effects and releases the speaker.
func (s *BeepSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.music = nil
	s.ready = false
}

type nop struct{}

func (nop) Play(leap.SoundID) {}

// Nop discards every effect.
var Nop leap.SoundSink = nop{}

// Open returns a speaker sink, or Nop when muted or when the speaker
// cannot be opened.
func Open(cfg Config, muted bool, logger *log.Logger) (leap.SoundSink, func()) {
	if muted {
		return Nop, func() {}
	}
	s, err := NewBeepSink(cfg, logger)
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return Nop, func() {}
	}
	return s, s.Close
}
