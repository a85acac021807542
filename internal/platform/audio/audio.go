// Package audio plays short synthesized cues for engine events through the
// system speaker.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a sound played for an engine event.
type Cue int

const (
	CueLock Cue = iota
	CueClear
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueLock:
		return "lock"
	case CueClear:
		return "clear"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type tone struct {
	freq   float64
	dur    time.Duration
	square bool
}

// CueFor maps an engine event to its cue. The second result is false for
// silent events.
func CueFor(ev core.Event) (Cue, bool) {
	switch ev.Type {
	case core.EventLocked:
		return CueLock, true
	case core.EventRowsCleared:
		return CueClear, true
	case core.EventGameOver:
		return CueGameOver, true
	default:
		return 0, false
	}
}

var clearNotes = [...]float64{523.25, 659.25, 783.99, 1046.50}

// plan returns the tones for a cue. rows is the number of cleared rows
// and only affects CueClear.
func plan(c Cue, rows int) []tone {
	switch c {
	case CueLock:
		return []tone{{freq: 110, dur: 40 * time.Millisecond, square: true}}
	case CueClear:
		n := min(max(rows, 1), len(clearNotes))
		tones := make([]tone, n)
		for i := range n {
			tones[i] = tone{freq: clearNotes[i], dur: 70 * time.Millisecond}
		}
		return tones
	case CueGameOver:
		return []tone{
			{freq: 392.00, dur: 150 * time.Millisecond},
			{freq: 329.63, dur: 150 * time.Millisecond},
			{freq: 261.63, dur: 150 * time.Millisecond},
			{freq: 196.00, dur: 300 * time.Millisecond},
		}
	default:
		return nil
	}
}

// build renders a tone plan into a finite streamer at the given volume.
func build(tones []tone, rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		var (
			s   beep.Streamer
			err error
		)
		if t.square {
			s, err = generators.SquareTone(rate, t.freq)
		} else {
			s, err = generators.SineTone(rate, t.freq)
		}
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.0fHz: %w", t.freq, err)
		}
		parts = append(parts, beep.Take(rate.N(t.dur), s))
	}
	return withVolume(beep.Seq(parts...), vol), nil
}

// withVolume scales a stream linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Player mixes cues into the speaker. It implements core.Listener.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player with volume in [0, 1]. Call Init before use.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// OnEvent plays the cue for ev, if any.
func (p *Player) OnEvent(ev core.Event) {
	cue, ok := CueFor(ev)
	if !ok {
		return
	}
	_ = p.Play(cue, len(ev.Rows))
}

// Play queues a cue on the mixer. It is a no-op before Init.
func (p *Player) Play(c Cue, rows int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}
	s, err := build(plan(c, rows), sampleRate, p.volume)
	if err != nil {
		return err
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
