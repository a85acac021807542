package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		event    core.EventType
		expected Cue
		ok       bool
	}{
		{core.EventLocked, CueLock, true},
		{core.EventRowsCleared, CueClear, true},
		{core.EventGameOver, CueGameOver, true},
		{core.EventSpawned, 0, false},
		{core.EventResized, 0, false},
	}

	for _, tt := range tests {
		cue, ok := CueFor(core.Event{Type: tt.event})
		if ok != tt.ok || (ok && cue != tt.expected) {
			t.Errorf("CueFor(%v) = %v, %v, expected %v, %v", tt.event, cue, ok, tt.expected, tt.ok)
		}
	}
}

func TestClearPlanScalesWithRows(t *testing.T) {
	for rows, expected := range map[int]int{0: 1, 1: 1, 2: 2, 4: 4, 9: 4} {
		if got := len(plan(CueClear, rows)); got != expected {
			t.Errorf("len(plan(clear, %d)) = %d, expected %d", rows, got, expected)
		}
	}
}

func TestBuildStreamsPlannedLength(t *testing.T) {
	rate := beep.SampleRate(8000)

	for _, cue := range []Cue{CueLock, CueClear, CueGameOver} {
		t.Run(cue.String(), func(t *testing.T) {
			tones := plan(cue, 3)
			var expected int
			for _, tn := range tones {
				expected += rate.N(tn.dur)
			}

			s, err := build(tones, rate, 0.5)
			if err != nil {
				t.Fatalf("build() error = %v", err)
			}

			buf := make([][2]float64, 256)
			total := 0
			for {
				n, ok := s.Stream(buf)
				total += n
				for i := range n {
					if buf[i][0] < -1 || buf[i][0] > 1 {
						t.Fatalf("sample %f out of range", buf[i][0])
					}
				}
				if !ok {
					break
				}
			}
			if total != expected {
				t.Errorf("streamed %d samples, expected %d", total, expected)
			}
		})
	}
}

func TestBuildRejectsToneAboveNyquist(t *testing.T) {
	_, err := build([]tone{{freq: 5000, dur: time.Millisecond}}, beep.SampleRate(8000), 1)
	if err == nil {
		t.Error("expected an error for a tone above the Nyquist frequency")
	}
}

func TestPlayBeforeInitIsNoop(t *testing.T) {
	p := NewPlayer(0.3)
	if err := p.Play(CueGameOver, 0); err != nil {
		t.Errorf("Play() before Init = %v, expected nil", err)
	}
	p.OnEvent(core.Event{Type: core.EventLocked})
	p.Close()
}
