package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// Snapshot captures the driver and board state for spectators, replay
// checks and determinism tests.
type Snapshot struct {
	Tick     uint64        `json:"tick"` // driver ticks since the last reset
	Seed     int64         `json:"seed"`
	Lines    int           `json:"lines"`
	Paused   bool          `json:"paused"`
	LastStep string        `json:"last_step,omitempty"`
	Board    core.Snapshot `json:"board"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Seed:   g.seed,
		Lines:  g.lines,
		Paused: g.paused,
		Board:  g.engine.Snapshot(),
	}
	if g.lastStep.Tick > 0 {
		s.LastStep = g.lastStep.Step.String()
	}
	return s
}
