package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			TickRate:  30,
			GravityMS: 200,
		},
		Input: InputConfig{
			RepeatMS:   100,
			QuitHoldMS: 500,
		},
		Theme: ThemeConfig{
			Pieces: map[string]string{
				"O": "yellow",
				"I": "cyan",
				"S": "green",
				"Z": "red",
				"J": "blue",
				"L": "orange",
			},
			Locked: "gray",
			Border: "white",
		},
		Sound: SoundConfig{
			Enabled: false,
			Volume:  0.3,
		},
	}
}
