// Package config provides YAML-based configuration loading for the game:
// timing, input repeat, theme colors, sound and the spectator endpoint.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Timing   TimingConfig   `yaml:"timing"`
	Input    InputConfig    `yaml:"input"`
	Theme    ThemeConfig    `yaml:"theme"`
	Sound    SoundConfig    `yaml:"sound"`
	Spectate SpectateConfig `yaml:"spectate"`
}

// TimingConfig defines the driver loop rate and gravity.
type TimingConfig struct {
	TickRate  int `yaml:"tick_rate"`  // driver ticks per second
	GravityMS int `yaml:"gravity_ms"` // interval between engine ticks
}

// InputConfig defines key repeat handling.
type InputConfig struct {
	RepeatMS   int `yaml:"repeat_ms"`    // minimum gap between repeats of one command
	QuitHoldMS int `yaml:"quit_hold_ms"` // how long esc must be held to quit
}

// ThemeConfig maps board elements to color names.
type ThemeConfig struct {
	Pieces map[string]string `yaml:"pieces"` // keyed by variant letter
	Locked string            `yaml:"locked"`
	Border string            `yaml:"border"`
}

// SoundConfig enables the audio cues.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// SpectateConfig configures the spectator server. Empty address disables it.
type SpectateConfig struct {
	Address string `yaml:"address"`
}

// Validate checks the configuration for values the game cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Timing.GravityMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.gravity_ms must be positive, got %d", c.Timing.GravityMS))
	}
	if c.Input.RepeatMS < 0 {
		errs = append(errs, fmt.Errorf("input.repeat_ms must not be negative, got %d", c.Input.RepeatMS))
	}
	if c.Input.QuitHoldMS <= 0 {
		errs = append(errs, fmt.Errorf("input.quit_hold_ms must be positive, got %d", c.Input.QuitHoldMS))
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		errs = append(errs, fmt.Errorf("sound.volume must be within [0, 1], got %g", c.Sound.Volume))
	}
	for letter, name := range c.Theme.Pieces {
		if _, err := core.ParseColor(name); err != nil {
			errs = append(errs, fmt.Errorf("theme.pieces.%s: %w", letter, err))
		}
	}
	for field, name := range map[string]string{"locked": c.Theme.Locked, "border": c.Theme.Border} {
		if name == "" {
			continue
		}
		if _, err := core.ParseColor(name); err != nil {
			errs = append(errs, fmt.Errorf("theme.%s: %w", field, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// durationTicks converts ms to a whole number of driver ticks, at least 1.
func (c TetrisConfig) durationTicks(ms int) int {
	if c.Timing.TickRate <= 0 {
		return 1
	}
	interval := time.Second / time.Duration(c.Timing.TickRate)
	d := time.Duration(ms) * time.Millisecond
	return core.Max(1, int((d+interval/2)/interval))
}

// GravityTicks returns the number of driver ticks between engine ticks.
func (c TetrisConfig) GravityTicks() int {
	return c.durationTicks(c.Timing.GravityMS)
}

// RepeatTicks returns the minimum number of driver ticks between two
// applications of the same held command.
func (c TetrisConfig) RepeatTicks() int {
	return c.durationTicks(c.Input.RepeatMS)
}

// QuitHoldTicks returns how many driver ticks esc must be held to quit.
func (c TetrisConfig) QuitHoldTicks() int {
	return c.durationTicks(c.Input.QuitHoldMS)
}

// PieceColor resolves the theme color for a variant letter.
func (c TetrisConfig) PieceColor(letter string) core.Color {
	return resolveColor(c.Theme.Pieces[letter], core.ColorWhite)
}

// LockedColor resolves the theme color for settled cells.
func (c TetrisConfig) LockedColor() core.Color {
	return resolveColor(c.Theme.Locked, core.ColorGray)
}

// BorderColor resolves the theme color for the well border.
func (c TetrisConfig) BorderColor() core.Color {
	return resolveColor(c.Theme.Border, core.ColorDefault)
}

func resolveColor(name string, fallback core.Color) core.Color {
	if name == "" {
		return fallback
	}
	col, err := core.ParseColor(name)
	if err != nil {
		return fallback
	}
	return col
}
