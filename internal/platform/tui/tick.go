// Package tui runs a game in the terminal with Bubble Tea, locally or over
// SSH. It owns the tick loop, key bindings and color rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game driver tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires one TickMsg after a
// tick interval at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
