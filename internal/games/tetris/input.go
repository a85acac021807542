package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// repeatLimiter drops repeats of a command that arrive faster than the
// configured interval. Terminals report a held key as a stream of presses.
type repeatLimiter struct {
	interval uint64
	last     map[core.Command]uint64
}

func newRepeatLimiter(intervalTicks int) repeatLimiter {
	return repeatLimiter{
		interval: uint64(max(intervalTicks, 1)),
		last:     make(map[core.Command]uint64),
	}
}

// allow reports whether c may be applied at tick and records it if so.
func (r *repeatLimiter) allow(c core.Command, tick uint64) bool {
	if last, ok := r.last[c]; ok && tick-last < r.interval {
		return false
	}
	r.last[c] = tick
	return true
}

func (r *repeatLimiter) reset() {
	clear(r.last)
}

// holdTracker detects a key held for a minimum duration. Terminals have
// no key-up events: a held key sends one press, then after the repeat delay
// a steady stream of repeats. The first gap may be long; later gaps must
// stay within the repeat cadence, and at least two repeats must arrive, so
// separate taps never add up to a hold.
type holdTracker struct {
	window    uint64 // required hold duration
	firstGap  uint64 // longest wait for the first repeat
	repeatGap uint64 // longest gap between later repeats
	active    bool
	start     uint64
	last      uint64
	presses   int
}

func newHoldTracker(holdTicks, repeatTicks int) holdTracker {
	window := uint64(max(holdTicks, 1))
	return holdTracker{
		window:    window,
		firstGap:  2 * window,
		repeatGap: uint64(max(repeatTicks, 2)),
	}
}

// maxGap returns the longest silence that still continues the current hold.
func (h *holdTracker) maxGap() uint64 {
	if h.presses == 1 {
		return h.firstGap
	}
	return h.repeatGap
}

// observe records whether the key was pressed at tick and reports whether
// it has now been held for the full window.
func (h *holdTracker) observe(pressed bool, tick uint64) bool {
	if h.active && tick-h.last > h.maxGap() {
		h.active = false
	}
	if !pressed {
		return false
	}
	if !h.active {
		h.active = true
		h.start = tick
		h.presses = 0
	}
	h.presses++
	h.last = tick
	return h.presses >= 3 && tick-h.start >= h.window
}
