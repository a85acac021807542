package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

func TestRepeatLimiter(t *testing.T) {
	r := newRepeatLimiter(3)

	steps := []struct {
		cmd      core.Command
		tick     uint64
		expected bool
	}{
		{core.MoveLeft, 1, true},
		{core.MoveLeft, 2, false},
		{core.MoveRight, 2, true}, // commands are limited independently
		{core.MoveLeft, 3, false},
		{core.MoveLeft, 4, true},
		{core.MoveLeft, 10, true},
	}

	for _, s := range steps {
		if got := r.allow(s.cmd, s.tick); got != s.expected {
			t.Errorf("allow(%v, %d) = %v, expected %v", s.cmd, s.tick, got, s.expected)
		}
	}

	r.reset()
	if !r.allow(core.MoveLeft, 11) {
		t.Error("reset should forget previous moves")
	}
}

func TestHoldTracker(t *testing.T) {
	h := newHoldTracker(5, 2)

	// Presses every other tick count as one continuous hold.
	var fired uint64
	for tick := uint64(1); tick <= 12; tick++ {
		if h.observe(tick%2 == 1, tick) && fired == 0 {
			fired = tick
		}
	}
	if fired != 7 {
		t.Errorf("hold fired at tick %d, expected 7", fired)
	}

	// A gap longer than the repeat cadence restarts the hold.
	h = newHoldTracker(5, 2)
	h.observe(true, 20)
	h.observe(true, 21)
	h.observe(false, 30)
	if h.observe(true, 31) {
		t.Error("hold should restart after a long gap")
	}
	h.observe(true, 33)
	if h.observe(true, 35) {
		t.Error("hold fired before the window elapsed")
	}
	if !h.observe(true, 36) {
		t.Error("hold should fire 5 ticks after restarting")
	}
}

func TestHoldTrackerAllowsRepeatDelay(t *testing.T) {
	h := newHoldTracker(15, 3)

	// Initial press, then the terminal waits before repeating every tick.
	h.observe(true, 1)
	for tick := uint64(2); tick < 21; tick++ {
		h.observe(false, tick)
	}
	if h.observe(true, 21) {
		t.Error("a single repeat should not complete the hold")
	}
	if !h.observe(true, 22) {
		t.Error("expected hold after the repeat stream started")
	}
}

func TestHoldTrackerIgnoresSeparateTaps(t *testing.T) {
	tests := []struct {
		name string
		taps []uint64
	}{
		{"double tap", []uint64{1, 16}},
		{"double tap far apart", []uint64{1, 30}},
		{"triple tap", []uint64{1, 16, 31}},
		{"tap then short hold", []uint64{1, 10, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHoldTracker(15, 3)
			pressed := map[uint64]bool{}
			for _, tick := range tt.taps {
				pressed[tick] = true
			}
			last := tt.taps[len(tt.taps)-1]
			for tick := uint64(1); tick <= last+40; tick++ {
				if h.observe(pressed[tick], tick) {
					t.Fatalf("hold fired at tick %d for taps %v", tick, tt.taps)
				}
			}
		})
	}
}
