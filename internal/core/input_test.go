package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) || !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionRotateCW)
	if !f.Has(ActionLeft) || !f.Has(ActionRotateCW) || f.Has(ActionRight) {
		t.Errorf("Has() mismatch, actions = %v", f.Actions)
	}

	f.Clear()
	if !f.Empty() {
		t.Errorf("Clear() left %v", f.Actions)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionRotateCCW, "RotateCCW"},
		{ActionHoldQuit, "HoldQuit"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("%d.String() = %q, expected %q", int(tt.action), got, tt.expected)
		}
	}
}
