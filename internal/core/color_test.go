package core

import (
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("orange")
	if err != nil || c != ColorOrange {
		t.Errorf("ParseColor(orange) = %v, %v, expected %v", c, err, ColorOrange)
	}

	_, err = ParseColor("chartreuse")
	if err == nil {
		t.Fatal("expected an error for an unknown color")
	}
	if !strings.Contains(err.Error(), "default, gray") {
		t.Errorf("error %q should list the valid colors", err)
	}
}

func TestColorNamesSorted(t *testing.T) {
	names := ColorNames()
	if len(names) == 0 {
		t.Fatal("ColorNames() is empty")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("ColorNames() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
