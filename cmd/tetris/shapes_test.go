package main

import (
	"strings"
	"testing"
)

func TestRenderCatalog(t *testing.T) {
	out := renderCatalog()

	for _, want := range []string{
		"O  cols 4-5  (does not rotate)",
		"I  cols 3-6\n   #ox#\n",
		"S  cols 4-5",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog missing %q:\n%s", want, out)
		}
	}

	if got := strings.Count(out, "cols "); got != 6 {
		t.Errorf("catalog has %d shapes, expected 6", got)
	}
}
