package tetris

import (
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
)

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		tooSmall bool
		showHUD  bool
		boardX   int
	}{
		{"standard terminal", 80, 24, false, true, 17},
		{"board only", 30, 22, false, false, 4},
		{"too short", 80, 21, true, false, 0},
		{"too narrow", 21, 40, true, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := computeLayout(tt.w, tt.h)
			if l.tooSmall != tt.tooSmall || l.showHUD != tt.showHUD {
				t.Fatalf("computeLayout(%d, %d) = %+v", tt.w, tt.h, l)
			}
			if !l.tooSmall && l.board.X != tt.boardX {
				t.Errorf("board.X = %d, expected %d", l.board.X, tt.boardX)
			}
		})
	}
}

func TestRenderBoardAndHUD(t *testing.T) {
	g := newTestGame(t, nil)
	stepN(g, 6, platformcore.InputFrame{})

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	b := g.layout.board
	if screen.Get(b.X, b.Y) != '┌' || screen.Get(b.Right()-1, b.Bottom()-1) != '┘' {
		t.Errorf("well border missing:\n%s", screen)
	}
	if !strings.Contains(screen.String(), Title) {
		t.Error("HUD title missing")
	}
	if !strings.Contains(screen.String(), "Pieces  1") {
		t.Errorf("HUD should count the spawned piece:\n%s", screen)
	}

	p, ok := g.Engine().Active()
	if !ok {
		t.Fatal("expected an active piece")
	}
	want := g.cfg.PieceColor(p.Variant.String())
	for _, c := range p.Cells {
		x := b.X + 1 + c.Col*cellW
		y := b.Y + 1 + c.Row
		cell := screen.GetCell(x, y)
		if cell.Rune != '█' || cell.Color != want {
			t.Errorf("active cell %v drawn as %+v, expected %v block", c, cell, want)
		}
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(frameWith(platformcore.ActionPause))

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Errorf("expected pause overlay:\n%s", screen)
	}
}
