package tetris

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// Layout constants, in terminal cells.
const (
	cellW  = 2 // each playfield column is two characters wide
	boardW = core.Columns*cellW + 2
	boardH = core.Rows + 2
	hudW   = 22
	hudGap = 2
)

type layout struct {
	board    platformcore.Rect
	hud      platformcore.Rect
	showHUD  bool
	tooSmall bool
}

// computeLayout centers the well, with the HUD to its right when it fits.
func computeLayout(w, h int) layout {
	screen := platformcore.NewRect(0, 0, w, h)
	if !screen.Fits(boardW, boardH) {
		return layout{tooSmall: true}
	}

	var l layout
	total := boardW
	if screen.Fits(boardW+hudGap+hudW, boardH) {
		l.showHUD = true
		total += hudGap + hudW
	}

	area := screen.Centered(total, boardH)
	l.board = platformcore.NewRect(area.X, area.Y, boardW, boardH)
	if l.showHUD {
		l.hud = platformcore.NewRect(l.board.Right()+hudGap, area.Y, hudW, boardH)
	}
	return l
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.layout.tooSmall {
		mid := dst.Height() / 2
		dst.DrawTextCenteredWithColor(mid-1, "Window too small", platformcore.ColorYellow)
		dst.DrawTextCenteredWithColor(mid, fmt.Sprintf("need %dx%d", boardW, boardH), platformcore.ColorGray)
		return
	}

	snap := g.engine.Snapshot()
	g.renderBoard(dst, snap)
	if g.layout.showHUD {
		g.renderHUD(dst, snap)
	}

	switch {
	case snap.GameOver:
		g.renderOverlay(dst, "GAME OVER", "R restart  Q quit")
	case g.paused:
		g.renderOverlay(dst, "PAUSED", "P to resume")
	}
}

// renderBoard draws the well border, settled cells and the active piece.
func (g *Game) renderBoard(dst *platformcore.Screen, snap core.Snapshot) {
	b := g.layout.board
	dst.DrawBoxWithColor(b, g.cfg.BorderColor())

	var activeColor platformcore.Color
	if snap.Active != nil {
		activeColor = g.cfg.PieceColor(snap.Active.Variant.String())
	}
	locked := g.cfg.LockedColor()

	for r := range core.Rows {
		y := b.Y + 1 + r
		for c := range core.Columns {
			x := b.X + 1 + c*cellW
			occupied, active := snap.CellAt(core.Position{Col: c, Row: r})
			switch {
			case active:
				dst.SetWithColor(x, y, '█', activeColor)
				dst.SetWithColor(x+1, y, '█', activeColor)
			case occupied:
				dst.SetWithColor(x, y, '▓', locked)
				dst.SetWithColor(x+1, y, '▓', locked)
			default:
				dst.SetWithColor(x+1, y, '·', platformcore.ColorGray)
			}
		}
	}
}

// renderHUD draws the side panel with status and controls.
func (g *Game) renderHUD(dst *platformcore.Screen, snap core.Snapshot) {
	h := g.layout.hud
	x, y := h.X, h.Y

	dst.DrawTextWithColor(x, y, Title, platformcore.ColorCyan)
	y += 2

	stats := []struct {
		label string
		value string
	}{
		{"Phase", snap.Phase.String()},
		{"Pieces", fmt.Sprint(snap.Spawned)},
		{"Lines", fmt.Sprint(g.lines)},
		{"Tick", fmt.Sprint(snap.Tick)},
	}
	for _, s := range stats {
		dst.DrawText(x, y, fmt.Sprintf("%-8s%s", s.label, s.value))
		y++
	}
	y++

	dst.DrawTextWithColor(x, y, "Controls", platformcore.ColorGray)
	y++
	for _, line := range []string{
		"←/→   move",
		"↑/x   rotate cw",
		"z     rotate ccw",
		"p     pause",
		"esc   hold to quit",
	} {
		if y >= h.Bottom() {
			break
		}
		dst.DrawTextWithColor(x, y, line, platformcore.ColorGray)
		y++
	}
}

// renderOverlay draws a framed two-line message over the well.
func (g *Game) renderOverlay(dst *platformcore.Screen, title, hint string) {
	w := max(len([]rune(title)), len([]rune(hint))) + 4
	box := g.layout.board.Centered(w, 4)

	dst.DrawRectWithColor(box, ' ', platformcore.ColorDefault)
	dst.DrawBoxWithColor(box, platformcore.ColorYellow)
	dst.DrawTextWithColor(box.Centered(len([]rune(title)), 1).X, box.Y+1, title, platformcore.ColorBrightYellow)
	dst.DrawTextWithColor(box.Centered(len([]rune(hint)), 1).X, box.Y+2, hint, platformcore.ColorGray)
}
