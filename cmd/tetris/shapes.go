package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the piece catalog",
	Long: `Prints every piece in its spawn position with the rotation pivot
marked. 'o' is the clockwise pivot, 'x' the counter-clockwise pivot and
'*' a cell that is both.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(renderCatalog())
	},
}

// renderCatalog draws each shape in the columns and rows its spawn cells use.
func renderCatalog() string {
	var sb strings.Builder
	for _, v := range core.Variants {
		s := core.ShapeOf(v)

		minC, maxC, maxR := core.Columns, 0, 0
		for _, p := range s.Spawn {
			minC = min(minC, p.Col)
			maxC = max(maxC, p.Col)
			maxR = max(maxR, p.Row)
		}

		fmt.Fprintf(&sb, "%s  cols %d-%d", v, minC, maxC)
		if !s.Rotates() {
			sb.WriteString("  (does not rotate)")
		}
		sb.WriteByte('\n')

		for r := 0; r <= maxR; r++ {
			sb.WriteString("   ")
			for c := minC; c <= maxC; c++ {
				sb.WriteByte(cellMark(s, core.Position{Col: c, Row: r}))
			}
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellMark(s core.Shape, p core.Position) byte {
	idx := -1
	for i, c := range s.Spawn {
		if c == p {
			idx = i
		}
	}
	if idx < 0 {
		return '.'
	}
	if !s.Rotates() {
		return '#'
	}
	cw := idx == s.OriginIndex(core.Clockwise)
	ccw := idx == s.OriginIndex(core.CounterClockwise)
	switch {
	case cw && ccw:
		return '*'
	case cw:
		return 'o'
	case ccw:
		return 'x'
	default:
		return '#'
	}
}
