package core

import (
	"fmt"
	"strings"
)

// Playfield dimensions.
const (
	Columns = 10
	Rows    = 20
)

// Position is an absolute (column, row) grid coordinate.
// Row 0 is the top of the field; rows grow downward.
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Add returns p shifted by (dc, dr).
func (p Position) Add(dc, dr int) Position {
	return Position{Col: p.Col + dc, Row: p.Row + dr}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// InField reports whether p lies inside the playfield.
func (p Position) InField() bool {
	return p.Col >= 0 && p.Col < Columns && p.Row >= 0 && p.Row < Rows
}

// Cell is the state of one grid cell.
type Cell uint8

const (
	Empty Cell = iota
	Locked
)

// Row is one horizontal line of the grid.
type Row [Columns]Cell

// Grid holds the settled cells of the playfield. It never contains the
// active piece.
type Grid [Rows]Row

// At returns the cell at p. Indexing outside the field is a logic fault.
func (g *Grid) At(p Position) Cell {
	mustInField(p)
	return g[p.Row][p.Col]
}

// IsLocked reports whether the cell at p is locked.
func (g *Grid) IsLocked(p Position) bool {
	return g.At(p) == Locked
}

// Lock marks the cell at p as locked.
func (g *Grid) Lock(p Position) {
	mustInField(p)
	g[p.Row][p.Col] = Locked
}

// IsFull reports whether every column of row r is locked.
func (g *Grid) IsFull(r int) bool {
	for _, c := range g[r] {
		if c != Locked {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, top to bottom.
func (g *Grid) FullRows() []int {
	var rows []int
	for r := range Rows {
		if g.IsFull(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

// ClearRow empties row r and shifts every row above it down by one.
// Row 0 is left empty.
func (g *Grid) ClearRow(r int) {
	if r < 0 || r >= Rows {
		panic(fmt.Sprintf("core: row %d outside playfield", r))
	}
	g[r] = Row{}
	for above := r - 1; above >= 0; above-- {
		g[above+1] = g[above]
	}
	g[0] = Row{}
}

// ClearRows removes the given rows, which must be sorted ascending.
// Processing top to bottom keeps the indices of the remaining rows valid,
// since each shift only moves rows above the one being cleared.
func (g *Grid) ClearRows(rows []int) {
	for _, r := range rows {
		g.ClearRow(r)
	}
}

// LockedCount returns the number of locked cells.
func (g *Grid) LockedCount() int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if c == Locked {
				n++
			}
		}
	}
	return n
}

// IsEmpty reports whether the grid has no locked cells.
func (g *Grid) IsEmpty() bool {
	return g.LockedCount() == 0
}

// String renders the grid as text, '#' for locked and '.' for empty.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Columns + 1))
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c == Locked {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func mustInField(p Position) {
	if !p.InField() {
		panic(fmt.Sprintf("core: position %v outside playfield", p))
	}
}
