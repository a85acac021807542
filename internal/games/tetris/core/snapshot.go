package core

import "strings"

// Snapshot is a read-only copy of the engine state for renderers and
// determinism checks. It never reflects a partially applied tick.
type Snapshot struct {
	Tick     uint64   `json:"tick"`
	Phase    Phase    `json:"phase"`
	Grid     Grid     `json:"-"`
	Rows     []string `json:"rows"`
	Active   *Piece   `json:"active,omitempty"`
	Spawned  int      `json:"spawned"`
	GameOver bool     `json:"game_over"`
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     e.tick,
		Phase:    e.Phase(),
		Grid:     e.grid,
		Spawned:  e.spawned,
		GameOver: e.over != nil,
	}
	if e.hasActive {
		p := e.active
		s.Active = &p
	}
	s.Rows = strings.Split(s.String(), "\n")
	return s
}

// CellAt returns what a renderer should draw at p: whether it is occupied,
// and whether it belongs to the active piece.
func (s Snapshot) CellAt(p Position) (occupied, active bool) {
	if s.Active != nil && s.Active.Occupies(p) {
		return true, true
	}
	return s.Grid[p.Row][p.Col] == Locked, false
}

// String renders the board with '#' for locked cells, '@' for the active
// piece and '.' for empty cells.
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Columns + 1))
	for r := range Rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Columns {
			occupied, active := s.CellAt(Position{Col: c, Row: r})
			switch {
			case active:
				sb.WriteByte('@')
			case occupied:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
