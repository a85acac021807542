package core

// Piece is the active, falling tetromino.
type Piece struct {
	Variant Variant     `json:"variant"`
	Cells   [4]Position `json:"cells"`
}

// newPiece places the canonical layout of v.
func newPiece(v Variant) Piece {
	s := ShapeOf(v)
	return Piece{Variant: v, Cells: s.Spawn}
}

// Shifted returns the cells moved by (dc, dr).
func (p Piece) Shifted(dc, dr int) [4]Position {
	var out [4]Position
	for i, c := range p.Cells {
		out[i] = c.Add(dc, dr)
	}
	return out
}

// Rotated returns the cells turned 90 degrees about the variant's origin
// cell for dir. The second result is false if the variant does not rotate.
//
// Each offset from the origin is swapped, then clockwise negates the new
// second component and counter-clockwise the new first, which keeps the
// result on integer coordinates.
func (p Piece) Rotated(dir Direction) ([4]Position, bool) {
	s := ShapeOf(p.Variant)
	if !s.Rotates() {
		return p.Cells, false
	}

	origin := p.Cells[s.OriginIndex(dir)]
	var out [4]Position
	for i, c := range p.Cells {
		dx, dy := c.Col-origin.Col, c.Row-origin.Row
		rx, ry := dy, dx
		if dir == Clockwise {
			ry = -ry
		} else {
			rx = -rx
		}
		out[i] = Position{Col: origin.Col + rx, Row: origin.Row + ry}
	}
	return out, true
}

// Occupies reports whether the piece covers pos.
func (p Piece) Occupies(pos Position) bool {
	for _, c := range p.Cells {
		if c == pos {
			return true
		}
	}
	return false
}

// fits reports whether every cell of target is inside the field and not
// locked. The check is all-or-nothing.
func fits(g *Grid, target [4]Position) bool {
	for _, p := range target {
		if !p.InField() || g.IsLocked(p) {
			return false
		}
	}
	return true
}
