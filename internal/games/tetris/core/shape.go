// Package core implements the falling-block playfield engine: the fixed grid,
// the active-piece lifecycle and row clearing. It has no dependencies on the
// terminal, timing or input layers so it can be driven and tested directly.
package core

import "fmt"

// Variant identifies one of the six piece shapes.
type Variant int

const (
	VariantO Variant = iota
	VariantI
	VariantS
	VariantZ
	VariantJ
	VariantL
)

// variantCount is the number of spawnable variants.
const variantCount = 6

// Variants lists every variant in spawn-table order.
var Variants = [variantCount]Variant{VariantO, VariantI, VariantS, VariantZ, VariantJ, VariantL}

// Direction is a rotation direction.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// String returns the direction name.
func (d Direction) String() string {
	if d == CounterClockwise {
		return "ccw"
	}
	return "cw"
}

// Shape is the static catalog entry for a variant.
type Shape struct {
	Variant Variant
	// Spawn holds the canonical cells in absolute grid coordinates.
	Spawn [4]Position
	// Origin holds the pivot cell index per direction, or -1 if the
	// variant does not rotate.
	Origin [2]int
}

// Rotates reports whether the shape ever rotates.
func (s Shape) Rotates() bool {
	return s.Origin[Clockwise] >= 0
}

// OriginIndex returns the pivot cell index for the given direction.
func (s Shape) OriginIndex(dir Direction) int {
	return s.Origin[dir]
}

var catalog = [variantCount]Shape{
	VariantO: {
		Variant: VariantO,
		Spawn:   [4]Position{{4, 0}, {5, 0}, {4, 1}, {5, 1}},
		Origin:  [2]int{-1, -1},
	},
	VariantI: {
		Variant: VariantI,
		Spawn:   [4]Position{{3, 0}, {4, 0}, {5, 0}, {6, 0}},
		Origin:  [2]int{1, 2},
	},
	VariantS: {
		Variant: VariantS,
		Spawn:   [4]Position{{4, 0}, {4, 1}, {5, 1}, {5, 2}},
		Origin:  [2]int{2, 2},
	},
	VariantZ: {
		Variant: VariantZ,
		Spawn:   [4]Position{{5, 0}, {5, 1}, {4, 1}, {4, 2}},
		Origin:  [2]int{2, 2},
	},
	VariantJ: {
		Variant: VariantJ,
		Spawn:   [4]Position{{4, 0}, {5, 0}, {6, 0}, {6, 1}},
		Origin:  [2]int{1, 1},
	},
	VariantL: {
		Variant: VariantL,
		Spawn:   [4]Position{{4, 1}, {4, 0}, {5, 0}, {6, 0}},
		Origin:  [2]int{2, 2},
	},
}

// ShapeOf returns the catalog entry for v. Panics on an unknown variant.
func ShapeOf(v Variant) Shape {
	if v < 0 || int(v) >= variantCount {
		panic(fmt.Sprintf("core: unknown variant %d", int(v)))
	}
	return catalog[v]
}

// String returns the single-letter variant name.
func (v Variant) String() string {
	switch v {
	case VariantO:
		return "O"
	case VariantI:
		return "I"
	case VariantS:
		return "S"
	case VariantZ:
		return "Z"
	case VariantJ:
		return "J"
	case VariantL:
		return "L"
	default:
		return "?"
	}
}

// ParseVariant converts a single-letter name into a Variant.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("core: unknown variant %q", s)
}

// MarshalText encodes the variant as its letter.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes a variant letter.
func (v *Variant) UnmarshalText(b []byte) error {
	parsed, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
