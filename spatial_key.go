package tess

import (
	"fmt"
	"strings"
)

// KeyKind identifies a spatial key encoding
type KeyKind int

const (
	// KindHilbert is an integer position along a Hilbert space-filling curve over a normalized coordinate grid
	KindHilbert KeyKind = iota
	// KindQuadkey is a base-4 digit string from recursively quartering a bounding rectangle
	KindQuadkey
	// KindHexCell is a cell identifier in a global hierarchical hexagonal grid
	KindHexCell
)

// ToString returns a string representation of a KeyKind
func (k KeyKind) ToString() string {
	switch k {
	case KindHilbert:
		return "hilbert"
	case KindQuadkey:
		return "quadkey"
	case KindHexCell:
		return "hexcell"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ParseKeyKind translates a key kind name to a KeyKind, accepting the names
// exposed at the API boundary ("hilbert", "quadkey", "hexcell")
func ParseKeyKind(name string) (KeyKind, bool) {
	switch strings.ToLower(name) {
	case "hilbert":
		return KindHilbert, true
	case "quadkey":
		return KindQuadkey, true
	case "hexcell", "h3":
		return KindHexCell, true
	default:
		return KeyKind(-1), false
	}
}

// SpatialKey is a tagged locality key for a single row, produced by one of
// the key encoders at a fixed Resolution. Exactly one of Hilbert, Quadkey or
// HexCell is meaningful, selected by Kind. Keys of the same Kind and
// Resolution compare numerically (Hilbert, HexCell) or lexicographically
// (Quadkey), and two points which differ only by sub-cell position compare
// as close.
type SpatialKey struct {
	Kind       KeyKind
	Resolution int
	Hilbert    uint64
	Quadkey    string
	HexCell    uint64
}

// ToString returns the serialized form of this SpatialKey: the literal
// digit string for quadkeys, and the decimal integer for the others
func (k SpatialKey) ToString() string {
	switch k.Kind {
	case KindQuadkey:
		return k.Quadkey
	case KindHexCell:
		return fmt.Sprintf("%d", k.HexCell)
	default:
		return fmt.Sprintf("%d", k.Hilbert)
	}
}
