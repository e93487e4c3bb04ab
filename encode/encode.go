// Package encode implements the spatial key encoders: pure,
// resolution-parameterized functions turning a representative point plus a
// coordinate domain into a locality-preserving key. All encoders produce
// keys usable both for sort ordering and for prefix-based coarsening
// (grouping many fine cells into one partition by truncating resolution).
package encode

import (
	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
)

// Key encodes a point into a SpatialKey of the given kind. The domain is
// only consulted by the Hilbert and quadkey encoders; hex cells live on a
// fixed global grid.
func Key(kind tess.KeyKind, p tess.Point, domain tess.Bounds, resolution int) (tess.SpatialKey, error) {
	switch kind {
	case tess.KindHilbert:
		h, err := Hilbert(p, domain, resolution)
		if err != nil {
			return tess.SpatialKey{}, err
		}
		return tess.SpatialKey{Kind: kind, Resolution: resolution, Hilbert: h}, nil
	case tess.KindQuadkey:
		q, err := Quadkey(p, domain, resolution)
		if err != nil {
			return tess.SpatialKey{}, err
		}
		return tess.SpatialKey{Kind: kind, Resolution: resolution, Quadkey: q}, nil
	case tess.KindHexCell:
		c, err := HexCell(p, resolution)
		if err != nil {
			return tess.SpatialKey{}, err
		}
		return tess.SpatialKey{Kind: kind, Resolution: resolution, HexCell: c}, nil
	default:
		return tess.SpatialKey{}, errors.UnsupportedKeyKindError{Kind: kind.ToString()}
	}
}

// Truncate coarsens a key from its stored resolution to partitionResolution:
// quadkeys by string prefix, Hilbert keys by an arithmetic right-shift of
// two bits per level, hex cells by walking to the ancestor cell
func Truncate(key tess.SpatialKey, partitionResolution int) (tess.SpatialKey, error) {
	if partitionResolution < 0 || partitionResolution > key.Resolution {
		return tess.SpatialKey{}, errors.PartitionFanoutTooLargeError{Requested: partitionResolution, Max: key.Resolution}
	}
	if partitionResolution == key.Resolution {
		return key, nil
	}
	out := tess.SpatialKey{Kind: key.Kind, Resolution: partitionResolution}
	switch key.Kind {
	case tess.KindHilbert:
		out.Hilbert = key.Hilbert >> uint(2*(key.Resolution-partitionResolution))
	case tess.KindQuadkey:
		out.Quadkey = key.Quadkey[:partitionResolution]
	case tess.KindHexCell:
		out.HexCell = HexCellParent(key.HexCell, partitionResolution)
	default:
		return tess.SpatialKey{}, errors.UnsupportedKeyKindError{Kind: key.Kind.ToString()}
	}
	return out, nil
}
