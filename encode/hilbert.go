package encode

import (
	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
)

// MaxCurveResolution is the safety cap on Hilbert and quadkey resolutions.
// A resolution-30 Hilbert key occupies 60 bits of a uint64.
const MaxCurveResolution = 30

// DefaultHilbertResolution matches the conventional 2^16-per-axis curve grid
const DefaultHilbertResolution = 16

// Hilbert returns the position of a point along a Hilbert space-filling
// curve over the given domain, on a grid of 2^resolution cells per axis.
// The domain must be the full-dataset bounding rectangle: curve
// normalization is domain-dependent, which is why Hilbert encoding is a
// two-pass operation (pass 1: global bounds, pass 2: per-row key) and never
// a per-row-only computation. Points outside the domain are clamped to its
// edges.
func Hilbert(p tess.Point, domain tess.Bounds, resolution int) (uint64, error) {
	if resolution < 1 || resolution > MaxCurveResolution {
		return 0, errors.PartitionFanoutTooLargeError{Requested: resolution, Max: MaxCurveResolution}
	}
	side := uint32(1) << uint(resolution)
	x := normalize(p.X, domain.XMin, domain.XMax, side)
	y := normalize(p.Y, domain.YMin, domain.YMax, side)
	return hilbertXY2D(side, x, y), nil
}

// normalize maps v in [min, max] onto the integer grid [0, side-1], clamping
func normalize(v float64, min float64, max float64, side uint32) uint32 {
	if max <= min {
		return 0
	}
	scaled := (v - min) / (max - min) * float64(side-1)
	if scaled < 0 {
		return 0
	}
	if scaled > float64(side-1) {
		return side - 1
	}
	return uint32(scaled + 0.5)
}

// hilbertXY2D converts grid coordinates to a distance along the Hilbert
// curve for a side x side grid (side must be a power of two)
func hilbertXY2D(side uint32, x uint32, y uint32) uint64 {
	var d uint64
	for s := side / 2; s > 0; s /= 2 {
		var rx, ry uint32
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += uint64(s) * uint64(s) * uint64((3*rx)^ry)
		// rotate the quadrant
		if ry == 0 {
			if rx == 1 {
				x = side - 1 - x
				y = side - 1 - y
			}
			x, y = y, x
		}
	}
	return d
}
