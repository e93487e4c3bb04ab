package encode

import (
	"strings"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
)

// Quadkey returns the base-4 digit string locating a point within the given
// domain at the given resolution, by recursively halving the domain once
// per resolution level. Digit convention, fixed for reproducibility:
//
//	0 = south-west, 1 = south-east, 2 = north-west, 3 = north-east
//
// with the upper/right half winning ties (coordinate >= midpoint). A prefix
// of length p of a resolution-r key is exactly the resolution-p quadkey of
// the same point, which is what prefix-based partition coarsening relies
// on. Points outside the domain stick to the nearest edge digits.
func Quadkey(p tess.Point, domain tess.Bounds, resolution int) (string, error) {
	if resolution < 1 || resolution > MaxCurveResolution {
		return "", errors.PartitionFanoutTooLargeError{Requested: resolution, Max: MaxCurveResolution}
	}
	var sb strings.Builder
	sb.Grow(resolution)
	cur := domain
	for i := 0; i < resolution; i++ {
		mid := cur.Center()
		digit := byte('0')
		if p.X >= mid.X {
			digit++
			cur.XMin = mid.X
		} else {
			cur.XMax = mid.X
		}
		if p.Y >= mid.Y {
			digit += 2
			cur.YMin = mid.Y
		} else {
			cur.YMax = mid.Y
		}
		sb.WriteByte(digit)
	}
	return sb.String(), nil
}
