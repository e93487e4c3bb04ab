package encode

import (
	"testing"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
	"github.com/stretchr/testify/require"
)

func TestHilbertXY2DOrder1(t *testing.T) {
	require.Equal(t, uint64(0), hilbertXY2D(2, 0, 0))
	require.Equal(t, uint64(1), hilbertXY2D(2, 0, 1))
	require.Equal(t, uint64(2), hilbertXY2D(2, 1, 1))
	require.Equal(t, uint64(3), hilbertXY2D(2, 1, 0))
}

func TestHilbertXY2DOrder2(t *testing.T) {
	// the classic order-2 curve visits these grid cells in sequence
	path := [][2]uint32{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
		{0, 2}, {0, 3}, {1, 3}, {1, 2},
		{2, 2}, {2, 3}, {3, 3}, {3, 2},
		{3, 1}, {2, 1}, {2, 0}, {3, 0},
	}
	for d, xy := range path {
		require.Equal(t, uint64(d), hilbertXY2D(4, xy[0], xy[1]), "cell (%d,%d)", xy[0], xy[1])
	}
}

func TestHilbertAdjacency(t *testing.T) {
	// consecutive curve positions are adjacent grid cells, so nearby keys
	// imply nearby points
	side := uint32(1) << 6
	byKey := make(map[uint64][2]uint32)
	for x := uint32(0); x < side; x++ {
		for y := uint32(0); y < side; y++ {
			byKey[hilbertXY2D(side, x, y)] = [2]uint32{x, y}
		}
	}
	require.Len(t, byKey, int(side*side))
	for d := uint64(0); d < uint64(side*side)-1; d++ {
		a := byKey[d]
		b := byKey[d+1]
		dist := absDiff(a[0], b[0]) + absDiff(a[1], b[1])
		require.Equal(t, uint32(1), dist, "positions %d and %d", d, d+1)
	}
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestHilbertNormalization(t *testing.T) {
	domain := tess.Bounds{XMin: -180, YMin: -90, XMax: 180, YMax: 90}

	// corners of the domain land at the ends of the curve's first and last cells
	low, err := Hilbert(tess.Point{X: -180, Y: -90}, domain, 16)
	require.Nil(t, err)
	require.Equal(t, uint64(0), low)

	// out-of-domain points clamp to the nearest edge
	clamped, err := Hilbert(tess.Point{X: -999, Y: -999}, domain, 16)
	require.Nil(t, err)
	require.Equal(t, low, clamped)

	// identical points produce identical keys (ties are possible and are
	// resolved by stable sorting downstream)
	a, err := Hilbert(tess.Point{X: 10, Y: 10}, domain, 16)
	require.Nil(t, err)
	b, err := Hilbert(tess.Point{X: 10, Y: 10}, domain, 16)
	require.Nil(t, err)
	require.Equal(t, a, b)
}

func TestHilbertDomainDependence(t *testing.T) {
	p := tess.Point{X: 1, Y: 1}
	a, err := Hilbert(p, tess.Bounds{XMin: 0, YMin: 0, XMax: 2, YMax: 2}, 8)
	require.Nil(t, err)
	b, err := Hilbert(p, tess.Bounds{XMin: 0, YMin: 0, XMax: 200, YMax: 200}, 8)
	require.Nil(t, err)
	require.NotEqual(t, a, b)
}

func TestHilbertResolutionBounds(t *testing.T) {
	domain := tess.Bounds{XMin: 0, YMin: 0, XMax: 1, YMax: 1}
	_, err := Hilbert(tess.Point{}, domain, 0)
	require.IsType(t, errors.PartitionFanoutTooLargeError{}, err)
	_, err = Hilbert(tess.Point{}, domain, 31)
	require.IsType(t, errors.PartitionFanoutTooLargeError{}, err)
	_, err = Hilbert(tess.Point{}, domain, 30)
	require.Nil(t, err)
}
