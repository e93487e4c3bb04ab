package spatial

import (
	"reflect"
	"testing"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
	tesstest "github.com/go-tess/tess/testing"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func TestBuildPartitionScheme(t *testing.T) {
	tbl, err := tesstest.RandomPointTable(1000, 4, tess.WorldBounds)
	require.Nil(t, err)
	result, scheme, err := BuildPartitionScheme(tbl, "geometry", 3, nil)
	require.Nil(t, err)
	require.Equal(t, 8, scheme.NumCells())
	require.True(t, result.Schema().HasColumn("cell"))
	require.False(t, tbl.Schema().HasColumn("cell"))

	counts := make([]int, scheme.NumCells())
	for i := 0; i < result.NumRows(); i++ {
		cell, err := result.GetRow(i).GetInt64("cell")
		require.Nil(t, err)
		require.GreaterOrEqual(t, cell, int64(0))
		require.Less(t, cell, int64(scheme.NumCells()))
		counts[cell]++
	}
	// median splits over a full sample balance the assignment
	for id, count := range counts {
		require.InDelta(t, 1000/8, count, 2, "cell %d", id)
	}
}

func TestBuildPartitionSchemeDeterministic(t *testing.T) {
	tbl, err := tesstest.RandomPointTable(500, 9, tess.WorldBounds)
	require.Nil(t, err)
	_, a, err := BuildPartitionScheme(tbl, "geometry", 4, nil)
	require.Nil(t, err)
	_, b, err := BuildPartitionScheme(tbl, "geometry", 4, nil)
	require.Nil(t, err)
	require.True(t, reflect.DeepEqual(a, b))
}

func TestBuildPartitionSchemeSampleCap(t *testing.T) {
	tbl, err := tesstest.RandomPointTable(2000, 21, tess.WorldBounds)
	require.Nil(t, err)
	result, scheme, err := BuildPartitionScheme(tbl, "geometry", 2, &PartitionSchemeOptions{SampleCap: 100})
	require.Nil(t, err)
	require.Equal(t, 4, scheme.NumCells())
	// every row is still assigned, even those outside the capped sample
	for i := 0; i < result.NumRows(); i++ {
		require.False(t, result.GetRow(i).IsNil("cell"))
	}
}

func TestBuildPartitionSchemeNullGeometry(t *testing.T) {
	tbl, err := tesstest.PointTable([]*orb.Point{{1, 1}, nil, {2, 2}, {3, 3}})
	require.Nil(t, err)
	_, _, err = BuildPartitionScheme(tbl, "geometry", 1, nil)
	require.IsType(t, errors.InvalidGeometryRateError{}, err)

	result, _, err := BuildPartitionScheme(tbl, "geometry", 1, &PartitionSchemeOptions{InvalidRateThreshold: 0.5})
	require.Nil(t, err)
	require.True(t, result.GetRow(1).IsNil("cell"))
	require.False(t, result.GetRow(0).IsNil("cell"))
}

func TestBuildPartitionSchemeFanoutCap(t *testing.T) {
	tbl, err := tesstest.PointTable([]*orb.Point{{1, 1}})
	require.Nil(t, err)
	_, _, err = BuildPartitionScheme(tbl, "geometry", 21, nil)
	require.IsType(t, errors.PartitionFanoutTooLargeError{}, err)
}

func TestApplyPartitionScheme(t *testing.T) {
	build, err := tesstest.RandomPointTable(400, 13, tess.WorldBounds)
	require.Nil(t, err)
	assigned, scheme, err := BuildPartitionScheme(build, "geometry", 3, nil)
	require.Nil(t, err)

	// re-applying the frozen scheme to the same rows reproduces the cells
	applied, err := ApplyPartitionScheme(build, "geometry", scheme, nil)
	require.Nil(t, err)
	for i := 0; i < applied.NumRows(); i++ {
		want, err := assigned.GetRow(i).GetInt64("cell")
		require.Nil(t, err)
		got, err := applied.GetRow(i).GetInt64("cell")
		require.Nil(t, err)
		require.Equal(t, want, got)
	}

	// later data routes into the same cell layout
	other, err := tesstest.RandomPointTable(50, 14, tess.WorldBounds)
	require.Nil(t, err)
	routed, err := ApplyPartitionScheme(other, "geometry", scheme, nil)
	require.Nil(t, err)
	for i := 0; i < routed.NumRows(); i++ {
		cell, err := routed.GetRow(i).GetInt64("cell")
		require.Nil(t, err)
		require.GreaterOrEqual(t, cell, int64(0))
		require.Less(t, cell, int64(scheme.NumCells()))
	}
}
