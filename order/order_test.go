package order

import (
	"math/rand"
	"testing"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
	"github.com/go-tess/tess/internal/table"
	"github.com/go-tess/tess/schema"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func createOrderTestTable(t *testing.T, points []orb.Point) tess.OperableTable {
	s := schema.CreateSchema()
	s, err := s.CreateColumn("geometry", &tess.GeometryColumnType{})
	require.Nil(t, err)
	tbl := table.CreateTable(s)
	for _, p := range points {
		require.Nil(t, tbl.AppendRow([]interface{}{p}))
	}
	return tbl
}

func snakePoints(n int) []orb.Point {
	// row-by-row boustrophedon walk over a grid: strongly locality-ordered
	points := make([]orb.Point, 0, n)
	side := 32
	for y := 0; len(points) < n; y++ {
		for i := 0; i < side && len(points) < n; i++ {
			x := i
			if y%2 == 1 {
				x = side - 1 - i
			}
			points = append(points, orb.Point{float64(x), float64(y)})
		}
	}
	return points
}

func TestCheckOrderedVsShuffled(t *testing.T) {
	points := snakePoints(1024)
	ordered := createOrderTestTable(t, points)

	shuffledPoints := make([]orb.Point, len(points))
	copy(shuffledPoints, points)
	r := rand.New(rand.NewSource(99))
	r.Shuffle(len(shuffledPoints), func(i, j int) {
		shuffledPoints[i], shuffledPoints[j] = shuffledPoints[j], shuffledPoints[i]
	})
	shuffled := createOrderTestTable(t, shuffledPoints)

	orderedReport, err := Check(ordered, "geometry", nil)
	require.Nil(t, err)
	shuffledReport, err := Check(shuffled, "geometry", nil)
	require.Nil(t, err)

	require.Greater(t, orderedReport.Score, shuffledReport.Score)
	require.True(t, orderedReport.IsOrdered)
	require.False(t, shuffledReport.IsOrdered)
	require.Equal(t, HeuristicNote, orderedReport.Note)
}

func TestCheckRowLimit(t *testing.T) {
	tbl := createOrderTestTable(t, snakePoints(1024))
	report, err := Check(tbl, "geometry", &Options{SampleSize: 50, RowLimit: 100})
	require.Nil(t, err)
	require.LessOrEqual(t, report.SampledRows, 51)
	require.True(t, report.SampledRows > 0)
}

func TestCheckDeterministic(t *testing.T) {
	tbl := createOrderTestTable(t, snakePoints(512))
	a, err := Check(tbl, "geometry", nil)
	require.Nil(t, err)
	b, err := Check(tbl, "geometry", nil)
	require.Nil(t, err)
	require.Equal(t, a, b)
}

func TestCheckTinyTable(t *testing.T) {
	// too little evidence: advisory zero-score report, not an error
	tbl := createOrderTestTable(t, []orb.Point{{0, 0}})
	report, err := Check(tbl, "geometry", nil)
	require.Nil(t, err)
	require.False(t, report.IsOrdered)
	require.Equal(t, 0.0, report.Score)
}

func TestCheckEmptyTable(t *testing.T) {
	tbl := createOrderTestTable(t, nil)
	report, err := Check(tbl, "geometry", nil)
	require.Nil(t, err)
	require.Equal(t, 0, report.SampledRows)
}

func TestCheckSkipsNullGeometry(t *testing.T) {
	s := schema.CreateSchema()
	s, err := s.CreateColumn("geometry", &tess.GeometryColumnType{})
	require.Nil(t, err)
	tbl := table.CreateTable(s)
	for i, p := range snakePoints(64) {
		if i%8 == 0 {
			require.Nil(t, tbl.AppendRow([]interface{}{nil}))
		} else {
			require.Nil(t, tbl.AppendRow([]interface{}{p}))
		}
	}
	report, err := Check(tbl, "geometry", nil)
	require.Nil(t, err)
	require.True(t, report.SampledRows > 0)
}

func TestCheckMissingColumn(t *testing.T) {
	tbl := createOrderTestTable(t, nil)
	_, err := Check(tbl, "nope", nil)
	require.IsType(t, errors.MissingColumnError{}, err)
}
