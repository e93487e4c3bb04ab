package geom

import (
	"testing"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
	"github.com/go-tess/tess/internal/table"
	"github.com/go-tess/tess/schema"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func createSummarizeTestTable(t *testing.T) tess.OperableTable {
	s := schema.CreateSchema()
	s, err := s.CreateColumn("geometry", &tess.GeometryColumnType{})
	require.Nil(t, err)
	return table.CreateTable(s)
}

func TestSummarizePoints(t *testing.T) {
	tbl := createSummarizeTestTable(t)
	require.Nil(t, tbl.AppendRow([]interface{}{orb.Point{1, 2}}))
	require.Nil(t, tbl.AppendRow([]interface{}{orb.Point{3, 4}}))

	summary, err := Summarize(tbl, "geometry", nil)
	require.Nil(t, err)
	require.Equal(t, 0, summary.NumInvalid)
	require.Equal(t, tess.Point{X: 1, Y: 2}, summary.Points[0])
	require.Equal(t, tess.Bounds{XMin: 1, YMin: 2, XMax: 1, YMax: 2}, *summary.Bboxes[0])
	require.Equal(t, tess.Bounds{XMin: 1, YMin: 2, XMax: 3, YMax: 4}, summary.Domain)
}

func TestSummarizePolygonCentroid(t *testing.T) {
	// an L-shaped polygon: the bbox center and the true centroid differ,
	// and without a precomputed bbox column the true centroid wins
	ring := orb.Ring{{0, 0}, {4, 0}, {4, 1}, {1, 1}, {1, 4}, {0, 4}, {0, 0}}
	poly := orb.Polygon{ring}

	tbl := createSummarizeTestTable(t)
	require.Nil(t, tbl.AppendRow([]interface{}{poly}))

	summary, err := Summarize(tbl, "geometry", nil)
	require.Nil(t, err)
	require.InDelta(t, 9.5/7.0, summary.Points[0].X, 1e-9)
	require.InDelta(t, 9.5/7.0, summary.Points[0].Y, 1e-9)
	require.NotEqual(t, tess.Point{X: 2, Y: 2}, summary.Points[0])
	require.Equal(t, tess.Bounds{XMin: 0, YMin: 0, XMax: 4, YMax: 4}, *summary.Bboxes[0])

	// UseCentroid is a no-op when there is no bbox column to reuse
	forced, err := Summarize(tbl, "geometry", &SummarizeOptions{UseCentroid: true})
	require.Nil(t, err)
	require.Equal(t, summary.Points[0], forced.Points[0])
}

func TestSummarizeReusesBboxColumn(t *testing.T) {
	s := schema.CreateSchema()
	s, err := s.CreateColumn("geometry", &tess.GeometryColumnType{})
	require.Nil(t, err)
	s, err = s.CreateColumn("bbox", &tess.BoundsColumnType{})
	require.Nil(t, err)
	tbl := table.CreateTable(s)
	// a bbox deliberately different from the geometry's own, to prove reuse
	require.Nil(t, tbl.AppendRow([]interface{}{orb.Point{0, 0}, tess.Bounds{XMin: 10, YMin: 10, XMax: 20, YMax: 20}}))

	summary, err := Summarize(tbl, "geometry", nil)
	require.Nil(t, err)
	require.Equal(t, tess.Point{X: 15, Y: 15}, summary.Points[0])

	// UseCentroid overrides the reuse rule
	summary, err = Summarize(tbl, "geometry", &SummarizeOptions{UseCentroid: true})
	require.Nil(t, err)
	require.Equal(t, tess.Point{X: 0, Y: 0}, summary.Points[0])
}

func TestSummarizeInvalidRate(t *testing.T) {
	tbl := createSummarizeTestTable(t)
	require.Nil(t, tbl.AppendRow([]interface{}{nil}))

	_, err := Summarize(tbl, "geometry", nil)
	require.IsType(t, errors.InvalidGeometryRateError{}, err)

	// a permissive threshold lets the row through, flagged
	summary, err := Summarize(tbl, "geometry", &SummarizeOptions{InvalidRateThreshold: 1.0})
	require.Nil(t, err)
	require.Equal(t, 1, summary.NumInvalid)
	require.Nil(t, summary.Bboxes[0])
	require.False(t, summary.Valid(0))
}

func TestSummarizeMissingColumn(t *testing.T) {
	tbl := createSummarizeTestTable(t)
	_, err := Summarize(tbl, "nope", nil)
	require.IsType(t, errors.MissingColumnError{}, err)
}
