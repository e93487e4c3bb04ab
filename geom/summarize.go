package geom

import (
	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
	"github.com/go-tess/tess/logging"
	"github.com/hashicorp/go-multierror"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// SummarizeOptions configures geometry summarization
type SummarizeOptions struct {
	// UseCentroid forces representative points to be recomputed as true
	// geometry centroids, even when a bbox column is present. Without it,
	// an existing bbox center is reused in preference to recomputation.
	// The two differ for non-convex geometries; the reuse rule is a
	// performance approximation, not a correctness guarantee. Rows without
	// a usable precomputed bbox always get the true centroid.
	UseCentroid bool
	// BboxColumn names a column holding precomputed bounding rectangles.
	// Defaults to "bbox".
	BboxColumn string
	// InvalidRateThreshold is the highest tolerated fraction of rows with
	// null or invalid geometry. The zero value tolerates none.
	InvalidRateThreshold float64
}

// Summary is the result of summarizing the geometry column of a Table:
// one bounding rectangle (nil for null/invalid geometries) and one
// representative point per row, plus aggregates over the whole table.
type Summary struct {
	Bboxes     []*tess.Bounds
	Points     []tess.Point
	Domain     tess.Bounds // union of all row bboxes
	NumInvalid int
}

// Valid returns true iff the given row produced a usable bounding box and
// representative point
func (s *Summary) Valid(rowNum int) bool {
	return s.Bboxes[rowNum] != nil
}

// Summarize derives a per-row bounding box and representative point from
// the given geometry column. It is a pure read: the table is not modified.
// Rows with null or invalid geometry yield a nil bbox and are counted; if
// their fraction exceeds opts.InvalidRateThreshold the whole operation
// fails with an InvalidGeometryRateError rather than silently degrading
// downstream partition balance.
func Summarize(t tess.Table, geometryColumn string, opts *SummarizeOptions) (*Summary, error) {
	if opts == nil {
		opts = &SummarizeOptions{}
	}
	bboxColumn := opts.BboxColumn
	if bboxColumn == "" {
		bboxColumn = "bbox"
	}
	if !t.Schema().HasColumn(geometryColumn) {
		return nil, errors.MissingColumnError{Name: geometryColumn}
	}
	reuseBbox := !opts.UseCentroid && t.Schema().HasColumn(bboxColumn)

	numRows := t.NumRows()
	summary := &Summary{
		Bboxes: make([]*tess.Bounds, numRows),
		Points: make([]tess.Point, numRows),
		Domain: tess.EmptyBounds(),
	}
	var multierr *multierror.Error
	i := -1
	err := t.ForEachRow(func(row tess.Row) error {
		i++
		if row.IsNil(geometryColumn) {
			summary.NumInvalid++
			return nil
		}
		g, err := row.GetGeometry(geometryColumn)
		if err != nil || g == nil {
			summary.NumInvalid++
			multierr = multierror.Append(multierr, err)
			return nil
		}
		b := BoundsOf(g)
		if b.IsEmpty() {
			summary.NumInvalid++
			return nil
		}
		summary.Bboxes[i] = &b
		summary.Domain = summary.Domain.Extend(b)
		if reuseBbox && !row.IsNil(bboxColumn) {
			prior, err := row.GetBounds(bboxColumn)
			if err != nil {
				return err
			}
			summary.Points[i] = prior.Center()
		} else {
			summary.Points[i] = Centroid(g)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if numRows > 0 && float64(summary.NumInvalid)/float64(numRows) > opts.InvalidRateThreshold {
		return nil, errors.InvalidGeometryRateError{
			NumInvalid: summary.NumInvalid,
			NumRows:    numRows,
			Threshold:  opts.InvalidRateThreshold,
		}
	}
	if summary.NumInvalid > 0 {
		logging.Logf(logging.WarnLevel, "summarize: %d of %d rows have null or invalid geometry and are excluded from key computation", summary.NumInvalid, numRows)
	}
	if rowErrs := multierr.ErrorOrNil(); rowErrs != nil {
		logging.Logf(logging.WarnLevel, "summarize: row-level geometry errors: %v", rowErrs)
	}
	return summary, nil
}

// BoundsOf returns the bounding rectangle of a geometry value
func BoundsOf(g orb.Geometry) tess.Bounds {
	b := g.Bound()
	return tess.Bounds{XMin: b.Min.X(), YMin: b.Min.Y(), XMax: b.Max.X(), YMax: b.Max.Y()}
}

// Centroid returns the true planar centroid of a geometry value
func Centroid(g orb.Geometry) tess.Point {
	c, _ := planar.CentroidArea(g)
	return tess.Point{X: c.X(), Y: c.Y()}
}
