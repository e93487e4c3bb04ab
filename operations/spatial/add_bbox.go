package spatial

import (
	"github.com/go-tess/tess"
	"github.com/go-tess/tess/geom"
)

// DefaultBboxColumn is the column name used for derived bounding boxes
// when no other name is given
const DefaultBboxColumn = "bbox"

// AddBboxOptions configures AddBbox
type AddBboxOptions struct {
	// TargetColumn names the new bounding-box column. Defaults to "bbox".
	TargetColumn string
	// InvalidRateThreshold is the highest tolerated fraction of rows with
	// null or invalid geometry. The zero value tolerates none.
	InvalidRateThreshold float64
}

// AddBbox returns a copy of the table with a bounding-box column derived
// from the named geometry column. Rows with null or invalid geometry get a
// null bounding box; if their fraction exceeds the configured threshold the
// operation fails instead.
func AddBbox(t tess.OperableTable, geometryColumn string, opts *AddBboxOptions) (tess.OperableTable, error) {
	if opts == nil {
		opts = &AddBboxOptions{}
	}
	target := opts.TargetColumn
	if target == "" {
		target = DefaultBboxColumn
	}
	summary, err := geom.Summarize(t, geometryColumn, &geom.SummarizeOptions{
		InvalidRateThreshold: opts.InvalidRateThreshold,
	})
	if err != nil {
		return nil, err
	}
	result, err := t.WithColumn(target, &tess.BoundsColumnType{})
	if err != nil {
		return nil, err
	}
	for i := 0; i < result.NumRows(); i++ {
		if !summary.Valid(i) {
			continue
		}
		if err := result.GetRow(i).SetBounds(target, *summary.Bboxes[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}
