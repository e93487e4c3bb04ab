package spatial

import (
	"github.com/go-tess/tess"
	"github.com/go-tess/tess/geom"
	"github.com/go-tess/tess/kd"
	"github.com/go-tess/tess/logging"
)

// DefaultCellColumn is the column name used for assigned partition cell ids
// when no other name is given
const DefaultCellColumn = "cell"

// PartitionSchemeOptions configures BuildPartitionScheme
type PartitionSchemeOptions struct {
	// SampleCap bounds the number of representative points the scheme is
	// frozen from. Defaults to kd.DefaultSampleCap.
	SampleCap int
	// Seed overrides the sampling seed. When zero, a deterministic seed is
	// derived from the geometry column name and row count, so repeated runs
	// against the same input freeze the same scheme.
	Seed uint64
	// TargetColumn names the new cell-id column. Defaults to "cell".
	TargetColumn string
	// UseCentroid forces representative points to be true geometry
	// centroids even when a precomputed bbox column would otherwise be
	// reused
	UseCentroid bool
	// BboxColumn names a column of precomputed bounding rectangles whose
	// centers are reused as representative points. Defaults to "bbox".
	BboxColumn string
	// InvalidRateThreshold is the highest tolerated fraction of rows with
	// null or invalid geometry. The zero value tolerates none.
	InvalidRateThreshold float64
}

// BuildPartitionScheme freezes an adaptive partition scheme from the
// table's geometry and applies it: every row's representative point is
// assigned to a cell of the frozen scheme, and the cell id lands in a new
// int64 column. The scheme is built from a seeded sample of representative
// points, split at coordinate medians to depth iterations, yielding
// 2^iterations cells of near-equal row count. The frozen scheme is returned
// alongside the table so it can be reused to assign later data to the same
// cells. Rows with null or invalid geometry get a null cell id.
func BuildPartitionScheme(t tess.OperableTable, geometryColumn string, iterations int, opts *PartitionSchemeOptions) (tess.OperableTable, *tess.PartitionScheme, error) {
	if opts == nil {
		opts = &PartitionSchemeOptions{}
	}
	target := opts.TargetColumn
	if target == "" {
		target = DefaultCellColumn
	}

	summary, err := geom.Summarize(t, geometryColumn, &geom.SummarizeOptions{
		UseCentroid:          opts.UseCentroid,
		BboxColumn:           opts.BboxColumn,
		InvalidRateThreshold: opts.InvalidRateThreshold,
	})
	if err != nil {
		return nil, nil, err
	}

	valid := make([]bool, t.NumRows())
	for i := range valid {
		valid[i] = summary.Valid(i)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = kd.SampleSeed(geometryColumn, t.NumRows())
	}
	sample, err := kd.DrawSample(summary.Points, valid, opts.SampleCap, seed)
	if err != nil {
		return nil, nil, err
	}
	scheme, err := kd.Build(sample, iterations)
	if err != nil {
		return nil, nil, err
	}

	result, err := t.WithColumn(target, &tess.Int64ColumnType{})
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < result.NumRows(); i++ {
		if !valid[i] {
			continue
		}
		cell := scheme.AssignCell(summary.Points[i])
		if err := result.GetRow(i).SetInt64(target, int64(cell)); err != nil {
			return nil, nil, err
		}
	}
	logging.Logf(logging.InfoLevel, "buildPartitionScheme: froze %d cells from a %d-point sample and assigned %d rows", scheme.NumCells(), len(sample), result.NumRows()-summary.NumInvalid)
	return result, scheme, nil
}

// ApplyPartitionScheme assigns every row of the table to a cell of an
// already-frozen scheme, landing cell ids in a new int64 column. Used to
// route later data into the partition layout of an earlier run.
func ApplyPartitionScheme(t tess.OperableTable, geometryColumn string, scheme *tess.PartitionScheme, opts *PartitionSchemeOptions) (tess.OperableTable, error) {
	if opts == nil {
		opts = &PartitionSchemeOptions{}
	}
	target := opts.TargetColumn
	if target == "" {
		target = DefaultCellColumn
	}
	summary, err := geom.Summarize(t, geometryColumn, &geom.SummarizeOptions{
		UseCentroid:          opts.UseCentroid,
		BboxColumn:           opts.BboxColumn,
		InvalidRateThreshold: opts.InvalidRateThreshold,
	})
	if err != nil {
		return nil, err
	}
	result, err := t.WithColumn(target, &tess.Int64ColumnType{})
	if err != nil {
		return nil, err
	}
	for i := 0; i < result.NumRows(); i++ {
		if !summary.Valid(i) {
			continue
		}
		cell := scheme.AssignCell(summary.Points[i])
		if err := result.GetRow(i).SetInt64(target, int64(cell)); err != nil {
			return nil, err
		}
	}
	return result, nil
}
