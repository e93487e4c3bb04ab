package spatial

import (
	"github.com/go-tess/tess"
	"github.com/go-tess/tess/encode"
	"github.com/go-tess/tess/errors"
	"github.com/go-tess/tess/geom"
	"github.com/go-tess/tess/logging"
)

const (
	// DefaultHilbertResolution is the Hilbert curve order used when none is given
	DefaultHilbertResolution = 16
	// DefaultQuadkeyResolution is the quadkey digit count used when none is given
	DefaultQuadkeyResolution = 12
	// DefaultHexResolution is the hexagonal grid resolution used when none is given
	DefaultHexResolution = 9
)

// AddSpatialKeyOptions configures AddSpatialKey
type AddSpatialKeyOptions struct {
	// Resolution is the key resolution. Defaults per kind: 16 for Hilbert
	// curves, 12 for quadkeys, 9 for hex cells.
	Resolution int
	// TargetColumn names the new key column. Defaults to the kind name
	// ("hilbert", "quadkey", "hexcell").
	TargetColumn string
	// PartitionResolution, when positive, additionally materializes each
	// key coarsened to this resolution: quadkeys by digit prefix, Hilbert
	// and hex cell keys by walking to the containing coarser cell. The
	// coarse column groups output files more broadly than the row-order
	// key. Must not exceed Resolution.
	PartitionResolution int
	// PartitionColumn names the coarsened key column. Defaults to the
	// target column name suffixed with "_part".
	PartitionColumn string
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
	// Domain overrides the coordinate domain the Hilbert and quadkey
	// encoders normalize against. When nil, the union of all row bounding
	// boxes is used, which maximizes key precision for the dataset at hand
	// but ties keys to that dataset. Fix the domain (e.g. to
	// tess.WorldBounds) to make keys comparable across datasets.
	Domain *tess.Bounds
}

// AddSpatialKey returns a copy of the table with a locality-preserving key
// column computed from the named geometry column. Keys are encoded over two
// passes: the first derives every row's representative point and the
// dataset's coordinate domain, the second encodes each point at the chosen
// resolution. Hilbert and hex cell keys land in a uint64 column, quadkeys
// in a string column; rows with null or invalid geometry get a null key.
// A positive PartitionResolution materializes a second, coarser key column
// alongside, suitable as a WritePartitions grouping column.
func AddSpatialKey(t tess.OperableTable, geometryColumn string, kind tess.KeyKind, opts *AddSpatialKeyOptions) (tess.OperableTable, error) {
	if opts == nil {
		opts = &AddSpatialKeyOptions{}
	}
	resolution := opts.Resolution
	if resolution == 0 {
		switch kind {
		case tess.KindQuadkey:
			resolution = DefaultQuadkeyResolution
		case tess.KindHexCell:
			resolution = DefaultHexResolution
		default:
			resolution = DefaultHilbertResolution
		}
	}
	if opts.PartitionResolution > resolution {
		return nil, errors.PartitionFanoutTooLargeError{Requested: opts.PartitionResolution, Max: resolution}
	}
	target := opts.TargetColumn
	if target == "" {
		target = kind.ToString()
	}
	partColumn := opts.PartitionColumn
	if partColumn == "" {
		partColumn = target + "_part"
	}

	summary, err := geom.Summarize(t, geometryColumn, &geom.SummarizeOptions{
		UseCentroid:          opts.UseCentroid,
		BboxColumn:           opts.BboxColumn,
		InvalidRateThreshold: opts.InvalidRateThreshold,
	})
	if err != nil {
		return nil, err
	}
	domain := summary.Domain
	if opts.Domain != nil {
		domain = *opts.Domain
	}

	var colType tess.ColumnType = &tess.Uint64ColumnType{}
	if kind == tess.KindQuadkey {
		colType = &tess.StringColumnType{}
	}
	result, err := t.WithColumn(target, colType)
	if err != nil {
		return nil, err
	}
	if opts.PartitionResolution > 0 {
		result, err = result.WithColumn(partColumn, colType)
		if err != nil {
			return nil, err
		}
	}
	for i := 0; i < result.NumRows(); i++ {
		if !summary.Valid(i) {
			continue
		}
		key, err := encode.Key(kind, summary.Points[i], domain, resolution)
		if err != nil {
			return nil, err
		}
		row := result.GetRow(i)
		if err := setKey(row, target, key); err != nil {
			return nil, err
		}
		if opts.PartitionResolution > 0 {
			coarse, err := encode.Truncate(key, opts.PartitionResolution)
			if err != nil {
				return nil, err
			}
			if err := setKey(row, partColumn, coarse); err != nil {
				return nil, err
			}
		}
	}
	logging.Logf(logging.InfoLevel, "addSpatialKey: encoded %d %s keys at resolution %d into column %s", result.NumRows()-summary.NumInvalid, kind.ToString(), resolution, target)
	return result, nil
}

func setKey(row tess.Row, colName string, key tess.SpatialKey) error {
	switch key.Kind {
	case tess.KindQuadkey:
		return row.SetString(colName, key.Quadkey)
	case tess.KindHexCell:
		return row.SetUint64(colName, key.HexCell)
	default:
		return row.SetUint64(colName, key.Hilbert)
	}
}
