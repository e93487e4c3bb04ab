package output

import (
	"sort"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
	"github.com/go-tess/tess/logging"
	"github.com/hashicorp/go-multierror"
)

// DefaultCellIDWidth is the zero-padding width for integer partition labels
const DefaultCellIDWidth = 5

// WriteOptions configures WritePartitions and PreviewPartitions
type WriteOptions struct {
	// Overwrite permits replacing an existing output target. Without it,
	// writing to a target which already holds data fails up front with an
	// AlreadyExistsError, before any file is written.
	Overwrite bool
	// HiveLayout arranges partitions as column=value directories each
	// holding one part file, instead of flat label-suffixed file names
	HiveLayout bool
	// FilenamePrefix is the part file name prefix. Defaults to "part".
	FilenamePrefix string
	// Extension is the part file extension. Defaults to ".geojsonl".
	Extension string
	// CellIDWidth is the zero-padding width for integer partition labels.
	// Defaults to 5.
	CellIDWidth int
}

// WriteResult summarizes a write or preview: the files produced (or that
// would be produced) and the row count behind each partition label
type WriteResult struct {
	FileCount int
	RowCounts map[string]int
	Paths     map[string]string
}

func (opts *WriteOptions) withDefaults() *WriteOptions {
	if opts == nil {
		opts = &WriteOptions{}
	}
	out := *opts
	if out.FilenamePrefix == "" {
		out.FilenamePrefix = "part"
	}
	if out.Extension == "" {
		out.Extension = ".geojsonl"
	}
	if out.CellIDWidth == 0 {
		out.CellIDWidth = DefaultCellIDWidth
	}
	return &out
}

// groupRows groups row indices by their grouping column label, in row
// order within each group. Rows with a null grouping value collect under
// the "null" label. The returned labels are sorted, fixing partition
// processing order. Both the preview and the write path run exactly this
// grouping.
func groupRows(t tess.Table, groupingColumn string, opts *WriteOptions) ([]string, map[string][]int, error) {
	colType, err := t.Schema().ColumnType(groupingColumn)
	if err != nil {
		return nil, nil, err
	}
	groups := make(map[string][]int)
	i := -1
	err = t.ForEachRow(func(row tess.Row) error {
		i++
		if row.IsNil(groupingColumn) {
			groups["null"] = append(groups["null"], i)
			return nil
		}
		v, err := row.Get(groupingColumn)
		if err != nil {
			return err
		}
		label := formatValue(v, colType, opts.CellIDWidth)
		groups[label] = append(groups[label], i)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels, groups, nil
}

// PreviewPartitions reports the partition layout a WritePartitions call
// with the same arguments would produce, without touching any target
func PreviewPartitions(t tess.Table, groupingColumn string, opts *WriteOptions) (*WriteResult, error) {
	opts = opts.withDefaults()
	labels, groups, err := groupRows(t, groupingColumn, opts)
	if err != nil {
		return nil, err
	}
	result := &WriteResult{
		FileCount: len(labels),
		RowCounts: make(map[string]int, len(labels)),
		Paths:     make(map[string]string, len(labels)),
	}
	for _, label := range labels {
		result.RowCounts[label] = len(groups[label])
		result.Paths[label] = partitionPath("", groupingColumn, label, opts)
	}
	return result, nil
}

// WritePartitions groups the table's rows by the given column and writes
// each group to the target as one file via the given TableWriter. The
// target is checked before any file is written: if it already holds data
// and overwriting was not requested, the whole operation fails with an
// AlreadyExistsError and nothing is touched. A failure to write one
// partition does not abort the rest; per-partition failures are aggregated
// and returned alongside the result for the partitions which did succeed.
func WritePartitions(t tess.Table, groupingColumn string, target string, w tess.TableWriter, opts *WriteOptions) (*WriteResult, error) {
	opts = opts.withDefaults()
	labels, groups, err := groupRows(t, groupingColumn, opts)
	if err != nil {
		return nil, err
	}
	exists, err := w.Exists(target)
	if err != nil {
		return nil, err
	}
	if exists && !opts.Overwrite {
		return nil, errors.AlreadyExistsError{Target: target}
	}

	result := &WriteResult{
		RowCounts: make(map[string]int, len(labels)),
		Paths:     make(map[string]string, len(labels)),
	}
	var multierr *multierror.Error
	for _, label := range labels {
		p := partitionPath(target, groupingColumn, label, opts)
		if opts.Overwrite {
			exists, err := w.Exists(p)
			if err == nil && exists {
				err = w.Remove(p)
			}
			if err != nil {
				multierr = multierror.Append(multierr, errors.PartitionWriteError{Value: label, Cause: err})
				continue
			}
		}
		if err := w.Write(t, groups[label], p); err != nil {
			multierr = multierror.Append(multierr, errors.PartitionWriteError{Value: label, Cause: err})
			continue
		}
		result.FileCount++
		result.RowCounts[label] = len(groups[label])
		result.Paths[label] = p
	}
	if err := multierr.ErrorOrNil(); err != nil {
		logging.Logf(logging.ErrorLevel, "writePartitions: %d of %d partitions failed: %v", len(labels)-result.FileCount, len(labels), err)
		return result, err
	}
	logging.Logf(logging.InfoLevel, "writePartitions: wrote %d partition files under %s", result.FileCount, target)
	return result, nil
}
