package spatial

import (
	"sort"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
)

// SortBySpatialKey returns a copy of the table with rows stably reordered
// by ascending value of the named key column: numerically for uint64 and
// int64 columns, lexicographically for string columns (the quadkey digit
// order). Rows with a null key sort after all keyed rows, preserving their
// relative order. The sort is an argsort over row indices; row data moves
// exactly once, during the final reorder.
func SortBySpatialKey(t tess.OperableTable, keyColumn string) (tess.OperableTable, error) {
	colType, err := t.Schema().ColumnType(keyColumn)
	if err != nil {
		return nil, err
	}

	numRows := t.NumRows()
	nulls := make([]bool, numRows)
	var less func(i, j int) bool
	switch colType.(type) {
	case *tess.Uint64ColumnType:
		keys := make([]uint64, numRows)
		if err := collectKeys(t, keyColumn, nulls, func(row tess.Row, i int) (err error) {
			keys[i], err = row.GetUint64(keyColumn)
			return
		}); err != nil {
			return nil, err
		}
		less = func(i, j int) bool { return keys[i] < keys[j] }
	case *tess.Int64ColumnType:
		keys := make([]int64, numRows)
		if err := collectKeys(t, keyColumn, nulls, func(row tess.Row, i int) (err error) {
			keys[i], err = row.GetInt64(keyColumn)
			return
		}); err != nil {
			return nil, err
		}
		less = func(i, j int) bool { return keys[i] < keys[j] }
	case *tess.StringColumnType:
		keys := make([]string, numRows)
		if err := collectKeys(t, keyColumn, nulls, func(row tess.Row, i int) (err error) {
			keys[i], err = row.GetString(keyColumn)
			return
		}); err != nil {
			return nil, err
		}
		less = func(i, j int) bool { return keys[i] < keys[j] }
	default:
		return nil, errors.IncompatibleColumnTypeError{Name: keyColumn, Expected: "uint64, int64 or string"}
	}

	perm := make([]int, numRows)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		i, j := perm[a], perm[b]
		if nulls[i] != nulls[j] {
			return nulls[j]
		}
		if nulls[i] {
			return false
		}
		return less(i, j)
	})
	return t.Reorder(perm)
}

func collectKeys(t tess.Table, keyColumn string, nulls []bool, get func(row tess.Row, i int) error) error {
	i := -1
	return t.ForEachRow(func(row tess.Row) error {
		i++
		if row.IsNil(keyColumn) {
			nulls[i] = true
			return nil
		}
		return get(row, i)
	})
}
