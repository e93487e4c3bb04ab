package spatial

import (
	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
	"github.com/go-tess/tess/geom"
)

// Filter returns a copy of the table containing only the rows the given
// predicate retains, in their original order
func Filter(t tess.OperableTable, fn tess.FilterOperation) (tess.OperableTable, error) {
	keep := make([]int, 0, t.NumRows())
	i := -1
	err := t.ForEachRow(func(row tess.Row) error {
		i++
		ok, err := fn(row)
		if err != nil {
			return err
		}
		if ok {
			keep = append(keep, i)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t.Select(keep)
}

// FilterByBounds returns a copy of the table containing only the rows
// whose geometry's bounding box intersects the given rectangle. Rows with
// null geometry are dropped - a clipped table is meant for key encoding
// and partitioning, which cannot place them anyway.
func FilterByBounds(t tess.OperableTable, geometryColumn string, b tess.Bounds) (tess.OperableTable, error) {
	if !t.Schema().HasColumn(geometryColumn) {
		return nil, errors.MissingColumnError{Name: geometryColumn}
	}
	return Filter(t, func(row tess.Row) (bool, error) {
		if row.IsNil(geometryColumn) {
			return false, nil
		}
		g, err := row.GetGeometry(geometryColumn)
		if err != nil {
			return false, err
		}
		return geom.BoundsOf(g).Intersects(b), nil
	})
}
