package spatial

import (
	"github.com/go-tess/tess"
	"github.com/go-tess/tess/order"
)

// CheckSpatialOrder estimates whether the table's rows are laid out in
// spatial-locality order, returning an advisory Report. The verdict is a
// statistical estimate from a bounded sample of row positions; it is meant
// to suggest re-sorting (see SortBySpatialKey), never to gate a write.
func CheckSpatialOrder(t tess.Table, geometryColumn string, opts *order.Options) (*order.Report, error) {
	return order.Check(t, geometryColumn, opts)
}
