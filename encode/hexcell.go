package encode

import (
	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
	h3 "github.com/uber/h3-go/v4"
)

// MaxHexResolution is the finest resolution of the hierarchical hex grid
const MaxHexResolution = 15

// HexCell returns the id of the hierarchical hex-grid cell containing a
// point at the given resolution. The grid itself is delegated to the H3
// library - this is only an adapter from x/y (lng/lat) to a cell id, and
// it assumes geographic-degree coordinates.
func HexCell(p tess.Point, resolution int) (uint64, error) {
	if resolution < 0 || resolution > MaxHexResolution {
		return 0, errors.PartitionFanoutTooLargeError{Requested: resolution, Max: MaxHexResolution}
	}
	cell := h3.LatLngToCell(h3.NewLatLng(p.Y, p.X), resolution)
	return uint64(cell), nil
}

// HexCellParent returns the id of the coarser-resolution ancestor of a hex
// cell. Hex cells do not coarsen by bit shifting, so truncation is also
// delegated to the grid library.
func HexCellParent(cell uint64, resolution int) uint64 {
	return uint64(h3.Cell(cell).Parent(resolution))
}
