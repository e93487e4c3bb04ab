// Package spatial houses the spatial preparation operations: deriving
// bounding-box and spatial-key columns (at a fine row-order resolution
// and an optional coarser partition resolution), freezing and applying
// adaptive partition schemes, re-sorting tables into key order, clipping
// tables to a bounding rectangle and estimating whether a table is
// already spatially ordered. Each operation takes an OperableTable and
// returns a transformed table or a result summary, never mutating its
// input.
package spatial
