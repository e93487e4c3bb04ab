package tess

// SplitNode is one internal split of a PartitionScheme: a comparison of a
// point coordinate on Axis (0 = x, 1 = y) against Value. Points with
// coordinate < Value descend left; points with coordinate >= Value descend
// right. Nodes are stored in breadth-first order in an arena slice rather
// than as a pointer-linked tree, so a scheme is trivially serializable.
type SplitNode struct {
	Axis  int
	Value float64
}

// Cell is one leaf of a PartitionScheme: an axis-aligned rectangle with a
// stable integer id in 0 .. 2^iterations-1, the sequence of L/R split
// decisions which reaches it, and the number of sample points it owned
// during construction.
type Cell struct {
	ID     int
	Bounds Bounds
	Path   string
	Count  int
}

// PartitionScheme is a frozen balanced binary space partition of depth
// Iterations, built once from a point sample. The cells exactly tile the
// sample's bounding rectangle. A scheme is immutable after construction and
// is threaded explicitly into assignment and writing - there is no
// process-wide "last built scheme" state.
type PartitionScheme struct {
	Iterations int
	Domain     Bounds
	Nodes      []SplitNode
	Cells      []Cell
}

// NumCells returns the number of leaf cells in this PartitionScheme
func (s *PartitionScheme) NumCells() int {
	return len(s.Cells)
}

// AssignCell maps a point to the id of the leaf cell it falls in, walking
// the split nodes from the root in O(Iterations) time. Points outside the
// sampled domain's rectangle are walked through the same half-open
// comparisons and so fall into the nearest edge cell.
func (s *PartitionScheme) AssignCell(p Point) int {
	idx := 0
	for d := 0; d < s.Iterations; d++ {
		node := s.Nodes[idx]
		if p.Coord(node.Axis) < node.Value {
			idx = 2*idx + 1
		} else {
			idx = 2*idx + 2
		}
	}
	// leaf indices of a complete tree start immediately after the
	// internal node arena
	return idx - len(s.Nodes)
}
