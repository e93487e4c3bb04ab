// Package kd builds adaptive partition schemes: balanced recursive
// axis-aligned space partitions frozen from a point sample. Cells are split
// at coordinate medians rather than midpoints - this guarantees row-count
// balance across partitions even for highly skewed point distributions, at
// the cost of irregular cell shapes. The goal is balanced file sizes, not
// uniform geographic tiles.
package kd

import (
	"sort"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
)

// MaxIterations caps scheme depth; 2^20 cells is already far beyond any
// sane partition fanout
const MaxIterations = 20

type workItem struct {
	node   int
	depth  int
	points []tess.Point
	bounds tess.Bounds
	path   string
}

// Build freezes a PartitionScheme of depth iterations from a point sample.
// Starting with one cell spanning the sample's bounding rectangle, every
// cell at depth d is split along axis d mod 2 (alternating x/y) at the
// median of its owned points' coordinate on that axis, yielding
// 2^iterations cells. Construction walks an explicit queue of work items
// over an arena of nodes - no pointer-linked tree - so the result is
// trivially serializable. Build is deterministic: the same sample always
// freezes a bit-identical scheme.
func Build(sample []tess.Point, iterations int) (*tess.PartitionScheme, error) {
	if iterations < 1 || iterations > MaxIterations {
		return nil, errors.PartitionFanoutTooLargeError{Requested: iterations, Max: MaxIterations}
	}
	if len(sample) == 0 {
		return nil, errors.EmptySampleError{}
	}
	domain := tess.EmptyBounds()
	owned := make([]tess.Point, len(sample))
	copy(owned, sample)
	for _, p := range owned {
		domain = domain.ExtendPoint(p)
	}

	numNodes := (1 << uint(iterations)) - 1
	scheme := &tess.PartitionScheme{
		Iterations: iterations,
		Domain:     domain,
		Nodes:      make([]tess.SplitNode, numNodes),
		Cells:      make([]tess.Cell, 1<<uint(iterations)),
	}

	queue := []workItem{{node: 0, depth: 0, points: owned, bounds: domain}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		axis := item.depth % 2
		split := medianSplit(item.points, axis, item.bounds)
		scheme.Nodes[item.node] = tess.SplitNode{Axis: axis, Value: split}

		// the same half-open rule the assigner uses: < goes left, >= right
		cut := sort.Search(len(item.points), func(i int) bool {
			return item.points[i].Coord(axis) >= split
		})
		left := item.points[:cut]
		right := item.points[cut:]
		leftBounds, rightBounds := item.bounds, item.bounds
		if axis == 0 {
			leftBounds.XMax = split
			rightBounds.XMin = split
		} else {
			leftBounds.YMax = split
			rightBounds.YMin = split
		}

		if item.depth+1 == iterations {
			leftLeaf := 2*item.node + 1 - numNodes
			rightLeaf := 2*item.node + 2 - numNodes
			scheme.Cells[leftLeaf] = tess.Cell{ID: leftLeaf, Bounds: leftBounds, Path: item.path + "L", Count: len(left)}
			scheme.Cells[rightLeaf] = tess.Cell{ID: rightLeaf, Bounds: rightBounds, Path: item.path + "R", Count: len(right)}
		} else {
			queue = append(queue,
				workItem{node: 2*item.node + 1, depth: item.depth + 1, points: left, bounds: leftBounds, path: item.path + "L"},
				workItem{node: 2*item.node + 2, depth: item.depth + 1, points: right, bounds: rightBounds, path: item.path + "R"},
			)
		}
	}
	return scheme, nil
}

// medianSplit sorts a cell's owned points along the split axis (in place;
// the builder owns its copies) and returns the median coordinate. Cells
// owning fewer than two points, or points which all share one coordinate,
// degenerate to a deterministic boundary at the single value rather than
// failing.
func medianSplit(points []tess.Point, axis int, bounds tess.Bounds) float64 {
	if len(points) == 0 {
		if axis == 0 {
			return bounds.Center().X
		}
		return bounds.Center().Y
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Coord(axis) < points[j].Coord(axis)
	})
	if len(points) == 1 {
		return points[0].Coord(axis)
	}
	return points[len(points)/2].Coord(axis)
}
