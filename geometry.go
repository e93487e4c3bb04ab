package tess

import (
	"fmt"
	"math"
)

// Point is a single position in the working coordinate reference system.
// Tess treats coordinates as planar (or geographic degrees) and never
// reprojects them.
type Point struct {
	X float64
	Y float64
}

// ToString returns a string representation of this Point
func (p Point) ToString() string {
	return fmt.Sprintf("(%f, %f)", p.X, p.Y)
}

// Coord returns the coordinate of this Point along the given axis (0 = x, 1 = y)
func (p Point) Coord(axis int) float64 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

// DistanceTo returns the euclidean distance between this Point and another
func (p Point) DistanceTo(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Bounds is an axis-aligned bounding rectangle in the working coordinate
// reference system.
type Bounds struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// WorldBounds is the full geographic-degree domain, useful as a fixed
// quadkey domain when keys must be comparable across datasets.
var WorldBounds = Bounds{XMin: -180, YMin: -90, XMax: 180, YMax: 90}

// EmptyBounds returns a Bounds which contains nothing, suitable as the
// starting value for accumulating Extend calls
func EmptyBounds() Bounds {
	return Bounds{
		XMin: math.Inf(1),
		YMin: math.Inf(1),
		XMax: math.Inf(-1),
		YMax: math.Inf(-1),
	}
}

// ToString returns a string representation of this Bounds
func (b Bounds) ToString() string {
	return fmt.Sprintf("[%f, %f, %f, %f]", b.XMin, b.YMin, b.XMax, b.YMax)
}

// IsEmpty returns true iff this Bounds contains no points
func (b Bounds) IsEmpty() bool {
	return b.XMin > b.XMax || b.YMin > b.YMax
}

// Width returns the x-extent of this Bounds
func (b Bounds) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the y-extent of this Bounds
func (b Bounds) Height() float64 {
	return b.YMax - b.YMin
}

// Center returns the center point of this Bounds
func (b Bounds) Center() Point {
	return Point{X: (b.XMin + b.XMax) / 2, Y: (b.YMin + b.YMax) / 2}
}

// Intersects returns true iff this Bounds and another share any point
func (b Bounds) Intersects(o Bounds) bool {
	return b.XMin <= o.XMax && o.XMin <= b.XMax && b.YMin <= o.YMax && o.YMin <= b.YMax
}

// Contains returns true iff the given Point falls within this Bounds
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// ExtendPoint grows this Bounds to include the given Point, returning the result
func (b Bounds) ExtendPoint(p Point) Bounds {
	return Bounds{
		XMin: math.Min(b.XMin, p.X),
		YMin: math.Min(b.YMin, p.Y),
		XMax: math.Max(b.XMax, p.X),
		YMax: math.Max(b.YMax, p.Y),
	}
}

// Extend grows this Bounds to include another Bounds, returning the result
func (b Bounds) Extend(o Bounds) Bounds {
	return Bounds{
		XMin: math.Min(b.XMin, o.XMin),
		YMin: math.Min(b.YMin, o.YMin),
		XMax: math.Max(b.XMax, o.XMax),
		YMax: math.Max(b.YMax, o.YMax),
	}
}
