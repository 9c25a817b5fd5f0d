package geom

import (
	"math"
	"slices"
)

// Polygon is a polygon in 2D: one outer vertex loop and any number of inner
// loops (holes). Loops are implicitly closed from their last vertex back to
// their first.
//
// Construction and every transformation maintain the winding invariant: the
// outer loop is counterclockwise, inner loops are clockwise. Loops must not
// self-intersect or touch one another; this is not validated.
type Polygon struct {
	outer []Point
	inner [][]Point
}

// NewPolygon returns the polygon with the given outer loop and no holes.
// The loop is reversed if it is not counterclockwise.
func NewPolygon(outer []Point) Polygon {
	return Polygon{outer: makeOuterLoop(slices.Clone(outer))}
}

// NewPolygonWithHoles returns the polygon with the given outer loop and
// holes. Loops with the wrong orientation are reversed: counterclockwise
// for the outer loop, clockwise for holes.
func NewPolygonWithHoles(outer []Point, holes [][]Point) Polygon {
	inner := make([][]Point, len(holes))
	for i, hole := range holes {
		inner[i] = makeInnerLoop(slices.Clone(hole))
	}
	return Polygon{outer: makeOuterLoop(slices.Clone(outer)), inner: inner}
}

// signedLoopArea returns the signed area of the loop: positive for
// counterclockwise winding, negative for clockwise. The sum uses the first
// vertex as a common apex. Loops with fewer than three vertices have zero
// area.
func signedLoopArea(loop []Point) float64 {
	var area float64
	for i := 1; i+1 < len(loop); i++ {
		area += 0.5 * loop[i].Sub(loop[0]).Cross(loop[i+1].Sub(loop[0]))
	}
	return area
}

func makeOuterLoop(loop []Point) []Point {
	if signedLoopArea(loop) < 0 {
		slices.Reverse(loop)
	}
	return loop
}

func makeInnerLoop(loop []Point) []Point {
	if signedLoopArea(loop) > 0 {
		slices.Reverse(loop)
	}
	return loop
}

// OuterLoop returns a copy of the outer loop, in counterclockwise order.
func (p Polygon) OuterLoop() []Point {
	return slices.Clone(p.outer)
}

// InnerLoops returns copies of the hole loops, each in clockwise order.
func (p Polygon) InnerLoops() [][]Point {
	out := make([][]Point, len(p.inner))
	for i, loop := range p.inner {
		out[i] = slices.Clone(loop)
	}
	return out
}

// Vertices returns all vertices of the polygon: the outer loop first, then
// each hole in order. Triangulation indices reference this order.
func (p Polygon) Vertices() []Point {
	out := slices.Clone(p.outer)
	for _, loop := range p.inner {
		out = append(out, loop...)
	}
	return out
}

// Edge is a directed straight edge between two polygon vertices.
type Edge struct {
	Start Point
	End   Point
}

// Vector returns the vector from the edge's start to its end.
func (e Edge) Vector() Vec2 {
	return e.End.Sub(e.Start)
}

// Length returns the length of the edge.
func (e Edge) Length() float64 {
	return e.Vector().Hypot()
}

func appendLoopEdges(edges []Edge, loop []Point) []Edge {
	for i, pt := range loop {
		edges = append(edges, Edge{pt, loop[(i+1)%len(loop)]})
	}
	return edges
}

// Edges returns all edges of the polygon: the outer loop's edges first, then
// each hole's.
func (p Polygon) Edges() []Edge {
	var edges []Edge
	edges = appendLoopEdges(edges, p.outer)
	for _, loop := range p.inner {
		edges = appendLoopEdges(edges, loop)
	}
	return edges
}

// Area returns the area of the polygon, with hole areas subtracted. It is
// never negative, regardless of the winding of the loops the polygon was
// constructed from.
func (p Polygon) Area() float64 {
	area := signedLoopArea(p.outer)
	for _, loop := range p.inner {
		area += signedLoopArea(loop)
	}
	return math.Max(area, 0)
}

// Perimeter returns the total length of all loops, holes included.
func (p Polygon) Perimeter() float64 {
	var sum float64
	for _, e := range p.Edges() {
		sum += e.Length()
	}
	return sum
}

// BoundingBox returns the smallest axis-aligned rectangle containing the
// polygon.
func (p Polygon) BoundingBox() Rect {
	if len(p.outer) == 0 {
		return Rect{}
	}
	bbox := NewRectFromPoints(p.outer[0], p.outer[0])
	for _, pt := range p.outer[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Contains reports whether the point is inside the polygon or exactly on
// its boundary. Points inside a hole are not contained; points on a hole's
// boundary are.
//
// This is the crossing-number test of Hao and Sun, "Optimal Reliable
// Point-in-Polygon Test and Differential Coding Boolean Operations on
// Polygons" (2018). The case analysis over the signs of the endpoint
// offsets is what makes the test exact for queries on or through vertices;
// do not collapse the branches into a generic ray cast.
func (p Polygon) Contains(pt Point) bool {
	var k int
	for _, loop := range append([][]Point{p.outer}, p.inner...) {
		crossings, boundary := loopCrossings(loop, pt)
		if boundary {
			return true
		}
		k += crossings
	}
	return k%2 == 1
}

// loopCrossings counts how often the loop crosses the horizontal line
// through pt to the right of pt. It reports boundary == true when pt lies
// exactly on an edge or vertex of the loop, in which case the count is
// meaningless.
func loopCrossings(loop []Point, pt Point) (k int, boundary bool) {
	for i, a := range loop {
		b := loop[(i+1)%len(loop)]
		v1 := a.Y - pt.Y
		v2 := b.Y - pt.Y
		if (v1 < 0 && v2 < 0) || (v1 > 0 && v2 > 0) {
			// The edge lies strictly on one side of the line.
			continue
		}
		u1 := a.X - pt.X
		u2 := b.X - pt.X
		f := u1*v2 - u2*v1
		switch {
		case v2 > 0 && v1 <= 0:
			// Upward crossing.
			if f > 0 {
				k++
			} else if f == 0 {
				return 0, true
			}
		case v1 > 0 && v2 <= 0:
			// Downward crossing.
			if f < 0 {
				k++
			} else if f == 0 {
				return 0, true
			}
		case v2 == 0 && v1 < 0:
			// Edge ends on the line.
			if f == 0 {
				return 0, true
			}
		case v1 == 0 && v2 < 0:
			// Edge starts on the line.
			if f == 0 {
				return 0, true
			}
		case v1 == 0 && v2 == 0:
			// Horizontal edge on the line.
			if (u2 <= 0 && u1 >= 0) || (u1 <= 0 && u2 >= 0) {
				return 0, true
			}
		}
	}
	return k, false
}

// mapLoops applies f to every vertex and re-establishes the winding
// invariant, which an orientation-reversing f would otherwise break.
func (p Polygon) mapLoops(f func(Point) Point) Polygon {
	outer := make([]Point, len(p.outer))
	for i, pt := range p.outer {
		outer[i] = f(pt)
	}
	inner := make([][]Point, len(p.inner))
	for j, loop := range p.inner {
		inner[j] = make([]Point, len(loop))
		for i, pt := range loop {
			inner[j][i] = f(pt)
		}
		inner[j] = makeInnerLoop(inner[j])
	}
	return Polygon{outer: makeOuterLoop(outer), inner: inner}
}

// TranslateBy returns the polygon translated by v.
func (p Polygon) TranslateBy(v Vec2) Polygon {
	return p.mapLoops(func(pt Point) Point { return pt.Translate(v) })
}

// RotateAround returns the polygon rotated by th radians around center.
func (p Polygon) RotateAround(center Point, th float64) Polygon {
	return p.mapLoops(func(pt Point) Point { return pt.RotateAround(center, th) })
}

// ScaleAbout returns the polygon scaled by f about center. A negative
// factor is a point reflection, which keeps loop orientation.
func (p Polygon) ScaleAbout(center Point, f float64) Polygon {
	return p.mapLoops(func(pt Point) Point { return pt.ScaleAbout(center, f) })
}

// MirrorAcross returns the polygon mirrored across the axis. Mirroring
// reverses loop orientation; the winding invariant is restored.
func (p Polygon) MirrorAcross(axis Axis) Polygon {
	return p.mapLoops(func(pt Point) Point { return pt.MirrorAcross(axis) })
}

// Transform returns the polygon with the affine transform applied to every
// vertex. If the transform reverses orientation, the winding invariant is
// restored.
func (p Polygon) Transform(aff Affine) Polygon {
	return p.mapLoops(func(pt Point) Point { return pt.Transform(aff) })
}

// RelativeTo expresses the polygon in the local coordinates of frame.
func (p Polygon) RelativeTo(frame Frame) Polygon {
	return p.mapLoops(func(pt Point) Point { return pt.RelativeTo(frame) })
}

// PlaceIn converts the polygon from the local coordinates of frame to
// global coordinates.
func (p Polygon) PlaceIn(frame Frame) Polygon {
	return p.mapLoops(func(pt Point) Point { return pt.PlaceIn(frame) })
}
