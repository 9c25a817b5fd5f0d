package geom

import (
	"cmp"
	"slices"
)

// ConvexHull returns the convex hull of the points, as a polygon whose
// outer loop visits the hull vertices in counterclockwise order. Duplicate
// points and points in the interior of a hull edge are excluded, so every
// vertex of the result is a strict corner. Fewer than three distinct,
// non-collinear input points yield a degenerate polygon with fewer than
// three vertices.
//
// This is Andrew's monotone chain algorithm: the points are sorted by (x, y)
// and the lower and upper hull chains are built independently, popping
// accepted points while the turn to the next candidate is not strictly
// counterclockwise. O(n log n).
func ConvexHull(points []Point) Polygon {
	pts := slices.Clone(points)
	slices.SortFunc(pts, func(a, b Point) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	pts = slices.Compact(pts)
	if len(pts) <= 2 {
		return Polygon{outer: pts}
	}

	var hull []Point
	grow := func(pt Point, base int) {
		for len(hull) >= base+2 {
			o, a := hull[len(hull)-2], hull[len(hull)-1]
			if a.Sub(o).Cross(pt.Sub(o)) > 0 {
				break
			}
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	// Lower chain, left to right.
	for _, pt := range pts {
		grow(pt, 0)
	}
	// Upper chain, right to left. The rightmost point is already on the
	// lower chain; the leftmost closes the loop and is dropped at the end.
	base := len(hull) - 1
	for i := len(pts) - 2; i >= 0; i-- {
		grow(pts[i], base)
	}
	return Polygon{outer: hull[:len(hull)-1]}
}
