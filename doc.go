// Package geom provides immutable value types for 2D and 3D geometry:
// points, vectors, directions, axes, planes, frames, curves, and polygons,
// together with the operations a CAD or vector-graphics kernel needs over
// them.
//
// # Values and transformations
//
// Every type in this package is an immutable value. Transformations such as
// [QuadBez.RotateAround] or [Polygon.MirrorAcross] return new values and
// never mutate their receiver. Because there is no shared mutable state, all
// values are safe for concurrent use.
//
// # Curves
//
// The curve types are circular arcs ([Arc], [Arc3]), elliptical arcs
// ([EllipticalArc], [EllipticalArc3]), and quadratic and cubic Bézier
// segments ([QuadBez], [QuadBez3], [CubicBez], [CubicBez3]). All of them can
// be evaluated at a parameter t, differentiated, reversed, split, and
// transformed, with evaluation commuting with transformation.
//
// A curve that provably has nonzero length can be converted to its
// nondegenerate form (for example [QuadBez.Nondegenerate]), which has a
// well-defined tangent direction everywhere, including at cusps where the
// first derivative vanishes. Nondegenerate curves can in turn be parameterized
// by arc length (see [Parameterize]), giving accurate length-based queries
// such as [ArcLengthParameterized.PointAlong].
//
// # Polygons
//
// [Polygon] represents a polygon with optional holes. Construction enforces
// counterclockwise outer loops and clockwise holes, regardless of input
// winding. Polygons support robust point containment (boundary points count
// as contained), convex hulls ([ConvexHull]), and triangulation into an
// indexed [TriangularMesh] via y-monotone decomposition.
//
// # Errors
//
// Fallible constructions return explicit errors rather than panicking:
// [DegenerateCurveError] for curves that collapse to a point,
// [ErrCollinearPoints], [ErrZeroVector], and [ErrNoSolution] for geometric
// constructions without a solution.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [Computational Geometry: Algorithms and Applications] by de Berg et al. (monotone decomposition)
//   - [Optimal Reliable Point-in-Polygon Test] by Hao et al.
//   - Andrew's monotone chain convex hull algorithm
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [Computational Geometry: Algorithms and Applications]: https://www.cs.uu.nl/geobook/
// [Optimal Reliable Point-in-Polygon Test]: https://www.mdpi.com/2073-8994/10/10/477
package geom
