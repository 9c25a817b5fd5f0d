package geom

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// RotateAround returns the point rotated by th radians around center.
func (pt Point) RotateAround(center Point, th float64) Point {
	return center.Translate(pt.Sub(center).Rotate(th))
}

// ScaleAbout returns the point scaled by f about center. Negative factors
// reflect through the center.
func (pt Point) ScaleAbout(center Point, f float64) Point {
	return center.Translate(pt.Sub(center).Mul(f))
}

// MirrorAcross returns the point mirrored across the axis.
func (pt Point) MirrorAcross(axis Axis) Point {
	d := axis.Direction.Vec()
	v := pt.Sub(axis.Origin)
	along := d.Mul(v.Dot(d))
	// v = along + perp; the mirror image is along − perp.
	return axis.Origin.Translate(along.Mul(2).Sub(v))
}

// RelativeTo expresses the point in the local coordinates of frame.
func (pt Point) RelativeTo(frame Frame) Point {
	v := pt.Sub(frame.Origin)
	return Point{
		X: v.Dot(frame.XDirection.Vec()),
		Y: v.Dot(frame.YDirection.Vec()),
	}
}

// PlaceIn converts the point from the local coordinates of frame to global
// coordinates.
func (pt Point) PlaceIn(frame Frame) Point {
	return frame.Origin.
		Translate(frame.XDirection.Vec().Mul(pt.X)).
		Translate(frame.YDirection.Vec().Mul(pt.Y))
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
