package geom

import (
	"fmt"
	"math"
)

type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (pt Point3) Splat() (float64, float64, float64) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

func (pt Point3) Translate(o Vec3) Point3 {
	return Point3{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
	}
}

// Sub computes pt−o.
func (pt Point3) Sub(o Point3) Vec3 {
	return Vec3{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point3) Lerp(o Point3, t float64) Point3 {
	return Point3(Vec3(pt).Lerp(Vec3(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point3) Midpoint(o Point3) Point3 {
	return Point3{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point3) Distance(o Point3) float64 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point3) DistanceSquared(o Point3) float64 {
	return pt.Sub(o).Hypot2()
}

// RotateAround returns the point rotated by th radians around the axis,
// using the right-hand rule.
func (pt Point3) RotateAround(axis Axis3, th float64) Point3 {
	return axis.Origin.Translate(pt.Sub(axis.Origin).RotateAround(axis.Direction, th))
}

// ScaleAbout returns the point scaled by f about center.
func (pt Point3) ScaleAbout(center Point3, f float64) Point3 {
	return center.Translate(pt.Sub(center).Mul(f))
}

// MirrorAcross returns the point mirrored across the plane.
func (pt Point3) MirrorAcross(plane Plane3) Point3 {
	n := plane.Normal.Vec()
	v := pt.Sub(plane.Origin)
	return pt.Translate(n.Mul(-2 * v.Dot(n)))
}

// RelativeTo expresses the point in the local coordinates of frame.
func (pt Point3) RelativeTo(frame Frame3) Point3 {
	v := pt.Sub(frame.Origin)
	return Point3{
		X: v.Dot(frame.XDirection.Vec()),
		Y: v.Dot(frame.YDirection.Vec()),
		Z: v.Dot(frame.ZDirection.Vec()),
	}
}

// PlaceIn converts the point from the local coordinates of frame to global
// coordinates.
func (pt Point3) PlaceIn(frame Frame3) Point3 {
	return frame.Origin.
		Translate(frame.XDirection.Vec().Mul(pt.X)).
		Translate(frame.YDirection.Vec().Mul(pt.Y)).
		Translate(frame.ZDirection.Vec().Mul(pt.Z))
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point3) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point3) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}
