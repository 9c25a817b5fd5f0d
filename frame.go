package geom

// Frame is a 2D coordinate frame: an origin and a pair of orthonormal basis
// directions. Frames define local coordinate systems for the RelativeTo and
// PlaceIn conversions on points, vectors, directions, and curves.
//
// The basis directions are assumed orthonormal; constructors enforce this.
// A frame whose y direction is the x direction rotated by −90 degrees is
// left-handed and reverses orientation.
type Frame struct {
	Origin     Point
	XDirection Direction
	YDirection Direction
}

// GlobalFrame is the frame of the global coordinate system.
var GlobalFrame = Frame{Point{}, PositiveX, PositiveY}

// FrameAt returns a frame with the given origin and the global axis
// directions.
func FrameAt(origin Point) Frame {
	return Frame{origin, PositiveX, PositiveY}
}

// FrameWithXDirection returns a right-handed frame with the given origin and
// x direction.
func FrameWithXDirection(origin Point, x Direction) Frame {
	return Frame{origin, x, x.Perp()}
}

// IsRightHanded reports whether the frame preserves orientation.
func (f Frame) IsRightHanded() bool {
	return f.XDirection.Cross(f.YDirection) > 0
}

// Angle returns the angle of the frame's x direction, in radians.
func (f Frame) Angle() float64 {
	return f.XDirection.Angle()
}

// TranslateBy returns the frame translated by v.
func (f Frame) TranslateBy(v Vec2) Frame {
	return Frame{f.Origin.Translate(v), f.XDirection, f.YDirection}
}

// RotateAround returns the frame rotated by th radians around center.
func (f Frame) RotateAround(center Point, th float64) Frame {
	return Frame{
		Origin:     f.Origin.RotateAround(center, th),
		XDirection: f.XDirection.Rotate(th),
		YDirection: f.YDirection.Rotate(th),
	}
}

// MirrorAcross returns the frame mirrored across the axis. The result is
// left-handed if f is right-handed, and vice versa.
func (f Frame) MirrorAcross(axis Axis) Frame {
	return Frame{
		Origin:     f.Origin.MirrorAcross(axis),
		XDirection: f.XDirection.Mirror(axis),
		YDirection: f.YDirection.Mirror(axis),
	}
}

// ToGlobal returns the affine transform mapping local coordinates of f to
// global coordinates.
func (f Frame) ToGlobal() Affine {
	x := f.XDirection.Vec()
	y := f.YDirection.Vec()
	return Affine{x.X, x.Y, y.X, y.Y, f.Origin.X, f.Origin.Y}
}

// FromGlobal returns the affine transform mapping global coordinates to
// local coordinates of f.
func (f Frame) FromGlobal() Affine {
	return f.ToGlobal().Invert()
}

// Frame3 is a 3D coordinate frame: an origin and three orthonormal basis
// directions.
type Frame3 struct {
	Origin     Point3
	XDirection Direction3
	YDirection Direction3
	ZDirection Direction3
}

// GlobalFrame3 is the frame of the global coordinate system.
var GlobalFrame3 = Frame3{Point3{}, PositiveX3, PositiveY3, PositiveZ3}

// Frame3At returns a frame with the given origin and the global axis
// directions.
func Frame3At(origin Point3) Frame3 {
	return Frame3{origin, PositiveX3, PositiveY3, PositiveZ3}
}

// IsRightHanded reports whether the frame preserves orientation.
func (f Frame3) IsRightHanded() bool {
	return f.XDirection.Cross(f.YDirection).Dot(f.ZDirection.Vec()) > 0
}

// TranslateBy returns the frame translated by v.
func (f Frame3) TranslateBy(v Vec3) Frame3 {
	return Frame3{f.Origin.Translate(v), f.XDirection, f.YDirection, f.ZDirection}
}

// RotateAround returns the frame rotated by th radians around the axis.
func (f Frame3) RotateAround(axis Axis3, th float64) Frame3 {
	return Frame3{
		Origin:     f.Origin.RotateAround(axis, th),
		XDirection: f.XDirection.RotateAround(axis.Direction, th),
		YDirection: f.YDirection.RotateAround(axis.Direction, th),
		ZDirection: f.ZDirection.RotateAround(axis.Direction, th),
	}
}

// MirrorAcross returns the frame mirrored across the plane. The result is
// left-handed if f is right-handed, and vice versa.
func (f Frame3) MirrorAcross(plane Plane3) Frame3 {
	return Frame3{
		Origin:     f.Origin.MirrorAcross(plane),
		XDirection: f.XDirection.Mirror(plane),
		YDirection: f.YDirection.Mirror(plane),
		ZDirection: f.ZDirection.Mirror(plane),
	}
}

// RelativeTo expresses the frame in the local coordinates of other.
func (f Frame3) RelativeTo(other Frame3) Frame3 {
	return Frame3{
		Origin:     f.Origin.RelativeTo(other),
		XDirection: f.XDirection.RelativeTo(other),
		YDirection: f.YDirection.RelativeTo(other),
		ZDirection: f.ZDirection.RelativeTo(other),
	}
}

// PlaceIn converts the frame from the local coordinates of other to global
// coordinates.
func (f Frame3) PlaceIn(other Frame3) Frame3 {
	return Frame3{
		Origin:     f.Origin.PlaceIn(other),
		XDirection: f.XDirection.PlaceIn(other),
		YDirection: f.YDirection.PlaceIn(other),
		ZDirection: f.ZDirection.PlaceIn(other),
	}
}
