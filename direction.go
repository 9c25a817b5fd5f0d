package geom

import "math"

// Direction is a unit vector in 2D. The zero value is invalid; directions
// are obtained from [Vec2.Direction], [DirectionFromAngle], or the predefined
// axis directions.
type Direction struct {
	x, y float64
}

// Predefined axis directions.
var (
	PositiveX = Direction{1, 0}
	PositiveY = Direction{0, 1}
	NegativeX = Direction{-1, 0}
	NegativeY = Direction{0, -1}
)

// Direction returns the direction of the vector, or [ErrZeroVector] if the
// vector has zero magnitude.
func (v Vec2) Direction() (Direction, error) {
	h := v.Hypot()
	if h == 0 {
		return Direction{}, ErrZeroVector
	}
	return Direction{v.X / h, v.Y / h}, nil
}

// DirectionFromAngle returns the direction at the given angle in radians,
// measured counterclockwise from the positive x direction.
func DirectionFromAngle(th float64) Direction {
	y, x := math.Sincos(th)
	return Direction{x, y}
}

// Vec returns the direction as a unit vector.
func (d Direction) Vec() Vec2 {
	return Vec2{d.x, d.y}
}

func (d Direction) String() string {
	return d.Vec().String()
}

// Angle returns the direction's angle in radians, in (−π, π].
func (d Direction) Angle() float64 {
	return math.Atan2(d.y, d.x)
}

// Dot returns the dot product of two directions, which is the cosine of the
// angle between them.
func (d Direction) Dot(o Direction) float64 {
	return d.x*o.x + d.y*o.y
}

// Cross returns the cross product of two directions, which is the sine of
// the angle from d to o.
func (d Direction) Cross(o Direction) float64 {
	return d.x*o.y - d.y*o.x
}

// Rotate returns the direction rotated counterclockwise by th radians.
func (d Direction) Rotate(th float64) Direction {
	sin, cos := math.Sincos(th)
	return Direction{
		x: d.x*cos - d.y*sin,
		y: d.x*sin + d.y*cos,
	}
}

// Perp returns the direction rotated counterclockwise by 90 degrees.
func (d Direction) Perp() Direction {
	return Direction{-d.y, d.x}
}

// Negate returns the opposite direction.
func (d Direction) Negate() Direction {
	return Direction{-d.x, -d.y}
}

// Mirror returns the direction mirrored across the axis. Only the axis
// direction matters; its origin is irrelevant to directions.
func (d Direction) Mirror(axis Axis) Direction {
	a := axis.Direction
	dot := d.x*a.x + d.y*a.y
	return Direction{
		x: 2*dot*a.x - d.x,
		y: 2*dot*a.y - d.y,
	}
}

// RelativeTo expresses the direction in the local coordinates of frame.
func (d Direction) RelativeTo(frame Frame) Direction {
	v := d.Vec()
	return Direction{
		x: v.Dot(frame.XDirection.Vec()),
		y: v.Dot(frame.YDirection.Vec()),
	}
}

// PlaceIn converts the direction from the local coordinates of frame to
// global coordinates.
func (d Direction) PlaceIn(frame Frame) Direction {
	v := frame.XDirection.Vec().Mul(d.x).Add(frame.YDirection.Vec().Mul(d.y))
	return Direction{v.X, v.Y}
}

// Direction3 is a unit vector in 3D. The zero value is invalid; directions
// are obtained from [Vec3.Direction] or the predefined axis directions.
type Direction3 struct {
	x, y, z float64
}

// Predefined axis directions.
var (
	PositiveX3 = Direction3{1, 0, 0}
	PositiveY3 = Direction3{0, 1, 0}
	PositiveZ3 = Direction3{0, 0, 1}
	NegativeX3 = Direction3{-1, 0, 0}
	NegativeY3 = Direction3{0, -1, 0}
	NegativeZ3 = Direction3{0, 0, -1}
)

// Direction returns the direction of the vector, or [ErrZeroVector] if the
// vector has zero magnitude.
func (v Vec3) Direction() (Direction3, error) {
	h := v.Hypot()
	if h == 0 {
		return Direction3{}, ErrZeroVector
	}
	return Direction3{v.X / h, v.Y / h, v.Z / h}, nil
}

// Vec returns the direction as a unit vector.
func (d Direction3) Vec() Vec3 {
	return Vec3{d.x, d.y, d.z}
}

func (d Direction3) String() string {
	return d.Vec().String()
}

// Dot returns the dot product of two directions.
func (d Direction3) Dot(o Direction3) float64 {
	return d.x*o.x + d.y*o.y + d.z*o.z
}

// Cross returns the cross product of two directions. The result is not
// necessarily a unit vector; it is zero for parallel directions.
func (d Direction3) Cross(o Direction3) Vec3 {
	return d.Vec().Cross(o.Vec())
}

// Negate returns the opposite direction.
func (d Direction3) Negate() Direction3 {
	return Direction3{-d.x, -d.y, -d.z}
}

// RotateAround returns the direction rotated by th radians around the axis
// direction, using the right-hand rule.
func (d Direction3) RotateAround(axis Direction3, th float64) Direction3 {
	v := d.Vec().RotateAround(axis, th)
	return Direction3{v.X, v.Y, v.Z}
}

// Mirror returns the direction mirrored across the plane. Only the plane
// normal matters; its origin is irrelevant to directions.
func (d Direction3) Mirror(plane Plane3) Direction3 {
	n := plane.Normal
	dot := d.x*n.x + d.y*n.y + d.z*n.z
	return Direction3{
		x: d.x - 2*dot*n.x,
		y: d.y - 2*dot*n.y,
		z: d.z - 2*dot*n.z,
	}
}

// RelativeTo expresses the direction in the local coordinates of frame.
func (d Direction3) RelativeTo(frame Frame3) Direction3 {
	v := d.Vec()
	return Direction3{
		x: v.Dot(frame.XDirection.Vec()),
		y: v.Dot(frame.YDirection.Vec()),
		z: v.Dot(frame.ZDirection.Vec()),
	}
}

// PlaceIn converts the direction from the local coordinates of frame to
// global coordinates.
func (d Direction3) PlaceIn(frame Frame3) Direction3 {
	v := frame.XDirection.Vec().Mul(d.x).
		Add(frame.YDirection.Vec().Mul(d.y)).
		Add(frame.ZDirection.Vec().Mul(d.z))
	return Direction3{v.X, v.Y, v.Z}
}
