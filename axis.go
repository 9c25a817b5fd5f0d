package geom

// Axis is a 2D axis: an origin point and a direction. Axes serve as mirror
// lines and as the defining elements of frames.
type Axis struct {
	Origin    Point
	Direction Direction
}

// XAxis is the global x axis.
var XAxis = Axis{Point{}, PositiveX}

// YAxis is the global y axis.
var YAxis = Axis{Point{}, PositiveY}

// AxisThrough returns the axis through origin with the given direction.
func AxisThrough(origin Point, direction Direction) Axis {
	return Axis{origin, direction}
}

// Reverse returns the axis with its direction flipped.
func (a Axis) Reverse() Axis {
	return Axis{a.Origin, a.Direction.Negate()}
}

// TranslateBy returns the axis translated by v.
func (a Axis) TranslateBy(v Vec2) Axis {
	return Axis{a.Origin.Translate(v), a.Direction}
}

// RotateAround returns the axis rotated by th radians around center.
func (a Axis) RotateAround(center Point, th float64) Axis {
	return Axis{a.Origin.RotateAround(center, th), a.Direction.Rotate(th)}
}

// Axis3 is a 3D axis: an origin point and a direction. Axes serve as
// rotation axes.
type Axis3 struct {
	Origin    Point3
	Direction Direction3
}

// Global coordinate axes.
var (
	XAxis3 = Axis3{Point3{}, PositiveX3}
	YAxis3 = Axis3{Point3{}, PositiveY3}
	ZAxis3 = Axis3{Point3{}, PositiveZ3}
)

// Axis3Through returns the axis through origin with the given direction.
func Axis3Through(origin Point3, direction Direction3) Axis3 {
	return Axis3{origin, direction}
}

// Reverse returns the axis with its direction flipped.
func (a Axis3) Reverse() Axis3 {
	return Axis3{a.Origin, a.Direction.Negate()}
}

// TranslateBy returns the axis translated by v.
func (a Axis3) TranslateBy(v Vec3) Axis3 {
	return Axis3{a.Origin.Translate(v), a.Direction}
}
