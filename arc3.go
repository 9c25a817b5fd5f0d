package geom

import "math"

var _ SpaceCurve = Arc3{}
var _ NondegenerateSpaceCurve = NondegenerateArc3{}

// Arc3 is a circular arc in 3D. The arc lies in the xy plane of its frame,
// centered on the frame's origin; StartAngle and SweepAngle are measured in
// that plane, from the frame's x direction towards its y direction.
type Arc3 struct {
	Frame      Frame3
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// Arc3ThroughPoints returns the arc that starts at p1, passes through p2,
// and ends at p3. The arc's frame normal follows the p1, p2, p3 orientation.
// Returns [ErrCollinearPoints] if the three points are collinear.
func Arc3ThroughPoints(p1, p2, p3 Point3) (Arc3, error) {
	normal, err := p2.Sub(p1).Cross(p3.Sub(p1)).Direction()
	if err != nil {
		return Arc3{}, ErrCollinearPoints
	}
	x, err := p2.Sub(p1).Direction()
	if err != nil {
		return Arc3{}, ErrCollinearPoints
	}
	y, _ := normal.Cross(x).Direction()
	plane := Frame3{p1, x, y, normal}

	flatten := func(pt Point3) Point {
		rel := pt.RelativeTo(plane)
		return Point{rel.X, rel.Y}
	}
	flat, err := ArcThroughPoints(flatten(p1), flatten(p2), flatten(p3))
	if err != nil {
		return Arc3{}, err
	}
	center := Pt3(flat.Center.X, flat.Center.Y, 0).PlaceIn(plane)
	return Arc3{
		Frame:      Frame3{center, x, y, normal},
		Radius:     flat.Radius,
		StartAngle: flat.StartAngle,
		SweepAngle: flat.SweepAngle,
	}, nil
}

func (a Arc3) angle(t float64) float64 {
	return a.StartAngle + t*a.SweepAngle
}

// radial returns the in-plane unit offset at angle th, scaled by f.
func (a Arc3) radial(th, f float64) Vec3 {
	sin, cos := math.Sincos(th)
	return a.Frame.XDirection.Vec().Mul(f * cos).
		Add(a.Frame.YDirection.Vec().Mul(f * sin))
}

func (a Arc3) Eval(t float64) Point3 {
	return a.Frame.Origin.Translate(a.radial(a.angle(t), a.Radius))
}

// FirstDerivative evaluates the first derivative at parameter t.
func (a Arc3) FirstDerivative(t float64) Vec3 {
	sin, cos := math.Sincos(a.angle(t))
	return a.Frame.XDirection.Vec().Mul(-sin).
		Add(a.Frame.YDirection.Vec().Mul(cos)).
		Mul(a.Radius * a.SweepAngle)
}

// SecondDerivative evaluates the second derivative at parameter t.
func (a Arc3) SecondDerivative(t float64) Vec3 {
	return a.radial(a.angle(t), -a.Radius*a.SweepAngle*a.SweepAngle)
}

func (a Arc3) Start() Point3 {
	return a.Eval(0)
}

func (a Arc3) End() Point3 {
	return a.Eval(1)
}

// ArcLength returns the exact length of the arc.
func (a Arc3) ArcLength() float64 {
	return math.Abs(a.Radius * a.SweepAngle)
}

// Reverse returns the arc traversed in the opposite direction, so that
// Reverse().Eval(t) == Eval(1−t) exactly.
func (a Arc3) Reverse() Arc3 {
	a.StartAngle += a.SweepAngle
	a.SweepAngle = -a.SweepAngle
	return a
}

// Split splits the arc at parameter t. The two results share the split
// point as a common endpoint.
func (a Arc3) Split(t float64) (Arc3, Arc3) {
	left := a
	left.SweepAngle = t * a.SweepAngle
	right := a
	right.StartAngle = a.angle(t)
	right.SweepAngle = (1 - t) * a.SweepAngle
	return left, right
}

// Subdivide subdivides the arc into halves.
func (a Arc3) Subdivide() (Arc3, Arc3) {
	return a.Split(0.5)
}

// Subsegment returns the portion of the arc between parameters t0 and t1,
// reparameterized to [0, 1].
func (a Arc3) Subsegment(t0, t1 float64) Arc3 {
	a.StartAngle, a.SweepAngle = a.angle(t0), (t1-t0)*a.SweepAngle
	return a
}

// TranslateBy returns the arc translated by v.
func (a Arc3) TranslateBy(v Vec3) Arc3 {
	a.Frame = a.Frame.TranslateBy(v)
	return a
}

// RotateAround returns the arc rotated by th radians around the axis.
func (a Arc3) RotateAround(axis Axis3, th float64) Arc3 {
	a.Frame = a.Frame.RotateAround(axis, th)
	return a
}

// ScaleAbout returns the arc scaled by f about center. A negative factor is
// a point reflection, realized by negating the frame's basis.
func (a Arc3) ScaleAbout(center Point3, f float64) Arc3 {
	frame := Frame3{
		Origin:     a.Frame.Origin.ScaleAbout(center, f),
		XDirection: a.Frame.XDirection,
		YDirection: a.Frame.YDirection,
		ZDirection: a.Frame.ZDirection,
	}
	if f < 0 {
		frame.XDirection = frame.XDirection.Negate()
		frame.YDirection = frame.YDirection.Negate()
		frame.ZDirection = frame.ZDirection.Negate()
	}
	a.Frame = frame
	a.Radius *= math.Abs(f)
	return a
}

// MirrorAcross returns the arc mirrored across the plane. The mirrored frame
// carries the orientation reversal, so the angle range is unchanged.
func (a Arc3) MirrorAcross(plane Plane3) Arc3 {
	a.Frame = a.Frame.MirrorAcross(plane)
	return a
}

// RelativeTo expresses the arc in the local coordinates of frame.
func (a Arc3) RelativeTo(frame Frame3) Arc3 {
	a.Frame = a.Frame.RelativeTo(frame)
	return a
}

// PlaceIn converts the arc from the local coordinates of frame to global
// coordinates.
func (a Arc3) PlaceIn(frame Frame3) Arc3 {
	a.Frame = a.Frame.PlaceIn(frame)
	return a
}

// NondegenerateArc3 is an arc in 3D that has been proven to have nonzero
// length.
type NondegenerateArc3 struct {
	Arc3
}

// Nondegenerate proves that the arc has nonzero length. An arc with zero
// radius or zero sweep collapses to a single point and yields a
// [DegenerateCurve3Error] carrying that point.
func (a Arc3) Nondegenerate() (NondegenerateArc3, error) {
	if a.Radius == 0 || a.SweepAngle == 0 {
		return NondegenerateArc3{}, DegenerateCurve3Error{a.Eval(0)}
	}
	return NondegenerateArc3{a}, nil
}

// TangentDirection returns the tangent direction at parameter t. The first
// derivative of a nondegenerate arc never vanishes.
func (a NondegenerateArc3) TangentDirection(t float64) Direction3 {
	dir, _ := a.FirstDerivative(t).Direction()
	return dir
}

// MaxSecondDerivativeMagnitude returns the magnitude of the second
// derivative, which is constant for a circular arc.
func (a NondegenerateArc3) MaxSecondDerivativeMagnitude() float64 {
	return math.Abs(a.Radius) * a.SweepAngle * a.SweepAngle
}
