package geom

import "math"

var _ SpaceCurve = EllipticalArc3{}
var _ NondegenerateSpaceCurve = NondegenerateEllipticalArc3{}

// EllipticalArc3 is an elliptical arc in 3D. The ellipse lies in the xy
// plane of its frame, centered on the frame's origin, with semi-axes Radii.X
// along the frame's x direction and Radii.Y along its y direction.
type EllipticalArc3 struct {
	Frame      Frame3
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
}

// Elliptical converts the circular arc to an equivalent elliptical arc.
func (a Arc3) Elliptical() EllipticalArc3 {
	return EllipticalArc3{
		Frame:      a.Frame,
		Radii:      Vec2{a.Radius, a.Radius},
		StartAngle: a.StartAngle,
		SweepAngle: a.SweepAngle,
	}
}

func (a EllipticalArc3) angle(t float64) float64 {
	return a.StartAngle + t*a.SweepAngle
}

// sample returns the point at eccentric anomaly th, relative to the frame
// origin.
func (a EllipticalArc3) sample(th float64) Vec3 {
	sin, cos := math.Sincos(th)
	return a.Frame.XDirection.Vec().Mul(a.Radii.X * cos).
		Add(a.Frame.YDirection.Vec().Mul(a.Radii.Y * sin))
}

func (a EllipticalArc3) Eval(t float64) Point3 {
	return a.Frame.Origin.Translate(a.sample(a.angle(t)))
}

// FirstDerivative evaluates the first derivative at parameter t.
func (a EllipticalArc3) FirstDerivative(t float64) Vec3 {
	sin, cos := math.Sincos(a.angle(t))
	return a.Frame.XDirection.Vec().Mul(-a.Radii.X * sin).
		Add(a.Frame.YDirection.Vec().Mul(a.Radii.Y * cos)).
		Mul(a.SweepAngle)
}

// SecondDerivative evaluates the second derivative at parameter t.
func (a EllipticalArc3) SecondDerivative(t float64) Vec3 {
	return a.sample(a.angle(t)).Mul(-a.SweepAngle * a.SweepAngle)
}

func (a EllipticalArc3) Start() Point3 {
	return a.Eval(0)
}

func (a EllipticalArc3) End() Point3 {
	return a.Eval(1)
}

// Arclen returns the length of the arc to within the requested accuracy,
// by adaptive Gauss-Legendre quadrature of the derivative magnitude.
func (a EllipticalArc3) Arclen(accuracy float64) float64 {
	return a.arclenRec(0, 1, accuracy, 0)
}

func (a EllipticalArc3) arclenRec(t0, t1, accuracy float64, depth int) float64 {
	quad := func(lo, hi float64) float64 {
		var sum float64
		c := 0.5 * (hi + lo)
		h := 0.5 * (hi - lo)
		for _, wx := range gaussLegendreCoeffs8 {
			sum += wx[0] * a.FirstDerivative(c+h*wx[1]).Hypot()
		}
		return sum * h
	}
	tm := 0.5 * (t0 + t1)
	whole := quad(t0, t1)
	halves := quad(t0, tm) + quad(tm, t1)
	if math.Abs(whole-halves) <= accuracy || depth >= 16 {
		return halves
	}
	return a.arclenRec(t0, tm, 0.5*accuracy, depth+1) +
		a.arclenRec(tm, t1, 0.5*accuracy, depth+1)
}

// Reverse returns the arc traversed in the opposite direction, so that
// Reverse().Eval(t) == Eval(1−t) exactly.
func (a EllipticalArc3) Reverse() EllipticalArc3 {
	a.StartAngle += a.SweepAngle
	a.SweepAngle = -a.SweepAngle
	return a
}

// Split splits the arc at parameter t. The two results share the split
// point as a common endpoint.
func (a EllipticalArc3) Split(t float64) (EllipticalArc3, EllipticalArc3) {
	left := a
	left.SweepAngle = t * a.SweepAngle
	right := a
	right.StartAngle = a.angle(t)
	right.SweepAngle = (1 - t) * a.SweepAngle
	return left, right
}

// Subdivide subdivides the arc into halves.
func (a EllipticalArc3) Subdivide() (EllipticalArc3, EllipticalArc3) {
	return a.Split(0.5)
}

// Subsegment returns the portion of the arc between parameters t0 and t1,
// reparameterized to [0, 1].
func (a EllipticalArc3) Subsegment(t0, t1 float64) EllipticalArc3 {
	a.StartAngle, a.SweepAngle = a.angle(t0), (t1-t0)*a.SweepAngle
	return a
}

// TranslateBy returns the arc translated by v.
func (a EllipticalArc3) TranslateBy(v Vec3) EllipticalArc3 {
	a.Frame = a.Frame.TranslateBy(v)
	return a
}

// RotateAround returns the arc rotated by th radians around the axis.
func (a EllipticalArc3) RotateAround(axis Axis3, th float64) EllipticalArc3 {
	a.Frame = a.Frame.RotateAround(axis, th)
	return a
}

// ScaleAbout returns the arc scaled by f about center. A negative factor is
// a point reflection, realized by negating the frame's basis.
func (a EllipticalArc3) ScaleAbout(center Point3, f float64) EllipticalArc3 {
	a.Frame.Origin = a.Frame.Origin.ScaleAbout(center, f)
	if f < 0 {
		a.Frame.XDirection = a.Frame.XDirection.Negate()
		a.Frame.YDirection = a.Frame.YDirection.Negate()
		a.Frame.ZDirection = a.Frame.ZDirection.Negate()
	}
	a.Radii = a.Radii.Mul(math.Abs(f))
	return a
}

// MirrorAcross returns the arc mirrored across the plane. The mirrored frame
// carries the orientation reversal, so the angle range is unchanged.
func (a EllipticalArc3) MirrorAcross(plane Plane3) EllipticalArc3 {
	a.Frame = a.Frame.MirrorAcross(plane)
	return a
}

// RelativeTo expresses the arc in the local coordinates of frame.
func (a EllipticalArc3) RelativeTo(frame Frame3) EllipticalArc3 {
	a.Frame = a.Frame.RelativeTo(frame)
	return a
}

// PlaceIn converts the arc from the local coordinates of frame to global
// coordinates.
func (a EllipticalArc3) PlaceIn(frame Frame3) EllipticalArc3 {
	a.Frame = a.Frame.PlaceIn(frame)
	return a
}

// NondegenerateEllipticalArc3 is an elliptical arc in 3D that has been
// proven to have nonzero length.
type NondegenerateEllipticalArc3 struct {
	EllipticalArc3
}

// Nondegenerate proves that the arc has nonzero length. An arc with zero
// sweep or with both radii zero collapses to a single point and yields a
// [DegenerateCurve3Error] carrying that point.
func (a EllipticalArc3) Nondegenerate() (NondegenerateEllipticalArc3, error) {
	if a.SweepAngle == 0 || (a.Radii.X == 0 && a.Radii.Y == 0) {
		return NondegenerateEllipticalArc3{}, DegenerateCurve3Error{a.Eval(0)}
	}
	return NondegenerateEllipticalArc3{a}, nil
}

// TangentDirection returns the tangent direction at parameter t. If one of
// the radii is zero the arc degenerates to a line segment with cusps where
// the first derivative vanishes; there the direction of the second
// derivative is used, negated at t == 1.
func (a NondegenerateEllipticalArc3) TangentDirection(t float64) Direction3 {
	if dir, err := a.FirstDerivative(t).Direction(); err == nil {
		return dir
	}
	dir, _ := a.SecondDerivative(t).Direction()
	if t == 1 {
		dir = dir.Negate()
	}
	return dir
}

// MaxSecondDerivativeMagnitude returns an upper bound on the magnitude of
// the second derivative over the arc.
func (a NondegenerateEllipticalArc3) MaxSecondDerivativeMagnitude() float64 {
	return math.Max(a.Radii.X, a.Radii.Y) * a.SweepAngle * a.SweepAngle
}
