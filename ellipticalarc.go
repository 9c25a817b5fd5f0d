package geom

import "math"

var _ Curve = EllipticalArc{}
var _ NondegenerateCurve = NondegenerateEllipticalArc{}

// EllipticalArc is an arc of an axis-aligned ellipse that has been rotated
// by XRotation radians around its center. The arc starts at eccentric
// anomaly StartAngle and sweeps by SweepAngle; a negative sweep traverses
// the ellipse clockwise.
type EllipticalArc struct {
	Center     Point
	Radii      Vec2
	XRotation  float64
	StartAngle float64
	SweepAngle float64
}

// Elliptical converts the circular arc to an equivalent elliptical arc.
func (a Arc) Elliptical() EllipticalArc {
	return EllipticalArc{
		Center:     a.Center,
		Radii:      Vec2{a.Radius, a.Radius},
		StartAngle: a.StartAngle,
		SweepAngle: a.SweepAngle,
	}
}

func (a EllipticalArc) angle(t float64) float64 {
	return a.StartAngle + t*a.SweepAngle
}

// sample returns the point at eccentric anomaly th, relative to the center.
func (a EllipticalArc) sample(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{a.Radii.X * cos, a.Radii.Y * sin}.Rotate(a.XRotation)
}

func (a EllipticalArc) Eval(t float64) Point {
	return a.Center.Translate(a.sample(a.angle(t)))
}

// FirstDerivative evaluates the first derivative at parameter t.
func (a EllipticalArc) FirstDerivative(t float64) Vec2 {
	sin, cos := math.Sincos(a.angle(t))
	return Vec2{-a.Radii.X * sin, a.Radii.Y * cos}.Rotate(a.XRotation).Mul(a.SweepAngle)
}

// SecondDerivative evaluates the second derivative at parameter t.
func (a EllipticalArc) SecondDerivative(t float64) Vec2 {
	return a.sample(a.angle(t)).Mul(-a.SweepAngle * a.SweepAngle)
}

func (a EllipticalArc) Start() Point {
	return a.Eval(0)
}

func (a EllipticalArc) End() Point {
	return a.Eval(1)
}

// Arclen returns the length of the arc to within the requested accuracy. The
// circumference of an ellipse has no closed form, so the derivative
// magnitude is integrated by adaptive Gauss-Legendre quadrature.
func (a EllipticalArc) Arclen(accuracy float64) float64 {
	return a.arclenRec(0, 1, accuracy, 0)
}

func (a EllipticalArc) arclenRec(t0, t1, accuracy float64, depth int) float64 {
	speed := func(t float64) float64 { return a.FirstDerivative(t).Hypot() }
	quad := func(lo, hi float64) float64 {
		var sum float64
		c := 0.5 * (hi + lo)
		h := 0.5 * (hi - lo)
		for _, wx := range gaussLegendreCoeffs8 {
			sum += wx[0] * speed(c+h*wx[1])
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
func (a EllipticalArc) Reverse() EllipticalArc {
	a.StartAngle += a.SweepAngle
	a.SweepAngle = -a.SweepAngle
	return a
}

// Split splits the arc at parameter t. The two results share the split
// point as a common endpoint.
func (a EllipticalArc) Split(t float64) (EllipticalArc, EllipticalArc) {
	left := a
	left.SweepAngle = t * a.SweepAngle
	right := a
	right.StartAngle = a.angle(t)
	right.SweepAngle = (1 - t) * a.SweepAngle
	return left, right
}

// Subdivide subdivides the arc into halves.
func (a EllipticalArc) Subdivide() (EllipticalArc, EllipticalArc) {
	return a.Split(0.5)
}

// Subsegment returns the portion of the arc between parameters t0 and t1,
// reparameterized to [0, 1].
func (a EllipticalArc) Subsegment(t0, t1 float64) EllipticalArc {
	a.StartAngle, a.SweepAngle = a.angle(t0), (t1-t0)*a.SweepAngle
	return a
}

// TranslateBy returns the arc translated by v.
func (a EllipticalArc) TranslateBy(v Vec2) EllipticalArc {
	a.Center = a.Center.Translate(v)
	return a
}

// RotateAround returns the arc rotated by th radians around center.
func (a EllipticalArc) RotateAround(center Point, th float64) EllipticalArc {
	a.Center = a.Center.RotateAround(center, th)
	a.XRotation += th
	return a
}

// ScaleAbout returns the arc scaled by f about center. A negative factor is
// a point reflection, which preserves sweep orientation.
func (a EllipticalArc) ScaleAbout(center Point, f float64) EllipticalArc {
	a.Center = a.Center.ScaleAbout(center, f)
	a.Radii = a.Radii.Mul(math.Abs(f))
	if f < 0 {
		a.XRotation += math.Pi
	}
	return a
}

// MirrorAcross returns the arc mirrored across the axis. Mirroring reverses
// the sweep orientation.
func (a EllipticalArc) MirrorAcross(axis Axis) EllipticalArc {
	alpha := axis.Direction.Angle()
	return EllipticalArc{
		Center:     a.Center.MirrorAcross(axis),
		Radii:      a.Radii,
		XRotation:  2*alpha - a.XRotation,
		StartAngle: -a.StartAngle,
		SweepAngle: -a.SweepAngle,
	}
}

// RelativeTo expresses the arc in the local coordinates of frame. A
// left-handed frame reverses the sweep orientation.
func (a EllipticalArc) RelativeTo(frame Frame) EllipticalArc {
	out := a
	out.Center = a.Center.RelativeTo(frame)
	if frame.IsRightHanded() {
		out.XRotation = a.XRotation - frame.Angle()
	} else {
		out.XRotation = frame.Angle() - a.XRotation
		out.StartAngle = -a.StartAngle
		out.SweepAngle = -a.SweepAngle
	}
	return out
}

// PlaceIn converts the arc from the local coordinates of frame to global
// coordinates.
func (a EllipticalArc) PlaceIn(frame Frame) EllipticalArc {
	out := a
	out.Center = a.Center.PlaceIn(frame)
	if frame.IsRightHanded() {
		out.XRotation = a.XRotation + frame.Angle()
	} else {
		out.XRotation = frame.Angle() - a.XRotation
		out.StartAngle = -a.StartAngle
		out.SweepAngle = -a.SweepAngle
	}
	return out
}

// NondegenerateEllipticalArc is an elliptical arc that has been proven to
// have nonzero length.
type NondegenerateEllipticalArc struct {
	EllipticalArc
}

// Nondegenerate proves that the arc has nonzero length. An arc with zero
// sweep or with both radii zero collapses to a single point and yields a
// [DegenerateCurveError] carrying that point.
func (a EllipticalArc) Nondegenerate() (NondegenerateEllipticalArc, error) {
	if a.SweepAngle == 0 || (a.Radii.X == 0 && a.Radii.Y == 0) {
		return NondegenerateEllipticalArc{}, DegenerateCurveError{a.Eval(0)}
	}
	return NondegenerateEllipticalArc{a}, nil
}

// TangentDirection returns the tangent direction at parameter t. If one of
// the radii is zero the arc degenerates to a line segment with cusps where
// the first derivative vanishes; there the direction of the second
// derivative is used, negated at t == 1 so that the direction always points
// along increasing t on the incoming side.
func (a NondegenerateEllipticalArc) TangentDirection(t float64) Direction {
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
func (a NondegenerateEllipticalArc) MaxSecondDerivativeMagnitude() float64 {
	return math.Max(a.Radii.X, a.Radii.Y) * a.SweepAngle * a.SweepAngle
}
