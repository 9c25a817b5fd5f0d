package geom

import "math"

var _ Curve = Arc{}
var _ NondegenerateCurve = NondegenerateArc{}

// Arc is a circular arc defined by its center, radius, and angle range. The
// arc starts at angle StartAngle (radians, measured counterclockwise from
// the positive x direction) and sweeps by SweepAngle; a negative sweep
// traverses the circle clockwise.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// ArcFromEndpoints returns the minor arc from start to end with the given
// radius. A positive radius places the arc's center on the left of the chord
// and sweeps counterclockwise; a negative radius mirrors that. Returns
// [ErrNoSolution] if the points coincide or are further apart than twice the
// radius.
func ArcFromEndpoints(start, end Point, radius float64) (Arc, error) {
	chord := end.Sub(start)
	d := chord.Hypot()
	r := math.Abs(radius)
	if d == 0 || d > 2*r {
		return Arc{}, ErrNoSolution
	}
	half := 0.5 * d
	h := math.Sqrt(r*r - half*half)
	perp := Vec2{-chord.Y, chord.X}.Div(d)
	mid := start.Midpoint(end)
	sweep := 2 * math.Asin(half/r)
	var center Point
	if radius >= 0 {
		center = mid.Translate(perp.Mul(h))
	} else {
		center = mid.Translate(perp.Mul(-h))
		sweep = -sweep
	}
	return Arc{
		Center:     center,
		Radius:     r,
		StartAngle: start.Sub(center).Angle(),
		SweepAngle: sweep,
	}, nil
}

// ArcThroughPoints returns the arc that starts at p1, passes through p2, and
// ends at p3. Returns [ErrCollinearPoints] if the three points are exactly
// collinear.
func ArcThroughPoints(p1, p2, p3 Point) (Arc, error) {
	a := p2.Sub(p1)
	b := p3.Sub(p1)
	d := 2 * a.Cross(b)
	if d == 0 {
		return Arc{}, ErrCollinearPoints
	}
	u := Vec2{
		X: (b.Y*a.Hypot2() - a.Y*b.Hypot2()) / d,
		Y: (a.X*b.Hypot2() - b.X*a.Hypot2()) / d,
	}
	center := p1.Translate(u)
	th1 := p1.Sub(center).Angle()
	th3 := p3.Sub(center).Angle()
	sweep := math.Mod(th3-th1, 2*math.Pi)
	if a.Cross(b) > 0 {
		// counterclockwise through p2
		if sweep <= 0 {
			sweep += 2 * math.Pi
		}
	} else {
		if sweep >= 0 {
			sweep -= 2 * math.Pi
		}
	}
	return Arc{
		Center:     center,
		Radius:     u.Hypot(),
		StartAngle: th1,
		SweepAngle: sweep,
	}, nil
}

func (a Arc) angle(t float64) float64 {
	return a.StartAngle + t*a.SweepAngle
}

func (a Arc) Eval(t float64) Point {
	return a.Center.Translate(VecFromAngle(a.angle(t)).Mul(a.Radius))
}

// FirstDerivative evaluates the first derivative at parameter t.
func (a Arc) FirstDerivative(t float64) Vec2 {
	sin, cos := math.Sincos(a.angle(t))
	return Vec2{-sin, cos}.Mul(a.Radius * a.SweepAngle)
}

// SecondDerivative evaluates the second derivative at parameter t.
func (a Arc) SecondDerivative(t float64) Vec2 {
	return VecFromAngle(a.angle(t)).Mul(-a.Radius * a.SweepAngle * a.SweepAngle)
}

func (a Arc) Start() Point {
	return a.Eval(0)
}

func (a Arc) End() Point {
	return a.Eval(1)
}

// ArcLength returns the exact length of the arc.
func (a Arc) ArcLength() float64 {
	return math.Abs(a.Radius * a.SweepAngle)
}

// Reverse returns the arc traversed in the opposite direction, so that
// Reverse().Eval(t) == Eval(1−t) exactly.
func (a Arc) Reverse() Arc {
	return Arc{
		Center:     a.Center,
		Radius:     a.Radius,
		StartAngle: a.StartAngle + a.SweepAngle,
		SweepAngle: -a.SweepAngle,
	}
}

// Split splits the arc at parameter t. The two results share the split
// point as a common endpoint.
func (a Arc) Split(t float64) (Arc, Arc) {
	return Arc{a.Center, a.Radius, a.StartAngle, t * a.SweepAngle},
		Arc{a.Center, a.Radius, a.angle(t), (1 - t) * a.SweepAngle}
}

// Subdivide subdivides the arc into halves.
func (a Arc) Subdivide() (Arc, Arc) {
	return a.Split(0.5)
}

// Subsegment returns the portion of the arc between parameters t0 and t1,
// reparameterized to [0, 1].
func (a Arc) Subsegment(t0, t1 float64) Arc {
	return Arc{a.Center, a.Radius, a.angle(t0), (t1 - t0) * a.SweepAngle}
}

// TranslateBy returns the arc translated by v.
func (a Arc) TranslateBy(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

// RotateAround returns the arc rotated by th radians around center.
func (a Arc) RotateAround(center Point, th float64) Arc {
	return Arc{
		Center:     a.Center.RotateAround(center, th),
		Radius:     a.Radius,
		StartAngle: a.StartAngle + th,
		SweepAngle: a.SweepAngle,
	}
}

// ScaleAbout returns the arc scaled by f about center. A negative factor is
// a point reflection, which preserves sweep orientation.
func (a Arc) ScaleAbout(center Point, f float64) Arc {
	start := a.StartAngle
	if f < 0 {
		start += math.Pi
	}
	return Arc{
		Center:     a.Center.ScaleAbout(center, f),
		Radius:     a.Radius * math.Abs(f),
		StartAngle: start,
		SweepAngle: a.SweepAngle,
	}
}

// MirrorAcross returns the arc mirrored across the axis. Mirroring reverses
// the sweep orientation.
func (a Arc) MirrorAcross(axis Axis) Arc {
	alpha := axis.Direction.Angle()
	return Arc{
		Center:     a.Center.MirrorAcross(axis),
		Radius:     a.Radius,
		StartAngle: 2*alpha - a.StartAngle,
		SweepAngle: -a.SweepAngle,
	}
}

// RelativeTo expresses the arc in the local coordinates of frame. A
// left-handed frame reverses the sweep orientation.
func (a Arc) RelativeTo(frame Frame) Arc {
	sweep := a.SweepAngle
	if !frame.IsRightHanded() {
		sweep = -sweep
	}
	return Arc{
		Center:     a.Center.RelativeTo(frame),
		Radius:     a.Radius,
		StartAngle: DirectionFromAngle(a.StartAngle).RelativeTo(frame).Angle(),
		SweepAngle: sweep,
	}
}

// PlaceIn converts the arc from the local coordinates of frame to global
// coordinates.
func (a Arc) PlaceIn(frame Frame) Arc {
	sweep := a.SweepAngle
	if !frame.IsRightHanded() {
		sweep = -sweep
	}
	return Arc{
		Center:     a.Center.PlaceIn(frame),
		Radius:     a.Radius,
		StartAngle: DirectionFromAngle(a.StartAngle).PlaceIn(frame).Angle(),
		SweepAngle: sweep,
	}
}

// NondegenerateArc is an arc that has been proven to have nonzero length.
type NondegenerateArc struct {
	Arc
}

// Nondegenerate proves that the arc has nonzero length. An arc with zero
// radius or zero sweep collapses to a single point and yields a
// [DegenerateCurveError] carrying that point.
func (a Arc) Nondegenerate() (NondegenerateArc, error) {
	if a.Radius == 0 || a.SweepAngle == 0 {
		return NondegenerateArc{}, DegenerateCurveError{a.Eval(0)}
	}
	return NondegenerateArc{a}, nil
}

// TangentDirection returns the tangent direction at parameter t. The first
// derivative of a nondegenerate arc never vanishes, so no fallback is
// needed.
func (a NondegenerateArc) TangentDirection(t float64) Direction {
	dir, _ := a.FirstDerivative(t).Direction()
	return dir
}

// MaxSecondDerivativeMagnitude returns the magnitude of the second
// derivative, which is constant for a circular arc.
func (a NondegenerateArc) MaxSecondDerivativeMagnitude() float64 {
	return math.Abs(a.Radius) * a.SweepAngle * a.SweepAngle
}
