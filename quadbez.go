package geom

import "math"

var _ Curve = QuadBez{}
var _ NondegenerateCurve = NondegenerateQuadBez{}
var _ Extremer = QuadBez{}

// QuadBez is a quadratic Bézier segment defined by its three control points.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// FirstDerivative evaluates the first derivative at parameter t.
func (q QuadBez) FirstDerivative(t float64) Vec2 {
	return q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t).Mul(2)
}

// SecondDerivative returns the second derivative, which is constant for a
// quadratic.
func (q QuadBez) SecondDerivative() Vec2 {
	return q.P2.Sub(q.P1).Sub(q.P1.Sub(q.P0)).Mul(2)
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

// Reverse returns the curve with its parameter direction flipped, so that
// Reverse().Eval(t) == Eval(1−t) exactly.
func (q QuadBez) Reverse() QuadBez {
	return QuadBez{q.P2, q.P1, q.P0}
}

// Subdivide subdivides the quadratic into halves, using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

// Split splits the quadratic at parameter t, using de Casteljau. The two
// results share the split point as a common endpoint and together reproduce
// the original curve.
func (q QuadBez) Split(t float64) (QuadBez, QuadBez) {
	p01 := q.P0.Lerp(q.P1, t)
	p12 := q.P1.Lerp(q.P2, t)
	pm := p01.Lerp(p12, t)
	return QuadBez{q.P0, p01, pm}, QuadBez{pm, p12, q.P2}
}

// Subsegment returns the portion of the curve between parameters t0 and t1,
// reparameterized to [0, 1].
func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

// Arclen returns the arclength of the quadratic Bézier segment.
//
// This computation is based on an analytical formula. Since that formula suffers
// from numerical instability when the curve is very close to a straight line, we
// detect that case and fall back to Legendre-Gauss quadrature.
//
// Overall accuracy should be better than 1e-13 over the entire range.
func (q QuadBez) Arclen(accuracy float64) float64 {
	d2 := Vec2(q.P0).Sub(Vec2(q.P1).Mul(2)).Add(Vec2(q.P2))
	a := d2.Hypot2()
	d1 := q.P1.Sub(q.P0)
	c := d1.Hypot2()
	if a < 5e-4*c {
		// This case happens for nearly straight Béziers.
		//
		// Calculate arclength using Legendre-Gauss quadrature using formula from Behdad
		// in https://github.com/Pomax/BezierInfo-2/issues/77
		v0 := Vec2(q.P0).Mul(-0.492943519233745).
			Add(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.0626120363218102)).
			Hypot()
		v1 := q.P2.Sub(q.P0).Mul(0.4444444444444444).Hypot()
		v2 := Vec2(q.P0).Mul(-0.0626120363218102).
			Sub(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.492943519233745)).
			Hypot()
		return v0 + v1 + v2
	}
	b := 2.0 * d2.Dot(d1)

	sabc := math.Sqrt(a + b + c)
	a2 := math.Pow(a, -0.5)
	a32 := a2 * a2 * a2
	c2 := 2.0 * math.Sqrt(c)
	baC2 := b*a2 + c2

	v0 := 0.25*a2*a2*b*(2.0*sabc-c2) + sabc
	if baC2 < 1e-13 {
		// This case happens for Béziers with a sharp kink.
		return v0
	} else {
		return v0 + 0.25*a32*(4.0*c*a-b*b)*math.Log(((2.0*a+b)*a2+2.0*sabc)/baC2)
	}
}

func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	// Finding the extrema of a quadratic bezier means finding the roots in the
	// quadratic's first derivative, which is a line.

	var out [MaxExtrema]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
			if outN == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, outN
}

// BoundingBox returns the smallest rectangle enclosing the curve in [0, 1].
func (q QuadBez) BoundingBox() Rect {
	return CurveBoundingBox(q)
}

// Transform applies an affine transform to every control point.
func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

// TranslateBy returns the curve translated by v.
func (q QuadBez) TranslateBy(v Vec2) QuadBez {
	return QuadBez{q.P0.Translate(v), q.P1.Translate(v), q.P2.Translate(v)}
}

// RotateAround returns the curve rotated by th radians around center.
func (q QuadBez) RotateAround(center Point, th float64) QuadBez {
	return q.Transform(RotateAbout(th, center))
}

// ScaleAbout returns the curve scaled by f about center.
func (q QuadBez) ScaleAbout(center Point, f float64) QuadBez {
	return q.Transform(ScaleAbout(f, center))
}

// MirrorAcross returns the curve mirrored across the axis.
func (q QuadBez) MirrorAcross(axis Axis) QuadBez {
	return QuadBez{
		P0: q.P0.MirrorAcross(axis),
		P1: q.P1.MirrorAcross(axis),
		P2: q.P2.MirrorAcross(axis),
	}
}

// RelativeTo expresses the curve in the local coordinates of frame.
func (q QuadBez) RelativeTo(frame Frame) QuadBez {
	return QuadBez{
		P0: q.P0.RelativeTo(frame),
		P1: q.P1.RelativeTo(frame),
		P2: q.P2.RelativeTo(frame),
	}
}

// PlaceIn converts the curve from the local coordinates of frame to global
// coordinates.
func (q QuadBez) PlaceIn(frame Frame) QuadBez {
	return QuadBez{
		P0: q.P0.PlaceIn(frame),
		P1: q.P1.PlaceIn(frame),
		P2: q.P2.PlaceIn(frame),
	}
}

// NondegenerateQuadBez is a quadratic Bézier that has been proven to have
// nonzero length. It resolves tangent directions at cusps using the curve's
// constant second derivative.
type NondegenerateQuadBez struct {
	QuadBez

	// direction of the highest-order non-vanishing derivative:
	// the second derivative if it is nonzero, the (constant) first
	// derivative otherwise.
	dir         Direction
	secondOrder bool
}

// Nondegenerate proves that the curve has nonzero length. If the curve
// collapses to a single point, it returns a [DegenerateCurveError] carrying
// that point.
func (q QuadBez) Nondegenerate() (NondegenerateQuadBez, error) {
	if dir, err := q.SecondDerivative().Direction(); err == nil {
		return NondegenerateQuadBez{q, dir, true}, nil
	}
	// The second derivative vanishes, so the curve is a line with constant
	// first derivative.
	dir, err := q.FirstDerivative(0).Direction()
	if err != nil {
		return NondegenerateQuadBez{}, DegenerateCurveError{q.P0}
	}
	return NondegenerateQuadBez{q, dir, false}, nil
}

// TangentDirection returns the tangent direction at parameter t. At a cusp,
// where the first derivative is exactly zero, the direction of the second
// derivative is used, negated at t = 1 so that the result is consistent with
// approaching the cusp from inside the curve's domain.
func (q NondegenerateQuadBez) TangentDirection(t float64) Direction {
	if dir, err := q.FirstDerivative(t).Direction(); err == nil {
		return dir
	}
	if q.secondOrder && t == 1 {
		return q.dir.Negate()
	}
	return q.dir
}

// MaxSecondDerivativeMagnitude returns the magnitude of the curve's constant
// second derivative.
func (q NondegenerateQuadBez) MaxSecondDerivativeMagnitude() float64 {
	return q.SecondDerivative().Hypot()
}
