package geom

import "sort"

var _ SpaceCurve = CubicBez3{}
var _ NondegenerateSpaceCurve = NondegenerateCubicBez3{}

// CubicBez3 is a cubic Bézier segment in 3D, defined by its four control
// points.
type CubicBez3 struct {
	P0 Point3
	P1 Point3
	P2 Point3
	P3 Point3
}

func (c CubicBez3) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez3) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez3) Eval(t float64) Point3 {
	mt := 1.0 - t
	a := Vec3(c.P0).Mul(mt * mt * mt)
	b := Vec3(c.P1).Mul(mt * mt * 3.0)
	cc := Vec3(c.P2).Mul(mt * 3.0)
	d := Vec3(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point3(v)
}

// FirstDerivative evaluates the first derivative at parameter t.
func (c CubicBez3) FirstDerivative(t float64) Vec3 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0).Mul(mt * mt)
	d1 := c.P2.Sub(c.P1).Mul(2.0 * mt * t)
	d2 := c.P3.Sub(c.P2).Mul(t * t)
	return d0.Add(d1).Add(d2).Mul(3)
}

// SecondDerivative evaluates the second derivative at parameter t.
func (c CubicBez3) SecondDerivative(t float64) Vec3 {
	u := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	v := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return u.Lerp(v, t).Mul(6)
}

func (c CubicBez3) Start() Point3 {
	return c.P0
}

func (c CubicBez3) End() Point3 {
	return c.P3
}

// Reverse returns the curve with its parameter direction flipped, so that
// Reverse().Eval(t) == Eval(1−t) exactly.
func (c CubicBez3) Reverse() CubicBez3 {
	return CubicBez3{c.P3, c.P2, c.P1, c.P0}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez3) Subdivide() (CubicBez3, CubicBez3) {
	return c.Split(0.5)
}

// Split splits the cubic at parameter t, using de Casteljau. The two results
// share the split point as a common endpoint and together reproduce the
// original curve.
func (c CubicBez3) Split(t float64) (CubicBez3, CubicBez3) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return CubicBez3{c.P0, p01, p012, pm}, CubicBez3{pm, p123, p23, c.P3}
}

// Subsegment returns the portion of the curve between parameters t0 and t1,
// reparameterized to [0, 1].
func (c CubicBez3) Subsegment(t0, t1 float64) CubicBez3 {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(c.FirstDerivative(t0).Mul(scale))
	p2 := p3.Translate(c.FirstDerivative(t1).Mul(scale).Negate())
	return CubicBez3{p0, p1, p2, p3}
}

// BoundingBox returns the smallest box enclosing the curve in [0, 1]. The
// extrema are per-coordinate roots of the quadratic first derivative.
func (c CubicBez3) BoundingBox() Box3 {
	bbox := NewBox3FromPoints(c.P0, c.P3)
	var ts [6]float64
	var n int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		roots, rn := SolveQuadratic(d0, b, a)
		for _, t := range roots[:rn] {
			if t > 0.0 && t < 1.0 {
				ts[n] = t
				n++
			}
		}
	}
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	oneCoord(d0.Z, d1.Z, d2.Z)
	sort.Float64s(ts[:n])
	for _, t := range ts[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// TranslateBy returns the curve translated by v.
func (c CubicBez3) TranslateBy(v Vec3) CubicBez3 {
	return CubicBez3{
		c.P0.Translate(v),
		c.P1.Translate(v),
		c.P2.Translate(v),
		c.P3.Translate(v),
	}
}

// RotateAround returns the curve rotated by th radians around the axis.
func (c CubicBez3) RotateAround(axis Axis3, th float64) CubicBez3 {
	return CubicBez3{
		P0: c.P0.RotateAround(axis, th),
		P1: c.P1.RotateAround(axis, th),
		P2: c.P2.RotateAround(axis, th),
		P3: c.P3.RotateAround(axis, th),
	}
}

// ScaleAbout returns the curve scaled by f about center.
func (c CubicBez3) ScaleAbout(center Point3, f float64) CubicBez3 {
	return CubicBez3{
		P0: c.P0.ScaleAbout(center, f),
		P1: c.P1.ScaleAbout(center, f),
		P2: c.P2.ScaleAbout(center, f),
		P3: c.P3.ScaleAbout(center, f),
	}
}

// MirrorAcross returns the curve mirrored across the plane.
func (c CubicBez3) MirrorAcross(plane Plane3) CubicBez3 {
	return CubicBez3{
		P0: c.P0.MirrorAcross(plane),
		P1: c.P1.MirrorAcross(plane),
		P2: c.P2.MirrorAcross(plane),
		P3: c.P3.MirrorAcross(plane),
	}
}

// RelativeTo expresses the curve in the local coordinates of frame.
func (c CubicBez3) RelativeTo(frame Frame3) CubicBez3 {
	return CubicBez3{
		P0: c.P0.RelativeTo(frame),
		P1: c.P1.RelativeTo(frame),
		P2: c.P2.RelativeTo(frame),
		P3: c.P3.RelativeTo(frame),
	}
}

// PlaceIn converts the curve from the local coordinates of frame to global
// coordinates.
func (c CubicBez3) PlaceIn(frame Frame3) CubicBez3 {
	return CubicBez3{
		P0: c.P0.PlaceIn(frame),
		P1: c.P1.PlaceIn(frame),
		P2: c.P2.PlaceIn(frame),
		P3: c.P3.PlaceIn(frame),
	}
}

// NondegenerateCubicBez3 is a cubic Bézier in 3D that has been proven to
// have nonzero length.
type NondegenerateCubicBez3 struct {
	CubicBez3

	// direction of the highest-order derivative used to resolve tangent
	// directions where lower-order derivatives vanish.
	dir         Direction3
	secondOrder bool
}

// Nondegenerate proves that the curve has nonzero length. If the curve
// collapses to a single point, it returns a [DegenerateCurve3Error] carrying
// that point.
func (c CubicBez3) Nondegenerate() (NondegenerateCubicBez3, error) {
	u := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	v := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	if u == (Vec3{}) && v == (Vec3{}) {
		// The second derivative vanishes identically, so the curve is a
		// line with constant first derivative.
		dir, err := c.P1.Sub(c.P0).Direction()
		if err != nil {
			return NondegenerateCubicBez3{}, DegenerateCurve3Error{c.P0}
		}
		return NondegenerateCubicBez3{c, dir, false}, nil
	}
	// The second derivative is linear in t; if it vanishes at one
	// endpoint, it is nonzero at the other.
	dir, err := u.Direction()
	if err != nil {
		dir, _ = v.Direction()
	}
	return NondegenerateCubicBez3{c, dir, true}, nil
}

// TangentDirection returns the tangent direction at parameter t. At a cusp,
// where the first derivative is exactly zero, the direction of the second
// derivative at t is used, negated at t = 1 so that the result is consistent
// with approaching the cusp from inside the curve's domain.
func (c NondegenerateCubicBez3) TangentDirection(t float64) Direction3 {
	if dir, err := c.FirstDerivative(t).Direction(); err == nil {
		return dir
	}
	dir, err := c.SecondDerivative(t).Direction()
	if err != nil {
		dir = c.dir
	}
	if t == 1 {
		return dir.Negate()
	}
	return dir
}

// MaxSecondDerivativeMagnitude returns an upper bound on the magnitude of
// the second derivative over [0, 1]. The second derivative is linear in t,
// so the bound is attained at an endpoint.
func (c NondegenerateCubicBez3) MaxSecondDerivativeMagnitude() float64 {
	u := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	v := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return 6 * max(u.Hypot(), v.Hypot())
}
