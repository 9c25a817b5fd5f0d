package geom

import (
	"math"
	"sort"
)

var _ Curve = CubicBez{}
var _ NondegenerateCurve = NondegenerateCubicBez{}
var _ Extremer = CubicBez{}

// CubicBez is a cubic Bézier segment defined by its four control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// FirstDerivative evaluates the first derivative at parameter t.
func (c CubicBez) FirstDerivative(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0).Mul(mt * mt)
	d1 := c.P2.Sub(c.P1).Mul(2.0 * mt * t)
	d2 := c.P3.Sub(c.P2).Mul(t * t)
	return d0.Add(d1).Add(d2).Mul(3)
}

// SecondDerivative evaluates the second derivative at parameter t.
func (c CubicBez) SecondDerivative(t float64) Vec2 {
	u := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	v := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return u.Lerp(v, t).Mul(6)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Reverse returns the curve with its parameter direction flipped, so that
// Reverse().Eval(t) == Eval(1−t) exactly.
func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Split splits the cubic at parameter t, using de Casteljau. The two results
// share the split point as a common endpoint and together reproduce the
// original curve.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return CubicBez{c.P0, p01, p012, pm}, CubicBez{pm, p123, p23, c.P3}
}

// Subsegment returns the portion of the curve between parameters t0 and t1,
// reparameterized to [0, 1].
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(c.FirstDerivative(t0).Mul(scale))
	p2 := p3.Translate(c.FirstDerivative(t1).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Arclen returns the arclength of a cubic Bézier segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// It might be faster to do direct multiplies, the data dependencies would be shorter.
	// The following values don't have the factor of 3 for first deriv
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		f := ddNorm2 / dNorm2
		est += wi * f
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 as c approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm Vec2, dm1 Vec2, dm2 Vec2) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += math.Sqrt(2.25) * wi * (dpx + dmx)
	}
	return sum
}

func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// BoundingBox returns the smallest rectangle enclosing the curve in [0, 1].
func (c CubicBez) BoundingBox() Rect {
	return CurveBoundingBox(c)
}

// Transform applies an affine transform to every control point.
func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// TranslateBy returns the curve translated by v.
func (c CubicBez) TranslateBy(v Vec2) CubicBez {
	return CubicBez{
		c.P0.Translate(v),
		c.P1.Translate(v),
		c.P2.Translate(v),
		c.P3.Translate(v),
	}
}

// RotateAround returns the curve rotated by th radians around center.
func (c CubicBez) RotateAround(center Point, th float64) CubicBez {
	return c.Transform(RotateAbout(th, center))
}

// ScaleAbout returns the curve scaled by f about center.
func (c CubicBez) ScaleAbout(center Point, f float64) CubicBez {
	return c.Transform(ScaleAbout(f, center))
}

// MirrorAcross returns the curve mirrored across the axis.
func (c CubicBez) MirrorAcross(axis Axis) CubicBez {
	return CubicBez{
		P0: c.P0.MirrorAcross(axis),
		P1: c.P1.MirrorAcross(axis),
		P2: c.P2.MirrorAcross(axis),
		P3: c.P3.MirrorAcross(axis),
	}
}

// RelativeTo expresses the curve in the local coordinates of frame.
func (c CubicBez) RelativeTo(frame Frame) CubicBez {
	return CubicBez{
		P0: c.P0.RelativeTo(frame),
		P1: c.P1.RelativeTo(frame),
		P2: c.P2.RelativeTo(frame),
		P3: c.P3.RelativeTo(frame),
	}
}

// PlaceIn converts the curve from the local coordinates of frame to global
// coordinates.
func (c CubicBez) PlaceIn(frame Frame) CubicBez {
	return CubicBez{
		P0: c.P0.PlaceIn(frame),
		P1: c.P1.PlaceIn(frame),
		P2: c.P2.PlaceIn(frame),
		P3: c.P3.PlaceIn(frame),
	}
}

// NondegenerateCubicBez is a cubic Bézier that has been proven to have
// nonzero length.
type NondegenerateCubicBez struct {
	CubicBez

	// direction of the highest-order derivative used to resolve tangent
	// directions where lower-order derivatives vanish.
	dir         Direction
	secondOrder bool
}

// Nondegenerate proves that the curve has nonzero length. If the curve
// collapses to a single point, it returns a [DegenerateCurveError] carrying
// that point.
func (c CubicBez) Nondegenerate() (NondegenerateCubicBez, error) {
	u := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	v := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	if u == (Vec2{}) && v == (Vec2{}) {
		// The second derivative vanishes identically, so the curve is a
		// line with constant first derivative.
		dir, err := c.P1.Sub(c.P0).Direction()
		if err != nil {
			return NondegenerateCubicBez{}, DegenerateCurveError{c.P0}
		}
		return NondegenerateCubicBez{c, dir, false}, nil
	}
	// The second derivative is linear in t; if it vanishes at one
	// endpoint, it is nonzero at the other.
	dir, err := u.Direction()
	if err != nil {
		dir, _ = v.Direction()
	}
	return NondegenerateCubicBez{c, dir, true}, nil
}

// TangentDirection returns the tangent direction at parameter t. At a cusp,
// where the first derivative is exactly zero, the direction of the second
// derivative at t is used, negated at t = 1 so that the result is consistent
// with approaching the cusp from inside the curve's domain.
func (c NondegenerateCubicBez) TangentDirection(t float64) Direction {
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
func (c NondegenerateCubicBez) MaxSecondDerivativeMagnitude() float64 {
	u := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	v := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return 6 * max(u.Hypot(), v.Hypot())
}
