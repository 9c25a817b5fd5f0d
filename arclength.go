package geom

import (
	"math"
	"sort"
)

// ArcLengthParameterization maps between a curve's parameter and the
// distance traveled along the curve. It is built once from the magnitude of
// the curve's first derivative and can then answer both directions of the
// mapping in logarithmic or constant time.
//
// The mapping is stored as a table of cumulative lengths over uniform
// parameter segments, with linear interpolation in between. The segment
// width is chosen from the curve's maximum second derivative magnitude so
// that the interpolation error stays below the requested maximum.
type ArcLengthParameterization struct {
	// cumulative[i] is the arc length at parameter i/(len(cumulative)-1).
	cumulative []float64
}

// BuildParameterization builds an arc-length parameterization for a curve
// with the given first derivative magnitude. maxSecondDerivativeMagnitude
// must be an upper bound on the magnitude of the curve's second derivative
// over [0, 1]; a larger bound produces a finer table, never a wrong one.
// Returns [ErrInvalidTolerance] unless maxError is positive.
func BuildParameterization(maxError float64, derivativeMagnitude func(t float64) float64, maxSecondDerivativeMagnitude float64) (*ArcLengthParameterization, error) {
	if !(maxError > 0) {
		return nil, ErrInvalidTolerance
	}
	// Linear interpolation of the length over a segment of width w has
	// error at most M w² / 8, where M bounds the second derivative. Keep
	// every segment below the error budget scaled by its share of the
	// parameter range, which gives w ≤ 8 maxError / M.
	n := 1
	if m := maxSecondDerivativeMagnitude; m > 0 {
		n = int(math.Ceil(m / (8 * maxError)))
		if n < 1 {
			n = 1
		}
	}
	cumulative := make([]float64, n+1)
	w := 1.0 / float64(n)
	prev := derivativeMagnitude(0)
	for i := 1; i <= n; i++ {
		t1 := float64(i) * w
		mid := derivativeMagnitude(t1 - 0.5*w)
		next := derivativeMagnitude(t1)
		// Simpson's rule over the segment.
		cumulative[i] = cumulative[i-1] + w/6*(prev+4*mid+next)
		prev = next
	}
	return &ArcLengthParameterization{cumulative}, nil
}

// TotalLength returns the length of the whole curve.
func (p *ArcLengthParameterization) TotalLength() float64 {
	return p.cumulative[len(p.cumulative)-1]
}

// ParameterValue returns the curve parameter at which the arc length from
// the start of the curve equals s. Values of s outside [0, TotalLength] are
// clamped.
func (p *ArcLengthParameterization) ParameterValue(s float64) float64 {
	if s <= 0 {
		return 0
	}
	if s >= p.TotalLength() {
		return 1
	}
	// First index with cumulative[i] >= s; i >= 1 because s > 0.
	i := sort.SearchFloat64s(p.cumulative, s)
	if p.cumulative[i] == s {
		return float64(i) / float64(len(p.cumulative)-1)
	}
	lo, hi := p.cumulative[i-1], p.cumulative[i]
	frac := 0.0
	if hi > lo {
		frac = (s - lo) / (hi - lo)
	}
	return (float64(i-1) + frac) / float64(len(p.cumulative)-1)
}

// ArcLength returns the distance along the curve from its start to
// parameter t. The function is monotone non-decreasing in t; values of t
// outside [0, 1] are clamped.
func (p *ArcLengthParameterization) ArcLength(t float64) float64 {
	n := len(p.cumulative) - 1
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return p.TotalLength()
	}
	scaled := t * float64(n)
	i := int(scaled)
	frac := scaled - float64(i)
	return p.cumulative[i] + frac*(p.cumulative[i+1]-p.cumulative[i])
}

// ArcLengthParameterized bundles a nondegenerate curve with its arc-length
// parameterization, so that points and tangents can be queried by distance
// along the curve instead of by parameter.
type ArcLengthParameterized[C NondegenerateCurve] struct {
	Curve C

	param *ArcLengthParameterization
}

// Parameterize computes an arc-length parameterization of the curve. The
// round trip ParameterAt(ArcLengthAt(t)) is accurate to within maxError.
// Returns [ErrInvalidTolerance] unless maxError is positive.
func Parameterize[C NondegenerateCurve](curve C, maxError float64) (ArcLengthParameterized[C], error) {
	param, err := BuildParameterization(
		maxError,
		func(t float64) float64 { return curve.FirstDerivative(t).Hypot() },
		curve.MaxSecondDerivativeMagnitude(),
	)
	if err != nil {
		return ArcLengthParameterized[C]{}, err
	}
	return ArcLengthParameterized[C]{curve, param}, nil
}

// ArcLength returns the length of the whole curve.
func (a ArcLengthParameterized[C]) ArcLength() float64 {
	return a.param.TotalLength()
}

// ParameterAt returns the curve parameter at arc length s from the start.
func (a ArcLengthParameterized[C]) ParameterAt(s float64) float64 {
	return a.param.ParameterValue(s)
}

// ArcLengthAt returns the arc length from the start of the curve to
// parameter t.
func (a ArcLengthParameterized[C]) ArcLengthAt(t float64) float64 {
	return a.param.ArcLength(t)
}

// PointAlong returns the point at arc length s from the start of the curve.
func (a ArcLengthParameterized[C]) PointAlong(s float64) Point {
	return a.Curve.Eval(a.param.ParameterValue(s))
}

// TangentAlong returns the tangent direction at arc length s from the start
// of the curve.
func (a ArcLengthParameterized[C]) TangentAlong(s float64) Direction {
	return a.Curve.TangentDirection(a.param.ParameterValue(s))
}

// ArcLengthParameterized3 is the 3D analogue of [ArcLengthParameterized].
type ArcLengthParameterized3[C NondegenerateSpaceCurve] struct {
	Curve C

	param *ArcLengthParameterization
}

// Parameterize3 computes an arc-length parameterization of the space curve.
// Returns [ErrInvalidTolerance] unless maxError is positive.
func Parameterize3[C NondegenerateSpaceCurve](curve C, maxError float64) (ArcLengthParameterized3[C], error) {
	param, err := BuildParameterization(
		maxError,
		func(t float64) float64 { return curve.FirstDerivative(t).Hypot() },
		curve.MaxSecondDerivativeMagnitude(),
	)
	if err != nil {
		return ArcLengthParameterized3[C]{}, err
	}
	return ArcLengthParameterized3[C]{curve, param}, nil
}

// ArcLength returns the length of the whole curve.
func (a ArcLengthParameterized3[C]) ArcLength() float64 {
	return a.param.TotalLength()
}

// ParameterAt returns the curve parameter at arc length s from the start.
func (a ArcLengthParameterized3[C]) ParameterAt(s float64) float64 {
	return a.param.ParameterValue(s)
}

// ArcLengthAt returns the arc length from the start of the curve to
// parameter t.
func (a ArcLengthParameterized3[C]) ArcLengthAt(t float64) float64 {
	return a.param.ArcLength(t)
}

// PointAlong returns the point at arc length s from the start of the curve.
func (a ArcLengthParameterized3[C]) PointAlong(s float64) Point3 {
	return a.Curve.Eval(a.param.ParameterValue(s))
}

// TangentAlong returns the tangent direction at arc length s from the start
// of the curve.
func (a ArcLengthParameterized3[C]) TangentAlong(s float64) Direction3 {
	return a.Curve.TangentDirection(a.param.ParameterValue(s))
}
