package geom

var _ SpaceCurve = QuadBez3{}
var _ NondegenerateSpaceCurve = NondegenerateQuadBez3{}

// QuadBez3 is a quadratic Bézier segment in 3D, defined by its three control
// points.
type QuadBez3 struct {
	P0 Point3
	P1 Point3
	P2 Point3
}

func (q QuadBez3) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez3) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez3) Eval(t float64) Point3 {
	mt := 1.0 - t
	a := Vec3(q.P0).Mul(mt * mt)
	b := Vec3(q.P1).Mul(mt * 2.0)
	c := Vec3(q.P2).Mul(t)
	d := b.Add(c)
	return Point3(a.Add(d.Mul(t)))
}

// FirstDerivative evaluates the first derivative at parameter t.
func (q QuadBez3) FirstDerivative(t float64) Vec3 {
	return q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t).Mul(2)
}

// SecondDerivative returns the second derivative, which is constant for a
// quadratic.
func (q QuadBez3) SecondDerivative() Vec3 {
	return q.P2.Sub(q.P1).Sub(q.P1.Sub(q.P0)).Mul(2)
}

func (q QuadBez3) Start() Point3 {
	return q.P0
}

func (q QuadBez3) End() Point3 {
	return q.P2
}

// Reverse returns the curve with its parameter direction flipped, so that
// Reverse().Eval(t) == Eval(1−t) exactly.
func (q QuadBez3) Reverse() QuadBez3 {
	return QuadBez3{q.P2, q.P1, q.P0}
}

// Subdivide subdivides the quadratic into halves, using de Casteljau.
func (q QuadBez3) Subdivide() (QuadBez3, QuadBez3) {
	return q.Split(0.5)
}

// Split splits the quadratic at parameter t, using de Casteljau. The two
// results share the split point as a common endpoint and together reproduce
// the original curve.
func (q QuadBez3) Split(t float64) (QuadBez3, QuadBez3) {
	p01 := q.P0.Lerp(q.P1, t)
	p12 := q.P1.Lerp(q.P2, t)
	pm := p01.Lerp(p12, t)
	return QuadBez3{q.P0, p01, pm}, QuadBez3{pm, p12, q.P2}
}

// Subsegment returns the portion of the curve between parameters t0 and t1,
// reparameterized to [0, 1].
func (q QuadBez3) Subsegment(t0, t1 float64) QuadBez3 {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez3{p0, p1, p2}
}

// BoundingBox returns the smallest box enclosing the curve in [0, 1]. The
// extrema are per-coordinate roots of the linear first derivative.
func (q QuadBez3) BoundingBox() Box3 {
	bbox := NewBox3FromPoints(q.P0, q.P2)
	d0 := q.P1.Sub(q.P0)
	dd := q.P2.Sub(q.P1).Sub(d0)
	for _, c := range [...][2]float64{{d0.X, dd.X}, {d0.Y, dd.Y}, {d0.Z, dd.Z}} {
		if c[1] == 0 {
			continue
		}
		if t := -c[0] / c[1]; t > 0 && t < 1 {
			bbox = bbox.UnionPoint(q.Eval(t))
		}
	}
	return bbox
}

// TranslateBy returns the curve translated by v.
func (q QuadBez3) TranslateBy(v Vec3) QuadBez3 {
	return QuadBez3{q.P0.Translate(v), q.P1.Translate(v), q.P2.Translate(v)}
}

// RotateAround returns the curve rotated by th radians around the axis.
func (q QuadBez3) RotateAround(axis Axis3, th float64) QuadBez3 {
	return QuadBez3{
		P0: q.P0.RotateAround(axis, th),
		P1: q.P1.RotateAround(axis, th),
		P2: q.P2.RotateAround(axis, th),
	}
}

// ScaleAbout returns the curve scaled by f about center.
func (q QuadBez3) ScaleAbout(center Point3, f float64) QuadBez3 {
	return QuadBez3{
		P0: q.P0.ScaleAbout(center, f),
		P1: q.P1.ScaleAbout(center, f),
		P2: q.P2.ScaleAbout(center, f),
	}
}

// MirrorAcross returns the curve mirrored across the plane.
func (q QuadBez3) MirrorAcross(plane Plane3) QuadBez3 {
	return QuadBez3{
		P0: q.P0.MirrorAcross(plane),
		P1: q.P1.MirrorAcross(plane),
		P2: q.P2.MirrorAcross(plane),
	}
}

// RelativeTo expresses the curve in the local coordinates of frame.
func (q QuadBez3) RelativeTo(frame Frame3) QuadBez3 {
	return QuadBez3{
		P0: q.P0.RelativeTo(frame),
		P1: q.P1.RelativeTo(frame),
		P2: q.P2.RelativeTo(frame),
	}
}

// PlaceIn converts the curve from the local coordinates of frame to global
// coordinates.
func (q QuadBez3) PlaceIn(frame Frame3) QuadBez3 {
	return QuadBez3{
		P0: q.P0.PlaceIn(frame),
		P1: q.P1.PlaceIn(frame),
		P2: q.P2.PlaceIn(frame),
	}
}

// NondegenerateQuadBez3 is a quadratic Bézier in 3D that has been proven to
// have nonzero length. It resolves tangent directions at cusps using the
// curve's constant second derivative.
type NondegenerateQuadBez3 struct {
	QuadBez3

	dir         Direction3
	secondOrder bool
}

// Nondegenerate proves that the curve has nonzero length. If the curve
// collapses to a single point, it returns a [DegenerateCurve3Error] carrying
// that point.
func (q QuadBez3) Nondegenerate() (NondegenerateQuadBez3, error) {
	if dir, err := q.SecondDerivative().Direction(); err == nil {
		return NondegenerateQuadBez3{q, dir, true}, nil
	}
	dir, err := q.FirstDerivative(0).Direction()
	if err != nil {
		return NondegenerateQuadBez3{}, DegenerateCurve3Error{q.P0}
	}
	return NondegenerateQuadBez3{q, dir, false}, nil
}

// TangentDirection returns the tangent direction at parameter t. At a cusp,
// where the first derivative is exactly zero, the direction of the second
// derivative is used, negated at t = 1 so that the result is consistent with
// approaching the cusp from inside the curve's domain.
func (q NondegenerateQuadBez3) TangentDirection(t float64) Direction3 {
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
func (q NondegenerateQuadBez3) MaxSecondDerivativeMagnitude() float64 {
	return q.SecondDerivative().Hypot()
}
