package geom

import (
	"errors"
	"math"
	"testing"
)

func TestQuadBezArclen(t *testing.T) {
	q := QuadBez{
		Pt(0.0, 0.0),
		Pt(0.0, 0.5),
		Pt(1.0, 1.0),
	}
	want := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	for i := 0; i < 12; i++ {
		accuracy := math.Pow(0.1, float64(i))
		est := q.Arclen(accuracy)
		error := math.Abs(est - want)
		if error > accuracy {
			t.Errorf("got error %g for desired accuracy of %g", error, accuracy)
		}
	}
}

func TestQuadBezArclenPathological(t *testing.T) {
	q := QuadBez{
		Pt(-1.0, 0.0),
		Pt(1.03, 0.0),
		Pt(1.0, 0.0),
	}
	const want = 2.0008737864167325 // A rough empirical calculation
	const accuracy = 1e-11
	est := q.Arclen(accuracy)
	error := math.Abs(est - want)
	if error > accuracy {
		t.Errorf("got error %g for desired accuracy of %g", error, accuracy)
	}
}

func TestQuadBezSubsegment(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	t0 := 0.1
	t1 := 0.8
	qs := q.Subsegment(t0, t1)
	epsilon := 1e-12
	n := 10
	for i := 0; i < n+1; i++ {
		tt := float64(i) / float64(n)
		ts := t0 + tt*(t1-t0)
		assertNear(t, q.Eval(ts), qs.Eval(tt), epsilon)
	}
}

func TestQuadBezFirstDerivative(t *testing.T) {
	q := QuadBez{
		Pt(0.0, 0.0),
		Pt(0.0, 0.5),
		Pt(1.0, 1.0),
	}
	const n = 10
	for i := 0; i < n+1; i++ {
		ts := float64(i) / float64(n)
		const delta = 1e-6
		p := q.Eval(ts)
		p1 := q.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := q.FirstDerivative(ts)
		if error := d.Sub(dApprox).Hypot(); error > delta*2 {
			t.Errorf("got difference of %g, want at most %g", error, delta*2)
		}
	}
}

func TestQuadBezEndpoints(t *testing.T) {
	q := QuadBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)}
	if q.Eval(0) != q.Start() {
		t.Errorf("Eval(0) = %s, Start() = %s", q.Eval(0), q.Start())
	}
	if q.Eval(1) != q.End() {
		t.Errorf("Eval(1) = %s, End() = %s", q.Eval(1), q.End())
	}
}

func TestQuadBezReverse(t *testing.T) {
	q := QuadBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)}
	if q.Reverse().Reverse() != q {
		t.Error("reversing twice did not reproduce the curve")
	}
	r := q.Reverse()
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		assertNear(t, r.Eval(ts), q.Eval(1-ts), 1e-12)
	}
}

func TestQuadBezSplit(t *testing.T) {
	q := QuadBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)}
	for _, ts := range []float64{0.1, 0.5, 0.9} {
		a, b := q.Split(ts)
		if a.End() != b.Start() {
			t.Errorf("split halves do not share an endpoint: %s != %s", a.End(), b.Start())
		}
		assertNear(t, a.End(), q.Eval(ts), 1e-12)
		for i := 0; i < 11; i++ {
			tt := float64(i) / 10
			assertNear(t, a.Eval(tt), q.Eval(ts*tt), 1e-12)
			assertNear(t, b.Eval(tt), q.Eval(ts+(1-ts)*tt), 1e-12)
		}
	}
}

func TestQuadBezTangentAtCusp(t *testing.T) {
	// The control polygon doubles back on itself, producing a cusp where
	// the first derivative vanishes at t = 0.5.
	q := QuadBez{Pt(0, 0), Pt(1, 0), Pt(0, 0)}
	nq, err := q.Nondegenerate()
	if err != nil {
		t.Fatal(err)
	}
	if got := nq.TangentDirection(0); got != PositiveX {
		t.Errorf("tangent at 0: got %s, want %s", got, PositiveX)
	}
	if got := nq.TangentDirection(1); got != NegativeX {
		t.Errorf("tangent at 1: got %s, want %s", got, NegativeX)
	}
	cusp := nq.TangentDirection(0.5)
	if cusp != NegativeX {
		t.Errorf("tangent at cusp: got %s, want %s", cusp, NegativeX)
	}
}

func TestQuadBezDegenerate(t *testing.T) {
	q := QuadBez{Pt(2, 3), Pt(2, 3), Pt(2, 3)}
	_, err := q.Nondegenerate()
	var degenerate DegenerateCurveError
	if !errors.As(err, &degenerate) {
		t.Fatalf("got %v, want DegenerateCurveError", err)
	}
	if degenerate.Point != Pt(2, 3) {
		t.Errorf("got collapsed point %s, want %s", degenerate.Point, Pt(2, 3))
	}
}

func TestQuadBezTransformCommutes(t *testing.T) {
	const epsilon = 1e-12
	q := QuadBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)}
	axis := AxisThrough(Pt(1, 1), DirectionFromAngle(0.3))
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		assertNear(t, q.TranslateBy(Vec(2, -1)).Eval(ts), q.Eval(ts).Translate(Vec(2, -1)), epsilon)
		assertNear(t, q.RotateAround(Pt(1, 1), 0.7).Eval(ts), q.Eval(ts).RotateAround(Pt(1, 1), 0.7), epsilon)
		assertNear(t, q.ScaleAbout(Pt(1, 1), -2.5).Eval(ts), q.Eval(ts).ScaleAbout(Pt(1, 1), -2.5), epsilon)
		assertNear(t, q.MirrorAcross(axis).Eval(ts), q.Eval(ts).MirrorAcross(axis), epsilon)
	}
}
