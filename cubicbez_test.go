package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezDeriv(t *testing.T) {
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	const n = 10
	for i := 0; i < n+1; i++ {
		ts := float64(i) / float64(n)
		const delta = 1e-6
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := c.FirstDerivative(ts)
		if error := d.Sub(dApprox).Hypot(); error > delta*2 {
			t.Errorf("got difference of %g, want at most %g", error, delta*2)
		}
	}
}

func TestCubicBezArclen(t *testing.T) {
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	trueArclen := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	for i := 0; i < 12; i++ {
		accuracy := math.Pow(0.1, float64(i))
		diff(t, trueArclen, c.Arclen(accuracy), cmpopts.EquateApprox(0, accuracy))
	}
}

func TestCubicBezExtrema(t *testing.T) {
	// y = x^2
	c := CubicBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	extrema, n := c.Extrema()
	if n != 1 {
		t.Fatalf("got %d extrema, expected 1", n)
	}
	if want := 0.5; math.Abs(extrema[0]-want) > 1e-6 {
		t.Errorf("got extrema %v, want %v", extrema[0], want)
	}

	c = CubicBez{Pt(0.4, 0.5), Pt(0.0, 1.0), Pt(1.0, 0.0), Pt(0.5, 0.4)}
	_, n = c.Extrema()
	if n != 4 {
		t.Fatalf("got %d extrema, expected 4", n)
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	c := CubicBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	bbox := c.BoundingBox()
	diff(t, Rect{0, 0, 1, 0.75}, bbox, cmpopts.EquateApprox(0, 1e-12))
}

func TestCubicBezSplit(t *testing.T) {
	c := CubicBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8), Pt(7.2, 6.3)}
	for _, ts := range []float64{0.25, 0.5, 0.75} {
		a, b := c.Split(ts)
		if a.End() != b.Start() {
			t.Errorf("split halves do not share an endpoint: %s != %s", a.End(), b.Start())
		}
		assertNear(t, a.End(), c.Eval(ts), 1e-12)
		for i := 0; i < 11; i++ {
			tt := float64(i) / 10
			assertNear(t, a.Eval(tt), c.Eval(ts*tt), 1e-12)
			assertNear(t, b.Eval(tt), c.Eval(ts+(1-ts)*tt), 1e-12)
		}
	}
}

func TestCubicBezSubdivideMatchesSplit(t *testing.T) {
	c := CubicBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8), Pt(7.2, 6.3)}
	sa, sb := c.Subdivide()
	ha, hb := c.Split(0.5)
	const epsilon = 1e-12
	assertNear(t, sa.P1, ha.P1, epsilon)
	assertNear(t, sa.P2, ha.P2, epsilon)
	assertNear(t, sa.P3, ha.P3, epsilon)
	assertNear(t, sb.P1, hb.P1, epsilon)
	assertNear(t, sb.P2, hb.P2, epsilon)
}

func TestCubicBezReverse(t *testing.T) {
	c := CubicBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8), Pt(7.2, 6.3)}
	if c.Reverse().Reverse() != c {
		t.Error("reversing twice did not reproduce the curve")
	}
	r := c.Reverse()
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		assertNear(t, r.Eval(ts), c.Eval(1-ts), 1e-12)
	}
}

func TestCubicBezTangentAtCusp(t *testing.T) {
	// The hodograph sums to zero at t = 0.5, a cusp where the first
	// derivative vanishes exactly.
	c := CubicBez{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, -1)}
	if d := c.FirstDerivative(0.5); d != (Vec2{}) {
		t.Fatalf("expected vanishing derivative at the cusp, got %s", d)
	}
	nc, err := c.Nondegenerate()
	if err != nil {
		t.Fatal(err)
	}
	if got := nc.TangentDirection(0); got != PositiveX {
		t.Errorf("tangent at 0: got %s, want %s", got, PositiveX)
	}
	want := DirectionFromAngle(-3 * math.Pi / 4)
	if got := nc.TangentDirection(0.5); math.Abs(got.Angle()-want.Angle()) > 1e-12 {
		t.Errorf("tangent at cusp: got %s, want %s", got, want)
	}
}

func TestCubicBezDegenerate(t *testing.T) {
	c := CubicBez{Pt(-1, 2), Pt(-1, 2), Pt(-1, 2), Pt(-1, 2)}
	_, err := c.Nondegenerate()
	var degenerate DegenerateCurveError
	if !errors.As(err, &degenerate) {
		t.Fatalf("got %v, want DegenerateCurveError", err)
	}
	if degenerate.Point != Pt(-1, 2) {
		t.Errorf("got collapsed point %s, want %s", degenerate.Point, Pt(-1, 2))
	}
}

func TestCubicBezLineTangent(t *testing.T) {
	// A degenerate control polygon along a line still has a well-defined
	// tangent everywhere.
	c := CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}
	nc, err := c.Nondegenerate()
	if err != nil {
		t.Fatal(err)
	}
	want := DirectionFromAngle(math.Pi / 4)
	for _, ts := range []float64{0, 0.5, 1} {
		if got := nc.TangentDirection(ts); math.Abs(got.Angle()-want.Angle()) > 1e-12 {
			t.Errorf("tangent at %g: got %s, want %s", ts, got, want)
		}
	}
}

func TestCubicBezTransformCommutes(t *testing.T) {
	const epsilon = 1e-12
	c := CubicBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8), Pt(7.2, 6.3)}
	frame := FrameWithXDirection(Pt(1, -2), DirectionFromAngle(1.1))
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		assertNear(t, c.Transform(Rotate(0.3)).Eval(ts), c.Eval(ts).Transform(Rotate(0.3)), epsilon)
		assertNear(t, c.RelativeTo(frame).Eval(ts), c.Eval(ts).RelativeTo(frame), epsilon)
		assertNear(t, c.RelativeTo(frame).PlaceIn(frame).Eval(ts), c.Eval(ts), 1e-9)
	}
}
