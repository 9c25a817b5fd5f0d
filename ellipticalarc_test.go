package geom

import (
	"errors"
	"math"
	"testing"
)

func TestEllipticalArcEval(t *testing.T) {
	const epsilon = 1e-12
	a := EllipticalArc{
		Center:     Pt(1, 2),
		Radii:      Vec(3, 1),
		StartAngle: 0,
		SweepAngle: math.Pi / 2,
	}
	assertNear(t, a.Eval(0), Pt(4, 2), epsilon)
	assertNear(t, a.Eval(1), Pt(1, 3), epsilon)

	// A rotated ellipse: the x semi-axis points along +y.
	b := a
	b.XRotation = math.Pi / 2
	assertNear(t, b.Eval(0), Pt(1, 5), epsilon)
	assertNear(t, b.Eval(1), Pt(0, 2), epsilon)
}

func TestEllipticalArcMatchesCircularArc(t *testing.T) {
	circ := Arc{Center: Pt(2, -1), Radius: 1.5, StartAngle: 0.4, SweepAngle: 2.2}
	ell := circ.Elliptical()
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		assertNear(t, ell.Eval(ts), circ.Eval(ts), 1e-12)
	}
	if got, want := ell.Arclen(1e-10), circ.ArcLength(); math.Abs(got-want) > 1e-9 {
		t.Errorf("got length %g, want %g", got, want)
	}
}

func TestEllipticalArcArclen(t *testing.T) {
	// Full ellipse with radii 3 and 1; reference value for the
	// circumference from the elliptic integral.
	a := EllipticalArc{
		Radii:      Vec(3, 1),
		SweepAngle: 2 * math.Pi,
	}
	const want = 13.364893220555258
	if got := a.Arclen(1e-10); math.Abs(got-want) > 1e-8 {
		t.Errorf("got length %g, want %g", got, want)
	}
}

func TestEllipticalArcReverseAndSplit(t *testing.T) {
	a := EllipticalArc{
		Center:     Pt(-1, 0.5),
		Radii:      Vec(2, 0.7),
		XRotation:  0.3,
		StartAngle: -0.2,
		SweepAngle: 1.7,
	}
	r := a.Reverse()
	left, right := a.Split(0.4)
	if left.End() != right.Start() {
		t.Errorf("split halves do not share an endpoint: %s != %s", left.End(), right.Start())
	}
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		assertNear(t, r.Eval(ts), a.Eval(1-ts), 1e-12)
		assertNear(t, left.Eval(ts), a.Eval(0.4*ts), 1e-12)
		assertNear(t, right.Eval(ts), a.Eval(0.4+0.6*ts), 1e-12)
	}
}

func TestEllipticalArcTransformCommutes(t *testing.T) {
	a := EllipticalArc{
		Center:     Pt(1, 1),
		Radii:      Vec(2, 1),
		XRotation:  0.5,
		StartAngle: 0.2,
		SweepAngle: 2.5,
	}
	axis := AxisThrough(Pt(1, 0), DirectionFromAngle(1.3))
	frame := FrameWithXDirection(Pt(0, 2), DirectionFromAngle(-0.7))
	left := Frame{frame.Origin, frame.XDirection, frame.YDirection.Negate()}
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		assertNear(t, a.TranslateBy(Vec(1, 2)).Eval(ts), a.Eval(ts).Translate(Vec(1, 2)), 1e-12)
		assertNear(t, a.RotateAround(Pt(-1, 0), 0.9).Eval(ts), a.Eval(ts).RotateAround(Pt(-1, 0), 0.9), 1e-9)
		assertNear(t, a.ScaleAbout(Pt(0, 0), -1.5).Eval(ts), a.Eval(ts).ScaleAbout(Pt(0, 0), -1.5), 1e-9)
		assertNear(t, a.MirrorAcross(axis).Eval(ts), a.Eval(ts).MirrorAcross(axis), 1e-9)
		assertNear(t, a.RelativeTo(frame).Eval(ts), a.Eval(ts).RelativeTo(frame), 1e-9)
		assertNear(t, a.PlaceIn(frame).Eval(ts), a.Eval(ts).PlaceIn(frame), 1e-9)
		assertNear(t, a.RelativeTo(left).Eval(ts), a.Eval(ts).RelativeTo(left), 1e-9)
		assertNear(t, a.PlaceIn(left).Eval(ts), a.Eval(ts).PlaceIn(left), 1e-9)
	}
}

func TestEllipticalArcDegenerate(t *testing.T) {
	a := EllipticalArc{Center: Pt(1, 1), SweepAngle: 2}
	_, err := a.Nondegenerate()
	var degenerate DegenerateCurveError
	if !errors.As(err, &degenerate) {
		t.Fatalf("got %v, want DegenerateCurveError", err)
	}
	if degenerate.Point != Pt(1, 1) {
		t.Errorf("got collapsed point %s, want %s", degenerate.Point, Pt(1, 1))
	}

	// One radius zero: a line segment with cusps at the turning points.
	b := EllipticalArc{Radii: Vec(2, 0), SweepAngle: 2 * math.Pi}
	nb, err := b.Nondegenerate()
	if err != nil {
		t.Fatal(err)
	}
	// At angle 0 the first derivative vanishes; the second derivative
	// points back towards the center.
	if got := nb.TangentDirection(0); got != NegativeX {
		t.Errorf("tangent at cusp: got %s, want %s", got, NegativeX)
	}
}
