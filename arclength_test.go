package geom

import (
	"errors"
	"math"
	"testing"
)

func TestParameterizationLine(t *testing.T) {
	// Constant derivative magnitude: a single exact linear segment.
	p, err := BuildParameterization(1e-6, func(t float64) float64 { return 2 }, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.TotalLength(); math.Abs(got-2) > 1e-15 {
		t.Errorf("got total length %g, want 2", got)
	}
	if got := p.ParameterValue(1); math.Abs(got-0.5) > 1e-15 {
		t.Errorf("got parameter %g, want 0.5", got)
	}
	if got := p.ArcLength(0.25); math.Abs(got-0.5) > 1e-15 {
		t.Errorf("got length %g, want 0.5", got)
	}
}

func TestParameterizationInvalidTolerance(t *testing.T) {
	speed := func(t float64) float64 { return 1 }
	for _, maxError := range []float64{0, -1, math.NaN()} {
		if _, err := BuildParameterization(maxError, speed, 1); !errors.Is(err, ErrInvalidTolerance) {
			t.Errorf("maxError %v: got %v, want ErrInvalidTolerance", maxError, err)
		}
	}
}

func TestParameterizationBounds(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(3, 0)}
	nq, err := q.Nondegenerate()
	if err != nil {
		t.Fatal(err)
	}
	a, err := Parameterize(nq, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	if got := a.ParameterAt(0); got != 0 {
		t.Errorf("ParameterAt(0) = %g, want 0", got)
	}
	if got := a.ParameterAt(a.ArcLength()); got != 1 {
		t.Errorf("ParameterAt(total) = %g, want 1", got)
	}
	// Out-of-range distances clamp.
	if got := a.ParameterAt(-5); got != 0 {
		t.Errorf("ParameterAt(-5) = %g, want 0", got)
	}
	if got := a.ParameterAt(a.ArcLength() + 5); got != 1 {
		t.Errorf("ParameterAt(total+5) = %g, want 1", got)
	}
}

func TestParameterizationMonotone(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(4, 1), Pt(-2, 1), Pt(2, 0)}
	nc, err := c.Nondegenerate()
	if err != nil {
		t.Fatal(err)
	}
	a, err := Parameterize(nc, 1e-4)
	if err != nil {
		t.Fatal(err)
	}
	total := a.ArcLength()
	prevT := 0.0
	for i := 0; i < 101; i++ {
		s := total * float64(i) / 100
		tt := a.ParameterAt(s)
		if tt < prevT {
			t.Fatalf("parameter decreased: %g after %g", tt, prevT)
		}
		prevT = tt
	}
	prevS := 0.0
	for i := 0; i < 101; i++ {
		tt := float64(i) / 100
		s := a.ArcLengthAt(tt)
		if s < prevS {
			t.Fatalf("arc length decreased: %g after %g", s, prevS)
		}
		prevS = s
	}
}

func TestParameterizationRoundTrip(t *testing.T) {
	const maxError = 1e-6
	curves := []QuadBez{
		{Pt(0, 0), Pt(0, 0.5), Pt(1, 1)},
		{Pt(0, 0), Pt(2, 4), Pt(4, 0)},
	}
	for _, q := range curves {
		nq, err := q.Nondegenerate()
		if err != nil {
			t.Fatal(err)
		}
		a, err := Parameterize(nq, maxError)
		if err != nil {
			t.Fatal(err)
		}
		total := a.ArcLength()
		if want := q.Arclen(1e-10); math.Abs(total-want) > 1e-4 {
			t.Errorf("total length %g, want %g", total, want)
		}
		for i := 0; i < 101; i++ {
			s := total * float64(i) / 100
			if got := a.ArcLengthAt(a.ParameterAt(s)); math.Abs(got-s) > maxError {
				t.Errorf("round trip of %g gave %g", s, got)
			}
		}
	}
}

func TestParameterizedArcAgainstExactLength(t *testing.T) {
	arc := Arc{Center: Pt(0, 0), Radius: 2, StartAngle: 0, SweepAngle: 1.5}
	na, err := arc.Nondegenerate()
	if err != nil {
		t.Fatal(err)
	}
	a, err := Parameterize(na, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := a.ArcLength(), arc.ArcLength(); math.Abs(got-want) > 1e-6 {
		t.Errorf("got length %g, want %g", got, want)
	}
	// Arcs have constant speed, so distance is proportional to parameter.
	if got := a.ParameterAt(a.ArcLength() / 3); math.Abs(got-1.0/3.0) > 1e-6 {
		t.Errorf("got parameter %g, want 1/3", got)
	}
	assertNear(t, a.PointAlong(0), arc.Start(), 1e-12)
	assertNear(t, a.PointAlong(a.ArcLength()), arc.End(), 1e-12)
	dir := a.TangentAlong(0)
	if d := dir.Vec().Sub(PositiveY.Vec()).Hypot(); d > 1e-12 {
		t.Errorf("tangent at start: got %s, want %s", dir, PositiveY)
	}
}

func TestParameterize3(t *testing.T) {
	q := QuadBez3{Pt3(0, 0, 0), Pt3(1, 1, 1), Pt3(2, 0, 2)}
	nq, err := q.Nondegenerate()
	if err != nil {
		t.Fatal(err)
	}
	a, err := Parameterize3(nq, 1e-5)
	if err != nil {
		t.Fatal(err)
	}
	total := a.ArcLength()
	if total <= 0 {
		t.Fatalf("got nonpositive length %g", total)
	}
	for i := 0; i < 51; i++ {
		s := total * float64(i) / 50
		if got := a.ArcLengthAt(a.ParameterAt(s)); math.Abs(got-s) > 1e-5 {
			t.Errorf("round trip of %g gave %g", s, got)
		}
	}
	assertNear3(t, a.PointAlong(0), q.Start(), 1e-12)
	assertNear3(t, a.PointAlong(total), q.End(), 1e-12)
}
