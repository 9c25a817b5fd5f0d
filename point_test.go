package geom

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Midpoint(Pt(2, 4)), Pt(1, 2))
	diff(t, Pt(0, 0).Lerp(Pt(4, 0), 0.25), Pt(1, 0))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointIsometries(t *testing.T) {
	assertNear(t, Pt(2, 0).RotateAround(Pt(1, 0), math.Pi/2), Pt(1, 1), 1e-15)
	diff(t, Pt(2, 3).ScaleAbout(Pt(1, 1), 2), Pt(3, 5))
	diff(t, Pt(2, 3).MirrorAcross(XAxis), Pt(2, -3))
	diff(t, Pt(2, 3).MirrorAcross(AxisThrough(Pt(0, 1), PositiveX)), Pt(2, -1))
}

func TestPoint3Arithmetic(t *testing.T) {
	diff(t, Pt3(1, 2, 3).Translate(Vec3d(1, 1, 1)), Pt3(2, 3, 4))
	diff(t, Pt3(1, 2, 3).Sub(Pt3(0, 0, 0)), Vec3d(1, 2, 3))
	diff(t, Pt3(0, 0, 0).Midpoint(Pt3(2, 4, 6)), Pt3(1, 2, 3))
	if d := Pt3(1, 0, 0).Distance(Pt3(1, 3, 4)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPoint3Isometries(t *testing.T) {
	assertNear3(t, Pt3(1, 0, 5).RotateAround(ZAxis3, math.Pi/2), Pt3(0, 1, 5), 1e-15)
	diff(t, Pt3(1, 2, 3).MirrorAcross(PlaneThrough(Pt3(0, 0, 0), PositiveZ3)), Pt3(1, 2, -3))
	diff(t, Pt3(1, 2, 3).ScaleAbout(Pt3(1, 2, 3), 7), Pt3(1, 2, 3))
}
