package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvexHullSquare(t *testing.T) {
	pts := []Point{
		Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2),
		Pt(1, 1), Pt(0.5, 1.5), Pt(1.9, 0.1),
	}
	hull := ConvexHull(pts)
	assert.Equal(t, []Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}, hull.OuterLoop())
	assert.Equal(t, 4.0, hull.Area())
}

func TestConvexHullContainsInput(t *testing.T) {
	pts := []Point{
		Pt(0, 0), Pt(4, 1), Pt(3, 5), Pt(-1, 3), Pt(1, 1),
		Pt(2, 2), Pt(2, 4), Pt(0, 2), Pt(3, 1),
	}
	hull := ConvexHull(pts)
	loop := hull.OuterLoop()
	require.GreaterOrEqual(t, len(loop), 3)

	// Every input point lies in the hull, and every hull vertex is an
	// input point.
	for _, pt := range pts {
		assert.True(t, hull.Contains(pt), "input point %s outside hull", pt)
	}
	for _, v := range loop {
		assert.Contains(t, pts, v)
	}

	// Strict convexity: every turn is a left turn.
	for i, a := range loop {
		b := loop[(i+1)%len(loop)]
		c := loop[(i+2)%len(loop)]
		assert.Positive(t, b.Sub(a).Cross(c.Sub(b)), "turn at %s is not left", b)
	}
}

func TestConvexHullCollinear(t *testing.T) {
	// Interior points of collinear runs are dropped.
	hull := ConvexHull([]Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(2, 2), Pt(1, 1)})
	assert.Equal(t, []Point{Pt(0, 0), Pt(2, 0), Pt(2, 2)}, hull.OuterLoop())
}

func TestConvexHullDuplicates(t *testing.T) {
	hull := ConvexHull([]Point{Pt(0, 0), Pt(1, 0), Pt(0, 0), Pt(1, 0), Pt(0, 1)})
	assert.Equal(t, []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}, hull.OuterLoop())
}

func TestConvexHullDegenerate(t *testing.T) {
	assert.Empty(t, ConvexHull(nil).OuterLoop())
	assert.Equal(t, []Point{Pt(1, 2)}, ConvexHull([]Point{Pt(1, 2)}).OuterLoop())
	assert.Equal(t, []Point{Pt(0, 0), Pt(1, 1)}, ConvexHull([]Point{Pt(1, 1), Pt(0, 0)}).OuterLoop())
	// All points collinear: the hull collapses to the two extremes.
	assert.Equal(t, []Point{Pt(0, 0), Pt(3, 3)},
		ConvexHull([]Point{Pt(1, 1), Pt(3, 3), Pt(0, 0), Pt(2, 2)}).OuterLoop())
}

func TestConvexHullIndependentOfOrder(t *testing.T) {
	a := []Point{Pt(0, 0), Pt(4, 1), Pt(3, 5), Pt(-1, 3), Pt(1, 1), Pt(2, 4)}
	b := []Point{Pt(2, 4), Pt(1, 1), Pt(-1, 3), Pt(3, 5), Pt(4, 1), Pt(0, 0)}
	assert.Equal(t, ConvexHull(a).OuterLoop(), ConvexHull(b).OuterLoop())
}
