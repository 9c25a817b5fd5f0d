package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(p0 Point, side float64) []Point {
	return []Point{p0, Pt(p0.X+side, p0.Y), Pt(p0.X+side, p0.Y+side), Pt(p0.X, p0.Y+side)}
}

func TestPolygonArea(t *testing.T) {
	p := NewPolygon(square(Pt(0, 0), 1))
	assert.Equal(t, 1.0, p.Area())
	assert.Equal(t, 4.0, p.Perimeter())

	// Winding is normalized on construction, so a clockwise input is
	// equivalent to its reversal.
	cw := NewPolygon([]Point{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)})
	assert.Equal(t, 1.0, cw.Area())
	assert.Equal(t, p.OuterLoop(), cw.OuterLoop())
}

func TestPolygonAreaWithHole(t *testing.T) {
	p := NewPolygonWithHoles(square(Pt(0, 0), 3), [][]Point{square(Pt(1, 1), 1)})
	assert.Equal(t, 8.0, p.Area())
	assert.Equal(t, 16.0, p.Perimeter())
	assert.Equal(t, Rect{0, 0, 3, 3}, p.BoundingBox())
	assert.Len(t, p.Vertices(), 8)
	assert.Len(t, p.Edges(), 8)

	// Hole winding is normalized to clockwise regardless of input.
	ccwHole := NewPolygonWithHoles(square(Pt(0, 0), 3), [][]Point{{Pt(1, 1), Pt(1, 2), Pt(2, 2), Pt(2, 1)}})
	assert.Equal(t, p.InnerLoops(), ccwHole.InnerLoops())
}

func TestPolygonContains(t *testing.T) {
	p := NewPolygon(square(Pt(0, 0), 1))
	assert.True(t, p.Contains(Pt(0.5, 0.5)))
	assert.False(t, p.Contains(Pt(2, 0.5)))
	assert.False(t, p.Contains(Pt(0.5, -0.5)))
	// Boundary points count as contained, including edge interiors and vertices.
	assert.True(t, p.Contains(Pt(0.5, 0)))
	assert.True(t, p.Contains(Pt(1, 0.5)))
	assert.True(t, p.Contains(Pt(0, 0)))
	assert.True(t, p.Contains(Pt(1, 1)))
}

func TestPolygonContainsWithHole(t *testing.T) {
	p := NewPolygonWithHoles(square(Pt(0, 0), 3), [][]Point{square(Pt(1, 1), 1)})
	assert.True(t, p.Contains(Pt(0.5, 0.5)))
	assert.False(t, p.Contains(Pt(1.5, 1.5)))
	assert.True(t, p.Contains(Pt(1, 1.5)))
	assert.True(t, p.Contains(Pt(2.5, 1.5)))
	assert.False(t, p.Contains(Pt(3.5, 1.5)))
}

func TestPolygonContainsNonConvex(t *testing.T) {
	// A dart shape whose notch leaves points inside the bounding box
	// but outside the polygon.
	p := NewPolygon([]Point{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(2, 1), Pt(0, 4)})
	assert.True(t, p.Contains(Pt(1, 0.5)))
	assert.False(t, p.Contains(Pt(2, 3)))
	assert.True(t, p.Contains(Pt(2, 1)))
	// The crossing ray from this query passes exactly through the notch
	// vertex at (2, 1) and must count it once, not twice.
	assert.True(t, p.Contains(Pt(0.5, 1)))
}

func TestPolygonTransforms(t *testing.T) {
	p := NewPolygonWithHoles(square(Pt(0, 0), 3), [][]Point{square(Pt(1, 1), 1)})

	moved := p.TranslateBy(Vec2{2, -1})
	assert.Equal(t, 8.0, moved.Area())
	assert.Equal(t, Rect{2, -1, 5, 2}, moved.BoundingBox())

	rotated := p.RotateAround(Pt(0, 0), math.Pi/2)
	assert.InDelta(t, 8.0, rotated.Area(), 1e-12)
	assert.True(t, rotated.Contains(Pt(-0.5, 0.5)))

	scaled := p.ScaleAbout(Pt(0, 0), 2)
	assert.InDelta(t, 32.0, scaled.Area(), 1e-12)

	// Mirroring flips every loop, and construction-time winding rules
	// are restored so area stays positive.
	mirrored := p.MirrorAcross(YAxis)
	assert.InDelta(t, 8.0, mirrored.Area(), 1e-12)
	assert.True(t, mirrored.Contains(Pt(-0.5, 0.5)))
	assert.False(t, mirrored.Contains(Pt(-1.5, 1.5)))

	flipped := p.Transform(Affine{1, 0, 0, -1, 0, 0})
	assert.InDelta(t, 8.0, flipped.Area(), 1e-12)
	assert.True(t, flipped.Contains(Pt(0.5, -0.5)))
}

func TestPolygonFrames(t *testing.T) {
	p := NewPolygon(square(Pt(0, 0), 1))
	frame := FrameAt(Pt(3, 4))
	require.Equal(t, p.OuterLoop(), p.PlaceIn(frame).RelativeTo(frame).OuterLoop())
	assert.True(t, p.PlaceIn(frame).Contains(Pt(3.5, 4.5)))
}

func TestPolygonEdges(t *testing.T) {
	p := NewPolygon([]Point{Pt(0, 0), Pt(3, 0), Pt(3, 4)})
	edges := p.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, Edge{Pt(0, 0), Pt(3, 0)}, edges[0])
	assert.Equal(t, Vec2{0, 4}, edges[1].Vector())
	assert.Equal(t, 5.0, edges[2].Length())
	assert.InDelta(t, 12.0, p.Perimeter(), 1e-12)
}
