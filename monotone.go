package geom

import (
	"math"
	"sort"
)

// Triangulate decomposes the polygon into triangles, holes respected. The
// returned mesh references the polygon's vertices in [Polygon.Vertices]
// order. Returns [ErrMalformedPolygon] if a loop has fewer than three
// vertices or the loops are not properly nested.
//
// The decomposition is the classic two-stage sweep (de Berg et al.,
// Computational Geometry, ch. 3): split the polygon into y-monotone pieces
// by adding diagonals at split and merge vertices, then triangulate each
// piece with a linear stack scan. For a simple polygon with n vertices and
// h holes with hᵢ vertices the result has exactly n + Σhᵢ + 2h − 2
// triangles.
func (p Polygon) Triangulate() (TriangularMesh, error) {
	if len(p.outer) < 3 {
		return TriangularMesh{}, ErrMalformedPolygon
	}
	for _, loop := range p.inner {
		if len(loop) < 3 {
			return TriangularMesh{}, ErrMalformedPolygon
		}
	}

	t := triangulator{
		verts:     p.Vertices(),
		diagonals: make(map[[2]int]struct{}),
	}
	t.next = make([]int, len(t.verts))
	t.prev = make([]int, len(t.verts))
	link := func(base, n int) {
		for i := 0; i < n; i++ {
			t.next[base+i] = base + (i+1)%n
			t.prev[base+(i+1)%n] = base + i
		}
	}
	link(0, len(p.outer))
	base := len(p.outer)
	for _, loop := range p.inner {
		link(base, len(loop))
		base += len(loop)
	}

	if err := t.decompose(); err != nil {
		return TriangularMesh{}, err
	}
	mesh := TriangularMesh{Vertices: t.verts}
	for _, face := range t.extractFaces() {
		t.triangulateMonotone(face, &mesh)
	}
	return mesh, nil
}

// sweepBefore reports whether a is processed before b by the sweep:
// decreasing y, ties broken by increasing x.
func sweepBefore(a, b Point) bool {
	return a.Y > b.Y || (a.Y == b.Y && a.X < b.X)
}

type vertexClass uint8

const (
	regularVertex vertexClass = iota
	startVertex
	endVertex
	splitVertex
	mergeVertex
)

// triangulator holds the combined loop set during triangulation. All loops
// are directed with the polygon interior on their left: the outer loop
// counterclockwise, holes clockwise.
type triangulator struct {
	verts []Point
	next  []int
	prev  []int

	// active edges crossed by the sweep line, identified by origin vertex.
	active []activeEdge
	// diagonals added by the decomposition, keyed by sorted vertex pair.
	diagonals map[[2]int]struct{}
}

type activeEdge struct {
	origin int
	helper int
	// class of the helper at the time it was assigned.
	helperClass vertexClass
}

func (t *triangulator) classify(v int) vertexClass {
	pt := t.verts[v]
	prevPt := t.verts[t.prev[v]]
	nextPt := t.verts[t.next[v]]
	prevBelow := sweepBefore(pt, prevPt)
	nextBelow := sweepBefore(pt, nextPt)
	convex := pt.Sub(prevPt).Cross(nextPt.Sub(pt)) > 0
	switch {
	case prevBelow && nextBelow:
		if convex {
			return startVertex
		}
		return splitVertex
	case !prevBelow && !nextBelow:
		if convex {
			return endVertex
		}
		return mergeVertex
	default:
		return regularVertex
	}
}

func (t *triangulator) addDiagonal(a, b int) {
	if a > b {
		a, b = b, a
	}
	t.diagonals[[2]int{a, b}] = struct{}{}
}

func (t *triangulator) insertEdge(origin, helper int, class vertexClass) {
	t.active = append(t.active, activeEdge{origin, helper, class})
}

// edgeX returns the x coordinate at which the edge from a to b crosses the
// horizontal line at y.
func edgeX(a, b Point, y float64) float64 {
	if a.Y == b.Y {
		return math.Min(a.X, b.X)
	}
	return a.X + (a.Y-y)*(b.X-a.X)/(a.Y-b.Y)
}

// leftOf returns the index into t.active of the edge immediately to the
// left of vertex v, or -1 if there is none.
func (t *triangulator) leftOf(v int) int {
	pt := t.verts[v]
	best := -1
	bestX := math.Inf(-1)
	for i, e := range t.active {
		x := edgeX(t.verts[e.origin], t.verts[t.next[e.origin]], pt.Y)
		if x < pt.X && x > bestX {
			bestX = x
			best = i
		}
	}
	return best
}

// decompose runs the plane sweep, adding a diagonal at every split and
// merge vertex so that the resulting subdivision contains only y-monotone
// faces.
func (t *triangulator) decompose() error {
	order := make([]int, len(t.verts))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return sweepBefore(t.verts[order[a]], t.verts[order[b]])
	})

	// fixMerge connects v to the helper of the edge ending at v when that
	// helper is a merge vertex, then removes the edge.
	fixMerge := func(v int) error {
		e := t.prev[v]
		for i, ae := range t.active {
			if ae.origin == e {
				if ae.helperClass == mergeVertex {
					t.addDiagonal(v, ae.helper)
				}
				t.active[i] = t.active[len(t.active)-1]
				t.active = t.active[:len(t.active)-1]
				return nil
			}
		}
		return ErrMalformedPolygon
	}

	for _, v := range order {
		switch class := t.classify(v); class {
		case startVertex:
			t.insertEdge(v, v, class)
		case endVertex:
			if err := fixMerge(v); err != nil {
				return err
			}
		case splitVertex:
			j := t.leftOf(v)
			if j < 0 {
				return ErrMalformedPolygon
			}
			t.addDiagonal(v, t.active[j].helper)
			t.active[j].helper = v
			t.active[j].helperClass = class
			t.insertEdge(v, v, class)
		case mergeVertex:
			if err := fixMerge(v); err != nil {
				return err
			}
			j := t.leftOf(v)
			if j < 0 {
				return ErrMalformedPolygon
			}
			if t.active[j].helperClass == mergeVertex {
				t.addDiagonal(v, t.active[j].helper)
			}
			t.active[j].helper = v
			t.active[j].helperClass = class
		case regularVertex:
			if sweepBefore(t.verts[t.prev[v]], t.verts[v]) {
				// The boundary descends through v; the interior is on
				// its right.
				if err := fixMerge(v); err != nil {
					return err
				}
				t.insertEdge(v, v, class)
			} else {
				j := t.leftOf(v)
				if j < 0 {
					return ErrMalformedPolygon
				}
				if t.active[j].helperClass == mergeVertex {
					t.addDiagonal(v, t.active[j].helper)
				}
				t.active[j].helper = v
				t.active[j].helperClass = class
			}
		}
	}
	return nil
}

// extractFaces walks the subdivision induced by the loop edges and the
// added diagonals and returns its interior faces as vertex cycles.
//
// Every directed loop edge has the polygon interior on its left, and
// diagonals are interior on both sides, so tracing each directed edge's
// face by always taking the sharpest counterclockwise turn enumerates
// exactly the monotone pieces; the outer face and hole interiors have no
// directed edges bounding them and are never traced.
func (t *triangulator) extractFaces() [][]int {
	out := make([][]int, len(t.verts))
	for v := range out {
		out[v] = append(out[v], t.next[v])
	}
	// Sorted so that face discovery order, and with it the face list, does
	// not depend on map iteration order.
	diags := make([][2]int, 0, len(t.diagonals))
	for d := range t.diagonals {
		diags = append(diags, d)
	}
	sort.Slice(diags, func(a, b int) bool {
		if diags[a][0] != diags[b][0] {
			return diags[a][0] < diags[b][0]
		}
		return diags[a][1] < diags[b][1]
	})
	for _, d := range diags {
		out[d[0]] = append(out[d[0]], d[1])
		out[d[1]] = append(out[d[1]], d[0])
	}

	angle := func(from, to int) float64 {
		v := t.verts[to].Sub(t.verts[from])
		return math.Atan2(v.Y, v.X)
	}

	visited := make(map[[2]int]bool)
	var faces [][]int
	for u := range t.verts {
		for _, v := range out[u] {
			if visited[[2]int{u, v}] {
				continue
			}
			var face []int
			cu, cv := u, v
			for {
				visited[[2]int{cu, cv}] = true
				face = append(face, cv)
				// Pick the outgoing edge making the sharpest
				// counterclockwise turn from the reversed incoming edge.
				// The reverse edge itself scores zero and is taken only
				// as a last resort.
				rev := angle(cv, cu)
				best, bestDelta := -1, -1.0
				for _, w := range out[cv] {
					delta := math.Mod(angle(cv, w)-rev, 2*math.Pi)
					if delta < 0 {
						delta += 2 * math.Pi
					}
					if delta > bestDelta {
						bestDelta = delta
						best = w
					}
				}
				cu, cv = cv, best
				if cu == u && cv == v {
					break
				}
			}
			faces = append(faces, face)
		}
	}
	return faces
}

// triangulateMonotone triangulates one y-monotone face, given as a vertex
// cycle in counterclockwise order, appending the triangles to the mesh.
func (t *triangulator) triangulateMonotone(face []int, mesh *TriangularMesh) {
	m := len(face)
	if m < 3 {
		return
	}
	pt := func(pos int) Point { return t.verts[face[pos]] }
	emit := func(a, b, c int) {
		pa, pb, pc := pt(a), pt(b), pt(c)
		area := pb.Sub(pa).Cross(pc.Sub(pa))
		if area == 0 {
			return
		}
		if area < 0 {
			b, c = c, b
		}
		mesh.Faces = append(mesh.Faces, [3]int{face[a], face[b], face[c]})
	}
	if m == 3 {
		emit(0, 1, 2)
		return
	}

	top, bot := 0, 0
	for i := 1; i < m; i++ {
		if sweepBefore(pt(i), pt(top)) {
			top = i
		}
		if sweepBefore(pt(bot), pt(i)) {
			bot = i
		}
	}
	// Counterclockwise from the topmost vertex descends the left chain.
	onLeft := make([]bool, m)
	for i := top; ; i = (i + 1) % m {
		onLeft[i] = true
		if i == bot {
			break
		}
	}

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return sweepBefore(pt(order[a]), pt(order[b]))
	})

	stack := []int{order[0], order[1]}
	for j := 2; j < m-1; j++ {
		cur := order[j]
		if onLeft[cur] != onLeft[stack[len(stack)-1]] {
			for len(stack) >= 2 {
				emit(cur, stack[len(stack)-1], stack[len(stack)-2])
				stack = stack[:len(stack)-1]
			}
			stack = []int{order[j-1], cur}
		} else {
			last := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for len(stack) > 0 {
				topPos := stack[len(stack)-1]
				turn := pt(last).Sub(pt(topPos)).Cross(pt(cur).Sub(pt(last)))
				if onLeft[cur] {
					if turn <= 0 {
						break
					}
				} else {
					if turn >= 0 {
						break
					}
				}
				emit(topPos, last, cur)
				last = topPos
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, last, cur)
		}
	}
	cur := order[m-1]
	for len(stack) >= 2 {
		emit(cur, stack[len(stack)-1], stack[len(stack)-2])
		stack = stack[:len(stack)-1]
	}
}
