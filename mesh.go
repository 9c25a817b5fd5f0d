package geom

// TriangularMesh is an indexed triangle mesh: the result of triangulating a
// polygon. Faces hold triples of indices into Vertices, each triangle in
// counterclockwise order. The mesh is a static artifact; it is not
// transformed along with the polygon it came from.
type TriangularMesh struct {
	Vertices []Point
	Faces    [][3]int
}
