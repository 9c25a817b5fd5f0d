package geom

// Plane3 is an infinite plane in 3D, defined by an origin point and a unit
// normal. Planes serve as mirror planes and as the carriers of planar
// curves embedded in 3D.
type Plane3 struct {
	Origin Point3
	Normal Direction3
}

// PlaneThrough returns the plane through origin with the given normal.
func PlaneThrough(origin Point3, normal Direction3) Plane3 {
	return Plane3{origin, normal}
}

// PlaneThroughPoints returns the plane containing the three given points,
// with the normal chosen so that the points wind counterclockwise when seen
// from the positive side. Returns [ErrCollinearPoints] if the points are
// exactly collinear.
func PlaneThroughPoints(p1, p2, p3 Point3) (Plane3, error) {
	n, err := p2.Sub(p1).Cross(p3.Sub(p1)).Direction()
	if err != nil {
		return Plane3{}, ErrCollinearPoints
	}
	return Plane3{p1, n}, nil
}

// Flip returns the plane with its normal reversed.
func (p Plane3) Flip() Plane3 {
	return Plane3{p.Origin, p.Normal.Negate()}
}

// TranslateBy returns the plane translated by v.
func (p Plane3) TranslateBy(v Vec3) Plane3 {
	return Plane3{p.Origin.Translate(v), p.Normal}
}

// SignedDistanceTo returns the signed distance from the plane to pt,
// positive on the normal's side.
func (p Plane3) SignedDistanceTo(pt Point3) float64 {
	return pt.Sub(p.Origin).Dot(p.Normal.Vec())
}
