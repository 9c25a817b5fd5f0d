package geom

import (
	"errors"
	"fmt"
)

// ErrZeroVector is returned when a direction is requested for a vector of
// zero magnitude.
var ErrZeroVector = errors.New("geom: zero-length vector has no direction")

// ErrCollinearPoints is returned by through-points constructions when the
// three given points are exactly collinear.
var ErrCollinearPoints = errors.New("geom: points are collinear")

// ErrNoSolution is returned when a construction has no solution for the
// given inputs, such as an arc whose endpoints are further apart than twice
// the requested radius.
var ErrNoSolution = errors.New("geom: no solution for the given inputs")

// ErrInvalidTolerance is returned when a non-positive error tolerance is
// passed to an arc-length parameterization.
var ErrInvalidTolerance = errors.New("geom: maxError must be positive")

// ErrMalformedPolygon is returned by triangulation when the polygon's loops
// are not simple or touch each other. Loop validity is the caller's
// responsibility; this error is best-effort detection, not validation.
var ErrMalformedPolygon = errors.New("geom: polygon loops are not simple")

// DegenerateCurveError reports that a 2D curve collapses to a single point
// and therefore has no tangent direction anywhere.
type DegenerateCurveError struct {
	// Point is the point the curve collapses to.
	Point Point
}

func (err DegenerateCurveError) Error() string {
	return fmt.Sprintf("geom: curve degenerates to the single point %v", err.Point)
}

// DegenerateCurve3Error reports that a 3D curve collapses to a single point.
type DegenerateCurve3Error struct {
	Point Point3
}

func (err DegenerateCurve3Error) Error() string {
	return fmt.Sprintf("geom: curve degenerates to the single point %v", err.Point)
}
