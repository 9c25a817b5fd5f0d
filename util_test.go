package geom

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var exportGeom = cmp.Exporter(func(t reflect.Type) bool {
	return t.PkgPath() == "honnef.co/go/geom"
})

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	opts = append(opts, exportGeom)
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertNear3(t *testing.T, p0 Point3, p1 Point3, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}
