package curve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, want, got Point3, epsilon float64) {
	t.Helper()
	if d := want.Distance(got); d > epsilon {
		t.Errorf("%v != %v (distance %g, want at most %g)", got, want, d, epsilon)
	}
}

func assertNearVec(t *testing.T, want, got Vec3, epsilon float64) {
	t.Helper()
	if d := want.Sub(got).Hypot(); d > epsilon {
		t.Errorf("%v != %v (distance %g, want at most %g)", got, want, d, epsilon)
	}
}
