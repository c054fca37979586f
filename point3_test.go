package curve

import "testing"

func TestPoint3Lerp(t *testing.T) {
	a := Pt(1, 2, 3)
	b := Pt(3, -2, 5)
	diff(t, Pt(2, 0, 4), a.Lerp(b, 0.5))
	diff(t, a.Lerp(b, 0.5), a.Midpoint(b))
	diff(t, a, a.Lerp(b, 0))
	diff(t, b, a.Lerp(b, 1))
}

func TestPoint3Distance(t *testing.T) {
	a := Pt(1, 2, 3)
	b := Pt(4, 6, 3)
	diff(t, 5.0, a.Distance(b))
	diff(t, 25.0, a.DistanceSquared(b))
}

func TestPoint3Translate(t *testing.T) {
	diff(t, Pt(2, 1, 7), Pt(1, 2, 3).Translate(Vec(1, -1, 4)))
	diff(t, Vec(3, 4, 0), Pt(4, 6, 3).Sub(Pt(1, 2, 3)))
}

func TestVec3Cross(t *testing.T) {
	x := Vec(1, 0, 0)
	y := Vec(0, 1, 0)
	diff(t, Vec(0, 0, 1), x.Cross(y))
	diff(t, Vec(0, 0, -1), y.Cross(x))
	diff(t, Vec(0, 0, 0), x.Cross(x))
}

func TestVec3Normalize(t *testing.T) {
	v := Vec(3, 0, 4).Normalize()
	diff(t, 1.0, v.Hypot())
	assertNearVec(t, Vec(0.6, 0, 0.8), v, 1e-15)
}

func TestBox3Union(t *testing.T) {
	a := NewBox3FromPoints(Pt(0, 0, 0), Pt(1, 1, 1))
	b := NewBox3FromPoints(Pt(2, -1, 0), Pt(3, 0, 2))
	diff(t, NewBox3FromPoints(Pt(0, -1, 0), Pt(3, 1, 2)), a.Union(b))

	if !a.Contains(Pt(0.5, 0.5, 0.5)) {
		t.Error("expected box to contain its center")
	}
	if a.Contains(Pt(0.5, 0.5, 1.5)) {
		t.Error("expected box not to contain a point above it")
	}
}
