package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func unitSquare() []Point3 {
	return []Point3{
		Pt(-1, -1, 0),
		Pt(1, -1, 0),
		Pt(1, 1, 0),
		Pt(-1, 1, 0),
	}
}

func TestSubdivisionSquareDegree1(t *testing.T) {
	s, err := NewSubdivisionCurve(unitSquare(), 1)
	if err != nil {
		t.Fatal(err)
	}
	// One refinement iteration inserts a midpoint after every corner; the
	// closure correction then replaces the trailing midpoint with the first
	// corner.
	want := []Point3{
		Pt(-1, -1, 0),
		Pt(0, -1, 0),
		Pt(1, -1, 0),
		Pt(1, 0, 0),
		Pt(1, 1, 0),
		Pt(0, 1, 0),
		Pt(-1, 1, 0),
		Pt(-1, -1, 0),
	}
	diff(t, want, s.Table())
}

func TestSubdivisionIdentityDegree0(t *testing.T) {
	square := unitSquare()
	s, err := NewSubdivisionCurve(square, 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, square, s.Table())
	for i, want := range square {
		ts := float64(i) / float64(len(square)-1)
		ev, err := s.Evaluate(ts, 0)
		if err != nil {
			t.Fatal(err)
		}
		assertNear(t, want, ev.Position, 1e-12)
	}
}

func TestSubdivisionClosure(t *testing.T) {
	for degree := 1; degree <= 5; degree++ {
		s, err := NewSubdivisionCurve(unitSquare(), degree)
		if err != nil {
			t.Fatal(err)
		}
		first, err := s.Evaluate(0, 0)
		if err != nil {
			t.Fatal(err)
		}
		last, err := s.Evaluate(1, 0)
		if err != nil {
			t.Fatal(err)
		}
		assertNear(t, first.Position, last.Position, 1e-12)
	}
}

func TestSubdivisionConvexHull(t *testing.T) {
	// Corner cutting only ever averages existing points, so the curve cannot
	// escape the control polygon's convex hull. For the square the hull is
	// its bounding box.
	square := unitSquare()
	hull := NewBox3FromPoints(square[0], square[0])
	for _, pt := range square[1:] {
		hull = hull.UnionPoint(pt)
	}
	hull = hull.Inflate(1e-12)

	for degree := 1; degree <= 4; degree++ {
		s, err := NewSubdivisionCurve(square, degree)
		if err != nil {
			t.Fatal(err)
		}
		const n = 257
		for i := 0; i < n; i++ {
			ts := float64(i) / float64(n-1)
			ev, err := s.Evaluate(ts, 0)
			if err != nil {
				t.Fatal(err)
			}
			if !hull.Contains(ev.Position) {
				t.Errorf("degree %d: point %v at t=%g escapes the control polygon hull", degree, ev.Position, ts)
			}
		}
	}
}

func TestSubdivisionTableDoubling(t *testing.T) {
	for degree := 0; degree <= 5; degree++ {
		s, err := NewSubdivisionCurve(unitSquare(), degree)
		if err != nil {
			t.Fatal(err)
		}
		want := 4 << degree
		if got := len(s.Table()); got != want {
			t.Errorf("degree %d: got table size %d, want %d", degree, got, want)
		}
	}
}

func TestSubdivisionWrap(t *testing.T) {
	s, err := NewSubdivisionCurve(unitSquare(), 3)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range [][2]float64{
		{1.25, 0.25},
		{2.5, 0.5},
		{-0.75, 0.25},
	} {
		outside, err := s.Evaluate(tc[0], 0)
		if err != nil {
			t.Fatal(err)
		}
		inside, err := s.Evaluate(tc[1], 0)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, inside.Position, outside.Position)
	}
}

func TestSubdivisionDerivative(t *testing.T) {
	s, err := NewSubdivisionCurve(unitSquare(), 2)
	if err != nil {
		t.Fatal(err)
	}
	table := s.Table()
	n := len(table)
	const ts = 0.3
	index := int(math.Floor(ts * float64(n-1)))
	want := table[(index+1)%n].Sub(table[(index-1+n)%n]).Mul(0.5)

	ev, err := s.Evaluate(ts, 1)
	if err != nil {
		t.Fatal(err)
	}
	assertNearVec(t, want, ev.Derivative(1), 1e-15)
}

func TestSubdivisionValidation(t *testing.T) {
	_, err := NewSubdivisionCurve([]Point3{Pt(0, 0, 0)}, 2)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewSubdivisionCurve(unitSquare(), -1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	s, err := NewSubdivisionCurve(unitSquare(), 2)
	require.NoError(t, err)

	_, err = s.Evaluate(0.5, 2)
	require.ErrorIs(t, err, ErrUnsupportedDerivative)

	_, err = s.Evaluate(0.5, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
