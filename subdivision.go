package curve

import (
	"fmt"
	"math"
	"slices"
)

// SubdivisionCurve is a closed curve produced by Lane-Riesenfeld refinement of
// a control polygon. The control polygon is treated as a closed loop: its last
// point connects back to its first.
//
// The refined point table is computed once at construction. Evaluation looks
// the parameter up in the table and interpolates linearly between neighboring
// entries, so the curve is only as smooth as the table is dense.
type SubdivisionCurve struct {
	controlPoints []Point3
	degree        int
	table         []Point3
}

var _ Curve = (*SubdivisionCurve)(nil)

// NewSubdivisionCurve returns the closed subdivision curve of the given
// control polygon, which must have at least two points. The polygon is copied.
//
// degree is the number of refinement iterations; each iteration doubles the
// point table by midpoint insertion and then runs degree−1 corner-cutting
// averaging passes, so degree also controls the per-iteration smoothing. A
// degree of 0 keeps the control polygon unchanged.
func NewSubdivisionCurve(controlPoints []Point3, degree int) (*SubdivisionCurve, error) {
	if len(controlPoints) < 2 {
		return nil, fmt.Errorf("subdivision: %w: need at least 2 control points, got %d",
			ErrInvalidArgument, len(controlPoints))
	}
	if degree < 0 {
		return nil, fmt.Errorf("subdivision: %w: degree must be non-negative, got %d",
			ErrInvalidArgument, degree)
	}
	s := &SubdivisionCurve{
		controlPoints: slices.Clone(controlPoints),
		degree:        degree,
	}
	s.table = s.refine()
	Logger().Debug("computed subdivision point table",
		"controlPoints", len(s.controlPoints),
		"degree", degree,
		"tableSize", len(s.table))
	return s, nil
}

// refine runs Lane-Riesenfeld subdivision on the control polygon: degree
// iterations of midpoint insertion followed by degree−1 averaging passes, all
// with wrap-around. After the final iteration the last point is forced onto
// the first so the rendered loop closes without a gap; with zero iterations
// the polygon is kept verbatim.
func (s *SubdivisionCurve) refine() []Point3 {
	points := slices.Clone(s.controlPoints)
	for iter := 0; iter < s.degree; iter++ {
		n := len(points)
		doubled := make([]Point3, 2*n)
		for i, pt := range points {
			doubled[2*i] = pt
			doubled[2*i+1] = pt.Midpoint(points[(i+1)%n])
		}
		for pass := 1; pass < s.degree; pass++ {
			smoothed := make([]Point3, len(doubled))
			for i := range doubled {
				prev := (i - 1 + len(doubled)) % len(doubled)
				smoothed[i] = doubled[i].Midpoint(doubled[prev])
			}
			doubled = smoothed
		}
		points = doubled
	}
	if s.degree > 0 && len(points) > 1 {
		points[len(points)-1] = points[0]
	}
	return points
}

// Evaluate implements [Curve]. The curve is periodic by construction, so
// parameters outside [0, 1] wrap around.
//
// Supported derivative orders are 0 and 1. The first derivative is a central
// difference over the point table; it is not normalized by the parameter
// spacing, so its magnitude depends on the table density.
func (s *SubdivisionCurve) Evaluate(t float64, derivs int) (Evaluation, error) {
	if derivs < 0 {
		return Evaluation{}, fmt.Errorf("subdivision: %w: negative derivative order %d",
			ErrInvalidArgument, derivs)
	}
	if derivs > 1 {
		return Evaluation{}, fmt.Errorf("subdivision: %w: order %d, the point table supports order 1",
			ErrUnsupportedDerivative, derivs)
	}
	if t < 0 || t > 1 {
		t -= math.Floor(t)
	}

	n := len(s.table)
	scaled := t * float64(n-1)
	index := int(math.Floor(scaled)) % n
	alpha := scaled - float64(index)

	ev := Evaluation{
		Position: s.table[index].Lerp(s.table[(index+1)%n], alpha),
	}
	if derivs == 1 {
		next := (index + 1) % n
		prev := (index - 1 + n) % n
		ev.Derivatives = []Vec3{s.table[next].Sub(s.table[prev]).Mul(0.5)}
	}
	return ev, nil
}

// Domain implements [Curve]. The domain is always [0, 1].
func (s *SubdivisionCurve) Domain() (start, end float64) {
	return 0, 1
}

// IsClosed implements [Curve].
func (s *SubdivisionCurve) IsClosed() bool {
	return true
}

// ControlPoints returns a copy of the original control polygon.
func (s *SubdivisionCurve) ControlPoints() []Point3 {
	return slices.Clone(s.controlPoints)
}

// Degree returns the refinement degree the curve was constructed with.
func (s *SubdivisionCurve) Degree() int {
	return s.degree
}

// Table returns a copy of the refined point table.
func (s *SubdivisionCurve) Table() []Point3 {
	return slices.Clone(s.table)
}
