package curve

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// bsplineDegree is the fixed polynomial degree of [BSpline].
const bsplineDegree = 2

// BSpline is a quadratic B-spline over a clamped uniform knot vector. Because
// the boundary knots repeat, the curve interpolates its first and last control
// points.
//
// Control points are either given directly ([NewBSpline]) or derived from
// sample points by least squares ([FitBSpline]). Both the control points and
// the knot vector are finalized at construction.
type BSpline struct {
	controlPoints []Point3
	knots         knotVector
}

var _ Curve = (*BSpline)(nil)

// NewBSpline returns the quadratic B-spline with the given control points, of
// which there must be at least three. The control points are copied.
func NewBSpline(controlPoints []Point3) (*BSpline, error) {
	if len(controlPoints) < bsplineDegree+1 {
		return nil, fmt.Errorf("bspline: %w: need at least %d control points, got %d",
			ErrInvalidArgument, bsplineDegree+1, len(controlPoints))
	}
	return &BSpline{
		controlPoints: slices.Clone(controlPoints),
		knots:         newClampedUniformKnots(len(controlPoints), bsplineDegree),
	}, nil
}

// FitBSpline derives n control points from the given sample points by least
// squares and returns the resulting quadratic B-spline. n must be at least 3
// and at most len(samples).
//
// The samples are parameterized uniformly across the curve's knot domain. The
// overdetermined system is solved by QR factorization rather than by
// inverting the normal matrix; a singular or ill-conditioned system fails
// with [ErrNumericalFailure] instead of producing garbage control points.
func FitBSpline(samples []Point3, n int) (*BSpline, error) {
	if n < bsplineDegree+1 {
		return nil, fmt.Errorf("bspline: %w: need at least %d control points to fit, got %d",
			ErrInvalidArgument, bsplineDegree+1, n)
	}
	m := len(samples)
	if m < n {
		return nil, fmt.Errorf("bspline: %w: need at least %d samples to fit %d control points, got %d",
			ErrInvalidArgument, n, n, m)
	}

	knots := newClampedUniformKnots(n, bsplineDegree)
	start, end := knots.domain(bsplineDegree)

	// Row i of the basis matrix holds the bsplineDegree+1 locally nonzero
	// basis weights of sample i; all other entries stay zero.
	basis := mat.NewDense(m, n, nil)
	rhs := mat.NewDense(m, 3, nil)
	for i, sample := range samples {
		t := start + (end-start)*float64(i)/float64(m-1)
		span := knots.span(bsplineDegree, n, t)
		for j, w := range localBasis(knots, span, t) {
			basis.Set(i, span-bsplineDegree+j, w)
		}
		rhs.Set(i, 0, sample.X)
		rhs.Set(i, 1, sample.Y)
		rhs.Set(i, 2, sample.Z)
	}

	var solved mat.Dense
	if err := solved.Solve(basis, rhs); err != nil {
		return nil, fmt.Errorf("bspline: %w: least squares fit of %d control points to %d samples: %v",
			ErrNumericalFailure, n, m, err)
	}
	controlPoints := make([]Point3, n)
	for i := range controlPoints {
		controlPoints[i] = Pt(solved.At(i, 0), solved.At(i, 1), solved.At(i, 2))
	}
	Logger().Debug("fitted B-spline control points", "samples", m, "controlPoints", n)
	return &BSpline{
		controlPoints: controlPoints,
		knots:         knots,
	}, nil
}

// localBasis computes the bsplineDegree+1 basis weights that are nonzero on
// the given knot span, using the iterative Cox–de Boor recurrence (algorithm
// A2.2 of Piegl & Tiller). The weights agree exactly with the recursive
// definition evaluated at the span's active indices.
func localBasis(knots knotVector, span int, t float64) [bsplineDegree + 1]float64 {
	var w, left, right [bsplineDegree + 1]float64
	w[0] = 1
	for j := 1; j <= bsplineDegree; j++ {
		left[j] = t - knots[span+1-j]
		right[j] = knots[span+j] - t
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := w[r] / (right[r+1] + left[j-r])
			w[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		w[j] = saved
	}
	return w
}

// basis evaluates the Cox–de Boor basis function of the given index and
// degree at t.
//
// The degree-0 base case tests the half-open knot span [knotᵢ, knotᵢ₊₁), with
// one exception: at the curve's final parameter value the last basis index is
// also treated as active, since otherwise the half-open intervals would
// exclude the endpoint. Zero-width knot spans contribute zero rather than
// dividing by zero.
func (b *BSpline) basis(i, degree int, t float64) float64 {
	if degree == 0 {
		if b.knots[i] <= t && t < b.knots[i+1] {
			return 1
		}
		if t == b.knots[len(b.knots)-1] && i == len(b.controlPoints)-1 {
			return 1
		}
		return 0
	}

	var term1, term2 float64
	if denom := b.knots[i+degree] - b.knots[i]; denom != 0 {
		term1 = (t - b.knots[i]) / denom * b.basis(i, degree-1, t)
	}
	if denom := b.knots[i+degree+1] - b.knots[i+1]; denom != 0 {
		term2 = (b.knots[i+degree+1] - t) / denom * b.basis(i+1, degree-1, t)
	}
	return term1 + term2
}

// derivative computes the first derivative of the curve at t via degree
// reduction: C′(t) = Σᵢ N_{i+1,k−1}(t) · k·(Pᵢ₊₁−Pᵢ)/(u_{i+k+1}−u_{i+1}).
func (b *BSpline) derivative(t float64) Vec3 {
	var d Vec3
	for i := 0; i < len(b.controlPoints)-1; i++ {
		denom := b.knots[i+bsplineDegree+1] - b.knots[i+1]
		if denom == 0 {
			continue
		}
		w := b.basis(i+1, bsplineDegree-1, t)
		if w == 0 {
			continue
		}
		d = d.Add(b.controlPoints[i+1].Sub(b.controlPoints[i]).Mul(w * bsplineDegree / denom))
	}
	return d
}

// Evaluate implements [Curve]. Parameters outside the domain are clamped to
// it. Supported derivative orders are 0 and 1.
func (b *BSpline) Evaluate(t float64, derivs int) (Evaluation, error) {
	if derivs < 0 {
		return Evaluation{}, fmt.Errorf("bspline: %w: negative derivative order %d",
			ErrInvalidArgument, derivs)
	}
	if derivs > 1 {
		return Evaluation{}, fmt.Errorf("bspline: %w: order %d, quadratic B-splines support order 1",
			ErrUnsupportedDerivative, derivs)
	}
	start, end := b.Domain()
	t = min(max(t, start), end)

	var pos Vec3
	for i, cp := range b.controlPoints {
		if w := b.basis(i, bsplineDegree, t); w != 0 {
			pos = pos.Add(Vec3(cp).Mul(w))
		}
	}
	ev := Evaluation{Position: Point3(pos)}
	if derivs == 1 {
		ev.Derivatives = []Vec3{b.derivative(t)}
	}
	return ev, nil
}

// Domain implements [Curve]. The domain spans the first to the last
// non-repeated knot.
func (b *BSpline) Domain() (start, end float64) {
	return b.knots.domain(bsplineDegree)
}

// IsClosed implements [Curve].
func (b *BSpline) IsClosed() bool {
	return false
}

// ControlPoints returns a copy of the curve's control points.
func (b *BSpline) ControlPoints() []Point3 {
	return slices.Clone(b.controlPoints)
}

// Knots returns a copy of the curve's knot vector.
func (b *BSpline) Knots() []float64 {
	return slices.Clone(b.knots)
}
