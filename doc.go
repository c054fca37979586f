// Package curve provides parametric space curves for geometric modeling: a
// closed Lane-Riesenfeld subdivision curve, a quadratic B-spline with
// optional least-squares fitting, and an analytic torus knot.
//
// # Curves
//
// All variants implement [Curve]: evaluation at a scalar parameter with an
// optional number of derivatives, a parameter domain, and a closedness flag.
// The variants share nothing else; each owns its control data exclusively.
//
//   - [SubdivisionCurve] refines a closed control polygon into a dense point
//     table at construction and evaluates by table lookup with linear
//     interpolation.
//   - [BSpline] is a quadratic B-spline over a clamped uniform knot vector,
//     evaluated through Cox–de Boor basis functions. Control points are given
//     directly or fitted to sample points by least squares ([FitBSpline]).
//   - [TorusKnot] is the closed-form (2, 3) torus knot with exact first and
//     second derivatives.
//
// [Sample] turns any curve into an ordered polyline for rendering, [Arclen]
// measures curve length by quadrature, and [BoundingBox] computes a
// sample-based bounding volume.
//
// # Immutability and concurrency
//
// Every curve finalizes its data at construction: the subdivision point table
// and the B-spline's knot vector and control points are computed exactly once
// and never mutated. Evaluation is a pure function of that data, so curves
// may be shared freely between goroutines without locking.
//
// # Errors
//
// Failures are classified by the sentinel kinds [ErrInvalidArgument],
// [ErrNumericalFailure], and [ErrUnsupportedDerivative]; match them with
// errors.Is. Degenerate knot spans are not errors: their basis terms
// contribute zero instead of propagating NaN.
package curve
