package curve

import (
	"fmt"
)

// Evaluation is the result of evaluating a curve at a single parameter value.
type Evaluation struct {
	// Position is the point on the curve.
	Position Point3
	// Derivatives holds the requested derivatives; Derivatives[i] is the
	// (i+1)-th derivative with respect to the curve parameter.
	Derivatives []Vec3
}

// Derivative returns the derivative of the given order, which must be between
// 1 and the number of derivatives the evaluation was computed with.
func (ev Evaluation) Derivative(order int) Vec3 {
	return ev.Derivatives[order-1]
}

// Curve describes a space curve parametrized by a scalar.
//
// Implementations are immutable after construction: all of their control data
// is finalized by the constructor, so concurrent evaluation from multiple
// goroutines is safe without locking.
type Curve interface {
	// Evaluate evaluates the curve at parameter t, computing the position and
	// the first derivs derivatives. Derivative orders an implementation cannot
	// produce fail with [ErrUnsupportedDerivative].
	Evaluate(t float64, derivs int) (Evaluation, error)
	// Domain returns the parameter range of the curve.
	Domain() (start, end float64)
	// IsClosed reports whether the curve returns to its start point at the
	// end of its domain.
	IsClosed() bool
}

// Sample evaluates c at count evenly spaced parameters spanning its domain,
// endpoints included. The result is recomputed on every call.
func Sample(c Curve, count int) ([]Point3, error) {
	if count < 2 {
		return nil, fmt.Errorf("sample: %w: count must be at least 2, got %d", ErrInvalidArgument, count)
	}
	start, end := c.Domain()
	pts := make([]Point3, count)
	for i := range pts {
		t := start + (end-start)*float64(i)/float64(count-1)
		ev, err := c.Evaluate(t, 0)
		if err != nil {
			return nil, err
		}
		pts[i] = ev.Position
	}
	return pts, nil
}

// BoundingBox returns the smallest axis-aligned box that encloses count
// evenly spaced evaluations of c. It is an approximation of the curve's true
// bounding volume; larger counts tighten it.
func BoundingBox(c Curve, count int) (Box3, error) {
	pts, err := Sample(c, count)
	if err != nil {
		return Box3{}, err
	}
	bbox := NewBox3FromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox, nil
}
