package curve

import (
	"fmt"
	"math"
)

// Winding numbers and major radius of [TorusKnot]: p twists around the torus
// axis, q loops through its hole, on a torus offset by R from the axis.
const (
	torusKnotP = 2.0
	torusKnotQ = 3.0
	torusKnotR = 2.0
)

// TorusKnot is the (2, 3) torus knot
//
//	x = (R + cos(qt))·cos(pt)
//	y = (R + cos(qt))·sin(pt)
//	z = sin(qt)
//
// with R = 2. The domain [0, 6π) traces the whole knot exactly once. The zero
// value is ready to use; the curve has no state.
type TorusKnot struct{}

var _ Curve = TorusKnot{}

// Evaluate implements [Curve]. The trigonometric formulas are periodic, so
// every real t is valid. Derivatives up to order 2 are exact closed-form
// expressions; higher orders fail with [ErrUnsupportedDerivative].
func (TorusKnot) Evaluate(t float64, derivs int) (Evaluation, error) {
	if derivs < 0 {
		return Evaluation{}, fmt.Errorf("torusknot: %w: negative derivative order %d",
			ErrInvalidArgument, derivs)
	}
	if derivs > 2 {
		return Evaluation{}, fmt.Errorf("torusknot: %w: order %d, closed forms exist up to order 2",
			ErrUnsupportedDerivative, derivs)
	}

	const p, q, r = torusKnotP, torusKnotQ, torusKnotR
	sp, cp := math.Sincos(p * t)
	sq, cq := math.Sincos(q * t)

	ev := Evaluation{
		Position: Pt((r+cq)*cp, (r+cq)*sp, sq),
	}
	if derivs >= 1 {
		ev.Derivatives = make([]Vec3, derivs)
		ev.Derivatives[0] = Vec(
			-p*(r+cq)*sp-q*sq*cp,
			p*(r+cq)*cp-q*sq*sp,
			q*cq,
		)
	}
	if derivs >= 2 {
		// Product rule applied to the first-derivative terms.
		ev.Derivatives[1] = Vec(
			-p*(p*(r+cq)*cp-q*sq*sp)-q*(q*cq*cp-p*sq*sp),
			p*(-p*(r+cq)*sp-q*sq*cp)-q*(q*cq*sp+p*sq*cp),
			-q*q*sq,
		)
	}
	return ev, nil
}

// Domain implements [Curve]. For p = 2 and q = 3 the knot needs 6π to close.
func (TorusKnot) Domain() (start, end float64) {
	return 0, 6 * math.Pi
}

// IsClosed implements [Curve].
func (TorusKnot) IsClosed() bool {
	return true
}
