package curve

// knotVector is a non-decreasing sequence of parameter values defining the
// span boundaries of a B-spline's piecewise polynomials. It is generated once
// at construction and never mutated.
type knotVector []float64

// newClampedUniformKnots returns the clamped uniform knot vector for n control
// points of the given degree: the first degree+1 knots are 0, interior knots
// are the integers 1, 2, ..., and the last degree+1 knots repeat the maximum.
// The length is n + degree + 1.
func newClampedUniformKnots(n, degree int) knotVector {
	m := n + degree + 1
	kv := make(knotVector, m)
	for i := degree + 1; i < m-(degree+1); i++ {
		kv[i] = float64(i - degree)
	}
	maxValue := float64(m - 2*(degree+1) + 1)
	for i := m - (degree + 1); i < m; i++ {
		kv[i] = maxValue
	}
	return kv
}

// domain returns the parameter range between the first and last non-repeated
// knots. A clamped curve interpolates its control polygon's endpoints there.
func (kv knotVector) domain(degree int) (start, end float64) {
	return kv[degree], kv[len(kv)-1-degree]
}

// span returns the index of the knot span containing t, scanning the n−degree
// candidate spans in order. The final parameter value belongs to the last
// span, so the half-open intervals do not exclude the domain's endpoint.
func (kv knotVector) span(degree, n int, t float64) int {
	for j := degree; j < n; j++ {
		if t >= kv[j] && t < kv[j+1] {
			return j
		}
	}
	return n - 1
}
