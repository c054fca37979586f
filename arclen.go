package curve

import "math"

// Arclen returns the arc length of c over its full domain.
//
// The length is computed by integrating the magnitude of the first derivative
// with Legendre-Gauss quadrature, subdividing the parameter interval until
// two successive estimates agree to within accuracy. The result is only as
// good as the curve's first derivative: [SubdivisionCurve]'s central
// difference is not parameter-scaled, so its arc length carries that scaling.
func Arclen(c Curve, accuracy float64) (float64, error) {
	start, end := c.Domain()
	return arclen(c, start, end, accuracy, 0)
}

func arclen(c Curve, a, b, accuracy float64, depth int) (float64, error) {
	whole, err := arclenQuadrature(c, a, b)
	if err != nil {
		return 0, err
	}
	mid := 0.5 * (a + b)
	left, err := arclenQuadrature(c, a, mid)
	if err != nil {
		return 0, err
	}
	right, err := arclenQuadrature(c, mid, b)
	if err != nil {
		return 0, err
	}
	if math.Abs(left+right-whole) <= accuracy || depth >= 16 {
		return left + right, nil
	}
	l, err := arclen(c, a, mid, 0.5*accuracy, depth+1)
	if err != nil {
		return 0, err
	}
	r, err := arclen(c, mid, b, 0.5*accuracy, depth+1)
	if err != nil {
		return 0, err
	}
	return l + r, nil
}

func arclenQuadrature(c Curve, a, b float64) (float64, error) {
	t0 := 0.5 * (a + b)
	dt := 0.5 * (b - a)
	var sum float64
	for _, coeff := range gaussLegendreCoeffs16 {
		wi, xi := coeff[0], coeff[1]
		ev, err := c.Evaluate(t0+xi*dt, 1)
		if err != nil {
			return 0, err
		}
		sum += wi * ev.Derivatives[0].Hypot()
	}
	return sum * dt, nil
}

// Table of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs16 = [...][2]float64{
	{0.1894506104550685, -0.0950125098376374},
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, -0.2816035507792589},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, -0.4580167776572274},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, -0.6178762444026438},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, -0.7554044083550030},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, -0.8656312023878318},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, -0.9445750230732326},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, -0.9894009349916499},
	{0.0271524594117541, 0.9894009349916499},
}
