package relic

import "math"

// thermalAverage computes <sigma v>(x) for x = m/T by momentum quadrature
// with the non-relativistic Boltzmann weight p^2 exp(-x p^2/m^2).
//
// sigmaV is sampled once per quadrature point; this is the hot path that
// drives the cross-section callback. Composite Simpson over [0, pmax] with
// pmax chosen so the weight has decayed to numerical irrelevance.
func thermalAverage(sigmaV func(p float64) float64, m, x float64, points int) float64 {
	if points < 2 {
		points = 2
	}
	if points%2 != 0 {
		points++
	}

	// Weight falls as exp(-x p^2/m^2): five thermal widths cover it.
	pmax := 5.0 * m / math.Sqrt(x)
	h := pmax / float64(points)

	num, den := 0.0, 0.0
	for i := 0; i <= points; i++ {
		p := float64(i) * h
		w := p * p * math.Exp(-x*p*p/(m*m))

		c := simpsonCoeff(i, points)
		num += c * w * sigmaV(p)
		den += c * w
	}

	if den == 0 {
		return 0
	}
	return num / den
}

func simpsonCoeff(i, n int) float64 {
	switch {
	case i == 0 || i == n:
		return 1
	case i%2 == 1:
		return 4
	default:
		return 2
	}
}
