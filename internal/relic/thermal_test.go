package relic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThermalAverage_ConstantIntegrand(t *testing.T) {
	// The average of a momentum-independent sigma v is the value itself.
	got := thermalAverage(func(p float64) float64 { return 3.5 }, 1000.0, 20.0, 64)
	assert.InDelta(t, 3.5, got, 1e-9)
}

func TestThermalAverage_QuadraticIntegrand(t *testing.T) {
	// For sigma v = p^2 the Boltzmann-weighted average has the closed form
	// <p^2> = (3/2) m^2/x (ratio of two Gaussian moments), up to the finite
	// integration window.
	m, x := 1000.0, 25.0
	got := thermalAverage(func(p float64) float64 { return p * p }, m, x, 512)
	want := 1.5 * m * m / x
	assert.InEpsilon(t, want, got, 1e-3)
}

func TestThermalAverage_SamplesEveryPoint(t *testing.T) {
	calls := 0
	thermalAverage(func(p float64) float64 {
		calls++
		return 1.0
	}, 1000.0, 20.0, 64)
	assert.Equal(t, 65, calls, "one callback sample per quadrature node")
}

func TestThermalAverage_DegenerateInputs(t *testing.T) {
	// Too few or odd point counts are rounded up to a valid Simpson grid.
	got := thermalAverage(func(p float64) float64 { return 2.0 }, 1000.0, 20.0, 1)
	assert.False(t, math.IsNaN(got))
	assert.InDelta(t, 2.0, got, 1e-9)

	got = thermalAverage(func(p float64) float64 { return 2.0 }, 1000.0, 20.0, 33)
	assert.InDelta(t, 2.0, got, 1e-9)
}
