package qcd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphaS_ClampsBelowOneGeV(t *testing.T) {
	ref := AlphaS(1.0)

	for _, q := range []float64{0.9, 0.5, 0.1, 0.001} {
		assert.Equal(t, ref, AlphaS(q), "AlphaS(%v) must equal AlphaS(1)", q)
	}
}

func TestAlphaS_PositiveAndFinite(t *testing.T) {
	for q := 1.0; q <= 1e4; q *= 1.7 {
		a := AlphaS(q)
		assert.True(t, a > 0, "AlphaS(%v) = %v must be positive", q, a)
		assert.False(t, math.IsNaN(a) || math.IsInf(a, 0), "AlphaS(%v) must be finite", q)
		assert.True(t, a < 1, "AlphaS(%v) = %v must stay perturbative", q, a)
	}
}

func TestAlphaS_MonotonicallyDecreasing(t *testing.T) {
	prev := AlphaS(1.0)
	for q := 1.5; q <= 1e4; q *= 1.3 {
		a := AlphaS(q)
		assert.Less(t, a, prev, "asymptotic freedom: AlphaS must fall with scale (q=%v)", q)
		prev = a
	}
}

func TestAlphaS_ContinuousAtThresholds(t *testing.T) {
	// The per-regime Lambda values are matched so the coupling does not jump
	// at the flavor thresholds beyond numerical matching residue.
	const eps = 1e-9
	const tol = 1e-3

	for _, threshold := range []float64{1.28, 4.18, 160.0} {
		below := AlphaS(threshold - eps)
		above := AlphaS(threshold + eps)
		assert.InDelta(t, below, above, tol,
			"coupling discontinuity at threshold %v", threshold)
	}
}

func TestAlphaS_ReferenceRange(t *testing.T) {
	// World-average neighborhood at the Z mass.
	aZ := AlphaS(91.1876)
	assert.Greater(t, aZ, 0.10)
	assert.Less(t, aZ, 0.13)

	// Deep perturbative regime at 1 TeV.
	aTeV := AlphaS(1000.0)
	assert.Greater(t, aTeV, 0.05)
	assert.Less(t, aTeV, 0.10)
}

func TestInvExp(t *testing.T) {
	// Large x: factor approaches 1.
	assert.InDelta(t, 1.0, InvExp(50.0), 1e-12)

	// Small positive x: diverges like 1/x.
	x := 1e-4
	assert.InDelta(t, 1.0/x, InvExp(x), 1.0)

	// Exact value at x = 1.
	e := math.E
	assert.InDelta(t, e/(e-1.0), InvExp(1.0), 1e-12)
}
