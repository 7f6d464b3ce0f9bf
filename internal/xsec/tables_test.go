package xsec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"colorelic/internal/pdg"
)

func TestAmplitude_TablesAreComplete(t *testing.T) {
	classes := []pdg.SpinClass{pdg.Scalar, pdg.Fermion, pdg.Vector}
	reps := []pdg.Rep{pdg.Rep3, pdg.Rep6, pdg.Rep8}

	for _, ch := range []Channel{QuarkPair, GluonPair} {
		for _, enhanced := range []bool{false, true} {
			for _, class := range classes {
				for _, rep := range reps {
					v, ok := amplitude(ch, enhanced, class, rep)
					assert.True(t, ok, "missing endpoint: %s enhanced=%v %s rep=%d", ch, enhanced, class, rep)
					assert.Greater(t, v, 0.0, "endpoints are positive coefficients")
				}
			}
		}
	}
}

func TestAmplitude_EnhancedEndpointsDiffer(t *testing.T) {
	// The enhanced and tree tables dispatch identically but must not carry
	// the same constants.
	for _, ch := range []Channel{QuarkPair, GluonPair} {
		tree, _ := amplitude(ch, false, pdg.Fermion, pdg.Rep8)
		enhanced, _ := amplitude(ch, true, pdg.Fermion, pdg.Rep8)
		assert.NotEqual(t, tree, enhanced, "channel %s", ch)
	}
}

func TestAmplitude_DispatchDefault(t *testing.T) {
	_, ok := amplitude(QuarkPair, false, pdg.SpinClass(9), pdg.Rep3)
	assert.False(t, ok)

	_, ok = amplitude(GluonPair, true, pdg.Scalar, pdg.Rep(4))
	assert.False(t, ok)

	_, ok = amplitude(Channel(7), false, pdg.Scalar, pdg.Rep3)
	assert.False(t, ok)
}

func TestChannel_String(t *testing.T) {
	assert.Equal(t, "qq", QuarkPair.String())
	assert.Equal(t, "gg", GluonPair.String())
	assert.Equal(t, "unknown", Channel(7).String())
}
