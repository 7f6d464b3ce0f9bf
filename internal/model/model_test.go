package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParticles() []Particle {
	return []Particle{
		{Name: "~X3", PDG: 9000103, Mass: 1200.0, Spin: 1, Color: 3},
		{Name: "~X8", PDG: 9000508, Mass: 2400.0, Spin: 5, Color: 8},
		{Name: "u", PDG: 2, Mass: 0.0022, Spin: 1, Color: 3},
	}
}

func TestNewSpectrum_RejectsDuplicates(t *testing.T) {
	_, err := NewSpectrum([]Particle{
		{Name: "~X3", PDG: 9000103, Mass: 1200.0},
		{Name: "~X3b", PDG: -9000103, Mass: 1300.0},
	})
	require.Error(t, err, "codes of equal magnitude collide")
	assert.Contains(t, err.Error(), "duplicate particle code")

	_, err = NewSpectrum([]Particle{
		{Name: "~X3", PDG: 9000103, Mass: 1200.0},
		{Name: "~X3", PDG: 9000206, Mass: 1300.0},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate particle name")
}

func TestSpectrum_NameOf(t *testing.T) {
	s, err := NewSpectrum(testParticles())
	require.NoError(t, err)

	name, err := s.NameOf(9000103)
	require.NoError(t, err)
	assert.Equal(t, "~X3", name)

	// Antiparticles resolve to the particle entry.
	name, err = s.NameOf(-9000103)
	require.NoError(t, err)
	assert.Equal(t, "~X3", name)

	_, err = s.NameOf(424242)
	assert.Error(t, err)
}

func TestSpectrum_MassOf(t *testing.T) {
	s, err := NewSpectrum(testParticles())
	require.NoError(t, err)

	m, err := s.MassOf("~X8")
	require.NoError(t, err)
	assert.Equal(t, 2400.0, m)

	_, err = s.MassOf("~missing")
	assert.Error(t, err)
}

func TestSpectrum_Candidate(t *testing.T) {
	s, err := NewSpectrum(testParticles())
	require.NoError(t, err)

	c, err := s.Candidate()
	require.NoError(t, err)
	assert.Equal(t, "~X3", c.Name, "candidate is the lightest heavy-sector particle")

	// A spectrum with no heavy sector has no candidate.
	smOnly, err := NewSpectrum([]Particle{{Name: "u", PDG: 2, Mass: 0.0022}})
	require.NoError(t, err)
	_, err = smOnly.Candidate()
	assert.Error(t, err)
}

func TestSpectrum_ParticlesSortedByMass(t *testing.T) {
	s, err := NewSpectrum(testParticles())
	require.NoError(t, err)

	ps := s.Particles()
	require.Len(t, ps, 3)
	for i := 1; i < len(ps); i++ {
		assert.LessOrEqual(t, ps[i-1].Mass, ps[i].Mass)
	}
}
