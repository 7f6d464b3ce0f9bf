// Package model loads and validates the particle spectrum of the colored
// dark sector.
//
// The spectrum comes from a YAML model file listing every particle with its
// name, PDG-style code, mass and quantum numbers. The file is validated
// against an embedded CUE schema before anything downstream sees it; model
// problems are the only fatal errors in the program.
package model

import (
	"fmt"
	"sort"

	"colorelic/internal/pdg"
)

// Particle is one entry of the model file.
type Particle struct {
	Name  string  `yaml:"name"`
	PDG   int64   `yaml:"pdg"`
	Mass  float64 `yaml:"mass"`
	Spin  int64   `yaml:"spin"`
	Color int64   `yaml:"color"`
}

// Spectrum resolves particle codes to names and names to masses.
// Antiparticles share the entry of their particle: lookups go by |code|.
//
// Read-only after construction; safe for concurrent use.
type Spectrum struct {
	name      string
	particles []Particle
	byID      map[int64]Particle
	byName    map[string]Particle
}

// Model returns the model name from the file header, when loaded from one.
func (s *Spectrum) Model() string {
	return s.name
}

// NewSpectrum indexes a particle list. Duplicate codes or names are
// configuration errors.
func NewSpectrum(particles []Particle) (*Spectrum, error) {
	s := &Spectrum{
		particles: make([]Particle, len(particles)),
		byID:      make(map[int64]Particle, len(particles)),
		byName:    make(map[string]Particle, len(particles)),
	}
	copy(s.particles, particles)

	for _, p := range particles {
		id := abs(p.PDG)
		if _, dup := s.byID[id]; dup {
			return nil, fmt.Errorf("duplicate particle code %d", p.PDG)
		}
		if _, dup := s.byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate particle name %q", p.Name)
		}
		s.byID[id] = p
		s.byName[p.Name] = p
	}

	return s, nil
}

// NameOf resolves a particle code (either sign) to its model name.
func (s *Spectrum) NameOf(id int64) (string, error) {
	if p, ok := s.byID[abs(id)]; ok {
		return p.Name, nil
	}
	return "", fmt.Errorf("no particle with code %d in the model", id)
}

// MassOf returns the mass (GeV) of a named particle.
func (s *Spectrum) MassOf(name string) (float64, error) {
	if p, ok := s.byName[name]; ok {
		return p.Mass, nil
	}
	return 0, fmt.Errorf("no particle named %q in the model", name)
}

// Particles returns the spectrum sorted by ascending mass.
func (s *Spectrum) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	sort.Slice(out, func(i, j int) bool { return out[i].Mass < out[j].Mass })
	return out
}

// Candidate returns the dark-matter candidate: the lightest particle in the
// reserved heavy-partner range. Failing to identify one is fatal for the
// caller.
func (s *Spectrum) Candidate() (Particle, error) {
	var best Particle
	found := false
	for _, p := range s.particles {
		if !pdg.IsHeavyPartner(p.PDG) {
			continue
		}
		if !found || p.Mass < best.Mass {
			best = p
			found = true
		}
	}
	if !found {
		return Particle{}, fmt.Errorf("model contains no dark-sector particle (codes >= %d)", pdg.HeavyPartnerMin)
	}
	return best, nil
}

func abs(id int64) int64 {
	if id < 0 {
		return -id
	}
	return id
}
