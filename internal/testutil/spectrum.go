// Package testutil provides small deterministic fakes shared across test
// packages.
package testutil

import "fmt"

// StaticSpectrum is a fixed code -> (name, mass) table implementing the
// engine's Spectrum interface. Lookups of unknown codes or names fail, which
// lets tests drive the spectrum-error path.
type StaticSpectrum struct {
	Names  map[int64]string
	Masses map[string]float64
}

// NewStaticSpectrum builds a spectrum where every entry maps a code to a
// generated name and the given mass. Antiparticles resolve to the same entry.
func NewStaticSpectrum(masses map[int64]float64) *StaticSpectrum {
	s := &StaticSpectrum{
		Names:  make(map[int64]string, len(masses)),
		Masses: make(map[string]float64, len(masses)),
	}
	for id, m := range masses {
		name := fmt.Sprintf("~p%d", id)
		s.Names[id] = name
		s.Names[-id] = name
		s.Masses[name] = m
	}
	return s
}

// NameOf implements xsec.Spectrum.
func (s *StaticSpectrum) NameOf(id int64) (string, error) {
	if name, ok := s.Names[id]; ok {
		return name, nil
	}
	return "", fmt.Errorf("unknown particle code %d", id)
}

// MassOf implements xsec.Spectrum.
func (s *StaticSpectrum) MassOf(name string) (float64, error) {
	if m, ok := s.Masses[name]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown particle %q", name)
}
