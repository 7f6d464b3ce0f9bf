// Package relic solves the freeze-out of the colored dark sector and turns
// the thermally averaged annihilation cross section into a relic abundance.
//
// The solver is the host side of the cross-section override contract: it
// never computes an amplitude itself, it samples the injected callback at
// every momentum point of the thermal average, once per annihilation channel.
// The freeze-out temperature comes from the standard fixed-point iteration
// and the abundance from the standard non-relativistic freeze-out formula.
package relic

import (
	"fmt"
	"math"

	"colorelic/internal/model"
	"colorelic/internal/pdg"
)

// CrossSection is the override callback registered by the correction engine:
// (in1, in2, out1, out2, momentum, &value).
type CrossSection func(n1, n2, n3, n4 int64, p float64, res *float64)

// Planck mass in GeV.
const planckMass = 1.22091e19

// Effective relativistic degrees of freedom on the freeze-out plateau
// (valid for freeze-out temperatures of roughly 1-100 GeV).
const gStar = 86.25

// Freeze-out coefficient of the standard x_f iteration.
const freezeOutCoeff = 0.038

// Options tunes the solver. The zero value picks the defaults.
type Options struct {
	Points     int     // quadrature points per thermal average (default 64)
	XfGuess    float64 // starting point of the x_f iteration (default 20)
	Iterations int     // fixed-point iterations (default 20)
}

func (o Options) withDefaults() Options {
	if o.Points <= 0 {
		o.Points = 64
	}
	if o.XfGuess <= 0 {
		o.XfGuess = 20.0
	}
	if o.Iterations <= 0 {
		o.Iterations = 20
	}
	return o
}

// ChannelShare is one annihilation channel's fraction of the thermally
// averaged cross section at freeze-out.
type ChannelShare struct {
	Label string  `json:"label"`
	Share float64 `json:"share"`
}

// Result is the outcome of a freeze-out computation.
type Result struct {
	Xf       float64 // freeze-out m/T
	SigmaV   float64 // <sigma v> at freeze-out
	OmegaH2  float64 // relic abundance
	Channels []ChannelShare
}

// Solver integrates the Boltzmann freeze-out for one dark-matter candidate.
type Solver struct {
	candidate model.Particle
	improve   CrossSection
	opts      Options
}

// New builds a solver around the candidate and the cross-section callback.
func New(candidate model.Particle, improve CrossSection, opts Options) *Solver {
	return &Solver{
		candidate: candidate,
		improve:   improve,
		opts:      opts.withDefaults(),
	}
}

// quark flavor labels indexed by PDG code.
var flavorNames = [...]string{1: "d", 2: "u", 3: "s", 4: "c", 5: "b", 6: "t"}

// channel is one annihilation final state of the candidate pair.
type channel struct {
	label      string
	out1, out2 int64
}

// channels enumerates the supported annihilation channels of the candidate
// pair: six quark flavors and the gluon pair.
func (s *Solver) channels() []channel {
	out := make([]channel, 0, 7)
	for f := int64(1); f <= 6; f++ {
		out = append(out, channel{
			label: fmt.Sprintf("XX -> %s %sbar", flavorNames[f], flavorNames[f]),
			out1:  f,
			out2:  -f,
		})
	}
	return append(out, channel{label: "XX -> g g", out1: pdg.Gluon, out2: pdg.Gluon})
}

// sigmaV sums the callback over all channels at one momentum point.
func (s *Solver) sigmaV(p float64) float64 {
	total := 0.0
	id := s.candidate.PDG
	for _, ch := range s.channels() {
		var res float64
		s.improve(id, -id, ch.out1, ch.out2, p, &res)
		total += res
	}
	return total
}

// channelSigmaV thermally averages a single channel.
func (s *Solver) channelSigmaV(out1, out2 int64, x float64) float64 {
	id := s.candidate.PDG
	return thermalAverage(func(p float64) float64 {
		var res float64
		s.improve(id, -id, out1, out2, p, &res)
		return res
	}, s.candidate.Mass, x, s.opts.Points)
}

// Solve runs the freeze-out iteration and assembles the result.
func (s *Solver) Solve() (Result, error) {
	m := s.candidate.Mass
	g := s.internalDOF()

	average := func(x float64) float64 {
		return thermalAverage(s.sigmaV, m, x, s.opts.Points)
	}

	// Fixed-point iteration for the freeze-out temperature:
	//   x_f = ln( c g m M_Pl <sigma v>(x_f) / sqrt(g* x_f) )
	xf := s.opts.XfGuess
	for i := 0; i < s.opts.Iterations; i++ {
		sv := average(xf)
		arg := freezeOutCoeff * g * m * planckMass * sv / math.Sqrt(gStar*xf)
		if arg <= 1.0 {
			return Result{}, fmt.Errorf("freeze-out iteration diverged: annihilation too weak (<sigma v> = %g at x = %g)", sv, xf)
		}
		xf = math.Log(arg)
	}

	sv := average(xf)
	if sv <= 0 {
		return Result{}, fmt.Errorf("thermally averaged cross section vanished at freeze-out")
	}

	// Standard non-relativistic freeze-out abundance.
	omega := 1.07e9 * xf / (math.Sqrt(gStar) * planckMass * sv)

	result := Result{Xf: xf, SigmaV: sv, OmegaH2: omega}
	for _, ch := range s.channels() {
		chSV := s.channelSigmaV(ch.out1, ch.out2, xf)
		result.Channels = append(result.Channels, ChannelShare{
			Label: ch.label,
			Share: chSV / sv,
		})
	}

	return result, nil
}

// internalDOF counts the candidate's internal degrees of freedom from its
// quantum numbers: spin states times color dimension, doubled for the
// antiparticle. Falls back to 2 when the classification digits are invalid.
func (s *Solver) internalDOF() float64 {
	class, okSpin := pdg.ClassifySpin(s.candidate.Spin)
	rep, okRep := pdg.ClassifyRep(s.candidate.Color)
	if !okSpin || !okRep {
		return 2.0
	}

	spinStates := map[pdg.SpinClass]float64{
		pdg.Scalar:  1,
		pdg.Fermion: 2,
		pdg.Vector:  3,
	}[class]

	return 2.0 * spinStates * float64(rep)
}
