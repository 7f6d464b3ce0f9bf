package xsec

import (
	"fmt"
	"math"

	"colorelic/internal/pdg"
	"colorelic/internal/qcd"
)

// Spectrum resolves particle codes to names and names to masses.
// Implemented by model.Spectrum in production and testutil.StaticSpectrum in
// tests.
type Spectrum interface {
	NameOf(id int64) (string, error)
	MassOf(name string) (float64, error)
}

// CouplingFunc evaluates a running coupling at a momentum scale (GeV).
type CouplingFunc func(scale float64) float64

// Config fixes the engine behavior at construction. There is no package
// state; the enhancement switch and all collaborators are threaded here.
type Config struct {
	// Sommerfeld selects the ladder-resummed amplitude tables instead of the
	// leading-order ones.
	Sommerfeld bool

	// HardCoupling is the host solver's own running coupling, used for the
	// hard process. Defaults to qcd.AlphaS.
	HardCoupling CouplingFunc

	// HardScale is the renormalization scale for the hard process. When zero
	// or negative the engine uses twice the incoming mass.
	HardScale float64

	// Sink receives advisory diagnostics. Defaults to SlogSink.
	Sink Sink
}

// Engine is the cross-section override callback handed to the relic-density
// solver. Safe for concurrent use: all state is read-only after New.
type Engine struct {
	spectrum Spectrum
	cfg      Config
}

// New builds an engine around a spectrum service.
func New(spectrum Spectrum, cfg Config) *Engine {
	if cfg.HardCoupling == nil {
		cfg.HardCoupling = qcd.AlphaS
	}
	if cfg.Sink == nil {
		cfg.Sink = SlogSink{}
	}
	return &Engine{spectrum: spectrum, cfg: cfg}
}

// Sommerfeld reports whether the enhanced tables are selected.
func (e *Engine) Sommerfeld() bool {
	return e.cfg.Sommerfeld
}

// relative difference beyond which the tree-level value is flagged against
// the solver's reference: |1000 (new-old)/old| > 1, i.e. 0.1%.
const mismatchPermille = 1.0

// Improve replaces *res with the corrected cross section for the process
// n1 n2 -> n3 n4 at incoming center-of-mass momentum pin (GeV).
//
// The signature matches the solver's override callback contract. Ineligible
// processes and unsupported final states force *res to zero; every other
// path writes the dispatched value, flagged but unaltered when validation
// complains.
func (e *Engine) Improve(n1, n2, n3, n4 int64, pin float64, res *float64) {
	proc := Process{In1: n1, In2: n2, Out1: n3, Out2: n4}

	// Only annihilation of two equal colored partners qualifies.
	if !pdg.IsHeavyPartner(n1) || !pdg.IsHeavyPartner(n2) ||
		abs(n1) != abs(n2) || pdg.Color(n1) < 3 || pdg.Color(n2) < 3 {
		e.emit(Diagnostic{
			Code:    CodeSkipped,
			Message: "process ignored: incoming pair is not two equal colored partners",
			Process: proc,
		})
		*res = 0
		return
	}

	m1, err := e.massOf(n1)
	if err == nil {
		var m2 float64
		m2, err = e.massOf(n2)
		if err == nil {
			e.improve(proc, pin, m1, m2, res)
			return
		}
	}

	// Without masses there are no kinematics to build. Unlike the advisory
	// checks below this forces the result to zero.
	e.emit(Diagnostic{
		Code:    CodeSpectrum,
		Message: fmt.Sprintf("spectrum lookup failed: %v", err),
		Process: proc,
	})
	*res = 0
}

func (e *Engine) improve(proc Process, pin, m1, m2 float64, res *float64) {
	m := (m1 + m2) / 2.0
	if m1 != m2 {
		e.emit(Diagnostic{
			Code:    CodeMassSplit,
			Message: "masses of incoming particles are not equal",
			Process: proc,
			Context: map[string]float64{"m1": m1, "m2": m2},
		})
	}

	e1 := math.Sqrt(pin*pin + m1*m1)
	e2 := math.Sqrt(pin*pin + m2*m2)
	v := pin / e1
	s := (e1 + e2) * (e1 + e2)

	// Soft coupling at the scale of the exchanged gluons; hard coupling from
	// the host's own running.
	alphaSoft := qcd.AlphaS(pin)
	hardScale := e.cfg.HardScale
	if hardScale <= 0 {
		hardScale = 2.0 * m
	}
	alphaHard := e.cfg.HardCoupling(hardScale)

	// Advisory classification checks: computation proceeds either way; an
	// out-of-range value falls through the dispatch default below.
	colorX := pdg.Color(proc.In1)
	spinX := pdg.Spin(proc.In1)
	rep, repOK := pdg.ClassifyRep(colorX)
	if !repOK {
		e.emit(Diagnostic{
			Code:    CodeColor,
			Message: fmt.Sprintf("color representation %d is invalid", colorX),
			Process: proc,
		})
	}
	class, classOK := pdg.ClassifySpin(spinX)
	if !classOK {
		e.emit(Diagnostic{
			Code:    CodeSpin,
			Message: fmt.Sprintf("spin code %d is invalid", spinX),
			Process: proc,
		})
	}

	var ch Channel
	switch {
	case pdg.IsLightQuark(proc.Out1) && pdg.IsLightQuark(proc.Out2):
		ch = QuarkPair
	case proc.Out1 == pdg.Gluon && proc.Out2 == pdg.Gluon:
		ch = GluonPair
	default:
		e.emit(Diagnostic{
			Code:    CodeChannel,
			Message: "unsupported final state, cross section set to zero",
			Process: proc,
		})
		*res = 0
		return
	}

	ref := *res

	// An invalid classification falls through to the dispatch default: the
	// SpinClass zero value aliases Scalar, so the lookup is gated on the
	// classification results, not only on table membership.
	xsec := 0.0
	value, ok := 0.0, false
	if repOK && classOK {
		value, ok = amplitude(ch, e.cfg.Sommerfeld, class, rep)
	}
	if ok {
		xsec = value
	} else {
		e.emit(Diagnostic{
			Code:    CodeDispatch,
			Message: fmt.Sprintf("no %s amplitude for spin class %s, representation %d", ch, class, rep),
			Process: proc,
		})
	}

	context := map[string]float64{
		"mass": m, "sqrt_s": math.Sqrt(s), "v": v, "p": pin,
		"alpha_hard": alphaHard, "alpha_soft": alphaSoft,
	}

	if math.IsNaN(xsec) || math.IsInf(xsec, 0) {
		e.emit(Diagnostic{
			Code:    CodeNonFinite,
			Message: fmt.Sprintf("cross section is not a number (%v)", xsec),
			Process: proc,
			Context: context,
		})
	}

	// Tree-level self-check against the solver's independently derived value.
	// A zero reference means the solver never computed this process, so there
	// is nothing to compare against.
	if !e.cfg.Sommerfeld && ref != 0 &&
		math.Abs(1000.0*(xsec-ref)/ref) > mismatchPermille {
		context["xsec_ref"] = ref
		context["xsec"] = xsec
		context["ratio"] = ref / xsec
		e.emit(Diagnostic{
			Code:    CodeMismatch,
			Message: "cross section disagrees with solver reference beyond 0.1%",
			Process: proc,
			Context: context,
		})
	}

	*res = xsec
}

func (e *Engine) massOf(id int64) (float64, error) {
	name, err := e.spectrum.NameOf(id)
	if err != nil {
		return 0, fmt.Errorf("resolve name of %d: %w", id, err)
	}
	m, err := e.spectrum.MassOf(name)
	if err != nil {
		return 0, fmt.Errorf("mass of %q: %w", name, err)
	}
	return m, nil
}

func (e *Engine) emit(d Diagnostic) {
	e.cfg.Sink.Emit(d)
}

func abs(id int64) int64 {
	if id < 0 {
		return -id
	}
	return id
}
