package xsec

import (
	"log/slog"
	"sync"
)

// Code categorizes engine diagnostics.
type Code string

const (
	// CodeSkipped indicates the incoming pair failed the eligibility gate.
	CodeSkipped Code = "PROCESS_SKIPPED"

	// CodeChannel indicates an unsupported final state.
	CodeChannel Code = "CHANNEL_UNSUPPORTED"

	// CodeMassSplit indicates the incoming particles carry unequal masses.
	CodeMassSplit Code = "MASS_MISMATCH"

	// CodeColor indicates a color representation outside {3, 6, 8}.
	CodeColor Code = "COLOR_INVALID"

	// CodeSpin indicates a spin code outside [1, 6].
	CodeSpin Code = "SPIN_INVALID"

	// CodeDispatch indicates the lookup tables had no entry for the decoded
	// classification.
	CodeDispatch Code = "DISPATCH_DEFAULT"

	// CodeNonFinite indicates the computed cross section is NaN or infinite.
	CodeNonFinite Code = "XSEC_NOT_FINITE"

	// CodeMismatch indicates the tree-level value disagrees with the host
	// solver's reference by more than 0.1%.
	CodeMismatch Code = "XSEC_MISMATCH"

	// CodeSpectrum indicates a failed mass or name lookup.
	CodeSpectrum Code = "SPECTRUM_LOOKUP"
)

// Process identifies an annihilation channel by its four particle codes.
type Process struct {
	In1, In2   int64
	Out1, Out2 int64
}

// Diagnostic is one advisory event emitted during evaluation.
// Context carries the kinematic quantities relevant to the event, keyed by
// short names (mass, sqrt_s, v, p, alpha_hard, alpha_soft, ...).
type Diagnostic struct {
	Code    Code
	Message string
	Process Process
	Context map[string]float64
}

// Sink receives diagnostics. Implementations must not block; the engine is
// called inside an integrator loop.
type Sink interface {
	Emit(d Diagnostic)
}

// SlogSink logs diagnostics through slog at warn level.
// The zero value logs through slog.Default.
type SlogSink struct {
	Logger *slog.Logger
}

// Emit implements Sink.
func (s SlogSink) Emit(d Diagnostic) {
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}

	attrs := make([]any, 0, 4+2*len(d.Context))
	attrs = append(attrs,
		"code", string(d.Code),
		"process", []int64{d.Process.In1, d.Process.In2, d.Process.Out1, d.Process.Out2},
	)
	for k, v := range d.Context {
		attrs = append(attrs, k, v)
	}
	l.Warn(d.Message, attrs...)
}

// Recorder collects diagnostics in memory so tests can assert on them
// without capturing console output.
//
// Thread-safe: Emit may be called from any goroutine.
type Recorder struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// Emit implements Sink.
func (r *Recorder) Emit(d Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diags = append(r.diags, d)
}

// All returns a copy of the recorded diagnostics in emission order.
func (r *Recorder) All() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}

// Has reports whether any recorded diagnostic carries the given code.
func (r *Recorder) Has(code Code) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

// Reset clears the recorder for reuse between test cases.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diags = nil
}
