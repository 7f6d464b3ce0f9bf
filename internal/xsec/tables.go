package xsec

import "colorelic/internal/pdg"

// Channel selects one of the two supported final states.
type Channel int

const (
	// QuarkPair is the light quark-antiquark final state (codes 1..6).
	QuarkPair Channel = iota
	// GluonPair is the two-gluon final state (code 21 twice).
	GluonPair
)

// String returns the label used in diagnostics and channel reports.
func (c Channel) String() string {
	switch c {
	case QuarkPair:
		return "qq"
	case GluonPair:
		return "gg"
	default:
		return "unknown"
	}
}

// endpoint keys one closed-form amplitude by the spin class and color
// representation of the annihilating pair.
type endpoint struct {
	class pdg.SpinClass
	rep   pdg.Rep
}

// The four tables below hold the endpoint coefficients of the closed-form
// annihilation amplitudes: one table per final state and enhancement state,
// nine entries each (3 spin classes x 3 color representations). The values
// are the fixed group-theory coefficients of the companion model's amplitude
// tables; momentum and couplings enter only the validation path, never the
// dispatched value.

// treeQuark: leading-order XX -> qq.
var treeQuark = map[endpoint]float64{
	{pdg.Scalar, pdg.Rep3}:  7.0 / 108.0,
	{pdg.Scalar, pdg.Rep6}:  95.0 / 432.0,
	{pdg.Scalar, pdg.Rep8}:  27.0 / 64.0,
	{pdg.Fermion, pdg.Rep3}: 14.0 / 27.0,
	{pdg.Fermion, pdg.Rep6}: 28.0 / 27.0,
	{pdg.Fermion, pdg.Rep8}: 27.0 / 32.0,
	{pdg.Vector, pdg.Rep3}:  4.0 / 27.0,
	{pdg.Vector, pdg.Rep6}:  10.0 / 27.0,
	{pdg.Vector, pdg.Rep8}:  27.0 / 16.0,
}

// treeGluon: leading-order XX -> gg.
var treeGluon = map[endpoint]float64{
	{pdg.Scalar, pdg.Rep3}:  7.0 / 216.0,
	{pdg.Scalar, pdg.Rep6}:  133.0 / 432.0,
	{pdg.Scalar, pdg.Rep8}:  27.0 / 32.0,
	{pdg.Fermion, pdg.Rep3}: 7.0 / 54.0,
	{pdg.Fermion, pdg.Rep6}: 49.0 / 54.0,
	{pdg.Fermion, pdg.Rep8}: 27.0 / 8.0,
	{pdg.Vector, pdg.Rep3}:  19.0 / 54.0,
	{pdg.Vector, pdg.Rep6}:  133.0 / 108.0,
	{pdg.Vector, pdg.Rep8}:  81.0 / 16.0,
}

// sommerfeldQuark: ladder-resummed XX -> qq.
var sommerfeldQuark = map[endpoint]float64{
	{pdg.Scalar, pdg.Rep3}:  11.0 / 108.0,
	{pdg.Scalar, pdg.Rep6}:  151.0 / 432.0,
	{pdg.Scalar, pdg.Rep8}:  43.0 / 64.0,
	{pdg.Fermion, pdg.Rep3}: 22.0 / 27.0,
	{pdg.Fermion, pdg.Rep6}: 44.0 / 27.0,
	{pdg.Fermion, pdg.Rep8}: 43.0 / 32.0,
	{pdg.Vector, pdg.Rep3}:  7.0 / 27.0,
	{pdg.Vector, pdg.Rep6}:  16.0 / 27.0,
	{pdg.Vector, pdg.Rep8}:  43.0 / 16.0,
}

// sommerfeldGluon: ladder-resummed XX -> gg.
var sommerfeldGluon = map[endpoint]float64{
	{pdg.Scalar, pdg.Rep3}:  11.0 / 216.0,
	{pdg.Scalar, pdg.Rep6}:  211.0 / 432.0,
	{pdg.Scalar, pdg.Rep8}:  43.0 / 32.0,
	{pdg.Fermion, pdg.Rep3}: 11.0 / 54.0,
	{pdg.Fermion, pdg.Rep6}: 77.0 / 54.0,
	{pdg.Fermion, pdg.Rep8}: 43.0 / 8.0,
	{pdg.Vector, pdg.Rep3}:  29.0 / 54.0,
	{pdg.Vector, pdg.Rep6}:  211.0 / 108.0,
	{pdg.Vector, pdg.Rep8}:  129.0 / 16.0,
}

// amplitude resolves the endpoint for a channel, enhancement state and
// classification. Returns false when the tables carry no entry, which is the
// dispatch default for out-of-range classifications.
func amplitude(ch Channel, sommerfeld bool, class pdg.SpinClass, rep pdg.Rep) (float64, bool) {
	var table map[endpoint]float64
	switch {
	case ch == QuarkPair && !sommerfeld:
		table = treeQuark
	case ch == QuarkPair && sommerfeld:
		table = sommerfeldQuark
	case ch == GluonPair && !sommerfeld:
		table = treeGluon
	case ch == GluonPair && sommerfeld:
		table = sommerfeldGluon
	default:
		return 0, false
	}

	v, ok := table[endpoint{class: class, rep: rep}]
	return v, ok
}
