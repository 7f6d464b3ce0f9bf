// Package pdg decodes the quantum numbers this model encodes in its PDG-style
// particle codes.
//
// The colored dark-sector partners live in the reserved range |id| >= 9000000.
// Within that range the decimal digits carry the classification:
//
//   - units/tens digit: color representation (3, 6 or 8)
//   - hundreds/thousands digit: spin code (1-6)
//
// Light quarks keep their standard codes 1-6 and the gluon is 21.
package pdg

// Gluon is the standard PDG code for the gluon.
const Gluon = 21

// HeavyPartnerMin is the lower bound of the reserved code range for the
// colored dark-sector partners.
const HeavyPartnerMin = 9000000

// Color returns the color representation encoded in the last two decimal
// digits of a particle code. Sign-independent: Color(id) == Color(-id).
func Color(id int64) int64 {
	return abs(id) % 100
}

// Spin returns the spin code encoded in the 3rd and 4th decimal digits of a
// particle code. Sign-independent: Spin(id) == Spin(-id).
func Spin(id int64) int64 {
	return (abs(id) / 100) % 100
}

// Rep is a validated color representation.
type Rep int

const (
	Rep3 Rep = 3 // (anti)fundamental triplet
	Rep6 Rep = 6 // sextet
	Rep8 Rep = 8 // adjoint octet
)

// ClassifyRep maps a raw color digit to a representation.
// Returns false for anything outside {3, 6, 8}.
func ClassifyRep(color int64) (Rep, bool) {
	switch color {
	case 3, 6, 8:
		return Rep(color), true
	default:
		return 0, false
	}
}

// SpinClass groups the six spin codes into the three amplitude classes.
type SpinClass int

const (
	Scalar  SpinClass = iota // spin codes 1, 2
	Fermion                  // spin codes 3, 4
	Vector                   // spin codes 5, 6
)

// String returns the lower-case class name used in diagnostics.
func (c SpinClass) String() string {
	switch c {
	case Scalar:
		return "scalar"
	case Fermion:
		return "fermion"
	case Vector:
		return "vector"
	default:
		return "unknown"
	}
}

// ClassifySpin maps a raw spin code to its amplitude class.
// Returns false for codes outside [1, 6].
func ClassifySpin(spin int64) (SpinClass, bool) {
	switch {
	case spin == 1 || spin == 2:
		return Scalar, true
	case spin == 3 || spin == 4:
		return Fermion, true
	case spin == 5 || spin == 6:
		return Vector, true
	default:
		return 0, false
	}
}

// IsHeavyPartner reports whether the code lies in the reserved dark-sector
// range.
func IsHeavyPartner(id int64) bool {
	return abs(id) >= HeavyPartnerMin
}

// IsLightQuark reports whether the code is one of the six quark flavors.
func IsLightQuark(id int64) bool {
	a := abs(id)
	return a >= 1 && a <= 6
}

func abs(id int64) int64 {
	if id < 0 {
		return -id
	}
	return id
}
