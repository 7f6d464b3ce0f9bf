// Package xsec implements the Sommerfeld cross-section correction engine.
//
// The engine is registered with the relic-density solver as a cross-section
// override callback. For every momentum sample of every annihilation process
// the solver hands over the four particle codes, the incoming center-of-mass
// momentum and the cross section it computed itself; the engine decides
// whether the process is an annihilation of two equal colored dark-sector
// partners, and if so replaces the cross section with the closed-form value
// from its amplitude tables, with or without the non-perturbative Sommerfeld
// enhancement.
//
// Evaluation flow:
//  1. Eligibility gate: both codes in the heavy-partner range, equal
//     magnitude, non-singlet color. Anything else is zeroed with a skip
//     diagnostic.
//  2. Kinematics: masses from the injected spectrum, relative velocity,
//     invariant mass, soft coupling at the exchanged-gluon scale, hard
//     coupling from the injected host service.
//  3. Dispatch: two-key lookup (spin class x color representation) into the
//     table selected by final state (quark pair or gluon pair) and
//     enhancement switch.
//  4. Validation: finiteness check, and a 0.1% consistency check against the
//     solver's own tree-level value when the enhancement is off.
//
// ERROR POLICY: log and continue. Every diagnostic is advisory; the engine
// always completes and always writes a value into the output slot. The only
// condition that forces the result to zero beyond the gates above is a failed
// spectrum lookup, which leaves no mass to build kinematics from.
//
// The engine sits inside the hot path of a numerical integrator. A call is a
// handful of arithmetic operations and two map lookups; there is no caching,
// no shared mutable state, and the configuration is fixed at construction.
package xsec
