// Package dvcheck: report types and option configuration.
package dvcheck

import "math"

// Tolerance defaults. Single source of truth for zero-value behavior.
const (
	// DefaultEpsilon is the norm threshold below which a commutator or
	// associator counts as zero.
	DefaultEpsilon = 1e-9

	// DefaultRelTol is the relative tolerance for the norm-multiplicativity
	// check ‖a·b‖ ≈ ‖a‖·‖b‖.
	DefaultRelTol = 1e-6
)

// ScanReport summarizes an exhaustive associator census over the ordered
// triples of a level's imaginary basis units.
//
// Fields:
//   - Level          — the scanned doubling depth.
//   - Total          — number of ordered triples, (dim−1)³.
//   - NonAssociative — triples with associator norm >= epsilon.
//   - Fraction       — NonAssociative / Total.
//   - MaxNorm        — largest associator norm observed.
//   - MaxTriple      — basis indices (i, j, k) of the first maximum,
//     1-based imaginary units in scan order.
type ScanReport struct {
	Level          int
	Total          int
	NonAssociative int
	Fraction       float64
	MaxNorm        float64
	MaxTriple      [3]int
}

// Option adjusts the tolerances of a single diagnostic call.
type Option func(*options)

type options struct {
	epsilon float64 // zero threshold for commutator/associator norms
	relTol  float64 // relative tolerance for norm multiplicativity
}

func defaultOptions() options {
	return options{epsilon: DefaultEpsilon, relTol: DefaultRelTol}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}

// WithEpsilon overrides the zero threshold for commutator and associator
// norms. Panics if eps is not a finite positive number (programmer error).
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic("dvcheck: WithEpsilon requires a finite eps > 0")
	}

	return func(o *options) { o.epsilon = eps }
}

// WithRelTol overrides the norm-multiplicativity relative tolerance.
// Panics if tol is not a finite positive number (programmer error).
func WithRelTol(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("dvcheck: WithRelTol requires a finite tol > 0")
	}

	return func(o *options) { o.relTol = tol }
}
