// SPDX-License-Identifier: MIT

// Package dv: functional configuration for the numeric policy.
// This file defines:
//   - Option and the internal options state,
//   - documented defaults (constants, single source of truth),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that folds options over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package dv

import "math"

// Numeric policy defaults. These constants are the single source of truth
// for zero-value behavior and MUST match defaultOptions.
const (
	// DefaultSingularEps is the singularity threshold applied to the
	// SQUARED norm: an element x is singular iff NormSq(x) < SingularEps.
	// The same threshold governs the scalar-divisor branch (s² compared),
	// so dividing by the scalar k and by the embedded element [k, 0, …]
	// take the same branch.
	DefaultSingularEps = 1e-10

	// DefaultRelTol is the relative tolerance for component-wise equality.
	DefaultRelTol = 1e-9

	// DefaultAbsTol is the absolute tolerance floor for component-wise
	// equality, needed when components are at or near zero.
	DefaultAbsTol = 1e-12
)

// Option adjusts the numeric policy of a single operation.
// Pass options to the tolerance-sensitive operations (Equal, IsZero,
// Inverse, Div, DivScalar, Pow); operations without a tolerance ignore them.
type Option func(*options)

// options is the internal, immutable-per-call numeric policy snapshot.
type options struct {
	singularEps float64 // squared-norm singularity threshold
	relTol      float64 // relative equality tolerance
	absTol      float64 // absolute equality tolerance
}

// defaultOptions mirrors the Default* constants exactly.
func defaultOptions() options {
	return options{
		singularEps: DefaultSingularEps,
		relTol:      DefaultRelTol,
		absTol:      DefaultAbsTol,
	}
}

// gatherOptions folds opts over the defaults and returns the snapshot.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}

// WithSingularEps overrides the squared-norm singularity threshold.
// Panics if eps is not a finite positive number (programmer error).
func WithSingularEps(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic("dv: WithSingularEps requires a finite eps > 0")
	}

	return func(o *options) { o.singularEps = eps }
}

// WithRelTol overrides the relative equality tolerance.
// Panics if tol is negative, NaN or Inf (programmer error).
func WithRelTol(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 0) {
		panic("dv: WithRelTol requires a finite tol >= 0")
	}

	return func(o *options) { o.relTol = tol }
}

// WithAbsTol overrides the absolute equality tolerance.
// Panics if tol is negative, NaN or Inf (programmer error).
func WithAbsTol(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 0) {
		panic("dv: WithAbsTol requires a finite tol >= 0")
	}

	return func(o *options) { o.absTol = tol }
}
