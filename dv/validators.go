// SPDX-License-Identifier: MIT

// Package dv: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for level/shape/finiteness guards.
//   - Keep operators minimal by delegating all boundary checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly via opErrorf.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package dv

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opNew     = "New"
	opBasis   = "Basis"
	opAdd     = "Add"
	opSub     = "Sub"
	opMul     = "Mul"
	opDiv     = "Div"
	opInverse = "Inverse"
	opPow     = "Pow"
	opSTO     = "STO"
	opRotate  = "RotateBasis"
	opAt      = "Component"
	opComplex = "ToComplex"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil; wrapping a nil cause is a programmer error.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateLevel ensures 0 <= level <= MaxLevel.
// Returns ErrBadLevel otherwise. Complexity: O(1).
func validateLevel(level int) error {
	if level < 0 || level > MaxLevel {
		return ErrBadLevel
	}

	return nil
}

// validateSameLevel ensures a and b belong to the same algebra.
// Returns ErrLevelMismatch otherwise. Complexity: O(1).
func validateSameLevel(a, b Element) error {
	if a.level != b.level {
		return ErrLevelMismatch
	}

	return nil
}

// validateFinite rejects NaN and ±Inf components at ingestion time.
// Returns ErrNaNInf on the first offending component. Complexity: O(n).
func validateFinite(comps []float64) error {
	for _, c := range comps {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrNaNInf
		}
	}

	return nil
}
