// SPDX-License-Identifier: MIT

// Package dv: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dv
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package dv

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dv: " for consistency and easy grepping.
// Do not %w-wrap these sentinels when returning directly; if context is
// essential, wrap with the opErrorf helper at the operation boundary —
// callers will still match via errors.Is.

var (
	// ErrSingularOperand is returned by Inverse — directly, or indirectly
	// through Div/Pow with a negative exponent — when the operand's squared
	// norm is below the configured singularity threshold. It is the only
	// fatal error in the engine: callers needing a value instead of a
	// failure must route through STO explicitly (Div does so for them).
	ErrSingularOperand = errors.New("dv: singular operand")

	// ErrLevelMismatch indicates an operation between elements of different
	// levels. This is a programming-error class, rejected at call time;
	// no silent coercion between algebras ever happens.
	ErrLevelMismatch = errors.New("dv: level mismatch")

	// ErrBadLevel is returned when a requested level is outside [0, MaxLevel],
	// or when an operation requires an imaginary unit the level does not
	// have (Generator/STO at level 0).
	ErrBadLevel = errors.New("dv: unsupported level")

	// ErrBadDimension indicates that a component count does not match the
	// requested level (must be exactly 1 << level).
	ErrBadDimension = errors.New("dv: component count does not match level")

	// ErrNaNInf signals a NaN or ±Inf component where finite values are
	// required by the numeric policy (construction-time ingestion).
	ErrNaNInf = errors.New("dv: NaN or Inf component")

	// ErrOutOfRange indicates that a component or basis index is outside
	// valid bounds. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("dv: index out of range")
)
