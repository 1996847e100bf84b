// SPDX-License-Identifier: MIT

// Package dv implements a family of finite-dimensional hypercomplex algebras
// built by repeated Cayley–Dickson doubling, together with a deterministic,
// norm-preserving treatment of division by a zero-norm element (STO).
//
// 🚀 What is dv?
//
//	An Element is an immutable vector of 2^level float64 components:
//	  level 0 — dimension 1 — the real line ℝ
//	  level 1 — dimension 2 — complex analogue ℂ   [v, d]
//	  level 2 — dimension 4 — quaternion analogue ℍ [v, d1, d2, d3]
//	  level 3 — dimension 8 — octonion analogue 𝕆   [v, d1, …, d7]
//
//	Component 0 is the value (scalar) part; the rest are depth parts.
//	Multiplication at level k is defined purely in terms of level k-1:
//
//	  (a,b) * (c,d) = (a*c − conj(d)*b, d*a + b*conj(c))
//
//	with real multiplication at the base. Each doubling step trades one
//	algebraic law for dimension: level 2 loses commutativity, level 3
//	loses associativity. That loss is expected output, not a defect —
//	see the dvcheck package for the instruments that measure it.
//
// ✨ Key guarantees:
//   - Immutable values — every operation returns a fresh Element; safe to
//     share across goroutines with no coordination.
//   - One multiply — a single doubling rule serves every level; the
//     unrolled level-1/level-2 kernels are fast paths behind the same entry
//     point and are cross-validated against the recursive definition.
//   - Total division — a singular divisor routes the numerator through the
//     STO rotation instead of failing, so distinct numerators keep distinct
//     quotients even "at" the singularity.
//   - Explicit numeric policy — the singularity threshold and equality
//     tolerances are functional options with documented defaults, never
//     hidden constants.
//
// ⚙️ Usage:
//
//	import "github.com/dvlabs/dvmath/dv"
//
//	a := dv.MustNew(dv.LevelComplex, 3, 4)
//	fmt.Println(a.Norm()) // 5
//
//	zero, _ := dv.Zero(dv.LevelComplex)
//	q, _ := a.Div(zero)   // no error: q = STO(a) = [-4, 3]
//
// Errors:
//   - ErrSingularOperand — Inverse (and Pow with a negative exponent) on a
//     zero-norm element. The one fatal error in the engine.
//   - ErrLevelMismatch   — mixing elements of different levels.
//   - ErrBadLevel, ErrBadDimension, ErrNaNInf, ErrOutOfRange — construction
//     and indexing guards.
//
// Complexity: every operation is O(dim) except Mul, which is O(dim^2)
// via doubling, and Pow(n), which is O(log n) multiplies.
package dv
