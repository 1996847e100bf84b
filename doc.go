// Package dvmath is your in-memory playground for hypercomplex arithmetic —
// a family of 2^k-dimensional Cayley–Dickson algebras (complex, quaternion
// and octonion analogues) with a built-in, norm-preserving treatment of
// division by zero.
//
// 🚀 What is dvmath?
//
//	A small, thread-safe, zero-dependency engine that brings together:
//		• Element primitives: immutable fixed-size vectors at levels 0–3
//		• One generic Cayley–Dickson multiply shared by every dimension
//		• The full operator set: add, scale, conjugate, norm, inverse, power
//		• Total division: singular divisors route through the STO rotation
//		• Diagnostics: associator, commutator and norm-multiplicativity checks
//
// ✨ Why choose dvmath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable values, explicit numeric policy
//   - Pure Go – no cgo, no hidden deps
//   - Honest algebra – non-commutativity and non-associativity are measured,
//     not hidden
//
// Under the hood, everything is organized under two subpackages:
//
//	dv/      — Element type, Cayley–Dickson construction, operators & STO
//	dvcheck/ — read-only property diagnostics built on the dv contract
//
// Quick ASCII example:
//
//	    level 0   level 1   level 2   level 3
//	      ℝ    →    ℂ    →    ℍ    →    𝕆
//	     dim 1    dim 2     dim 4     dim 8
//
//	each doubling step trades one algebraic law for one new dimension pair.
//
// Dive into the package docs for the multiplication rule, the singularity
// treatment contract, and worked examples.
//
//	go get github.com/dvlabs/dvmath/dv
package dvmath
