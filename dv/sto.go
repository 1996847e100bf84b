// SPDX-License-Identifier: MIT

// Package dv: the Singularity Treatment Operation.
//
// STO is the designed substitute for "divide by a zero-norm element": a
// fixed, linear, norm-preserving rotation applied to the NUMERATOR when the
// divisor is singular. It is defined as left-multiplication by the level's
// primary rotation generator — Generator(level), the first imaginary basis
// unit — and is computed through the level's own multiply rather than a
// hand-maintained per-level table. Deriving it this way makes norm
// preservation hold by construction (unit rotations preserve length) and
// keeps every level on one convention; the historically published per-level
// tables disagreed with each other on the generator side.
//
// Iterating: the generator squares to −1 and the algebras are alternative,
// so STO(STO(x)) = −x and the map has period 4 at every level >= 1.

package dv

// STO applies the Singularity Treatment Operation: left-multiplication by
// Generator(level). Norm-preserving for every input, singular or not.
//
// Errors:
//   - ErrBadLevel — level 0; the real line has no rotation.
//
// Complexity: O(dim^2) (one multiply).
func (e Element) STO() (Element, error) {
	out, err := e.RotateBasis(1)
	if err != nil {
		return Element{}, opErrorf(opSTO, ErrBadLevel)
	}

	return out, nil
}

// RotateBasis left-multiplies e by the i-th imaginary basis unit
// (1 <= i < dim): the generalized depth rotations of the algebra.
// RotateBasis(1) is STO; at level 2, indices 1..3 rotate through the
// i/j/k axes respectively.
//
// Errors:
//   - ErrBadLevel   — level 0.
//   - ErrOutOfRange — i outside [1, dim).
//
// Complexity: O(dim^2) (one multiply).
func (e Element) RotateBasis(i int) (Element, error) {
	if e.level < LevelComplex {
		return Element{}, opErrorf(opRotate, ErrBadLevel)
	}
	if i < 1 || i >= e.Dim() {
		return Element{}, opErrorf(opRotate, ErrOutOfRange)
	}

	g, err := Basis(e.level, i)
	if err != nil {
		return Element{}, opErrorf(opRotate, err)
	}

	return g.Mul(e)
}
