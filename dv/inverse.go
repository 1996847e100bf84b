// SPDX-License-Identifier: MIT

// Package dv: multiplicative inverse, division and integer powers.
//
// Error design, in one place: Inverse is the only operation that FAILS on a
// singular operand (there is no value to return). Div never fails on one —
// a singular divisor routes the numerator through STO, making division
// total by design. Pow inherits Inverse's failure for negative exponents.

package dv

// Inverse returns conj(e) / NormSq(e), the two-sided multiplicative inverse.
//
// Errors:
//   - ErrSingularOperand — NormSq(e) < SingularEps (default
//     DefaultSingularEps). Callers needing a value instead of a failure
//     must invoke STO explicitly; Div does exactly that.
//
// Complexity: O(dim).
func (e Element) Inverse(opts ...Option) (Element, error) {
	o := gatherOptions(opts...)
	nsq := e.NormSq()
	if nsq < o.singularEps {
		return Element{}, opErrorf(opInverse, ErrSingularOperand)
	}

	// Per-component division, not multiplication by the reciprocal: the two
	// round differently (3/25 != 3*(1/25) in doubles) and the reference
	// semantics divide.
	buf := conjComp(e.comps())
	for i := range buf {
		buf[i] /= nsq
	}

	return Element{level: e.level, comp: buf}, nil
}

// Div returns e / den, defined as e * Inverse(den) for a non-singular
// divisor. A singular divisor does NOT fail: the quotient is STO(e), the
// deterministic norm-preserving substitute — so distinct numerators keep
// distinct quotients even at the singularity.
//
// Errors:
//   - ErrLevelMismatch   — operands from different algebras.
//   - ErrSingularOperand — only at level 0, where no STO rotation exists.
//
// Complexity: O(dim^2).
func (e Element) Div(den Element, opts ...Option) (Element, error) {
	if err := validateSameLevel(e, den); err != nil {
		return Element{}, opErrorf(opDiv, err)
	}

	o := gatherOptions(opts...)
	if den.NormSq() < o.singularEps {
		if e.level == LevelReal {
			return Element{}, opErrorf(opDiv, ErrSingularOperand)
		}
		sto, err := e.STO()
		if err != nil {
			return Element{}, opErrorf(opDiv, err)
		}

		return sto, nil
	}

	inv, err := den.Inverse(opts...)
	if err != nil {
		return Element{}, opErrorf(opDiv, err)
	}

	return e.Mul(inv)
}

// DivScalar returns e / s. The singular branch mirrors Div exactly: s is
// singular iff s*s < SingularEps, the same squared-magnitude test applied
// to elements, so dividing by the scalar k and by the embedded element
// [k, 0, …] always take the same branch.
//
// Errors:
//   - ErrSingularOperand — singular s at level 0 only.
//
// Complexity: O(dim).
func (e Element) DivScalar(s float64, opts ...Option) (Element, error) {
	o := gatherOptions(opts...)
	if s*s < o.singularEps {
		if e.level == LevelReal {
			return Element{}, opErrorf(opDiv, ErrSingularOperand)
		}
		sto, err := e.STO()
		if err != nil {
			return Element{}, opErrorf(opDiv, err)
		}

		return sto, nil
	}

	// Divide, do not scale by 1/s (rounding parity with Inverse).
	src := e.comps()
	buf := make([]float64, len(src))
	for i := range src {
		buf[i] = src[i] / s
	}

	return Element{level: e.level, comp: buf}, nil
}

// Pow returns e raised to the integer power n via binary exponentiation.
//
// The accumulation order is part of the contract: the running result is
// always multiplied on the LEFT of the current base power
// (result = result*base, then base = base*base). At level 3 a different
// association order yields a different numeric value, so this order must
// be reproduced exactly by any alternate implementation.
//
// Errors:
//   - ErrSingularOperand — n < 0 and e is singular (Pow(n<0) is
//     Inverse(e) raised to −n).
//
// Complexity: O(log |n|) multiplies.
func (e Element) Pow(n int, opts ...Option) (Element, error) {
	if n == 0 {
		one, _ := One(e.level)

		return one, nil
	}

	base := e
	if n < 0 {
		inv, err := e.Inverse(opts...)
		if err != nil {
			return Element{}, opErrorf(opPow, err)
		}
		base = inv
		n = -n
	}

	result, _ := One(e.level)
	for n > 0 {
		if n&1 == 1 {
			result = Element{level: e.level, comp: mulComp(e.level, result.comps(), base.comps())}
		}
		base = Element{level: e.level, comp: mulComp(e.level, base.comps(), base.comps())}
		n >>= 1
	}

	return result, nil
}
