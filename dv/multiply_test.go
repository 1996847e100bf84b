// SPDX-License-Identifier: MIT

package dv_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvlabs/dvmath/dv"
)

// mustMul is a test helper: multiply or fail the test.
func mustMul(t *testing.T, a, b dv.Element) dv.Element {
	t.Helper()
	p, err := a.Mul(b)
	require.NoError(t, err)

	return p
}

// TestMul_Level0_RealProduct verifies the base case is plain real
// multiplication.
func TestMul_Level0_RealProduct(t *testing.T) {
	a := dv.MustNew(dv.LevelReal, 3)
	b := dv.MustNew(dv.LevelReal, -4)
	assert.Equal(t, []float64{-12}, mustMul(t, a, b).Components())
}

// TestMul_Level1_ComplexTable verifies the level-1 product against the
// complex identity (1+2i)(3+4i) = -5+10i, and i*i = -1.
func TestMul_Level1_ComplexTable(t *testing.T) {
	a := dv.MustNew(dv.LevelComplex, 1, 2)
	b := dv.MustNew(dv.LevelComplex, 3, 4)
	assert.Equal(t, []float64{-5, 10}, mustMul(t, a, b).Components())

	i, err := dv.Generator(dv.LevelComplex)
	require.NoError(t, err)
	minusOne := dv.MustNew(dv.LevelComplex, -1, 0)
	assert.True(t, mustMul(t, i, i).Equal(minusOne), "i² = -1")
}

// TestMul_Level2_QuaternionTable pins the level-2 basis table: the cyclic
// products e1e2=e3, e2e3=e1, e3e1=e2 and their sign-flipped reversals.
func TestMul_Level2_QuaternionTable(t *testing.T) {
	basis := func(i int) dv.Element {
		e, err := dv.Basis(dv.LevelQuaternion, i)
		require.NoError(t, err)

		return e
	}
	e1, e2, e3 := basis(1), basis(2), basis(3)

	assert.True(t, mustMul(t, e1, e2).Equal(e3), "e1e2 = e3")
	assert.True(t, mustMul(t, e2, e3).Equal(e1), "e2e3 = e1")
	assert.True(t, mustMul(t, e3, e1).Equal(e2), "e3e1 = e2")
	assert.True(t, mustMul(t, e2, e1).Equal(e3.Neg()), "e2e1 = -e3")

	minusOne := dv.MustNew(dv.LevelQuaternion, -1, 0, 0, 0)
	for i := 1; i < 4; i++ {
		sq := mustMul(t, basis(i), basis(i))
		assert.True(t, sq.Equal(minusOne), "e%d² = -1", i)
	}
}

// TestMul_Level3_BasisSquares verifies every imaginary octonion unit
// squares to −1 under the doubling construction.
func TestMul_Level3_BasisSquares(t *testing.T) {
	minusOne := dv.MustNew(dv.LevelOctonion, -1, 0, 0, 0, 0, 0, 0, 0)
	for i := 1; i < 8; i++ {
		e, err := dv.Basis(dv.LevelOctonion, i)
		require.NoError(t, err)
		assert.True(t, mustMul(t, e, e).Equal(minusOne), "e%d² = -1", i)
	}
}

// TestMul_Identity verifies One is a two-sided multiplicative identity at
// every level.
func TestMul_Identity(t *testing.T) {
	for level := 0; level <= dv.MaxLevel; level++ {
		one, err := dv.One(level)
		require.NoError(t, err)

		comps := make([]float64, 1<<level)
		for i := range comps {
			comps[i] = float64(i) - 1.5
		}
		e := dv.MustNew(level, comps...)

		assert.True(t, mustMul(t, one, e).Equal(e), "1*x = x at level %d", level)
		assert.True(t, mustMul(t, e, one).Equal(e), "x*1 = x at level %d", level)
	}
}

// TestMul_CommutativityBoundary verifies the law loss line: level <= 1
// commutes for all inputs, levels 2 and 3 have witnesses that do not.
func TestMul_CommutativityBoundary(t *testing.T) {
	// Level 1: commutative (spot-check on random pairs).
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		a := dv.MustNew(dv.LevelComplex, rng.NormFloat64(), rng.NormFloat64())
		b := dv.MustNew(dv.LevelComplex, rng.NormFloat64(), rng.NormFloat64())
		assert.True(t, mustMul(t, a, b).Equal(mustMul(t, b, a)), "level 1 must commute")
	}

	// Levels 2 and 3: the first two imaginary units anticommute.
	for level := 2; level <= dv.MaxLevel; level++ {
		e1, err := dv.Basis(level, 1)
		require.NoError(t, err)
		e2, err := dv.Basis(level, 2)
		require.NoError(t, err)

		ab, ba := mustMul(t, e1, e2), mustMul(t, e2, e1)
		assert.False(t, ab.Equal(ba), "level %d basis generators must not commute", level)
		assert.True(t, ab.Equal(ba.Neg()), "e1e2 = -e2e1 at level %d", level)
	}
}

// TestMul_AssociativityBoundary verifies levels 1–2 associate for all
// inputs and level 3 has a non-associative basis triple.
func TestMul_AssociativityBoundary(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for level := 1; level <= 2; level++ {
		for trial := 0; trial < 50; trial++ {
			a := randomElement(rng, level)
			b := randomElement(rng, level)
			c := randomElement(rng, level)

			left := mustMul(t, mustMul(t, a, b), c)
			right := mustMul(t, a, mustMul(t, b, c))
			assert.True(t, left.Equal(right, dv.WithAbsTol(1e-9)),
				"level %d must associate", level)
		}
	}

	// (e1e2)e4 = e7 but e1(e2e4) = -e7 under the doubling table.
	basis := func(i int) dv.Element {
		e, err := dv.Basis(dv.LevelOctonion, i)
		require.NoError(t, err)

		return e
	}
	e1, e2, e4, e7 := basis(1), basis(2), basis(4), basis(7)

	left := mustMul(t, mustMul(t, e1, e2), e4)
	right := mustMul(t, e1, mustMul(t, e2, e4))
	assert.True(t, left.Equal(e7), "(e1e2)e4 = e7")
	assert.True(t, right.Equal(e7.Neg()), "e1(e2e4) = -e7")
	assert.False(t, left.Equal(right), "level 3 witness triple must not associate")
}

// TestMul_NormMultiplicativity checks ||ab|| ≈ ||a||·||b|| at every level
// on fixed and randomized inputs (relative tolerance 1e-6). A violation
// here means the doubling kernel is broken, not that the algebra lost the
// property.
func TestMul_NormMultiplicativity(t *testing.T) {
	a := dv.MustNew(dv.LevelOctonion, 1, 2, 3, 4, 5, 6, 7, 8)
	b := dv.MustNew(dv.LevelOctonion, 8, 7, 6, 5, 4, 3, 2, 1)
	assert.InEpsilon(t, a.Norm()*b.Norm(), mustMul(t, a, b).Norm(), 1e-6)

	rng := rand.New(rand.NewSource(13))
	for level := 0; level <= dv.MaxLevel; level++ {
		for trial := 0; trial < 100; trial++ {
			x := randomElement(rng, level)
			y := randomElement(rng, level)
			want := x.Norm() * y.Norm()
			if want == 0 {
				continue
			}
			assert.InEpsilon(t, want, mustMul(t, x, y).Norm(), 1e-6,
				"norm multiplicativity at level %d", level)
		}
	}
}

// randomElement builds an element with standard-normal components from rng.
func randomElement(rng *rand.Rand, level int) dv.Element {
	comps := make([]float64, 1<<level)
	for i := range comps {
		comps[i] = rng.NormFloat64()
	}

	return dv.MustNew(level, comps...)
}
