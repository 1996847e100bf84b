// SPDX-License-Identifier: MIT

// Package dv: Element constructors, accessors and comparisons.
//
// Purpose:
//   - Explicit, side-effect-free construction of elements and of the named
//     constants (Zero, One, Generator, Basis) — no package-level mutable
//     state, nothing happens on import.
//   - Safe accessors: Component returns an error, never panics.
//   - Tolerance-aware equality (rel+abs, per component) — exact float
//     comparison is meaningless after any arithmetic path.

package dv

import (
	"math"
	"strconv"
	"strings"
)

// zeroComps backs zero-value and Zero() elements. Read-only by convention:
// no kernel ever writes into an input slice.
var zeroComps = make([]float64, 1<<MaxLevel)

// New constructs an Element of the given level from exactly 1<<level
// components, value part first.
//
// Errors:
//   - ErrBadLevel      — level outside [0, MaxLevel].
//   - ErrBadDimension  — wrong component count.
//   - ErrNaNInf        — any non-finite component.
//
// The input slice is copied; the caller keeps ownership.
// Complexity: O(dim).
func New(level int, comps ...float64) (Element, error) {
	if err := validateLevel(level); err != nil {
		return Element{}, opErrorf(opNew, err)
	}
	if len(comps) != 1<<level {
		return Element{}, opErrorf(opNew, ErrBadDimension)
	}
	if err := validateFinite(comps); err != nil {
		return Element{}, opErrorf(opNew, err)
	}

	buf := make([]float64, len(comps))
	copy(buf, comps)

	return Element{level: level, comp: buf}, nil
}

// MustNew is New that panics on error. Intended for fixed literals in
// examples and tests, where a failure is a programmer error.
func MustNew(level int, comps ...float64) Element {
	e, err := New(level, comps...)
	if err != nil {
		panic(err)
	}

	return e
}

// Scalar embeds the real number v into the level's algebra: [v, 0, …, 0].
// Errors: ErrBadLevel, ErrNaNInf. Complexity: O(dim).
func Scalar(level int, v float64) (Element, error) {
	if err := validateLevel(level); err != nil {
		return Element{}, opErrorf(opNew, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Element{}, opErrorf(opNew, ErrNaNInf)
	}

	buf := make([]float64, 1<<level)
	buf[0] = v

	return Element{level: level, comp: buf}, nil
}

// Zero returns the additive identity of the level's algebra.
// Errors: ErrBadLevel. Complexity: O(1).
func Zero(level int) (Element, error) {
	if err := validateLevel(level); err != nil {
		return Element{}, opErrorf(opNew, err)
	}

	return Element{level: level}, nil
}

// One returns the multiplicative identity of the level's algebra.
// Errors: ErrBadLevel. Complexity: O(dim).
func One(level int) (Element, error) {
	return Scalar(level, 1)
}

// Basis returns the i-th basis unit of the level's algebra (0 <= i < dim);
// index 0 is the scalar unit, indices >= 1 are the imaginary units.
// Errors: ErrBadLevel, ErrOutOfRange. Complexity: O(dim).
func Basis(level, i int) (Element, error) {
	if err := validateLevel(level); err != nil {
		return Element{}, opErrorf(opBasis, err)
	}
	if i < 0 || i >= 1<<level {
		return Element{}, opErrorf(opBasis, ErrOutOfRange)
	}

	buf := make([]float64, 1<<level)
	buf[i] = 1

	return Element{level: level, comp: buf}, nil
}

// Generator returns the primary rotation generator of the level: the first
// imaginary basis unit, the element whose left-multiplication defines STO.
// Errors: ErrBadLevel for level 0 (the real line has no imaginary unit).
// Complexity: O(dim).
func Generator(level int) (Element, error) {
	if level < LevelComplex {
		return Element{}, opErrorf(opBasis, ErrBadLevel)
	}

	return Basis(level, 1)
}

// FromComplex embeds a complex number as a level-1 element [re, im].
// Complexity: O(1).
func FromComplex(c complex128) Element {
	return Element{level: LevelComplex, comp: []float64{real(c), imag(c)}}
}

// ToComplex converts a level-1 element to complex128 via the isomorphism
// [v, d] ↦ v + di. Errors: ErrBadLevel for any other level.
func (e Element) ToComplex() (complex128, error) {
	if e.level != LevelComplex {
		return 0, opErrorf(opComplex, ErrBadLevel)
	}

	c := e.comps()

	return complex(c[0], c[1]), nil
}

// comps returns a read-only view of e's components, materializing the
// shared all-zero backing for zero-value elements. Never write through it.
func (e Element) comps() []float64 {
	if e.comp == nil {
		return zeroComps[:e.Dim()]
	}

	return e.comp
}

// Component returns the i-th component (0 = value part).
// Errors: ErrOutOfRange. Complexity: O(1).
func (e Element) Component(i int) (float64, error) {
	if i < 0 || i >= e.Dim() {
		return 0, opErrorf(opAt, ErrOutOfRange)
	}

	return e.comps()[i], nil
}

// Components returns a fresh copy of all components, value part first.
// Complexity: O(dim).
func (e Element) Components() []float64 {
	out := make([]float64, e.Dim())
	copy(out, e.comps())

	return out
}

// Value returns the scalar (value) part, component 0.
// Complexity: O(1).
func (e Element) Value() float64 { return e.comps()[0] }

// String renders the element as "[v, d1, …]" with %g component formatting.
func (e Element) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range e.comps() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteByte(']')

	return sb.String()
}

// isClose reports |a-b| <= max(relTol*max(|a|,|b|), absTol).
func isClose(a, b float64, o options) bool {
	diff := math.Abs(a - b)
	bound := o.relTol * math.Max(math.Abs(a), math.Abs(b))

	return diff <= math.Max(bound, o.absTol)
}

// Equal reports component-wise closeness under the rel+abs tolerance policy
// (defaults DefaultRelTol / DefaultAbsTol). Elements of different levels are
// never equal; that case is a plain false, not an error, so Equal can be
// used in predicates without ceremony.
// Complexity: O(dim).
func (e Element) Equal(other Element, opts ...Option) bool {
	if e.level != other.level {
		return false
	}

	o := gatherOptions(opts...)
	ec, oc := e.comps(), other.comps()
	for i := range ec {
		if !isClose(ec[i], oc[i], o) {
			return false
		}
	}

	return true
}

// IsZero reports whether e is singular: NormSq(e) < SingularEps (default
// DefaultSingularEps). This is the exact predicate Div uses to pick the
// STO branch. Complexity: O(dim).
func (e Element) IsZero(opts ...Option) bool {
	return e.NormSq() < gatherOptions(opts...).singularEps
}
