// SPDX-License-Identifier: MIT

// Package dv: the total operators — addition, scaling, conjugation, norm.
// None of these can fail except on a level mismatch between two elements;
// scalar variants are separate methods so the contract stays closed
// (Element×Element at one level, or Element×float64 — nothing else).

package dv

import "math"

// Add returns e + other, component-wise.
// Errors: ErrLevelMismatch. Complexity: O(dim).
func (e Element) Add(other Element) (Element, error) {
	if err := validateSameLevel(e, other); err != nil {
		return Element{}, opErrorf(opAdd, err)
	}

	ec, oc := e.comps(), other.comps()
	buf := make([]float64, len(ec))
	for i := range ec {
		buf[i] = ec[i] + oc[i]
	}

	return Element{level: e.level, comp: buf}, nil
}

// Sub returns e − other, component-wise.
// Errors: ErrLevelMismatch. Complexity: O(dim).
func (e Element) Sub(other Element) (Element, error) {
	if err := validateSameLevel(e, other); err != nil {
		return Element{}, opErrorf(opSub, err)
	}

	ec, oc := e.comps(), other.comps()
	buf := make([]float64, len(ec))
	for i := range ec {
		buf[i] = ec[i] - oc[i]
	}

	return Element{level: e.level, comp: buf}, nil
}

// AddScalar returns e with s added to the value part only. Total.
// Complexity: O(dim).
func (e Element) AddScalar(s float64) Element {
	buf := e.Components()
	buf[0] += s

	return Element{level: e.level, comp: buf}
}

// SubScalar returns e with s subtracted from the value part only. Total.
// Complexity: O(dim).
func (e Element) SubScalar(s float64) Element {
	return e.AddScalar(-s)
}

// Scale returns e with every component multiplied by s. Total.
// Complexity: O(dim).
func (e Element) Scale(s float64) Element {
	ec := e.comps()
	buf := make([]float64, len(ec))
	for i := range ec {
		buf[i] = ec[i] * s
	}

	return Element{level: e.level, comp: buf}
}

// Neg returns the additive inverse −e. Total. Complexity: O(dim).
func (e Element) Neg() Element { return e.Scale(-1) }

// Conjugate returns e with the value part kept and every depth part
// sign-flipped. At level >= 1 this equals the recursive doubling rule
// conj(a,b) = (conj(a), −b); both formulations agree exactly because
// sign-flips are lossless in IEEE arithmetic. Total. Complexity: O(dim).
func (e Element) Conjugate() Element {
	return Element{level: e.level, comp: conjComp(e.comps())}
}

// conjComp is the kernel behind Conjugate, shared with the multiply
// recursion. Always allocates.
func conjComp(x []float64) []float64 {
	buf := make([]float64, len(x))
	buf[0] = x[0]
	for i := 1; i < len(x); i++ {
		buf[i] = -x[i]
	}

	return buf
}

// NormSq returns the squared Euclidean norm over all components.
// Total, never negative. Complexity: O(dim).
func (e Element) NormSq() float64 {
	var sum float64
	for _, c := range e.comps() {
		sum += c * c
	}

	return sum
}

// Norm returns the Euclidean norm over all components.
// Total, never negative. Complexity: O(dim).
func (e Element) Norm() float64 { return math.Sqrt(e.NormSq()) }
