// SPDX-License-Identifier: MIT

// Package dv: domain types and level constants.
// This file intentionally contains ONLY the Element value type and the
// named level/dimension constants. Errors and options live in dedicated
// files (errors.go, options.go) per the module conventions.
package dv

// Level constants name the supported doubling depths. Dimension is always
// 1 << level.
const (
	// LevelReal is the base case: a single real component.
	LevelReal = 0

	// LevelComplex is one doubling: [value, depth], isomorphic to ℂ.
	LevelComplex = 1

	// LevelQuaternion is two doublings: [v, d1, d2, d3], isomorphic to ℍ.
	LevelQuaternion = 2

	// LevelOctonion is three doublings: [v, d1, …, d7], isomorphic to 𝕆.
	LevelOctonion = 3

	// MaxLevel is the highest level the public constructors accept.
	// The doubling kernels are generic; raising this ceiling is a
	// one-constant change plus tests.
	MaxLevel = LevelOctonion
)

// Element is one member of a 2^level-dimensional Cayley–Dickson algebra.
//
// An Element is an immutable value: no method mutates the receiver, and
// every arithmetic result is a freshly allocated Element. Copies are cheap
// (one slice header) and sharing across goroutines needs no coordination.
//
// The zero value of Element is the level-0 real number 0 and is fully usable.
//
// Component 0 is the value (scalar) part; components 1..dim-1 are the depth
// parts. For multiplication the component vector is reinterpreted as a pair
// of half-length Elements — a logical view, never a second owned buffer.
type Element struct {
	level int       // doubling depth; dimension = 1 << level
	comp  []float64 // len == 1 << level; nil means the all-zero vector
}

// Level reports the doubling depth of e.
// Complexity: O(1).
func (e Element) Level() int { return e.level }

// Dim reports the number of components, always 1 << Level().
// Complexity: O(1).
func (e Element) Dim() int { return 1 << e.level }
