// SPDX-License-Identifier: MIT

// Test-bridge for private kernels. Exposes the unaccelerated doubling
// recursion and the unrolled kernels to white-box tests so the fast paths
// can be held to the canonical recursive definition without widening the
// production API. Compiled for tests only by the _test.go rule.

package dv

var (
	// ExportMulGeneric exposes the canonical recursion for cross-validation.
	ExportMulGeneric = mulGeneric

	// ExportMulComp exposes the dispatching kernel (fast paths included).
	ExportMulComp = mulComp
)
