package dvcheck_test

import (
	"math/rand"
	"testing"

	"github.com/dvlabs/dvmath/dv"
	"github.com/dvlabs/dvmath/dvcheck"
)

// BenchmarkAssociator_Level3 measures the four-multiply instrument.
func BenchmarkAssociator_Level3(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	mk := func() dv.Element {
		comps := make([]float64, 8)
		for i := range comps {
			comps[i] = rng.NormFloat64()
		}

		return dv.MustNew(dv.LevelOctonion, comps...)
	}
	x, y, z := mk(), mk(), mk()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dvcheck.Associator(x, y, z); err != nil {
			b.Fatalf("Associator failed: %v", err)
		}
	}
}

// BenchmarkScanAssociators_Level3 measures the full 343-triple census.
func BenchmarkScanAssociators_Level3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := dvcheck.ScanAssociators(dv.LevelOctonion); err != nil {
			b.Fatalf("scan failed: %v", err)
		}
	}
}
