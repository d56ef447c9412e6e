package curve_test

import (
	"testing"

	"github.com/katalvlaran/lvplot/curve"
)

// benchmarkSynthesize runs Synthesize for a fixed shape and step count.
func benchmarkSynthesize(b *testing.B, shape curve.Shape, steps float64) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := curve.Synthesize(-150, -307.245057, steps, shape); err != nil {
			b.Fatalf("Synthesize failed: %v", err)
		}
	}
}

func BenchmarkSynthesize_Exponential12(b *testing.B) { benchmarkSynthesize(b, curve.Exponential, 12) }
func BenchmarkSynthesize_Linear12(b *testing.B)      { benchmarkSynthesize(b, curve.Linear, 12) }
func BenchmarkSynthesize_Sigmoid12(b *testing.B)     { benchmarkSynthesize(b, curve.Sigmoid, 12) }

// BenchmarkSynthesize_Sigmoid10k measures the O(n) loop on a long window.
func BenchmarkSynthesize_Sigmoid10k(b *testing.B) { benchmarkSynthesize(b, curve.Sigmoid, 10_000) }
