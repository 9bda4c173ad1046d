package landmark_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/voltkern/voltkern/kernel"
	"github.com/voltkern/voltkern/landmark"
	"github.com/voltkern/voltkern/netbuild"
)

// benchImpedance varies branch impedances so the benchmark matrix carries
// no accidental uniformity.
func benchImpedance(i int) (r, x float64) {
	return 0.3 + 0.01*float64(i%7), 0.1 + 0.005*float64(i%5)
}

// benchKernel builds the 120-bus chain kernel shared by the benchmarks.
func benchKernel(b *testing.B) *mat.SymDense {
	b.Helper()
	net, err := netbuild.Chain(120, netbuild.WithImpedance(benchImpedance))
	if err != nil {
		b.Fatalf("setup Chain failed: %v", err)
	}
	res, err := kernel.Build(net)
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	return res.Combined
}

// BenchmarkSelect measures greedy selection of 12 landmarks from a 120-bus
// chain kernel (built once, outside the timed loop).
// Complexity: O(count·n²) per iteration.
func BenchmarkSelect(b *testing.B) {
	k := benchKernel(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := landmark.Select(k, 12); err != nil {
			b.Fatalf("Select failed: %v", err)
		}
	}
}

// BenchmarkSelect_SwapRefinement adds two refinement passes under the
// log-det score to the same workload.
func BenchmarkSelect_SwapRefinement(b *testing.B) {
	k := benchKernel(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := landmark.Select(k, 12, landmark.WithSwapPasses(2)); err != nil {
			b.Fatalf("Select failed: %v", err)
		}
	}
}
