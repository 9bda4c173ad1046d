package kernel_test

import (
	"testing"

	"github.com/voltkern/voltkern/kernel"
	"github.com/voltkern/voltkern/netbuild"
)

// BenchmarkBuild measures the full admittance→Laplacian→inverse chain on a
// single-phase 120-bus chain.
// Complexity: O(n³) dominated by the Cholesky inversion.
func BenchmarkBuild(b *testing.B) {
	net, err := netbuild.Chain(120, netbuild.WithImpedance(func(i int) (float64, float64) {
		return 0.3 + 0.01*float64(i%7), 0.1 + 0.005*float64(i%5)
	}))
	if err != nil {
		b.Fatalf("setup Chain failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kernel.Build(net); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}
