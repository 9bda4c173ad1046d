// File: admittance/admittance_test.go
package admittance_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltkern/voltkern/admittance"
	"github.com/voltkern/voltkern/netmodel"
)

// TestBuild_SingleBranchEntries checks the four touched entries against
// hand-computed values for R=1, X=0.5, Shunt=0.1:
//
//	y     = 1/(1+0.5j) = 0.8 - 0.4j
//	diag  = y + j·0.05 = 0.8 - 0.35j
//	off   = -y         = -0.8 + 0.4j
func TestBuild_SingleBranchEntries(t *testing.T) {
	net, err := netmodel.New(2)
	require.NoError(t, err)
	require.NoError(t, net.AddBranch(netmodel.Branch{
		From: 0, To: 1, R: 1.0, X: 0.5, Shunt: 0.1, Phase: netmodel.PhaseA,
	}))

	y, err := admittance.Build(net, netmodel.PhaseA)
	require.NoError(t, err)

	const tol = 1e-12
	assert.InDelta(t, 0.8, real(y.At(0, 0)), tol)
	assert.InDelta(t, -0.35, imag(y.At(0, 0)), tol)
	assert.InDelta(t, 0.8, real(y.At(1, 1)), tol)
	assert.InDelta(t, -0.35, imag(y.At(1, 1)), tol)
	assert.InDelta(t, -0.8, real(y.At(0, 1)), tol)
	assert.InDelta(t, 0.4, imag(y.At(0, 1)), tol)
	assert.InDelta(t, -0.8, real(y.At(1, 0)), tol)
	assert.InDelta(t, 0.4, imag(y.At(1, 0)), tol)
}

// TestBuild_ParallelBranchesAccumulate verifies parallel branches add their
// admittances instead of overwriting each other.
func TestBuild_ParallelBranchesAccumulate(t *testing.T) {
	net, err := netmodel.New(2)
	require.NoError(t, err)
	// Two identical branches in parallel double every entry.
	for i := 0; i < 2; i++ {
		require.NoError(t, net.AddBranch(netmodel.Branch{
			From: 0, To: 1, R: 1.0, X: 0.5, Phase: netmodel.PhaseB,
		}))
	}

	y, err := admittance.Build(net, netmodel.PhaseB)
	require.NoError(t, err)

	const tol = 1e-12
	assert.InDelta(t, 1.6, real(y.At(0, 0)), tol, "doubled conductance on diagonal")
	assert.InDelta(t, -0.8, imag(y.At(0, 0)), tol)
	assert.InDelta(t, -1.6, real(y.At(0, 1)), tol, "doubled off-diagonal")
	assert.InDelta(t, 0.8, imag(y.At(0, 1)), tol)
}

// TestBuild_Symmetry asserts Y[i][j] == Y[j][i] in both real and imaginary
// parts on a randomized small network (seeded, hence reproducible).
func TestBuild_Symmetry(t *testing.T) {
	const n = 5
	rng := rand.New(rand.NewSource(42))

	net, err := netmodel.New(n)
	require.NoError(t, err)
	for b := 0; b < 6; b++ {
		from := rng.Intn(n)
		to := (from + 1 + rng.Intn(n-1)) % n
		require.NoError(t, net.AddBranch(netmodel.Branch{
			From:  from,
			To:    to,
			R:     0.2 + rng.Float64(),
			X:     0.1 + rng.Float64(),
			Shunt: rng.Float64() * 0.1,
			Phase: netmodel.PhaseA,
		}))
	}

	y, err := admittance.Build(net, netmodel.PhaseA)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			assert.Equal(t, real(y.At(i, j)), real(y.At(j, i)), "real part at (%d,%d)", i, j)
			assert.Equal(t, imag(y.At(i, j)), imag(y.At(j, i)), "imag part at (%d,%d)", i, j)
		}
	}
}

// TestBuild_DegenerateBranch propagates a typed error naming the offending
// endpoints instead of silently zeroing the branch.
func TestBuild_DegenerateBranch(t *testing.T) {
	net, err := netmodel.New(3)
	require.NoError(t, err)
	require.NoError(t, net.AddBranch(netmodel.Branch{From: 0, To: 1, R: 0.3, X: 0.1, Phase: netmodel.PhaseC}))
	require.NoError(t, net.AddBranch(netmodel.Branch{From: 1, To: 2, R: 0, X: 0, Phase: netmodel.PhaseC}))

	_, err = admittance.Build(net, netmodel.PhaseC)
	require.ErrorIs(t, err, admittance.ErrDegenerateBranch)

	var be *admittance.BranchError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 1, be.From)
	assert.Equal(t, 2, be.To)
	assert.Equal(t, netmodel.PhaseC, be.Phase)
}

// TestBuild_EmptyPhaseYieldsZeroMatrix keeps a branchless phase legal.
func TestBuild_EmptyPhaseYieldsZeroMatrix(t *testing.T) {
	net, err := netmodel.New(3)
	require.NoError(t, err)
	require.NoError(t, net.AddBus(netmodel.Bus{Index: 0, Phase: netmodel.PhaseA, V: 1}))

	y, err := admittance.Build(net, netmodel.PhaseA)
	require.NoError(t, err)
	r, c := y.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.Zero(t, y.At(i, j), "entry (%d,%d)", i, j)
		}
	}
}

// TestBuild_ArgumentValidation covers the nil-network and invalid-phase
// sentinels.
func TestBuild_ArgumentValidation(t *testing.T) {
	_, err := admittance.Build(nil, netmodel.PhaseA)
	assert.ErrorIs(t, err, admittance.ErrNilNetwork)

	net, err := netmodel.New(2)
	require.NoError(t, err)
	_, err = admittance.Build(net, netmodel.Phase(8))
	assert.ErrorIs(t, err, admittance.ErrInvalidPhase)
}
