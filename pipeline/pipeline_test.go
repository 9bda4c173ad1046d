// File: pipeline/pipeline_test.go
package pipeline_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/voltkern/voltkern/admittance"
	"github.com/voltkern/voltkern/landmark"
	"github.com/voltkern/voltkern/netbuild"
	"github.com/voltkern/voltkern/netmodel"
	"github.com/voltkern/voltkern/pipeline"
)

// feederNetwork builds the reference six-bus radial feeder.
func feederNetwork(t *testing.T) *netmodel.Network {
	t.Helper()
	net, err := netmodel.New(6)
	require.NoError(t, err)
	branches := []netmodel.Branch{
		{From: 0, To: 1, R: 1.0, X: 0.5, Phase: netmodel.PhaseA},
		{From: 1, To: 2, R: 1.0, X: 0.5, Phase: netmodel.PhaseA},
		{From: 2, To: 3, R: 0.6, X: 0.3, Phase: netmodel.PhaseA},
		{From: 3, To: 4, R: 0.6, X: 0.3, Phase: netmodel.PhaseA},
		{From: 4, To: 5, R: 0.6, X: 0.3, Phase: netmodel.PhaseA},
	}
	for _, br := range branches {
		require.NoError(t, net.AddBranch(br))
	}
	return net
}

// zonedChain builds a 39-bus chain cut into three zones of thirteen buses.
func zonedChain(t *testing.T) *netmodel.Network {
	t.Helper()
	net, err := netbuild.Chain(39,
		netbuild.WithBusRows(0.5, 0.25, 1.0),
		netbuild.WithZoneSize(13),
	)
	require.NoError(t, err)
	return net
}

// meshNetwork builds the nine-bus meshed fixture whose greedy landmark
// picks are improvable by swap refinement.
func meshNetwork(t *testing.T) *netmodel.Network {
	t.Helper()
	net, err := netmodel.New(9)
	require.NoError(t, err)
	branches := []netmodel.Branch{
		{From: 1, To: 3, R: 0.353, X: 0.138, Phase: netmodel.PhaseA},
		{From: 3, To: 7, R: 1.347, X: 0.964, Phase: netmodel.PhaseA},
		{From: 7, To: 0, R: 0.878, X: 0.506, Phase: netmodel.PhaseA},
		{From: 0, To: 5, R: 0.291, X: 0.117, Phase: netmodel.PhaseA},
		{From: 5, To: 6, R: 1.157, X: 0.32, Phase: netmodel.PhaseA},
		{From: 6, To: 4, R: 0.675, X: 0.511, Phase: netmodel.PhaseA},
		{From: 4, To: 2, R: 0.326, X: 0.939, Phase: netmodel.PhaseA},
		{From: 2, To: 8, R: 1.816, X: 0.183, Phase: netmodel.PhaseA},
		{From: 8, To: 1, R: 1.542, X: 0.526, Phase: netmodel.PhaseA},
		{From: 1, To: 4, R: 0.623, X: 0.781, Phase: netmodel.PhaseA},
		{From: 3, To: 7, R: 1.089, X: 0.444, Phase: netmodel.PhaseA},
	}
	for _, br := range branches {
		require.NoError(t, net.AddBranch(br))
	}
	return net
}

// TestRun_EndToEnd asks for two landmarks on the reference feeder and
// checks every output artifact of the scenario.
func TestRun_EndToEnd(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.LandmarkCount = 2

	res, err := pipeline.Run(feederNetwork(t), cfg)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 5}, res.Landmarks, "the two buses most electrically distant from the junction")

	rows, cols := res.Weights.Dims()
	assert.Equal(t, 6, rows)
	assert.Equal(t, 2, cols)
	assert.InDelta(t, 1, res.Weights.At(0, 0), 1e-9)
	assert.InDelta(t, 1, res.Weights.At(5, 1), 1e-9)

	require.NotNil(t, res.Kernel)
	require.Len(t, res.Kernel.Phases, 1)
	assert.Equal(t, netmodel.PhaseA, res.Kernel.Phases[0].Phase)
	assert.NotNil(t, res.Kernel.Combined)
}

// TestRun_InsufficientRank requests more landmarks than buses.
func TestRun_InsufficientRank(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.LandmarkCount = 7

	_, err := pipeline.Run(feederNetwork(t), cfg)
	require.ErrorIs(t, err, landmark.ErrInsufficientRank)

	var rankErr *landmark.RankError
	require.ErrorAs(t, err, &rankErr)
	assert.Equal(t, 7, rankErr.Requested)
	assert.Equal(t, 6, rankErr.Dim)
}

// TestRun_ZoneQuotas runs the quota scenario: three zones of thirteen
// buses, four landmarks each.
func TestRun_ZoneQuotas(t *testing.T) {
	net := zonedChain(t)
	cfg := pipeline.DefaultConfig()
	cfg.LandmarkCount = 12
	cfg.ZoneQuotas = map[int]int{0: 4, 1: 4, 2: 4}

	res, err := pipeline.Run(net, cfg)
	require.NoError(t, err)
	require.Len(t, res.Landmarks, 12)

	zones := net.Zones()
	counts := make(map[int]int)
	for _, p := range res.Landmarks {
		counts[zones[p]]++
	}
	assert.Equal(t, map[int]int{0: 4, 1: 4, 2: 4}, counts)
}

// TestRun_QuotaInfeasible asks one zone for more landmarks than it has
// buses and expects the typed zone failure.
func TestRun_QuotaInfeasible(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.LandmarkCount = 22
	cfg.ZoneQuotas = map[int]int{0: 14, 1: 4, 2: 4}

	_, err := pipeline.Run(zonedChain(t), cfg)
	require.ErrorIs(t, err, landmark.ErrQuotaInfeasible)

	var quotaErr *landmark.QuotaError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, 0, quotaErr.Zone)
	assert.Equal(t, 13, quotaErr.Pool)
}

// TestRun_SwapScoreOption checks both refinement scores end to end on the
// meshed fixture.
func TestRun_SwapScoreOption(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.LandmarkCount = 3
	cfg.SwapRefinementPasses = 2

	res, err := pipeline.Run(meshNetwork(t), cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 8}, res.Landmarks, "log-det refinement")

	cfg.SwapRefinementPasses = 4
	res, err = pipeline.Run(meshNetwork(t), cfg, pipeline.WithSwapScore(landmark.ScoreTraceResidual))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 2}, res.Landmarks, "trace-residual refinement")
}

// TestRun_Validation covers the nil-network guard, config rejection and
// stage-error passthrough.
func TestRun_Validation(t *testing.T) {
	_, err := pipeline.Run(nil, pipeline.DefaultConfig())
	assert.ErrorIs(t, err, pipeline.ErrNilNetwork)

	cfg := pipeline.DefaultConfig()
	cfg.LandmarkCount = 0
	_, err = pipeline.Run(feederNetwork(t), cfg)
	assert.ErrorIs(t, err, pipeline.ErrConfig)

	// A degenerate branch surfaces the admittance stage's typed error.
	net, err := netmodel.New(3)
	require.NoError(t, err)
	require.NoError(t, net.AddBranch(netmodel.Branch{From: 0, To: 1, R: 0, X: 0, Phase: netmodel.PhaseA}))
	cfg = pipeline.DefaultConfig()
	cfg.LandmarkCount = 2
	_, err = pipeline.Run(net, cfg)
	assert.ErrorIs(t, err, admittance.ErrDegenerateBranch)
}

// TestRun_ConcurrentScenarios invokes Run from several goroutines over
// independent networks; every result must match the serial reference.
func TestRun_ConcurrentScenarios(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.LandmarkCount = 12
	cfg.ZoneQuotas = map[int]int{0: 4, 1: 4, 2: 4}

	reference, err := pipeline.Run(zonedChain(t), cfg)
	require.NoError(t, err)

	const workers = 4
	nets := make([]*netmodel.Network, workers)
	for i := range nets {
		nets[i] = zonedChain(t)
	}

	results := make([]*pipeline.Result, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = pipeline.Run(nets[i], cfg)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, reference.Landmarks, results[i].Landmarks, "worker %d", i)
		assert.True(t, mat.EqualApprox(reference.Weights, results[i].Weights, 1e-15), "worker %d weights", i)
	}
}

// TestOptions_Panics checks the Run option guards.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { pipeline.WithSwapScore(landmark.Score(99)) })
	assert.Panics(t, func() { pipeline.WithLogger(nil) })
}
