package pipeline

import (
	"errors"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/voltkern/voltkern/kernel"
	"github.com/voltkern/voltkern/landmark"
	"github.com/voltkern/voltkern/netmodel"
	"github.com/voltkern/voltkern/nystrom"
)

// ErrNilNetwork indicates a nil scenario network.
var ErrNilNetwork = errors.New("pipeline: nil network")

// Result bundles one scenario's output artifacts.
type Result struct {
	// Landmarks is the selected bus sequence, in pick order.
	Landmarks []int
	// Weights is the n×k interpolation operator; column j belongs to
	// Landmarks[j].
	Weights *mat.Dense
	// Kernel carries the combined kernel and per-phase diagnostics.
	Kernel *kernel.Result
}

// Run executes one scenario end to end: kernel construction, landmark
// selection and the interpolation-operator build.
//
// Implementation:
//   - Stage 1: validate arguments and configuration (fail fast).
//   - Stage 2: kernel.Build — per-phase admittance, Laplacian, regularized
//     Green kernel, combined kernel.
//   - Stage 3: landmark.Select on the combined kernel. With ZoneQuotas
//     configured, zone labels come from the network and quotas bind the
//     selection; without quotas, labeled buses still keep refinement
//     swaps zone-local.
//   - Stage 4: nystrom.Weights with the identity self-check.
//
// Determinism: equal networks and configurations produce identical
// results, including the landmark order. Run keeps no shared state and is
// safe to call concurrently with independent networks.
//
// Errors: ErrNilNetwork, ErrConfig, and unchanged stage errors (typed,
// carrying phase, zone or condition context).
func Run(net *netmodel.Network, cfg Config, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	kres, err := kernel.Build(net,
		kernel.WithMu(cfg.RegularizationMu),
		kernel.WithInversionTolerance(cfg.InversionTolerance),
		kernel.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	o.logger.Debug("kernel stage done",
		zap.Int("buses", net.NumBuses()),
		zap.Int("phases", len(kres.Phases)))

	lmOpts := []landmark.Option{
		landmark.WithSwapPasses(cfg.SwapRefinementPasses),
		landmark.WithScore(o.score),
		landmark.WithLogger(o.logger),
	}
	switch {
	case len(cfg.ZoneQuotas) > 0:
		lmOpts = append(lmOpts, landmark.WithZones(net.Zones()), landmark.WithQuotas(cfg.ZoneQuotas))
	case net.Zoned() && cfg.SwapRefinementPasses > 0:
		// No quotas, but labeled buses: keep refinement swaps zone-local.
		lmOpts = append(lmOpts, landmark.WithZones(net.Zones()))
	}
	picks, err := landmark.Select(kres.Combined, cfg.LandmarkCount, lmOpts...)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("selection stage done", zap.Ints("landmarks", picks))

	w, err := nystrom.Weights(kres.Combined, picks,
		nystrom.WithInversionTolerance(cfg.InversionTolerance),
		nystrom.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	return &Result{Landmarks: picks, Weights: w, Kernel: kres}, nil
}
