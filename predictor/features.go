package predictor

import (
	"fmt"

	"github.com/voltkern/voltkern/netmodel"
)

// Features composes bus's feature vector on ph:
//
//	[P, Q, V, ΣP_nbr, ΣQ_nbr, meanV_nbr]
//
// The neighbor set comes from branch adjacency of the original network,
// not from the kernel; parallel branches count once. Buses without an
// attribute row on ph contribute zeros, and an isolated bus gets zero
// aggregates. The result has length FeatureDim.
func Features(net *netmodel.Network, ph netmodel.Phase, bus int) ([]float64, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if !ph.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPhase, ph)
	}
	if bus < 0 || bus >= net.NumBuses() {
		return nil, fmt.Errorf("%w: bus %d out of range 0..%d", ErrLandmarks, bus, net.NumBuses()-1)
	}

	feats := make([]float64, FeatureDim)
	if b, ok := net.BusAt(ph, bus); ok {
		feats[0], feats[1], feats[2] = b.P, b.Q, b.V
	}
	neighbors := net.Adjacency(ph)[bus]
	for _, nb := range neighbors {
		b, _ := net.BusAt(ph, nb)
		feats[3] += b.P
		feats[4] += b.Q
		feats[5] += b.V
	}
	if len(neighbors) > 0 {
		feats[5] /= float64(len(neighbors))
	}
	return feats, nil
}

// Targets builds one TrainingSet per landmark from observed voltage
// series: the supervised target at step t is r_i(t) = Vobs_i(t) − Vphys_i,
// paired with the landmark's feature vector.
//
// observed must carry a series for every landmark, all of one common
// non-zero length; extra keys for non-landmark buses are ignored.
// Identical observed and physical voltages yield exactly zero targets.
//
// Errors: ErrNilNetwork, ErrInvalidPhase, ErrLandmarks on malformed
// arguments; ErrObservationShape when a landmark's series is absent,
// empty or of deviating length.
func Targets(net *netmodel.Network, ph netmodel.Phase, landmarks []int, observed map[int][]float64) ([]TrainingSet, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if !ph.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPhase, ph)
	}
	if err := validateLandmarks(landmarks, net.NumBuses()); err != nil {
		return nil, err
	}

	steps := -1
	for _, r := range landmarks {
		series, ok := observed[r]
		if !ok {
			return nil, fmt.Errorf("%w: no series for landmark %d", ErrObservationShape, r)
		}
		if len(series) == 0 {
			return nil, fmt.Errorf("%w: empty series for landmark %d", ErrObservationShape, r)
		}
		if steps == -1 {
			steps = len(series)
		} else if len(series) != steps {
			return nil, fmt.Errorf("%w: landmark %d has %d steps, want %d", ErrObservationShape, r, len(series), steps)
		}
	}

	sets := make([]TrainingSet, len(landmarks))
	for j, r := range landmarks {
		feats, err := Features(net, ph, r)
		if err != nil {
			return nil, err
		}
		vphys := 0.0
		if b, ok := net.BusAt(ph, r); ok {
			vphys = b.V
		}
		samples := make([]Sample, steps)
		for t, vobs := range observed[r] {
			samples[t] = Sample{Features: feats, Target: vobs - vphys}
		}
		sets[j] = TrainingSet{Bus: r, Features: feats, Samples: samples}
	}
	return sets, nil
}

// validateLandmarks rejects empty, out-of-range and duplicated lists.
func validateLandmarks(landmarks []int, n int) error {
	if len(landmarks) == 0 {
		return fmt.Errorf("%w: empty", ErrLandmarks)
	}
	seen := make(map[int]bool, len(landmarks))
	for _, r := range landmarks {
		if r < 0 || r >= n {
			return fmt.Errorf("%w: bus %d out of range 0..%d", ErrLandmarks, r, n-1)
		}
		if seen[r] {
			return fmt.Errorf("%w: bus %d repeated", ErrLandmarks, r)
		}
		seen[r] = true
	}
	return nil
}
