package predictor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/voltkern/voltkern/netmodel"
)

// Predictor recombines learned landmark residuals with the physical
// voltage profile of one phase. Build it once per scenario with New, then
// treat it as read-only; independent Predictors are safe to use
// concurrently.
type Predictor struct {
	n         int
	landmarks []int
	weights   *mat.Dense
	vphys     []float64
	features  [][]float64 // per landmark, precomputed for inference
}

// New validates the landmark list against the weight matrix and
// precomputes the physical voltage vector and per-landmark features.
//
// weights must be the n×k interpolation operator whose column j belongs
// to landmarks[j].
//
// Errors: ErrNilNetwork, ErrInvalidPhase, ErrNilWeights, ErrLandmarks,
// ErrWeightsShape.
func New(net *netmodel.Network, ph netmodel.Phase, landmarks []int, weights *mat.Dense) (*Predictor, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if !ph.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPhase, ph)
	}
	if weights == nil {
		return nil, ErrNilWeights
	}
	n := net.NumBuses()
	if err := validateLandmarks(landmarks, n); err != nil {
		return nil, err
	}
	rows, cols := weights.Dims()
	if rows != n || cols != len(landmarks) {
		return nil, fmt.Errorf("%w: got %d×%d, want %d×%d", ErrWeightsShape, rows, cols, n, len(landmarks))
	}

	p := &Predictor{
		n:         n,
		landmarks: append([]int(nil), landmarks...),
		weights:   weights,
		vphys:     net.PhysicalVoltage(ph),
		features:  make([][]float64, len(landmarks)),
	}
	for j, r := range p.landmarks {
		feats, err := Features(net, ph, r)
		if err != nil {
			return nil, err
		}
		p.features[j] = feats
	}
	return p, nil
}

// Landmarks returns a copy of the landmark list, in operator column order.
func (p *Predictor) Landmarks() []int {
	return append([]int(nil), p.landmarks...)
}

// Combine maps one landmark residual vector to the hybrid prediction
// V̂ = Vphys + W·r̂ over all buses. An all-zero r̂ reproduces Vphys
// exactly. No clamping: implausible voltages pass through untouched.
//
// Errors: ErrResidualShape when len(rhat) differs from the landmark count.
func (p *Predictor) Combine(rhat []float64) ([]float64, error) {
	if len(rhat) != len(p.landmarks) {
		return nil, fmt.Errorf("%w: got %d residuals, want %d", ErrResidualShape, len(rhat), len(p.landmarks))
	}

	var ru mat.VecDense
	ru.MulVec(p.weights, mat.NewVecDense(len(rhat), rhat))

	out := make([]float64, p.n)
	for i := 0; i < p.n; i++ {
		out[i] = p.vphys[i] + ru.AtVec(i)
	}
	return out, nil
}

// CombineSeries applies Combine step by step to a residual time series,
// one landmark vector per step.
func (p *Predictor) CombineSeries(rhat [][]float64) ([][]float64, error) {
	out := make([][]float64, len(rhat))
	for t, step := range rhat {
		v, err := p.Combine(step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", t, err)
		}
		out[t] = v
	}
	return out, nil
}

// PredictWithLearners runs one trained learner per landmark on the
// landmark's precomputed feature vector and combines the results.
// learners[j] belongs to landmarks[j].
//
// Errors: ErrLearnerCount on a mismatched or nil-holding learner list;
// learner Predict failures are wrapped with the landmark bus index.
func (p *Predictor) PredictWithLearners(learners []ResidualLearner) ([]float64, error) {
	if len(learners) != len(p.landmarks) {
		return nil, fmt.Errorf("%w: got %d learners, want %d", ErrLearnerCount, len(learners), len(p.landmarks))
	}
	rhat := make([]float64, len(learners))
	for j, l := range learners {
		if l == nil {
			return nil, fmt.Errorf("%w: nil learner for landmark %d", ErrLearnerCount, p.landmarks[j])
		}
		r, err := l.Predict(p.features[j])
		if err != nil {
			return nil, fmt.Errorf("predictor: landmark %d: %w", p.landmarks[j], err)
		}
		rhat[j] = r
	}
	return p.Combine(rhat)
}
