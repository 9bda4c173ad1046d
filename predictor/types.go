// Package predictor: domain types, the learner capability contract and
// sentinel errors.
package predictor

import "errors"

// FeatureDim is the length of the feature vector produced by Features:
// local P, Q, V plus neighbor sums of P and Q and the neighbor mean of V.
const FeatureDim = 6

// Sample is one supervised training pair for a residual learner.
type Sample struct {
	// Features is the landmark's feature vector. Samples of one training
	// set share the same backing slice; treat it as read-only.
	Features []float64
	// Target is the residual Vobs − Vphys at one time step.
	Target float64
}

// TrainingSet carries everything needed to train one landmark's learner.
type TrainingSet struct {
	// Bus is the landmark bus index.
	Bus int
	// Features is the landmark's feature vector, shared by all Samples.
	Features []float64
	// Samples holds one entry per observed time step.
	Samples []Sample
}

// ResidualLearner is the capability contract for the learned component:
// a trainable scalar function per landmark. Implementations are swappable
// per landmark without touching selection or interpolation.
type ResidualLearner interface {
	// Train fits the learner to the landmark's supervised samples.
	Train(samples []Sample) error
	// Predict returns the residual estimate for one feature vector.
	Predict(features []float64) (float64, error)
}

// Sentinel errors for target construction and recombination.
var (
	// ErrNilNetwork indicates a nil network.
	ErrNilNetwork = errors.New("predictor: nil network")
	// ErrInvalidPhase indicates a phase outside A, B, C.
	ErrInvalidPhase = errors.New("predictor: invalid phase")
	// ErrNilWeights indicates a nil interpolation weight matrix.
	ErrNilWeights = errors.New("predictor: nil weight matrix")
	// ErrLandmarks indicates an empty, out-of-range or duplicated landmark
	// list.
	ErrLandmarks = errors.New("predictor: invalid landmark list")
	// ErrWeightsShape indicates a weight matrix whose shape disagrees with
	// the bus count or the landmark list.
	ErrWeightsShape = errors.New("predictor: weight matrix shape mismatch")
	// ErrObservationShape indicates observed series that are missing,
	// empty or of unequal length across landmarks.
	ErrObservationShape = errors.New("predictor: observed series missing or misaligned")
	// ErrResidualShape indicates a residual vector whose length differs
	// from the landmark count.
	ErrResidualShape = errors.New("predictor: residual vector length mismatch")
	// ErrLearnerCount indicates a learner list whose length differs from
	// the landmark count, or a nil learner.
	ErrLearnerCount = errors.New("predictor: learner list mismatch")
	// ErrNoSamples indicates a Train call without samples.
	ErrNoSamples = errors.New("predictor: no training samples")
	// ErrUntrained indicates Predict before a successful Train.
	ErrUntrained = errors.New("predictor: learner not trained")
	// ErrFeatureDim indicates feature vectors of inconsistent length.
	ErrFeatureDim = errors.New("predictor: feature vector length mismatch")
	// ErrDegenerateFeatures indicates training features whose normal
	// system is singular; raise the ridge weight or enrich the features.
	ErrDegenerateFeatures = errors.New("predictor: degenerate training features")
)
