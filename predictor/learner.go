package predictor

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultRidgeLambda is RidgeLearner's regularization weight when built
// with NewRidgeLearner(DefaultRidgeLambda); it guards against collinear
// features without visibly biasing well-posed fits.
const DefaultRidgeLambda = 1e-6

const panicLambdaInvalid = "predictor: NewRidgeLearner: lambda must be finite and non-negative"

// MeanLearner predicts the mean training target regardless of features:
// the placeholder baseline every richer learner must beat. The zero value
// is ready to Train.
type MeanLearner struct {
	mean    float64
	trained bool
}

// Train stores the mean residual target of the samples.
func (m *MeanLearner) Train(samples []Sample) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	sum := 0.0
	for _, s := range samples {
		sum += s.Target
	}
	m.mean = sum / float64(len(samples))
	m.trained = true
	return nil
}

// Predict returns the stored mean; features are accepted at any length
// and ignored.
func (m *MeanLearner) Predict(_ []float64) (float64, error) {
	if !m.trained {
		return 0, ErrUntrained
	}
	return m.mean, nil
}

// RidgeLearner fits a regularized linear model residual ≈ w·features + b
// by solving the normal equations (XᵀX + λI)·w = Xᵀy with a Cholesky
// factorization. The intercept column is regularized like every other.
type RidgeLearner struct {
	lambda  float64
	weights []float64
	bias    float64
	dim     int
	trained bool
}

// NewRidgeLearner returns a learner with the given regularization weight.
// Panics when lambda is negative, NaN or infinite; lambda 0 yields an
// ordinary least-squares fit.
func NewRidgeLearner(lambda float64) *RidgeLearner {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda < 0 {
		panic(panicLambdaInvalid)
	}
	return &RidgeLearner{lambda: lambda}
}

// Train solves the normal equations over the samples. All feature vectors
// must share one length.
//
// Errors: ErrNoSamples, ErrFeatureDim, and ErrDegenerateFeatures when the
// normal system is singular (collinear features at lambda 0).
func (r *RidgeLearner) Train(samples []Sample) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	dim := len(samples[0].Features)
	for _, s := range samples {
		if len(s.Features) != dim {
			return ErrFeatureDim
		}
	}

	// Augmented system: the intercept rides along as a constant column.
	d := dim + 1
	a := mat.NewSymDense(d, nil)
	b := mat.NewVecDense(d, nil)
	for _, s := range samples {
		for i := 0; i < d; i++ {
			xi := 1.0
			if i < dim {
				xi = s.Features[i]
			}
			b.SetVec(i, b.AtVec(i)+xi*s.Target)
			for j := i; j < d; j++ {
				xj := 1.0
				if j < dim {
					xj = s.Features[j]
				}
				a.SetSym(i, j, a.At(i, j)+xi*xj)
			}
		}
	}
	for i := 0; i < d; i++ {
		a.SetSym(i, i, a.At(i, i)+r.lambda)
	}

	var chol mat.Cholesky
	if !chol.Factorize(a) {
		return ErrDegenerateFeatures
	}
	var w mat.VecDense
	if err := chol.SolveVecTo(&w, b); err != nil {
		return ErrDegenerateFeatures
	}

	r.dim = dim
	r.weights = make([]float64, dim)
	for i := 0; i < dim; i++ {
		r.weights[i] = w.AtVec(i)
	}
	r.bias = w.AtVec(dim)
	r.trained = true
	return nil
}

// Predict evaluates the fitted linear model on one feature vector.
//
// Errors: ErrUntrained before Train, ErrFeatureDim on a length mismatch.
func (r *RidgeLearner) Predict(features []float64) (float64, error) {
	if !r.trained {
		return 0, ErrUntrained
	}
	if len(features) != r.dim {
		return 0, ErrFeatureDim
	}
	return floats.Dot(r.weights, features) + r.bias, nil
}
