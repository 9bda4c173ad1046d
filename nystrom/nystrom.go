package nystrom

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Weights builds the n×k Nyström interpolation operator W = K_UR·K_RR⁻¹
// for the given kernel and landmark list.
//
// Implementation:
//   - Stage 1: resolve options and validate the landmark list (non-empty,
//     in range, distinct).
//   - Stage 2: gather the k×k landmark submatrix K_RR and the k×n cross
//     block K_RU from the kernel.
//   - Stage 3: factorize K_RR by Cholesky, reject it beyond the condition
//     tolerance, and solve K_RR·X = K_RU so that W = Xᵀ.
//   - Stage 4: self-check the landmark rows of W against the identity
//     pattern within the identity tolerance.
//
// Column j of W belongs to landmarks[j]; the caller's order is preserved.
// The kernel is read-only.
//
// Errors:
//   - ErrNilKernel, ErrLandmarks on malformed input.
//   - *SingularError (wrapping ErrSingular) when K_RR cannot be handled.
//   - *IdentityError (wrapping ErrIdentityCheck) when the computed
//     operator would distort its own anchors.
//
// Complexity: O(k³ + k²·n) time, O(k·n) memory.
func Weights(k *mat.SymDense, landmarks []int, opts ...Option) (*mat.Dense, error) {
	if k == nil {
		return nil, ErrNilKernel
	}
	o := gatherOptions(opts...)

	n := k.SymmetricDim()
	if len(landmarks) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrLandmarks)
	}
	seen := make(map[int]bool, len(landmarks))
	for _, r := range landmarks {
		if r < 0 || r >= n {
			return nil, fmt.Errorf("%w: bus %d out of range 0..%d", ErrLandmarks, r, n-1)
		}
		if seen[r] {
			return nil, fmt.Errorf("%w: bus %d repeated", ErrLandmarks, r)
		}
		seen[r] = true
	}

	kk := len(landmarks)
	krr := mat.NewSymDense(kk, nil)
	for a := 0; a < kk; a++ {
		for b := a; b < kk; b++ {
			krr.SetSym(a, b, k.At(landmarks[a], landmarks[b]))
		}
	}
	kru := mat.NewDense(kk, n, nil)
	for a := 0; a < kk; a++ {
		for j := 0; j < n; j++ {
			kru.Set(a, j, k.At(landmarks[a], j))
		}
	}

	var chol mat.Cholesky
	if !chol.Factorize(krr) {
		return nil, &SingularError{Cond: mat.Cond(krr, 2), Size: kk}
	}
	cond := chol.Cond()
	if cond > o.inversionTolerance {
		return nil, &SingularError{Cond: cond, Size: kk}
	}

	var x mat.Dense
	if err := chol.SolveTo(&x, kru); err != nil {
		return nil, &SingularError{Cond: cond, Size: kk}
	}
	w := mat.NewDense(n, kk, nil)
	w.Copy(x.T())

	// Interpolation must be exact at its own anchors: row landmarks[a]
	// of W is the a-th unit vector up to solver noise.
	maxDev := 0.0
	for a := 0; a < kk; a++ {
		row := landmarks[a]
		for b := 0; b < kk; b++ {
			want := 0.0
			if a == b {
				want = 1.0
			}
			got := w.At(row, b)
			dev := math.Abs(got - want)
			if dev > maxDev {
				maxDev = dev
			}
			if dev > o.identityTolerance {
				return nil, &IdentityError{Row: row, Col: b, Got: got}
			}
		}
	}
	o.logger.Debug("nyström operator built",
		zap.Int("buses", n),
		zap.Int("landmarks", kk),
		zap.Float64("cond", cond),
		zap.Float64("identity_deviation", maxDev))

	return w, nil
}
