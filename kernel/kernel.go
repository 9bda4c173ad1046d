package kernel

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/voltkern/voltkern/admittance"
	"github.com/voltkern/voltkern/netmodel"
)

// PhaseKernel carries one phase's Green kernel and its diagnostics.
type PhaseKernel struct {
	// Phase is the conductor phase this kernel belongs to.
	Phase netmodel.Phase
	// K is the regularized Green kernel (L + µI)⁻¹ for the phase.
	K *mat.SymDense
	// Cond is the condition estimate reported by the Cholesky factorization.
	Cond float64
	// Components is the number of connected components of the phase's
	// branch graph; anything above 1 means the regularization carried a
	// disconnected topology.
	Components int
}

// Result bundles the combined kernel with its per-phase parts,
// ordered by ascending phase.
type Result struct {
	// Combined is the unweighted mean of the per-phase kernels.
	Combined *mat.SymDense
	// Phases holds each present phase's kernel and diagnostics.
	Phases []PhaseKernel
}

// Laplacian extracts the conductance Laplacian from a complex admittance
// matrix: L[i][j] = Re(Y[i][j]) for i != j (which is -g_ij by Y-bus
// construction), and L[i][i] = Σ_{j≠i} g_ij. Row sums are zero by
// construction; shunt susceptance lives in the imaginary parts and never
// contributes.
//
// Implementation:
//   - Stage 1: validate y is non-nil and square (ErrNilMatrix, ErrShape).
//   - Stage 2: fixed i→j ascending walk; accumulate the diagonal as the
//     negated sum of off-diagonal real parts.
//
// Determinism: fixed loop order; identical inputs yield identical output.
// Complexity: Time O(n²), Memory O(n²) for the symmetric result.
func Laplacian(y *mat.CDense) (*mat.SymDense, error) {
	if y == nil {
		return nil, ErrNilMatrix
	}
	r, c := y.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %dx%d admittance matrix", ErrShape, r, c)
	}

	l := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		sum := 0.0
		for j := 0; j < r; j++ {
			if j == i {
				continue
			}
			off := real(y.At(i, j)) // equals -g_ij
			if j > i {
				l.SetSym(i, j, off)
			}
			sum -= off
		}
		l.SetSym(i, i, sum)
	}
	return l, nil
}

// Green computes the regularized Green kernel K = (L + µI)⁻¹ via Cholesky
// factorization and returns it together with the factorization's condition
// estimate.
//
// Implementation:
//   - Stage 1: shift a copy of L by µ on the diagonal (L is not mutated).
//   - Stage 2: Cholesky-factorize; a failed factorization or a condition
//     estimate above the tolerance returns ErrInversion with the estimate
//     in the message (callers that know the phase wrap it further).
//   - Stage 3: estimates above the warn threshold, but within tolerance,
//     emit a structured diagnostic and proceed.
//   - Stage 4: invert through the factorization into a fresh SymDense.
//
// The condition estimate is returned even when err != nil, so callers can
// attach it to their own error context.
//
// Complexity: Time O(n³), Memory O(n²).
func Green(l *mat.SymDense, opts ...Option) (*mat.SymDense, float64, error) {
	if l == nil {
		return nil, 0, ErrNilMatrix
	}
	o := gatherOptions(opts...)

	n := l.SymmetricDim()
	shifted := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := l.At(i, j)
			if i == j {
				v += o.mu
			}
			shifted.SetSym(i, j, v)
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(shifted); !ok {
		cond := mat.Cond(shifted, 2)
		return nil, cond, fmt.Errorf("kernel: cholesky factorization failed (cond estimate %.3e): %w", cond, ErrInversion)
	}
	cond := chol.Cond()
	if cond > o.tol {
		return nil, cond, fmt.Errorf("kernel: condition estimate %.3e exceeds tolerance %.3e: %w", cond, o.tol, ErrInversion)
	}
	if cond > o.condWarn {
		o.logger.Warn("kernel conditioning borderline",
			zap.Float64("cond", cond),
			zap.Float64("warn_threshold", o.condWarn),
			zap.Float64("tolerance", o.tol),
		)
	}

	k := mat.NewSymDense(n, nil)
	if err := chol.InverseTo(k); err != nil {
		return nil, cond, fmt.Errorf("kernel: inverse through factorization: %w", ErrInversion)
	}
	return k, cond, nil
}

// Combine averages kernels over the phases actually present. One kernel is
// returned as a copy; two or three are averaged entrywise. Never assumes a
// full three-phase set.
//
// Returns ErrNoPhases for an empty slice, ErrNilMatrix for a nil entry and
// ErrShape when dimensions disagree.
func Combine(kernels []*mat.SymDense) (*mat.SymDense, error) {
	if len(kernels) == 0 {
		return nil, ErrNoPhases
	}
	for _, k := range kernels {
		if k == nil {
			return nil, ErrNilMatrix
		}
	}
	n := kernels[0].SymmetricDim()
	for _, k := range kernels[1:] {
		if k.SymmetricDim() != n {
			return nil, fmt.Errorf("%w: %d vs %d", ErrShape, n, k.SymmetricDim())
		}
	}

	inv := 1 / float64(len(kernels))
	combined := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sum := 0.0
			for _, k := range kernels {
				sum += k.At(i, j)
			}
			combined.SetSym(i, j, sum*inv)
		}
	}
	return combined, nil
}

// Build runs the full kernel chain for every phase present in net:
// admittance assembly, Laplacian extraction and Green inversion, then
// combines the per-phase kernels into one.
//
// Per-phase failures carry context: a degenerate branch propagates the
// admittance package's *BranchError unchanged, and an inversion failure is
// wrapped in a *InversionError naming the phase and condition estimate.
// Disconnected phase topologies are tolerated — regularization keeps them
// invertible — but recorded through the injected logger, and the component
// count lands in the PhaseKernel diagnostics.
func Build(net *netmodel.Network, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	o := gatherOptions(opts...)

	phases := net.Phases()
	if len(phases) == 0 {
		return nil, ErrNoPhases
	}

	res := &Result{Phases: make([]PhaseKernel, 0, len(phases))}
	parts := make([]*mat.SymDense, 0, len(phases))
	for _, ph := range phases {
		y, err := admittance.Build(net, ph)
		if err != nil {
			return nil, err
		}
		l, err := Laplacian(y)
		if err != nil {
			return nil, err
		}

		comps := net.Components(ph)
		if len(comps) > 1 {
			o.logger.Warn("phase branch graph disconnected",
				zap.Stringer("phase", ph),
				zap.Int("components", len(comps)),
			)
		}

		k, cond, err := Green(l, opts...)
		if err != nil {
			return nil, &InversionError{Phase: ph, Cond: cond, Err: err}
		}
		res.Phases = append(res.Phases, PhaseKernel{
			Phase:      ph,
			K:          k,
			Cond:       cond,
			Components: len(comps),
		})
		parts = append(parts, k)
	}

	combined, err := Combine(parts)
	if err != nil {
		return nil, err
	}
	res.Combined = combined
	return res, nil
}
