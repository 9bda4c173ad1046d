package landmark

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// refine runs first-improvement swap passes over the greedy result.
//
// Each pass walks the landmark slots in pick order; for every slot it scans
// replacement candidates in ascending bus order and accepts the first one
// that strictly improves the configured score. When zone labels are
// present, a candidate must share the outgoing landmark's zone, which
// keeps per-zone counts (and thus any quotas) intact. Unlabeled landmarks
// swap only with unlabeled candidates. A pass that accepts no swap ends
// the refinement early; strict improvement on a monotone score rules out
// cycling.
func (s *selector) refine() {
	current := s.score(s.picks)
	for pass := 0; pass < s.opts.swapPasses; pass++ {
		swapped := false
		for li := 0; li < len(s.picks); li++ {
			out := s.picks[li]
			for c := 0; c < s.n; c++ {
				if s.selected[c] {
					continue
				}
				if len(s.opts.zones) > 0 && s.opts.zones[c] != s.opts.zones[out] {
					continue
				}
				s.picks[li] = c
				candidate := s.score(s.picks)
				if candidate > current {
					s.selected[out] = false
					s.selected[c] = true
					s.opts.logger.Debug("landmark swap accepted",
						zap.Int("pass", pass),
						zap.Int("slot", li),
						zap.Int("out", out),
						zap.Int("in", c),
						zap.Float64("score", candidate),
						zap.Float64("previous", current))
					current = candidate
					swapped = true
					break
				}
				s.picks[li] = out
			}
		}
		if !swapped {
			break
		}
	}
}

// score evaluates a candidate landmark set against the configured metric.
// A set whose principal submatrix fails to factorize scores -Inf, so it
// can never displace a factorizable incumbent.
func (s *selector) score(set []int) float64 {
	kk := len(set)
	krr := mat.NewSymDense(kk, nil)
	for a := 0; a < kk; a++ {
		for b := a; b < kk; b++ {
			krr.SetSym(a, b, s.k.At(set[a], set[b]))
		}
	}

	var chol mat.Cholesky
	if !chol.Factorize(krr) {
		return math.Inf(-1)
	}

	if s.opts.score == ScoreTraceResidual {
		return s.traceResidualScore(set, &chol)
	}
	return chol.LogDet()
}

// traceResidualScore returns -tr(K - K_UR·K_RR⁻¹·K_RU), the negated total
// Nyström reconstruction error: higher is better, zero is exact.
func (s *selector) traceResidualScore(set []int, chol *mat.Cholesky) float64 {
	kk := len(set)
	kru := mat.NewDense(kk, s.n, nil)
	for a := 0; a < kk; a++ {
		for j := 0; j < s.n; j++ {
			kru.Set(a, j, s.k.At(set[a], j))
		}
	}

	var x mat.Dense
	if err := chol.SolveTo(&x, kru); err != nil {
		return math.Inf(-1)
	}

	// tr(K_UR·K_RR⁻¹·K_RU) = Σ_{a,j} K_RU[a][j]·X[a][j] with X = K_RR⁻¹·K_RU.
	approx := 0.0
	for a := 0; a < kk; a++ {
		approx += floats.Dot(kru.RawRowView(a), x.RawRowView(a))
	}
	return approx - s.traceK
}
