package landmark

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/voltkern/voltkern/netmodel"
)

// Select picks count landmark buses from the kernel k by greedy pivoted
// Cholesky decomposition and returns them in pick order.
//
// Implementation:
//   - Stage 1: resolve options, validate the count against the kernel
//     dimension and, in quota mode, validate labels, quota values, the
//     quota sum and per-zone populations (fail fast).
//   - Stage 2: seed the residual-diagonal score array d[i] = K[i][i] and
//     allocate the n×count factor arena once.
//   - Stage 3: repeat count times — pick the eligible bus with the largest
//     residual diagonal (ties → lower index), append its factor column and
//     downdate all remaining scores by the rank-1 Schur update.
//   - Stage 4: when WithSwapPasses is set, run first-improvement swap
//     refinement over the greedy result.
//
// Behavior highlights:
//   - Deterministic: fixed ascending loops and strict tie-breaks; equal
//     inputs yield the identical ordered sequence.
//   - The kernel is read-only; the factor arena is the only scratch state.
//
// Errors:
//   - ErrNilKernel, ErrCount on bad arguments.
//   - *RankError (wrapping ErrInsufficientRank) when count > n or the best
//     remaining pivot drops below WithPivotFloor.
//   - ErrZoneLength, ErrQuotaValue, ErrQuotaMismatch and *QuotaError
//     (wrapping ErrQuotaInfeasible) in quota mode.
//
// Complexity:
//   - Time O(count·n²) for selection, Memory O(n·count).
func Select(k *mat.SymDense, count int, opts ...Option) ([]int, error) {
	if k == nil {
		return nil, ErrNilKernel
	}
	o := gatherOptions(opts...)

	n := k.SymmetricDim()
	if count <= 0 {
		return nil, ErrCount
	}
	if count > n {
		return nil, &RankError{Requested: count, Dim: n}
	}

	s := &selector{k: k, n: n, count: count, opts: o}
	if err := s.init(); err != nil {
		return nil, err
	}
	if err := s.run(); err != nil {
		return nil, err
	}
	if s.opts.swapPasses > 0 {
		s.refine()
	}
	return s.picks, nil
}

// selector carries the state of one greedy selection run.
type selector struct {
	k     *mat.SymDense
	n     int
	count int
	opts  Options

	d         []float64 // residual diagonal per bus; -Inf once selected
	factor    []float64 // n×count pivoted-Cholesky arena, row-major
	selected  []bool
	picks     []int
	remaining map[int]int // zone → unmet quota; nil when unconstrained
	traceK    float64     // tr(K), fixed term of the trace-residual score
}

// init validates zone/quota configuration and seeds the score arrays.
func (s *selector) init() error {
	if len(s.opts.zones) > 0 && len(s.opts.zones) != s.n {
		return fmt.Errorf("%w: %d labels for %d buses", ErrZoneLength, len(s.opts.zones), s.n)
	}
	if len(s.opts.quotas) > 0 {
		if len(s.opts.zones) != s.n {
			return fmt.Errorf("%w: quotas need labels for all %d buses", ErrZoneLength, s.n)
		}
		if err := s.initQuotas(); err != nil {
			return err
		}
	}

	s.d = make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		s.d[i] = s.k.At(i, i)
	}
	s.traceK = floats.Sum(s.d)
	s.factor = make([]float64, s.n*s.count)
	s.selected = make([]bool, s.n)
	s.picks = make([]int, 0, s.count)
	return nil
}

// initQuotas validates quota values, the quota sum and per-zone
// populations, iterating zones in sorted order for stable failures.
func (s *selector) initQuotas() error {
	zoneIDs := make([]int, 0, len(s.opts.quotas))
	for z := range s.opts.quotas {
		zoneIDs = append(zoneIDs, z)
	}
	sort.Ints(zoneIDs)

	population := make(map[int]int, len(zoneIDs))
	for _, z := range s.opts.zones {
		if z != netmodel.ZoneNone {
			population[z]++
		}
	}

	sum := 0
	for _, z := range zoneIDs {
		q := s.opts.quotas[z]
		if z < 0 {
			return fmt.Errorf("%w: zone label %d", ErrQuotaValue, z)
		}
		if q <= 0 {
			return fmt.Errorf("%w: zone %d has quota %d", ErrQuotaValue, z, q)
		}
		sum += q
	}
	if sum != s.count {
		return fmt.Errorf("%w: quotas sum to %d, count is %d", ErrQuotaMismatch, sum, s.count)
	}
	for _, z := range zoneIDs {
		if q := s.opts.quotas[z]; population[z] < q {
			return &QuotaError{Zone: z, Quota: q, Selected: 0, Pool: population[z]}
		}
	}

	s.remaining = make(map[int]int, len(zoneIDs))
	for _, z := range zoneIDs {
		s.remaining[z] = s.opts.quotas[z]
	}
	return nil
}

// run performs the count greedy steps.
func (s *selector) run() error {
	for t := 0; t < s.count; t++ {
		p, err := s.next(t)
		if err != nil {
			return err
		}
		s.update(p, t)
	}
	return nil
}

// next returns the pivot for step t: the eligible bus with the largest
// residual diagonal, ties broken toward the lower index.
func (s *selector) next(t int) (int, error) {
	if s.remaining == nil {
		// Unconstrained: selected entries sit at -Inf, so the first
		// maximum is the lowest eligible index.
		p := floats.MaxIdx(s.d)
		if s.d[p] < s.opts.pivotFloor {
			return 0, &RankError{Requested: s.count, Dim: s.n, Achieved: t, Pivot: s.d[p]}
		}
		return p, nil
	}

	best := -1
	for i := 0; i < s.n; i++ {
		if s.selected[i] {
			continue
		}
		z := s.opts.zones[i]
		if z == netmodel.ZoneNone || s.remaining[z] <= 0 {
			continue
		}
		if best == -1 || s.d[i] > s.d[best] {
			best = i
		}
	}
	if best == -1 {
		return 0, s.quotaFailure()
	}
	if s.d[best] < s.opts.pivotFloor {
		return 0, &RankError{Requested: s.count, Dim: s.n, Achieved: t, Pivot: s.d[best]}
	}
	return best, nil
}

// quotaFailure names the lowest-numbered zone whose quota cannot be met.
func (s *selector) quotaFailure() *QuotaError {
	unmet := make([]int, 0, len(s.remaining))
	for z, rem := range s.remaining {
		if rem > 0 {
			unmet = append(unmet, z)
		}
	}
	sort.Ints(unmet)
	z := unmet[0]
	return &QuotaError{
		Zone:     z,
		Quota:    s.opts.quotas[z],
		Selected: s.opts.quotas[z] - s.remaining[z],
		Pool:     0,
	}
}

// update appends pivot p's column to the factor and downdates the residual
// diagonals — the rank-1 Schur complement step of the pivoted Cholesky.
func (s *selector) update(p, t int) {
	root := math.Sqrt(s.d[p])
	prow := s.factor[p*s.count : p*s.count+t]
	for i := 0; i < s.n; i++ {
		if s.selected[i] {
			continue
		}
		row := s.factor[i*s.count : i*s.count+t]
		s.factor[i*s.count+t] = (s.k.At(i, p) - floats.Dot(row, prow)) / root
	}
	for i := 0; i < s.n; i++ {
		if s.selected[i] {
			continue
		}
		v := s.factor[i*s.count+t]
		s.d[i] -= v * v
	}

	s.selected[p] = true
	s.d[p] = math.Inf(-1)
	s.picks = append(s.picks, p)
	if s.remaining != nil {
		s.remaining[s.opts.zones[p]]--
	}
}
