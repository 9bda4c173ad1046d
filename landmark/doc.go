// Package landmark selects representative buses from a kernel matrix by
// greedy pivoted Cholesky decomposition, with optional per-zone quotas and
// local swap refinement.
//
// Overview:
//
//   - Select runs a partial pivoted Cholesky on the combined Green kernel:
//     at every step it picks the bus with the largest residual diagonal
//     (the point the current selection explains worst), appends one column
//     to a fixed-size factor, and downdates every remaining score by a
//     rank-1 Schur update. k steps over an n×n kernel cost O(k·n²) total
//     without ever forming an explicit residual matrix.
//   - Ties break toward the lower bus index, and every loop runs in fixed
//     ascending order, so a given kernel and configuration always produce
//     the identical ordered landmark sequence.
//
// Zone quotas:
//
//   - WithZones + WithQuotas restrict each step's candidate pool to buses
//     in zones whose quota is not yet met. Quotas must be positive and sum
//     exactly to the landmark count (ErrQuotaMismatch otherwise); buses
//     without a label are never eligible in quota mode.
//   - Infeasibility fails fast: a zone whose population is below its quota
//     is rejected before selection starts, and a zone whose candidate pool
//     empties mid-run fails with the same typed QuotaError naming the zone.
//
// Swap refinement:
//
//   - WithSwapPasses(p) runs up to p first-improvement passes after the
//     greedy pass: each landmark, in pick order, is tentatively swapped
//     against every non-landmark candidate (same zone when zones are
//     present, otherwise the whole pool) in ascending index, and the first
//     strictly score-improving swap is kept. A pass without any accepted
//     swap stops refinement early. Equal scores never swap, which keeps
//     the output deterministic.
//   - Two observability scores are available: ScoreLogDet (default), the
//     log-determinant of the selected kernel submatrix, and
//     ScoreTraceResidual, the negated trace of the Nyström reconstruction
//     residual. Log-det costs one k×k factorization per candidate; the
//     trace score additionally solves a k×n system.
//
// Rank handling:
//
//   - Requesting more landmarks than buses, or running the pivot below
//     WithPivotFloor (default 1e-12), fails with a typed RankError that
//     reports the rank actually achieved — the numerical rank of the
//     kernel was exhausted and more landmarks would carry no information.
//
// Performance:
//
//   - Greedy selection: Time O(k·n²), Memory O(n·k) for the factor arena,
//     allocated once up front.
//   - Refinement: O(passes · k · n · k³) with ScoreLogDet.
//
// Error handling (sentinels):
//
//   - ErrNilKernel: nil kernel matrix.
//   - ErrCount: non-positive landmark count.
//   - ErrZoneLength: zone labels missing or not aligned with the kernel.
//   - ErrQuotaValue: a non-positive quota entry.
//   - ErrQuotaMismatch: quota sum differs from the landmark count.
//   - ErrQuotaInfeasible (typed QuotaError): a zone cannot meet its quota.
//   - ErrInsufficientRank (typed RankError): count exceeds the achievable
//     numerical rank.
//
// See example_test.go for a worked feeder selection.
package landmark
