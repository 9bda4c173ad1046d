// Package landmark defines sentinel errors, typed failures and the
// observability-score enum for the landmark subpackage of
// github.com/voltkern/voltkern.
package landmark

import (
	"errors"
	"fmt"
)

// Sentinel errors for landmark selection.
var (
	// ErrNilKernel indicates a nil kernel matrix.
	ErrNilKernel = errors.New("landmark: nil kernel matrix")
	// ErrCount indicates a non-positive landmark count.
	ErrCount = errors.New("landmark: landmark count must be positive")
	// ErrZoneLength indicates zone labels are absent or not aligned with
	// the kernel dimension while quota mode demands them.
	ErrZoneLength = errors.New("landmark: zone labels missing or misaligned")
	// ErrQuotaValue indicates a quota entry that is not positive.
	ErrQuotaValue = errors.New("landmark: zone quotas must be positive")
	// ErrQuotaMismatch indicates the quota sum differs from the landmark count.
	ErrQuotaMismatch = errors.New("landmark: quota sum does not match landmark count")
	// ErrQuotaInfeasible indicates a zone cannot meet its quota; the typed
	// QuotaError names the zone.
	ErrQuotaInfeasible = errors.New("landmark: zone quota infeasible")
	// ErrInsufficientRank indicates the requested landmark count exceeds
	// the kernel's achievable numerical rank; the typed RankError reports
	// the rank achieved.
	ErrInsufficientRank = errors.New("landmark: insufficient kernel rank")
)

// Score selects the observability score used by swap refinement.
type Score int

const (
	// ScoreLogDet scores a landmark set by the log-determinant of its
	// kernel submatrix K_RR. One k×k Cholesky per evaluation.
	ScoreLogDet Score = iota
	// ScoreTraceResidual scores a set by the negated trace of the Nyström
	// reconstruction residual tr(K) - tr(K_UR·K_RR⁻¹·K_RU); higher is
	// better. Costs an extra k×n solve per evaluation.
	ScoreTraceResidual
)

// RankError reports rank exhaustion during greedy selection.
// It unwraps to ErrInsufficientRank.
type RankError struct {
	// Requested is the landmark count asked for.
	Requested int
	// Dim is the kernel dimension n.
	Dim int
	// Achieved is the number of landmarks selected before exhaustion.
	Achieved int
	// Pivot is the best remaining residual diagonal at the failing step;
	// zero when the request exceeded n outright.
	Pivot float64
}

// Error implements the error interface.
func (e *RankError) Error() string {
	if e.Requested > e.Dim {
		return fmt.Sprintf("landmark: insufficient rank: requested %d landmarks from %d buses", e.Requested, e.Dim)
	}
	return fmt.Sprintf("landmark: insufficient rank: pivot %.3e below floor after %d of %d picks", e.Pivot, e.Achieved, e.Requested)
}

// Unwrap ties RankError to the ErrInsufficientRank sentinel.
func (e *RankError) Unwrap() error { return ErrInsufficientRank }

// QuotaError reports the zone that made quota-constrained selection
// infeasible. It unwraps to ErrQuotaInfeasible.
type QuotaError struct {
	// Zone is the label of the zone that cannot meet its quota.
	Zone int
	// Quota is the configured per-zone landmark count.
	Quota int
	// Selected is the number of landmarks placed in the zone so far.
	Selected int
	// Pool is the number of eligible candidates remaining in the zone.
	Pool int
}

// Error implements the error interface.
func (e *QuotaError) Error() string {
	return fmt.Sprintf("landmark: zone %d quota %d infeasible: %d selected, %d candidates left", e.Zone, e.Quota, e.Selected, e.Pool)
}

// Unwrap ties QuotaError to the ErrQuotaInfeasible sentinel.
func (e *QuotaError) Unwrap() error { return ErrQuotaInfeasible }
