// Package nystrom: sentinel errors and typed failures for the
// interpolation-operator build.
package nystrom

import (
	"errors"
	"fmt"
)

// Sentinel errors for operator construction.
var (
	// ErrNilKernel indicates a nil kernel matrix.
	ErrNilKernel = errors.New("nystrom: nil kernel matrix")
	// ErrLandmarks indicates an empty, out-of-range or duplicated landmark
	// list.
	ErrLandmarks = errors.New("nystrom: invalid landmark list")
	// ErrSingular indicates the landmark submatrix K_RR resisted
	// factorization or is too ill-conditioned to invert; the typed
	// SingularError carries the condition number.
	ErrSingular = errors.New("nystrom: landmark submatrix not invertible")
	// ErrIdentityCheck indicates the computed operator fails to reproduce
	// the identity on its landmark rows; the typed IdentityError names the
	// offending entry.
	ErrIdentityCheck = errors.New("nystrom: identity self-check failed")
)

// SingularError reports an uninvertible landmark submatrix.
// It unwraps to ErrSingular.
type SingularError struct {
	// Cond is the estimated condition number of K_RR.
	Cond float64
	// Size is the landmark count k, the dimension of K_RR.
	Size int
}

// Error implements the error interface.
func (e *SingularError) Error() string {
	return fmt.Sprintf("nystrom: %d×%d landmark submatrix not invertible: cond %.3e", e.Size, e.Size, e.Cond)
}

// Unwrap ties SingularError to the ErrSingular sentinel.
func (e *SingularError) Unwrap() error { return ErrSingular }

// IdentityError reports the first operator entry on a landmark row that
// strays from the identity pattern. It unwraps to ErrIdentityCheck.
type IdentityError struct {
	// Row is the bus index of the offending landmark row.
	Row int
	// Col is the operator column (position in the landmark list).
	Col int
	// Got is the computed entry; the identity demands 0 or 1.
	Got float64
}

// Error implements the error interface.
func (e *IdentityError) Error() string {
	return fmt.Sprintf("nystrom: landmark row %d column %d = %.6e, want identity", e.Row, e.Col, e.Got)
}

// Unwrap ties IdentityError to the ErrIdentityCheck sentinel.
func (e *IdentityError) Unwrap() error { return ErrIdentityCheck }
