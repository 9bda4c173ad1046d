package kernel

import (
	"errors"
	"fmt"

	"github.com/voltkern/voltkern/netmodel"
)

// Sentinel errors for kernel construction.
var (
	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("kernel: nil matrix")
	// ErrNilNetwork indicates a nil *netmodel.Network passed to Build.
	ErrNilNetwork = errors.New("kernel: nil network")
	// ErrShape indicates a non-square input or mismatched kernel sizes.
	ErrShape = errors.New("kernel: dimension mismatch")
	// ErrInversion indicates Cholesky factorization failed or the condition
	// estimate exceeded the configured tolerance.
	ErrInversion = errors.New("kernel: inversion failed")
	// ErrNoPhases indicates the network carries no phase content.
	ErrNoPhases = errors.New("kernel: no phases present")
)

// InversionError reports which phase's Green kernel could not be built and
// the condition estimate observed at failure. It unwraps to the underlying
// cause, which in turn matches ErrInversion via errors.Is.
type InversionError struct {
	// Phase is the conductor phase whose inversion failed.
	Phase netmodel.Phase
	// Cond is the condition estimate at the point of failure.
	Cond float64
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *InversionError) Error() string {
	return fmt.Sprintf("kernel: phase %s: %v", e.Phase, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *InversionError) Unwrap() error { return e.Err }
