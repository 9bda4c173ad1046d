package admittance

import (
	"errors"
	"fmt"

	"github.com/voltkern/voltkern/netmodel"
)

// Sentinel errors for Y-bus assembly.
var (
	// ErrNilNetwork indicates a nil *netmodel.Network was passed to Build.
	ErrNilNetwork = errors.New("admittance: nil network")
	// ErrInvalidPhase indicates a phase designator outside PhaseA..PhaseC.
	ErrInvalidPhase = errors.New("admittance: invalid phase designator")
	// ErrDegenerateBranch indicates a branch whose series impedance has
	// zero magnitude, which would divide by zero during assembly.
	ErrDegenerateBranch = errors.New("admittance: degenerate branch impedance")
)

// BranchError reports the exact branch that made Y-bus assembly impossible.
// It unwraps to ErrDegenerateBranch for errors.Is matching.
type BranchError struct {
	// Phase is the conductor phase being assembled.
	Phase netmodel.Phase
	// From and To are the endpoints of the offending branch.
	From, To int
}

// Error implements the error interface.
func (e *BranchError) Error() string {
	return fmt.Sprintf("admittance: branch %d-%d on phase %s: |R+jX| == 0", e.From, e.To, e.Phase)
}

// Unwrap ties BranchError to the ErrDegenerateBranch sentinel.
func (e *BranchError) Unwrap() error { return ErrDegenerateBranch }
