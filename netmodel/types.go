// Package netmodel defines core types and sentinel errors for the
// netmodel subpackage of github.com/voltkern/voltkern.
package netmodel

import (
	"errors"
)

// Sentinel errors for network construction and access.
var (
	// ErrBusCount indicates a non-positive bus count passed to New.
	ErrBusCount = errors.New("netmodel: bus count must be positive")
	// ErrBusIndex indicates a bus index or branch endpoint outside 0..n-1.
	ErrBusIndex = errors.New("netmodel: bus index out of range")
	// ErrPhase indicates a phase designator outside PhaseA..PhaseC.
	ErrPhase = errors.New("netmodel: invalid phase designator")
	// ErrDuplicateBus indicates a second bus row for the same (phase, index).
	ErrDuplicateBus = errors.New("netmodel: duplicate bus row for phase")
	// ErrSelfLoop indicates a branch whose endpoints coincide.
	ErrSelfLoop = errors.New("netmodel: self-loop branch not allowed")
	// ErrZoneConflict indicates two bus rows disagree on a bus's zone label.
	ErrZoneConflict = errors.New("netmodel: conflicting zone labels for bus")
	// ErrZoneLabel indicates a zone label below ZoneNone.
	ErrZoneLabel = errors.New("netmodel: zone label must be ZoneNone or non-negative")
)

// Phase designates one conductor phase of the network.
// The library never assumes all three phases are present; any subset of
// {PhaseA, PhaseB, PhaseC} may carry buses and branches.
type Phase uint8

const (
	// PhaseA is the first conductor phase.
	PhaseA Phase = iota
	// PhaseB is the second conductor phase.
	PhaseB
	// PhaseC is the third conductor phase.
	PhaseC

	// numPhases bounds the phase enum; used for per-phase storage.
	numPhases = 3
)

// Valid reports whether p is one of PhaseA, PhaseB or PhaseC.
func (p Phase) Valid() bool { return p < numPhases }

// String returns "A", "B" or "C", or "?" for an invalid phase.
func (p Phase) String() string {
	switch p {
	case PhaseA:
		return "A"
	case PhaseB:
		return "B"
	case PhaseC:
		return "C"
	default:
		return "?"
	}
}

// ZoneNone marks a bus without a zone label. Zone labels are consumed as
// given (typically protection or planning areas); the library never
// computes them.
const ZoneNone = -1

// Bus is one per-phase attribute row of a network bus.
type Bus struct {
	// Index is the bus position in the shared index space 0..n-1.
	Index int
	// Phase designates which conductor phase this row describes.
	Phase Phase
	// P is the nominal active-power injection, per unit.
	P float64
	// Q is the nominal reactive-power injection, per unit.
	Q float64
	// V is the physical-model voltage magnitude, per unit. It is the base
	// the hybrid predictor corrects with interpolated residuals.
	V float64
	// Zone is the optional zone label, or ZoneNone.
	Zone int
}

// Branch is one series element between two buses on a single phase.
// Parallel branches between the same endpoints are legal and accumulate
// in the admittance matrix.
type Branch struct {
	// From and To are endpoint bus indices in 0..n-1, From != To.
	From, To int
	// R and X are the series resistance and reactance, per unit.
	// A branch with R == 0 and X == 0 is accepted here and rejected by the
	// admittance builder, which reports the offending endpoints.
	R, X float64
	// Shunt is the total shunt susceptance of the branch, per unit;
	// half is applied at each endpoint.
	Shunt float64
	// Phase designates the conductor phase the branch belongs to.
	Phase Phase
}
