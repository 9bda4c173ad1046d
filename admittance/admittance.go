package admittance

import (
	"gonum.org/v1/gonum/mat"

	"github.com/voltkern/voltkern/netmodel"
)

// Build assembles the n×n complex admittance matrix for one phase of net.
//
// For every branch on ph, with series admittance y = 1/(R + jX):
//
//  1. Y[from][to] and Y[to][from] accumulate -y.
//  2. Y[from][from] and Y[to][to] accumulate +y.
//  3. Both endpoint diagonals accumulate j·Shunt/2.
//
// Branches are visited in insertion order, so repeated builds over the same
// network are bit-for-bit identical. A phase without branches yields the
// zero matrix; downstream regularization keeps that case well-defined.
//
// Returns ErrNilNetwork or ErrInvalidPhase on bad arguments, and a
// *BranchError (wrapping ErrDegenerateBranch) for the first branch whose
// impedance magnitude is exactly zero.
//
// Time: O(b + n²) for b branches (allocation dominates), Memory: O(n²).
func Build(net *netmodel.Network, ph netmodel.Phase) (*mat.CDense, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if !ph.Valid() {
		return nil, ErrInvalidPhase
	}

	n := net.NumBuses()
	y := mat.NewCDense(n, n, nil)
	for _, br := range net.Branches(ph) {
		if br.R == 0 && br.X == 0 {
			return nil, &BranchError{Phase: ph, From: br.From, To: br.To}
		}
		series := 1 / complex(br.R, br.X)
		half := complex(0, br.Shunt/2)

		y.Set(br.From, br.To, y.At(br.From, br.To)-series)
		y.Set(br.To, br.From, y.At(br.To, br.From)-series)
		y.Set(br.From, br.From, y.At(br.From, br.From)+series+half)
		y.Set(br.To, br.To, y.At(br.To, br.To)+series+half)
	}
	return y, nil
}
