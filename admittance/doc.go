// Package admittance assembles per-phase complex bus admittance matrices
// (Y-bus) from a netmodel.Network.
//
// What:
//
//   - Build walks one phase's branch list and accumulates each series
//     admittance y = 1/(R + jX): -y on both off-diagonal endpoint entries,
//     +y on both endpoint diagonals, plus j·Shunt/2 on each endpoint
//     diagonal.
//   - Parallel branches accumulate additively; insertion order is the
//     accumulation order, so results are bit-for-bit reproducible.
//   - The result is an n×n gonum mat.CDense, symmetric by construction.
//
// Why:
//
//   - The real parts of Y-bus carry the conductance topology the kernel
//     stage extracts its Laplacian from; the imaginary parts keep the
//     matrix faithful to the underlying network data for any other
//     consumer.
//
// Errors:
//
//   - ErrNilNetwork: nil network.
//   - ErrInvalidPhase: phase designator outside PhaseA..PhaseC.
//   - ErrDegenerateBranch: a branch with |R + jX| == 0; the typed
//     BranchError names the endpoints and phase. Degenerate branches are
//     never silently zeroed or dropped — the caller decides whether to
//     repair the data or abort the scenario.
package admittance
