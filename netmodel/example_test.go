// File: netmodel/example_test.go
package netmodel_test

import (
	"fmt"

	"github.com/voltkern/voltkern/netmodel"
)

// ExampleNetwork_Components demonstrates the per-phase component scan used
// to diagnose disconnected feeders before kernel construction.
// Scenario:
//
//   - Five buses; phase A carries a 0-1-2 chain, buses 3 and 4 are only
//     connected on phase B.
//   - Phase A therefore splits into a chain plus two singleton islands.
//
// Complexity: O(n + b) per phase.
func ExampleNetwork_Components() {
	net, _ := netmodel.New(5)
	_ = net.AddBranch(netmodel.Branch{From: 0, To: 1, R: 0.12, X: 0.05, Phase: netmodel.PhaseA})
	_ = net.AddBranch(netmodel.Branch{From: 1, To: 2, R: 0.12, X: 0.05, Phase: netmodel.PhaseA})
	_ = net.AddBranch(netmodel.Branch{From: 3, To: 4, R: 0.08, X: 0.03, Phase: netmodel.PhaseB})

	for _, ph := range net.Phases() {
		fmt.Printf("phase %s: %v\n", ph, net.Components(ph))
	}
	// Output:
	// phase A: [[0 1 2] [3] [4]]
	// phase B: [[0] [1] [2] [3 4]]
}
