package netmodel

import (
	"fmt"
	"sort"
)

// Network is a validated holder for one scenario: per-phase bus rows and
// branch lists over a shared bus index space 0..n-1, plus per-bus zone
// labels. Build it once with AddBus/AddBranch, then treat it as read-only;
// independent Network values are safe to process concurrently.
type Network struct {
	n        int
	buses    [numPhases][]Bus
	present  [numPhases][]bool
	branches [numPhases][]Branch
	zones    []int
}

// New returns an empty Network over n buses.
// Returns ErrBusCount if n is not positive.
func New(n int) (*Network, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBusCount, n)
	}
	net := &Network{n: n, zones: make([]int, n)}
	for i := range net.zones {
		net.zones[i] = ZoneNone
	}
	for p := 0; p < numPhases; p++ {
		net.present[p] = make([]bool, n)
	}
	return net, nil
}

// NumBuses returns the size n of the shared bus index space.
func (net *Network) NumBuses() int { return net.n }

// AddBus appends one per-phase attribute row.
//
// Validation, in order: phase (ErrPhase), index range (ErrBusIndex), zone
// label (ErrZoneLabel), duplicate row (ErrDuplicateBus), zone agreement
// across phases (ErrZoneConflict). A row with Zone == ZoneNone leaves any
// label set by another phase untouched.
func (net *Network) AddBus(b Bus) error {
	if !b.Phase.Valid() {
		return fmt.Errorf("%w: bus %d phase %d", ErrPhase, b.Index, b.Phase)
	}
	if b.Index < 0 || b.Index >= net.n {
		return fmt.Errorf("%w: bus %d, want 0..%d", ErrBusIndex, b.Index, net.n-1)
	}
	if b.Zone < ZoneNone {
		return fmt.Errorf("%w: bus %d zone %d", ErrZoneLabel, b.Index, b.Zone)
	}
	if net.present[b.Phase][b.Index] {
		return fmt.Errorf("%w: bus %d phase %s", ErrDuplicateBus, b.Index, b.Phase)
	}
	if b.Zone != ZoneNone {
		if z := net.zones[b.Index]; z != ZoneNone && z != b.Zone {
			return fmt.Errorf("%w: bus %d has %d, row claims %d", ErrZoneConflict, b.Index, z, b.Zone)
		}
		net.zones[b.Index] = b.Zone
	}
	net.present[b.Phase][b.Index] = true
	net.buses[b.Phase] = append(net.buses[b.Phase], b)
	return nil
}

// AddBranch appends one series element to its phase's branch list.
// Endpoints need no bus rows on that phase; topology and attributes are
// independent. Degenerate impedance is not checked here — the admittance
// builder owns that failure so it can name the endpoints in context.
func (net *Network) AddBranch(br Branch) error {
	if !br.Phase.Valid() {
		return fmt.Errorf("%w: branch %d-%d phase %d", ErrPhase, br.From, br.To, br.Phase)
	}
	if br.From < 0 || br.From >= net.n || br.To < 0 || br.To >= net.n {
		return fmt.Errorf("%w: branch %d-%d, want 0..%d", ErrBusIndex, br.From, br.To, net.n-1)
	}
	if br.From == br.To {
		return fmt.Errorf("%w: bus %d", ErrSelfLoop, br.From)
	}
	net.branches[br.Phase] = append(net.branches[br.Phase], br)
	return nil
}

// Phases returns the phases carrying at least one bus row or branch,
// in ascending order.
func (net *Network) Phases() []Phase {
	var out []Phase
	for p := Phase(0); p < numPhases; p++ {
		if len(net.buses[p]) > 0 || len(net.branches[p]) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Buses returns a copy of ph's bus rows sorted by ascending index.
// Returns nil for an invalid phase.
func (net *Network) Buses(ph Phase) []Bus {
	if !ph.Valid() {
		return nil
	}
	out := make([]Bus, len(net.buses[ph]))
	copy(out, net.buses[ph])
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// BusAt returns ph's attribute row for bus idx, and whether one exists.
func (net *Network) BusAt(ph Phase, idx int) (Bus, bool) {
	if !ph.Valid() || idx < 0 || idx >= net.n || !net.present[ph][idx] {
		return Bus{}, false
	}
	for _, b := range net.buses[ph] {
		if b.Index == idx {
			return b, true
		}
	}
	return Bus{}, false
}

// Branches returns a copy of ph's branch list in insertion order.
// Returns nil for an invalid phase.
func (net *Network) Branches(ph Phase) []Branch {
	if !ph.Valid() {
		return nil
	}
	out := make([]Branch, len(net.branches[ph]))
	copy(out, net.branches[ph])
	return out
}

// Zones returns a copy of the per-bus zone labels, ZoneNone where absent.
func (net *Network) Zones() []int {
	out := make([]int, net.n)
	copy(out, net.zones)
	return out
}

// Zoned reports whether any bus carries a zone label.
func (net *Network) Zoned() bool {
	for _, z := range net.zones {
		if z != ZoneNone {
			return true
		}
	}
	return false
}

// PhysicalVoltage returns the per-bus physical-model voltage magnitudes for
// ph as a dense vector over the shared index space. Buses without a row on
// ph contribute zero. Returns nil for an invalid phase.
func (net *Network) PhysicalVoltage(ph Phase) []float64 {
	if !ph.Valid() {
		return nil
	}
	out := make([]float64, net.n)
	for _, b := range net.buses[ph] {
		out[b.Index] = b.V
	}
	return out
}

// Adjacency returns ph's branch topology as per-bus neighbor lists, each
// sorted ascending with parallel branches deduplicated. Returns nil for an
// invalid phase.
func (net *Network) Adjacency(ph Phase) [][]int {
	if !ph.Valid() {
		return nil
	}
	adj := make([][]int, net.n)
	for _, br := range net.branches[ph] {
		adj[br.From] = append(adj[br.From], br.To)
		adj[br.To] = append(adj[br.To], br.From)
	}
	for i := range adj {
		sort.Ints(adj[i])
		adj[i] = dedupSorted(adj[i])
	}
	return adj
}

// Components returns the connected components of ph's branch graph over all
// n buses. Buses untouched by any ph branch form singleton components.
// Each component is sorted ascending; components are ordered by their
// smallest member. Returns nil for an invalid phase.
//
// Time: O(n + b), Memory: O(n) for visited flags and output.
func (net *Network) Components(ph Phase) [][]int {
	adj := net.Adjacency(ph)
	if adj == nil {
		return nil
	}
	seen := make([]bool, net.n)
	var comps [][]int
	for root := 0; root < net.n; root++ {
		if seen[root] {
			continue
		}
		// BFS to collect component
		queue := []int{root}
		seen[root] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	return comps
}

// dedupSorted removes adjacent duplicates from a sorted slice in place.
func dedupSorted(s []int) []int {
	if len(s) < 2 {
		return s
	}
	w := 1
	for r := 1; r < len(s); r++ {
		if s[r] != s[w-1] {
			s[w] = s[r]
			w++
		}
	}
	return s[:w]
}
