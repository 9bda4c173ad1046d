// Package netbuild: functional configuration for the synthetic-network
// constructors. Defaults are documented constants or functions; WithX
// constructors panic on nonsensical values (programmer error), and the
// topology constructors resolve ...Option via gatherOptions.
package netbuild

import (
	"math"

	"github.com/voltkern/voltkern/netmodel"
)

// DefaultPhase is the conductor phase constructors build on.
const DefaultPhase = netmodel.PhaseA

// Internal panic messages (no magic strings).
const (
	panicPhaseInvalid    = "netbuild: WithPhase: invalid phase"
	panicImpedanceNil    = "netbuild: WithImpedance: profile must not be nil"
	panicBusRowsInvalid  = "netbuild: WithBusRows: attribute values must be finite"
	panicZoneSizeInvalid = "netbuild: WithZoneSize: size must be positive"
)

// ImpedanceFn yields the series impedance of the i-th branch laid down by
// a constructor. Branch order is deterministic per topology (Chain: bus i
// to i+1; Star: hub to spoke i+1).
type ImpedanceFn func(i int) (r, x float64)

// DefaultImpedance cycles resistance through five values around 0.5 pu
// with x = r/2, so synthetic kernels carry no accidental symmetry.
func DefaultImpedance(i int) (r, x float64) {
	r = 0.4 + 0.05*float64(i%5)
	return r, r / 2
}

// Option mutates internal options. Constructors panic only on nonsensical
// values; there are no data-driven failures to defer.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; topology constructors accept ...Option.
type Options struct {
	phase     netmodel.Phase
	impedance ImpedanceFn
	rows      bool
	p, q, v   float64
	zoneSize  int
}

// WithPhase places buses and branches on ph instead of DefaultPhase.
func WithPhase(ph netmodel.Phase) Option {
	if !ph.Valid() {
		panic(panicPhaseInvalid)
	}
	return func(o *Options) { o.phase = ph }
}

// WithImpedance substitutes a custom per-branch impedance profile.
func WithImpedance(fn ImpedanceFn) Option {
	if fn == nil {
		panic(panicImpedanceNil)
	}
	return func(o *Options) { o.impedance = fn }
}

// WithBusRows attaches one attribute row per bus with the given flat
// injection and voltage values. Without it, constructors emit topology
// only and accessors such as PhysicalVoltage read as zero.
func WithBusRows(p, q, v float64) Option {
	for _, f := range [...]float64{p, q, v} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			panic(panicBusRowsInvalid)
		}
	}
	return func(o *Options) {
		o.rows = true
		o.p, o.q, o.v = p, q, v
	}
}

// WithZoneSize labels bus i with zone i/size, partitioning the index
// space into consecutive blocks. Zone labels ride on attribute rows, so
// this implies WithBusRows — with zero injections and voltage unless
// WithBusRows sets them explicitly.
func WithZoneSize(size int) Option {
	if size <= 0 {
		panic(panicZoneSizeInvalid)
	}
	return func(o *Options) {
		o.rows = true
		o.zoneSize = size
	}
}

// gatherOptions applies user setters on top of the documented defaults;
// last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		phase:     DefaultPhase,
		impedance: DefaultImpedance,
	}
	for _, set := range user {
		set(&o)
	}
	return o
}
