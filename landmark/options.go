// Package landmark: functional configuration for greedy selection and swap
// refinement. Defaults are documented constants; WithX constructors panic
// on nonsensical values (programmer error), and Select resolves ...Option
// via gatherOptions.
package landmark

import (
	"math"

	"go.uber.org/zap"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultPivotFloor is the residual-diagonal threshold below which the
	// kernel's numerical rank counts as exhausted.
	DefaultPivotFloor = 1e-12

	// DefaultSwapPasses disables refinement; selection is purely greedy.
	DefaultSwapPasses = 0

	// DefaultScore is the observability score used by swap refinement.
	DefaultScore = ScoreLogDet
)

// Internal panic messages (no magic strings).
const (
	panicPivotFloorInvalid = "landmark: WithPivotFloor: floor must be finite and positive"
	panicSwapPassesInvalid = "landmark: WithSwapPasses: passes must be non-negative"
	panicScoreInvalid      = "landmark: WithScore: unknown score"
	panicLoggerNil         = "landmark: WithLogger: logger must not be nil"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values; data-driven failures surface as errors from Select.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; Select accepts ...Option.
type Options struct {
	pivotFloor float64
	swapPasses int
	score      Score
	zones      []int
	quotas     map[int]int
	logger     *zap.Logger
}

// WithPivotFloor sets the rank-exhaustion threshold (finite, > 0).
func WithPivotFloor(floor float64) Option {
	if math.IsNaN(floor) || math.IsInf(floor, 0) || floor <= 0 {
		panic(panicPivotFloorInvalid)
	}
	return func(o *Options) { o.pivotFloor = floor }
}

// WithSwapPasses enables local swap refinement for up to passes rounds;
// refinement stops early after a round without an accepted swap.
func WithSwapPasses(passes int) Option {
	if passes < 0 {
		panic(panicSwapPassesInvalid)
	}
	return func(o *Options) { o.swapPasses = passes }
}

// WithScore selects the observability score used by swap refinement.
func WithScore(s Score) Option {
	if s != ScoreLogDet && s != ScoreTraceResidual {
		panic(panicScoreInvalid)
	}
	return func(o *Options) { o.score = s }
}

// WithZones attaches per-bus zone labels (netmodel.ZoneNone for unlabeled
// buses). Length must match the kernel dimension — checked by Select, not
// here, since the kernel is not known yet. Zones scope quota accounting
// and restrict swap candidates to the landmark's own zone.
func WithZones(zones []int) Option {
	return func(o *Options) { o.zones = zones }
}

// WithQuotas demands an exact landmark count per zone. Requires WithZones;
// quota values must be positive and sum to the landmark count. Buses
// without a zone label are never eligible while quotas are active.
func WithQuotas(quotas map[int]int) Option {
	return func(o *Options) { o.quotas = quotas }
}

// WithLogger injects a structured logger for refinement diagnostics.
// The default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user setters on top of the documented defaults;
// last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotFloor: DefaultPivotFloor,
		swapPasses: DefaultSwapPasses,
		score:      DefaultScore,
		logger:     zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}
	return o
}
