// Package kernel: functional configuration for Green-kernel construction.
// Defaults are documented constants (single source of truth); WithX
// constructors panic on nonsensical values (programmer error), and public
// entry points resolve ...Option via gatherOptions.
package kernel

import (
	"math"

	"go.uber.org/zap"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultMu is the Tikhonov regularization added to the Laplacian
	// diagonal before inversion. It sits at the per-unit conductance scale's
	// low end: large enough to keep disconnected components and isolated
	// buses invertible, small enough not to drown network structure.
	DefaultMu = 1e-3

	// DefaultInversionTolerance is the maximum acceptable condition
	// estimate from the Cholesky factorization. Beyond it the phase fails
	// with ErrInversion instead of returning numerically meaningless
	// entries.
	DefaultInversionTolerance = 1e12

	// DefaultCondWarn is the condition estimate above which a kernel is
	// still accepted but a diagnostic record is emitted.
	DefaultCondWarn = 1e8
)

// Internal panic messages (no magic strings).
const (
	panicMuInvalid        = "kernel: WithMu: mu must be finite and positive"
	panicToleranceInvalid = "kernel: WithInversionTolerance: tolerance must be finite and positive"
	panicCondWarnInvalid  = "kernel: WithCondWarn: threshold must be finite and positive"
	panicLoggerNil        = "kernel: WithLogger: logger must not be nil"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values; everything else is an error at call time.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	mu       float64
	tol      float64
	condWarn float64
	logger   *zap.Logger
}

// WithMu sets the diagonal regularization µ (must be finite and > 0).
func WithMu(mu float64) Option {
	if math.IsNaN(mu) || math.IsInf(mu, 0) || mu <= 0 {
		panic(panicMuInvalid)
	}
	return func(o *Options) { o.mu = mu }
}

// WithInversionTolerance sets the maximum acceptable condition estimate
// (must be finite and > 0).
func WithInversionTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}
	return func(o *Options) { o.tol = tol }
}

// WithCondWarn sets the condition estimate above which a diagnostic record
// is emitted for kernels that are still within tolerance.
func WithCondWarn(thresh float64) Option {
	if math.IsNaN(thresh) || math.IsInf(thresh, 0) || thresh <= 0 {
		panic(panicCondWarnInvalid)
	}
	return func(o *Options) { o.condWarn = thresh }
}

// WithLogger injects a structured logger for conditioning and topology
// diagnostics. The default is zap.NewNop(); the library never logs through
// globals.
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
		mu:       DefaultMu,
		tol:      DefaultInversionTolerance,
		condWarn: DefaultCondWarn,
		logger:   zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}
	return o
}
