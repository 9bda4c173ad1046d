// Package nystrom: functional configuration for the operator build.
// Defaults are documented constants; WithX constructors panic on
// nonsensical values, and Weights resolves ...Option via gatherOptions.
package nystrom

import (
	"math"

	"go.uber.org/zap"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultInversionTolerance is the largest condition number of K_RR
	// still accepted for the solve.
	DefaultInversionTolerance = 1e12

	// DefaultIdentityTolerance bounds the allowed deviation of landmark
	// rows from the identity pattern.
	DefaultIdentityTolerance = 1e-6
)

// Internal panic messages (no magic strings).
const (
	panicToleranceInvalid   = "nystrom: WithInversionTolerance: tolerance must be finite and positive"
	panicIdentityTolInvalid = "nystrom: WithIdentityTolerance: tolerance must be finite and positive"
	panicLoggerNil          = "nystrom: WithLogger: logger must not be nil"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values; data-driven failures surface as errors from Weights.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	inversionTolerance float64
	identityTolerance  float64
	logger             *zap.Logger
}

// WithInversionTolerance caps the accepted condition number of the
// landmark submatrix (finite, > 0).
func WithInversionTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}
	return func(o *Options) { o.inversionTolerance = tol }
}

// WithIdentityTolerance sets the allowed deviation of landmark rows from
// the identity pattern (finite, > 0).
func WithIdentityTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicIdentityTolInvalid)
	}
	return func(o *Options) { o.identityTolerance = tol }
}

// WithLogger injects a structured logger for build diagnostics.
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
		inversionTolerance: DefaultInversionTolerance,
		identityTolerance:  DefaultIdentityTolerance,
		logger:             zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}
	return o
}
