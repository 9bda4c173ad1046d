// Package pipeline: functional configuration of Run's ambient concerns.
// Scenario parameters live in Config; Options only carry what a batch
// driver sets once for all scenarios.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/voltkern/voltkern/landmark"
)

// Internal panic messages (no magic strings).
const (
	panicScoreInvalid = "pipeline: WithSwapScore: unknown score"
	panicLoggerNil    = "pipeline: WithLogger: logger must not be nil"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	score  landmark.Score
	logger *zap.Logger
}

// WithSwapScore selects the observability score for swap refinement.
// The default is landmark.DefaultScore.
func WithSwapScore(s landmark.Score) Option {
	if s != landmark.ScoreLogDet && s != landmark.ScoreTraceResidual {
		panic(panicScoreInvalid)
	}
	return func(o *Options) { o.score = s }
}

// WithLogger injects a structured logger handed down to every stage.
// The default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user setters on top of the defaults; last writer
// wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		score:  landmark.DefaultScore,
		logger: zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}
	return o
}
