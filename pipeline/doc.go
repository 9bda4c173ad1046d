// Package pipeline chains the numerical stages into the single-scenario
// run a batch driver invokes repeatedly.
//
// What:
//   - Run executes kernel construction (per-phase admittance → Laplacian →
//     regularized inverse → combined kernel), landmark selection (with
//     optional zone quotas and swap refinement) and the interpolation
//     operator build, returning the scenario's output artifacts.
//   - Config carries the scenario options (landmark count, regularization
//     µ, zone quotas, swap passes, inversion tolerance) with YAML tags;
//     LoadConfig reads a config file over the documented defaults.
//
// Why:
//   - Callers that orchestrate many scenarios need one deterministic entry
//     point with exactly the knobs the stages expose, not the stages
//     themselves.
//
// Concurrency:
//   - Run keeps no shared mutable state and no process-wide caches; it is
//     safe to invoke concurrently as long as each call gets its own
//     Network value.
//
// Errors:
//   - ErrNilNetwork and ErrConfig (wrapped with the offending field) for
//     caller mistakes; stage failures pass through unchanged, already
//     carrying their package context (phase, zone, condition estimate).
package pipeline
