// Package kernel turns per-phase admittance matrices into regularized
// Green kernels and combines them into the single kernel the landmark and
// interpolation stages operate on.
//
// Overview:
//
//   - Laplacian extracts the real conductance Laplacian from a complex
//     Y-bus: off-diagonals -g_ij, diagonal the row sum of conductances.
//     Row sums are zero by construction; shunt susceptance is imaginary
//     and never leaks in.
//   - Green computes K = (L + µI)⁻¹ by Cholesky factorization. µ > 0 makes
//     the system strictly positive definite even for disconnected graphs
//     and isolated buses, so the inverse always exists in exact
//     arithmetic; condition estimates police the floating-point reality.
//   - Combine averages kernels over however many phases are present — one,
//     two or three; the library never assumes a full three-phase network.
//   - Build runs the whole chain per phase (admittance → Laplacian →
//     Green), records per-phase condition estimates and a disconnection
//     diagnostic, and returns the combined kernel alongside the per-phase
//     ones.
//
// Conditioning policy:
//
//   - Cholesky failure, or a condition estimate above the configured
//     tolerance (WithInversionTolerance, default 1e12), fails the phase
//     with ErrInversion; Build wraps it in a *InversionError carrying the
//     phase and the estimate.
//   - Estimates above the warn threshold (WithCondWarn, default 1e8) but
//     within tolerance proceed with a structured log record — numerically
//     borderline scenarios degrade gracefully instead of crashing.
//
// Determinism:
//
//   - Fixed ascending loop orders everywhere; identical inputs produce
//     bit-for-bit identical kernels.
//
// Errors (sentinels):
//
//   - ErrNilMatrix, ErrShape: nil or non-square/mismatched inputs.
//   - ErrInversion: factorization failure or conditioning beyond tolerance.
//   - ErrNoPhases: a network carrying no phase content at all.
//
// See example_test.go in the pipeline package for end-to-end usage.
package kernel
