// Package nystrom builds the interpolation operator that spreads landmark
// residuals across the whole bus set.
//
// What:
//   - Weights(K, landmarks) returns W = K_UR·K_RR⁻¹, the n×k Nyström
//     operator mapping one value per landmark to one value per bus.
//   - K_RR is the landmark principal submatrix of the kernel, K_UR the
//     cross block; both are read off the kernel without copying K itself.
//
// Why:
//   - A residual model is only trained where measurements exist. W extends
//     its k outputs to all n buses along the kernel's notion of electrical
//     closeness, so interpolation respects the feeder topology instead of
//     bus numbering.
//
// Conventions:
//   - Column j of W belongs to landmarks[j]; the caller's landmark order
//     is preserved.
//   - Landmark rows of W reproduce the identity, so interpolation is exact
//     at the landmarks themselves. Weights verifies this within
//     DefaultIdentityTolerance and fails rather than return an operator
//     that would distort its own anchors.
//
// Errors:
//   - ErrNilKernel, ErrLandmarks for malformed input.
//   - *SingularError (wrapping ErrSingular) when K_RR cannot be factorized
//     or its condition number exceeds WithInversionTolerance.
//   - *IdentityError (wrapping ErrIdentityCheck) when a landmark row of
//     the computed W strays from the identity pattern.
//
// Complexity: O(k³ + k²·n) time, O(k·n) memory.
package nystrom
