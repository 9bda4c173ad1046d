// Package predictor combines physical voltages with learned landmark
// residuals into the final hybrid prediction.
//
// What:
//   - Features composes the per-bus feature vector a residual learner
//     consumes: local P, Q and physical voltage plus neighbor aggregates
//     over the branch adjacency of the original network.
//   - Targets turns observed voltage series at landmark buses into
//     supervised residual targets r_i(t) = Vobs_i(t) − Vphys_i, paired
//     with the landmark's feature vector.
//   - Predictor applies the interpolation operator at inference time:
//     V̂ = Vphys + W·r̂, for one residual vector or a whole series.
//   - ResidualLearner is the capability contract for the learned part;
//     MeanLearner and RidgeLearner are reference implementations.
//
// Why:
//   - The physics model is cheap and global but biased; the learners are
//     local and only exist at landmarks. This package owns the seam
//     between the two: target preparation on the way in, recombination on
//     the way out, with the learner itself treated as opaque.
//
// Conventions:
//   - One learner per landmark, ordered like the landmark list.
//   - No clamping: out-of-range predicted voltages pass through untouched
//     as a data-quality signal for the caller.
//   - Zero residuals reproduce Vphys exactly, bit for bit.
//
// Errors:
//   - Malformed inputs surface sentinel errors (ErrNilNetwork,
//     ErrLandmarks, ErrWeightsShape, ErrObservationShape,
//     ErrResidualShape, ErrLearnerCount and friends); learner failures
//     from Train/Predict are wrapped with the landmark bus index.
package predictor
