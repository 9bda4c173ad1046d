// Package netbuild assembles deterministic synthetic networks for tests,
// benchmarks and experiments.
//
// Design contract (strict):
//   - Constructors (Chain, Star) return a fully validated
//     netmodel.Network; they never hand back a partially built one.
//   - Functional options resolve into an immutable configuration; no
//     global state, no RNG. Same inputs and options ⇒ identical networks.
//   - Impedances come from a per-branch profile function so fixtures can
//     avoid perfectly uniform matrices without sacrificing repeatability.
//   - Attribute rows and zone labels are opt-in: topology-only fixtures
//     stay topology-only.
//
// Errors:
//   - ErrSize for constructor sizes below the topology's minimum.
//   - Degenerate impedances are deliberately not screened here; the
//     admittance builder reports them with endpoint context.
package netbuild
