// Package netmodel holds the scenario-local description of a multi-phase
// distribution network: buses, branches, zone labels and physical-model
// voltages, addressed through one shared bus index space.
//
// What:
//
//   - Network is a validated, append-only holder for per-phase bus rows and
//     branch lists over n buses indexed 0..n-1.
//   - Bus rows carry nominal injections (P, Q), the physical-model voltage
//     magnitude and an optional zone label; branches carry series impedance
//     and total shunt susceptance.
//   - Adjacency and Components expose the per-phase branch topology for
//     feature extraction and diagnostics; isolated buses appear as
//     singleton components.
//
// Why:
//
//   - Downstream stages (admittance, kernels, landmark selection,
//     prediction) all consume this one structure and nothing else; no file
//     formats, no solvers, no global registries.
//   - A scenario is built once, then treated as read-only; independent
//     Network values may be processed concurrently without locking.
//
// Conventions:
//
//   - Bus indices are shared across phases: a bus may have a row on one,
//     two or all three phases. Never assume three.
//   - Branch endpoints do not require bus rows on their phase; topology and
//     attributes are deliberately independent.
//   - Zone labels are consumed, never computed; ZoneNone marks an
//     unlabeled bus.
//
// Errors:
//
//   - ErrBusCount: non-positive bus count at construction.
//   - ErrBusIndex: bus or branch endpoint outside 0..n-1.
//   - ErrPhase: phase designator outside PhaseA..PhaseC.
//   - ErrDuplicateBus: second row for the same (phase, index) pair.
//   - ErrSelfLoop: branch with identical endpoints.
//   - ErrZoneConflict: conflicting zone labels for one bus index.
//   - ErrZoneLabel: zone label below ZoneNone.
package netmodel
