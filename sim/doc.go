// Package sim provides the grand-canonical (zVT) Monte Carlo engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - store.go: ParticleStore, the bounded arena of box-relative positions
//   - moves.go: the Metropolis criterion and the translate/create/destroy kernels
//   - simulator.go: the block/step/try loop, move selection and observable emission
//
// # Architecture
//
// The sim package defines interfaces and bridge types; implementations live in
// sub-packages:
//   - sim/potential/: pair potentials (Lennard-Jones cut, hard spheres)
//   - sim/cnf/: configuration file I/O and lattice generation
//   - sim/stats/: block-average accumulation of the observable stream
//   - sim/trace/: per-try move decision recording
//
// Sub-packages register their implementations via init() functions that set
// package-level factory variables (NewPotentialFunc).
//
// # Key Interfaces
//
//   - PotentialEvaluator: single-particle and whole-system interactions, plus
//     long-range and cutoff corrections for reported averages
//   - RandomSource: the uniform stream the Markov chain consumes
//   - ObservableSink: receives one Observables value per step
//   - ConfigWriter: persists configuration snapshots at block ends and run end
//
// Positions are box-relative: each component lies in [-0.5, 0.5) after Wrap.
// The engine is single-threaded; a run is one Markov chain.
package sim
