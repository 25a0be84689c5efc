// Package builder provides deterministic core.Digraph factories:
// canonical topologies for tests, benchmarks, and examples.
//
// What:
//
//   - Path(n):      directed path 0→1→…→n-1.
//   - Ring(n):      directed cycle v→(v+1) mod n.
//   - Complete(n):  every ordered pair v→w, v ≠ w.
//   - RandomDAG(n, p, opts...): upward-edge random DAG; each pair v<w
//     drawn with probability p from an explicit RNG.
//
// Why:
//
//   - Analyses need shaped fixtures (a guaranteed cycle, a guaranteed
//     DAG, a worst-case dense graph) that are identical run over run.
//   - Seeding is explicit (WithSeed/WithRand): no clock seeds, no
//     global rand, so stochastic fixtures are reproducible.
//
// Errors:
//
//   - ErrTooFewVertices     size parameter below the builder's minimum
//   - ErrInvalidProbability p outside [0, 1]
//   - ErrNeedRandSource     stochastic builder invoked without an RNG
package builder
