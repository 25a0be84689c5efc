// Package digraph is a compact toolkit for directed graphs over
// integer-indexed vertices: build a digraph, detect cycles, number it
// depth-first, and order it topologically.
//
// 🚀 What is digraph?
//
//	A small, deterministic, pure-Go library built from three pieces:
//		• core/    — the Digraph type: adjacency lists, degrees, Clone, Reverse
//		• dfs/     — DirectedCycle, DepthFirstOrder, Topological analyses
//		• builder/ — deterministic fixtures: Path, Ring, Complete, RandomDAG
//
// ✨ Why choose digraph?
//
//   - Integer vertices, flat arrays — no vertex objects, no hashing
//   - Eager, immutable analyses — compute once, query forever
//   - Deterministic — insertion-ordered adjacency, explicit RNG seeding
//   - Pure Go — no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    0 ──▶ 1
//	    │     │
//	    ▼     ▼
//	    2 ──▶ 3
//
//	is a DAG; its only topological orders are [0 1 2 3] and [0 2 1 3].
//
// Every analysis takes a finished *core.Digraph snapshot and finalizes
// at construction; see each package's doc.go for contracts, complexity,
// and sentinel errors.
package digraph
