// Package dfs implements the depth-first analyses of a core.Digraph:
// directed-cycle detection, preorder/postorder numbering, and
// topological ordering.
//
// What:
//
//   - DirectedCycle: verdict (cyclic/acyclic) plus, for a cyclic
//     digraph, one witness cycle as a closed walk. Detection uses
//     depth-first search with an on-stack marker per vertex; the first
//     back-edge found ends the search.
//   - DepthFirstOrder: preorder and postorder sequences with per-vertex
//     rank tables, and the reverse postorder.
//   - Topological: composes the two — cycle-gate first, then reverse
//     postorder as the order, with per-vertex ranks (NoRank when the
//     digraph is cyclic).
//
// Why:
//
//   - Order dependency graphs (build steps, course prerequisites, task
//     schedules) and prove when no such order exists.
//   - Reverse postorder is the backbone of further digraph processing
//     (reachability sweeps, condensation), so it is exposed directly.
//
// Design:
//
//   - Each analysis is computed once, eagerly, at construction from a
//     stable Digraph snapshot and is immutable afterward; accessors
//     return defensive copies, so repeated queries yield equal results.
//   - Every constructor ends with a mandatory self-check (closed-walk
//     certification, rank/sequence round-trip); see verify.go.
//   - Traversal is recursive; depth is bounded by the longest simple
//     path of the input.
//
// Complexity:
//
//   - All three constructions: Time O(V+E), Memory O(V)
//   - Verdict and rank queries: O(1); sequence accessors: O(V)
//
// Errors:
//
//   - ErrDigraphNil             nil *core.Digraph argument
//   - ErrInvariantViolated      a mandatory self-check failed
//   - core.ErrVertexOutOfRange  rank query outside [0, VertexCount)
package dfs
