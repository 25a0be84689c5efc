// Package core provides the Digraph data type: a directed graph of
// vertices named 0 through V-1, implemented as a vertex-indexed array
// of adjacency lists.
//
// What:
//
//   - Digraph: fixed vertex count at construction, growable edge set.
//   - AddEdge appends to insertion-ordered adjacency lists; parallel
//     edges and self-loops are permitted.
//   - Queries: Adjacent (lazy, restartable enumeration), AdjacencyList
//     (defensive copy), Outdegree, Indegree, VertexCount, EdgeCount,
//     HasVertex, String.
//   - Transforms: Clone (deep copy, adjacency order preserved) and
//     Reverse (every edge flipped); both non-mutating.
//
// Why:
//
//   - Integer-indexed vertices keep algorithm state in flat arrays:
//     traversals over this representation need no hashing and no
//     vertex objects, only index arithmetic.
//   - Insertion-ordered adjacency makes every downstream traversal
//     deterministic for a fixed construction sequence.
//
// Complexity:
//
//   - AddEdge, Outdegree, Indegree, HasVertex: O(1)
//   - Adjacent enumeration: O(outdegree(v))
//   - Clone, Reverse, String: O(V + E)
//
// Errors:
//
//   - ErrVertexOutOfRange: index outside [0, VertexCount), or negative
//     vertex count at construction. Detected eagerly at the API
//     boundary; never clamped, never recovered internally.
//
// Concurrency:
//
//   - No internal locking. A Digraph is safe for any number of
//     concurrent readers once construction (all AddEdge calls) is
//     complete; concurrent mutation is the caller's responsibility.
package core
