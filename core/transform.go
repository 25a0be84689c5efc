// Package core: non-mutating digraph transforms (Clone, Reverse).
//
// Both methods return a fresh Digraph instance and never touch the
// receiver. Determinism: Clone preserves adjacency order exactly;
// Reverse emits flipped edges by scanning vertices 0..V-1 and each
// adjacency list in insertion order.
package core

// Clone returns a deep, independent copy of the digraph. Adjacency
// order, edge count, and indegree counters all carry over; subsequent
// AddEdge calls on either graph leave the other untouched.
// Complexity: O(V + E) time and memory.
func (g *Digraph) Clone() *Digraph {
	out := &Digraph{
		adjacency: make([][]int, len(g.adjacency)),
		indegree:  make([]int, len(g.indegree)),
		edgeCount: g.edgeCount,
	}
	copy(out.indegree, g.indegree)
	for v, adj := range g.adjacency {
		out.adjacency[v] = make([]int, len(adj))
		copy(out.adjacency[v], adj)
	}

	return out
}

// Reverse returns a new digraph with every edge direction flipped:
// each edge v→w of the receiver appears as w→v in the result.
// The receiver is not mutated. The edge multiset per vertex is
// preserved; adjacency order in the result follows the scan order of
// the receiver, not the receiver's own insertion order.
// Complexity: O(V + E) time and memory.
func (g *Digraph) Reverse() *Digraph {
	out := &Digraph{
		adjacency: make([][]int, len(g.adjacency)),
		indegree:  make([]int, len(g.indegree)),
	}
	for v, adj := range g.adjacency {
		for _, w := range adj {
			out.adjacency[w] = append(out.adjacency[w], v)
			out.indegree[v]++
			out.edgeCount++
		}
	}

	return out
}
