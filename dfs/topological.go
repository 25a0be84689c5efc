// Package dfs: topological ordering.
//
// Topological composes DirectedCycle and DepthFirstOrder: a digraph has
// a topological order iff it is acyclic, and for an acyclic digraph the
// reverse postorder of any depth-first search is such an order — a
// vertex finishes only after everything reachable from it has finished,
// so reversing the finish order points every edge from an earlier to a
// later position.
//
// Complexity:
//
//   - Construction: O(V + E) time, O(V) memory
//   - HasOrder, Rank: O(1); Order: O(V)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Topological is the eagerly computed ordering verdict for one digraph
// snapshot. It finalizes into one of two terminal states: Ordered
// (acyclic; order and rank table available) or Unordered (cyclic; the
// order is absent and every rank is NoRank). Immutable afterward.
type Topological struct {
	vertexCount int
	order       []int // topological order, nil when the digraph is cyclic
	rank        []int // rank[v] = position of v in order, nil when cyclic
}

// NewTopological analyzes g and returns its ordering verdict.
// Construction first runs cycle detection; only an acyclic digraph is
// numbered. Returns ErrDigraphNil for a nil digraph; propagates
// ErrInvariantViolated from the composed analyses.
func NewTopological(g *core.Digraph) (*Topological, error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return nil, ErrDigraphNil
	}
	t := &Topological{vertexCount: g.VertexCount()}

	// 2. Gate on acyclicity.
	finder, err := NewDirectedCycle(g)
	if err != nil {
		return nil, fmt.Errorf("NewTopological: %w", err)
	}
	if finder.HasCycle() {
		// Unordered terminal state: no order, no ranks.
		return t, nil
	}

	// 3. Acyclic: reverse postorder is the topological order.
	order, err := NewDepthFirstOrder(g)
	if err != nil {
		return nil, fmt.Errorf("NewTopological: %w", err)
	}
	t.order = order.ReversePostorder()

	// 4. Rank each vertex by its position in the order.
	t.rank = make([]int, t.vertexCount)
	for i, v := range t.order {
		t.rank[v] = i
	}

	return t, nil
}

// HasOrder reports whether the digraph has a topological order, which
// holds exactly when it is acyclic.
func (t *Topological) HasOrder() bool {
	return t.order != nil
}

// Order returns a copy of the topological order, or nil when the
// digraph is cyclic. When present, every edge v→w of the analyzed
// digraph satisfies Rank(v) < Rank(w). Repeated calls return equal
// sequences.
func (t *Topological) Order() []int {
	if t.order == nil {
		return nil
	}
	out := make([]int, len(t.order))
	copy(out, t.order)

	return out
}

// Rank returns the position of v in the topological order, or NoRank
// when the digraph is cyclic.
// Returns core.ErrVertexOutOfRange if v is out of range.
func (t *Topological) Rank(v int) (int, error) {
	if v < 0 || v >= t.vertexCount {
		return 0, fmt.Errorf("Rank: vertex %d is not between 0 and %d: %w", v, t.vertexCount-1, core.ErrVertexOutOfRange)
	}
	if t.rank == nil {
		return NoRank, nil
	}

	return t.rank[v], nil
}
