// Package dfs: mandatory post-construction self-checks.
//
// These checks encode the only non-trivial correctness conditions of
// the traversals: a reported cycle must be a closed walk over existing
// edges, and an order sequence must agree with its rank table. They run
// unconditionally at the end of every construction; a failure surfaces
// as ErrInvariantViolated and aborts the constructor.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// verifyCycle certifies a traced cycle against the digraph it came
// from. A nil cycle (acyclic verdict) passes. Otherwise the walk must
// contain at least one edge, start and end at the same vertex, and
// every consecutive pair must be an edge of g.
// Complexity: O(L · max outdegree) for a cycle of length L.
func verifyCycle(g *core.Digraph, cycle []int) error {
	if cycle == nil {
		return nil
	}
	if len(cycle) < 2 {
		return fmt.Errorf("cycle of length %d cannot close: %w", len(cycle), ErrInvariantViolated)
	}
	if first, last := cycle[0], cycle[len(cycle)-1]; first != last {
		return fmt.Errorf("cycle begins with %d and ends with %d: %w", first, last, ErrInvariantViolated)
	}
	for i := 0; i+1 < len(cycle); i++ {
		if !hasEdge(g, cycle[i], cycle[i+1]) {
			return fmt.Errorf("cycle step %d→%d is not an edge: %w", cycle[i], cycle[i+1], ErrInvariantViolated)
		}
	}

	return nil
}

// hasEdge reports whether g contains the directed edge v→w. Both
// endpoints come from a traced walk over g, so the range check cannot
// fire; a lookup error is treated as "no such edge".
func hasEdge(g *core.Digraph, v, w int) bool {
	adj, err := g.Adjacent(v)
	if err != nil {
		return false
	}
	for x := range adj {
		if x == w {
			return true
		}
	}

	return false
}

// verifyOrder certifies that both numbering sequences of o are
// consistent with their rank tables: the i-th preorder vertex has
// preorder rank i, the i-th postorder vertex has postorder rank i, and
// both sequences cover every vertex exactly once.
// Complexity: O(V).
func verifyOrder(o *DepthFirstOrder) error {
	if len(o.preorder) != len(o.pre) || len(o.postorder) != len(o.post) {
		return fmt.Errorf("numbering covers %d/%d vertices: %w", len(o.preorder), len(o.pre), ErrInvariantViolated)
	}
	for i, v := range o.preorder {
		if o.pre[v] != i {
			return fmt.Errorf("preorder[%d] = %d but PreRank(%d) = %d: %w", i, v, v, o.pre[v], ErrInvariantViolated)
		}
	}
	for i, v := range o.postorder {
		if o.post[v] != i {
			return fmt.Errorf("postorder[%d] = %d but PostRank(%d) = %d: %w", i, v, v, o.post[v], ErrInvariantViolated)
		}
	}

	return nil
}

// reverseInts reverses s in place.
func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
