// Package dfs: depth-first vertex numbering.
//
// DepthFirstOrder computes, for one digraph snapshot, the preorder and
// postorder of its vertices under depth-first search, plus the reverse
// postorder. The search covers the whole forest: it restarts from every
// unvisited vertex in index order, and explores each adjacency list in
// insertion order, so the result is deterministic for a fixed digraph.
//
// Complexity:
//
//   - Construction: O(V + E) time, O(V) memory
//   - PreRank, PostRank: O(1); sequence accessors: O(V)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// DepthFirstOrder holds the three derived sequences and the two rank
// tables of a depth-first traversal. Immutable after construction.
type DepthFirstOrder struct {
	pre       []int // pre[v] = preorder rank of v
	post      []int // post[v] = postorder rank of v
	preorder  []int // vertices in the order they were first visited
	postorder []int // vertices in the order they were finished
}

// orderWalker carries the counters and marks while the constructor runs.
type orderWalker struct {
	graph       *core.Digraph
	marked      []bool
	res         *DepthFirstOrder
	preCounter  int
	postCounter int
}

// NewDepthFirstOrder analyzes g and returns its depth-first numbering.
// Returns ErrDigraphNil for a nil digraph and ErrInvariantViolated if
// the rank tables disagree with the produced sequences.
func NewDepthFirstOrder(g *core.Digraph) (*DepthFirstOrder, error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return nil, ErrDigraphNil
	}

	// 2. Allocate rank tables and sequence storage up front.
	n := g.VertexCount()
	res := &DepthFirstOrder{
		pre:       make([]int, n),
		post:      make([]int, n),
		preorder:  make([]int, 0, n),
		postorder: make([]int, 0, n),
	}
	walker := &orderWalker{graph: g, marked: make([]bool, n), res: res}

	// 3. Cover the whole forest in index order.
	for v := 0; v < n; v++ {
		if !walker.marked[v] {
			if err := walker.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 4. Certify sequence/rank consistency before exposing the result.
	if err := verifyOrder(res); err != nil {
		return nil, fmt.Errorf("NewDepthFirstOrder: %w", err)
	}

	return res, nil
}

// visit numbers v on entry (preorder) and on exit (postorder), recursing
// into unvisited neighbors in adjacency order in between.
func (o *orderWalker) visit(v int) error {
	// 1. First visit: assign the next preorder number.
	o.marked[v] = true
	o.res.pre[v] = o.preCounter
	o.preCounter++
	o.res.preorder = append(o.res.preorder, v)

	// 2. Recurse into unvisited neighbors.
	adj, err := o.graph.Adjacent(v)
	if err != nil {
		return fmt.Errorf("Adjacent(%d): %w", v, err)
	}
	for w := range adj {
		if !o.marked[w] {
			if err = o.visit(w); err != nil {
				return err
			}
		}
	}

	// 3. All descendants finished: assign the next postorder number.
	o.res.post[v] = o.postCounter
	o.postCounter++
	o.res.postorder = append(o.res.postorder, v)

	return nil
}

// PreRank returns the preorder number assigned to v.
// Returns core.ErrVertexOutOfRange if v is out of range.
func (o *DepthFirstOrder) PreRank(v int) (int, error) {
	if v < 0 || v >= len(o.pre) {
		return 0, fmt.Errorf("PreRank: vertex %d is not between 0 and %d: %w", v, len(o.pre)-1, core.ErrVertexOutOfRange)
	}

	return o.pre[v], nil
}

// PostRank returns the postorder number assigned to v.
// Returns core.ErrVertexOutOfRange if v is out of range.
func (o *DepthFirstOrder) PostRank(v int) (int, error) {
	if v < 0 || v >= len(o.post) {
		return 0, fmt.Errorf("PostRank: vertex %d is not between 0 and %d: %w", v, len(o.post)-1, core.ErrVertexOutOfRange)
	}

	return o.post[v], nil
}

// Preorder returns a copy of the vertices in preorder-visit order.
// The i-th element has PreRank exactly i.
func (o *DepthFirstOrder) Preorder() []int {
	out := make([]int, len(o.preorder))
	copy(out, o.preorder)

	return out
}

// Postorder returns a copy of the vertices in postorder-finish order.
// The i-th element has PostRank exactly i.
func (o *DepthFirstOrder) Postorder() []int {
	out := make([]int, len(o.postorder))
	copy(out, o.postorder)

	return out
}

// ReversePostorder returns a copy of the postorder sequence read
// back-to-front. For an acyclic digraph this is a topological order.
func (o *DepthFirstOrder) ReversePostorder() []int {
	out := make([]int, len(o.postorder))
	for i, v := range o.postorder {
		out[len(out)-1-i] = v
	}

	return out
}
