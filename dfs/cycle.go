// Package dfs: directed-cycle detection.
//
// DirectedCycle determines whether a core.Digraph has a directed cycle
// and, if so, retains one witness cycle. Detection is depth-first with
// an explicit on-stack marker per vertex: an edge into a vertex that is
// still on the current recursion path is a back-edge, and a back-edge
// closes a cycle.
//
// Complexity:
//
//   - Construction: O(V + E) time, O(V) memory (worst case)
//   - HasCycle: O(1); Cycle: O(length of the cycle)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// DirectedCycle is the eagerly computed cycle verdict for one digraph
// snapshot. It is immutable after construction; the analysis holds no
// reference to the source digraph.
type DirectedCycle struct {
	vertexCount int
	cycle       []int // closed witness walk, nil when acyclic
}

// cycleFinder carries the traversal state while the constructor runs.
type cycleFinder struct {
	graph   *core.Digraph
	marked  []bool // marked[v] = v has been discovered
	onStack []bool // onStack[v] = v is on the current recursion path
	edgeTo  []int  // edgeTo[v] = predecessor of v in the DFS tree
	cycle   []int
}

// NewDirectedCycle analyzes g and returns its cycle verdict.
// The digraph must not be mutated while the constructor runs; the
// result is a snapshot and stays valid regardless of later mutation.
// Returns ErrDigraphNil for a nil digraph and ErrInvariantViolated if
// the mandatory self-check on the traced cycle fails.
func NewDirectedCycle(g *core.Digraph) (*DirectedCycle, error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return nil, ErrDigraphNil
	}

	// 2. Prepare per-vertex traversal state.
	n := g.VertexCount()
	finder := &cycleFinder{
		graph:   g,
		marked:  make([]bool, n),
		onStack: make([]bool, n),
		edgeTo:  make([]int, n),
	}

	// 3. Search from every unvisited vertex in index order, stopping
	//    entirely once the first cycle is recorded.
	for v := 0; v < n && finder.cycle == nil; v++ {
		if !finder.marked[v] {
			if err := finder.search(v); err != nil {
				return nil, err
			}
		}
	}

	// 4. Certify the witness before exposing it.
	if err := verifyCycle(g, finder.cycle); err != nil {
		return nil, fmt.Errorf("NewDirectedCycle: %w", err)
	}

	return &DirectedCycle{vertexCount: n, cycle: finder.cycle}, nil
}

// search runs DFS from v, recording predecessors and tracing a cycle
// when a back-edge is found.
func (f *cycleFinder) search(v int) error {
	// 1. Put v on the recursion path.
	f.onStack[v] = true
	f.marked[v] = true

	// 2. Enumerate v's outgoing edges in insertion order.
	adj, err := f.graph.Adjacent(v)
	if err != nil {
		return fmt.Errorf("Adjacent(%d): %w", v, err)
	}
	for w := range adj {
		switch {
		// 2a. Short-circuit: a cycle was already found deeper down.
		case f.cycle != nil:
			return nil

		// 2b. Tree edge: remember where w came from and recurse.
		case !f.marked[w]:
			f.edgeTo[w] = v
			if err = f.search(w); err != nil {
				return err
			}

		// 2c. Back-edge v→w with w still on-stack: trace the cycle.
		case f.onStack[w]:
			f.traceCycle(v, w)
		}
	}

	// 3. Backtrack: v leaves the recursion path.
	f.onStack[v] = false

	return nil
}

// traceCycle walks the recorded predecessor chain from v back to its
// on-stack ancestor w, then reverses the walk and closes it so the
// cycle reads w → … → v → w along real edges.
func (f *cycleFinder) traceCycle(v, w int) {
	// 1. Collect v, edgeTo[v], ... down to w inclusive.
	walk := make([]int, 0, len(f.onStack))
	for x := v; x != w; x = f.edgeTo[x] {
		walk = append(walk, x)
	}
	walk = append(walk, w)

	// 2. Reverse so consecutive pairs follow edge direction.
	reverseInts(walk)

	// 3. Close the loop: first and last element are both w.
	f.cycle = append(walk, w)
}

// HasCycle reports whether the digraph has a directed cycle.
func (c *DirectedCycle) HasCycle() bool {
	return c.cycle != nil
}

// Cycle returns a copy of one directed cycle as a closed walk
// v0, v1, …, vk = v0, or nil when the digraph is acyclic. Only the
// first cycle encountered by the search is kept; no minimal-length
// guarantee is made. Repeated calls return equal sequences.
func (c *DirectedCycle) Cycle() []int {
	if c.cycle == nil {
		return nil
	}
	out := make([]int, len(c.cycle))
	copy(out, c.cycle)

	return out
}
