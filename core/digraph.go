// Package core: Digraph mutation and query methods.
//
// All range checks use the same inclusive-exclusive convention: valid
// vertex indices are 0 through VertexCount()-1. Checks run eagerly at
// the API boundary, before any storage is touched; indices are never
// silently clamped.
package core

import (
	"fmt"
	"iter"
	"strings"
)

// requireVertex returns ErrVertexOutOfRange unless 0 <= v < VertexCount.
// Complexity: O(1).
func (g *Digraph) requireVertex(v int) error {
	if v < 0 || v >= len(g.adjacency) {
		return fmt.Errorf("vertex %d is not between 0 and %d: %w", v, len(g.adjacency)-1, ErrVertexOutOfRange)
	}

	return nil
}

// VertexCount returns the number of vertices, fixed at construction.
// Complexity: O(1).
func (g *Digraph) VertexCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of directed edges added so far.
// Invariant: equals the sum of all adjacency-list lengths.
// Complexity: O(1).
func (g *Digraph) EdgeCount() int {
	return g.edgeCount
}

// HasVertex reports whether v is a valid vertex index of this digraph.
// Complexity: O(1).
func (g *Digraph) HasVertex(v int) bool {
	return v >= 0 && v < len(g.adjacency)
}

// AddEdge appends the directed edge v→w: w joins the tail of v's
// adjacency list, w's indegree and the edge count are incremented.
// Parallel edges and self-loops are permitted.
// Returns ErrVertexOutOfRange unless both endpoints are in range.
// Complexity: amortized O(1).
func (g *Digraph) AddEdge(v, w int) error {
	// 1) Validate both endpoints before mutating anything.
	if err := g.requireVertex(v); err != nil {
		return fmt.Errorf("AddEdge: tail: %w", err)
	}
	if err := g.requireVertex(w); err != nil {
		return fmt.Errorf("AddEdge: head: %w", err)
	}

	// 2) Record the edge; insertion order is preserved so downstream
	//    traversals are deterministic.
	g.adjacency[v] = append(g.adjacency[v], w)
	g.indegree[w]++
	g.edgeCount++

	return nil
}

// Adjacent returns a lazy, restartable enumeration of the vertices
// adjacent from v, in edge-insertion order. Ranging over the returned
// sequence multiple times replays it from the start. The sequence
// reflects the adjacency list as of each restart; do not mutate the
// digraph while a traversal is consuming it.
// Returns ErrVertexOutOfRange if v is out of range.
// Complexity: O(1) to obtain, O(outdegree(v)) per full enumeration.
func (g *Digraph) Adjacent(v int) (iter.Seq[int], error) {
	if err := g.requireVertex(v); err != nil {
		return nil, fmt.Errorf("Adjacent: %w", err)
	}

	return func(yield func(int) bool) {
		for _, w := range g.adjacency[v] {
			if !yield(w) {
				return
			}
		}
	}, nil
}

// AdjacencyList returns a fresh copy of v's adjacency list in insertion
// order. Mutating the returned slice does not affect the digraph.
// Returns ErrVertexOutOfRange if v is out of range.
// Complexity: O(outdegree(v)).
func (g *Digraph) AdjacencyList(v int) ([]int, error) {
	if err := g.requireVertex(v); err != nil {
		return nil, fmt.Errorf("AdjacencyList: %w", err)
	}
	out := make([]int, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Outdegree returns the number of edges incident from v.
// Returns ErrVertexOutOfRange if v is out of range.
// Complexity: O(1).
func (g *Digraph) Outdegree(v int) (int, error) {
	if err := g.requireVertex(v); err != nil {
		return 0, fmt.Errorf("Outdegree: %w", err)
	}

	return len(g.adjacency[v]), nil
}

// Indegree returns the number of edges incident to v.
// Returns ErrVertexOutOfRange if v is out of range.
// Complexity: O(1).
func (g *Digraph) Indegree(v int) (int, error) {
	if err := g.requireVertex(v); err != nil {
		return 0, fmt.Errorf("Indegree: %w", err)
	}

	return g.indegree[v], nil
}

// String renders the digraph as a vertex/edge header followed by one
// adjacency line per vertex, e.g.
//
//	3 vertices, 2 edges
//	0: 1 2
//	1:
//	2:
//
// Complexity: O(V + E).
func (g *Digraph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d vertices, %d edges\n", len(g.adjacency), g.edgeCount)
	for v := range g.adjacency {
		fmt.Fprintf(&sb, "%d:", v)
		for _, w := range g.adjacency[v] {
			fmt.Fprintf(&sb, " %d", w)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
