// Package core defines the Digraph type: a directed graph over vertices
// named 0 through V-1, stored as vertex-indexed adjacency lists.
//
// This file declares the Digraph struct, its sentinel errors, and the
// NewDigraph / NewDigraphFromEdges constructors.
//
// Errors:
//
//	ErrVertexOutOfRange - vertex index outside [0, VertexCount), or a
//	                      negative vertex count at construction.
package core

import (
	"errors"
	"fmt"
)

// ErrVertexOutOfRange is the single sentinel error of the core package.
// It is returned whenever a vertex index argument falls outside
// [0, VertexCount), and when a digraph is constructed with a negative
// vertex count. Callers branch with errors.Is; call sites attach
// method context via %w wrapping.
var ErrVertexOutOfRange = errors.New("core: vertex index out of range")

// Digraph is an in-memory directed graph with a fixed vertex count and a
// growable edge set. Vertices are plain integer indices in [0, V);
// no vertex objects exist. Parallel edges and self-loops are permitted.
//
// The zero value is not usable; construct via NewDigraph or
// NewDigraphFromEdges. Digraph is safe for concurrent readers only
// while no writer is active (single-writer-then-many-readers).
type Digraph struct {
	// adjacency[v] holds the destinations of v's outgoing edges,
	// in insertion order.
	adjacency [][]int

	// indegree[v] counts edges pointing at v.
	indegree []int

	// edgeCount equals the sum of all adjacency-list lengths.
	edgeCount int
}

// NewDigraph returns an empty digraph with vertexCount vertices and zero
// edges. Returns ErrVertexOutOfRange if vertexCount is negative.
// Complexity: O(V) time and memory.
func NewDigraph(vertexCount int) (*Digraph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("NewDigraph: vertex count %d must be nonnegative: %w", vertexCount, ErrVertexOutOfRange)
	}

	return &Digraph{
		adjacency: make([][]int, vertexCount),
		indegree:  make([]int, vertexCount),
	}, nil
}

// NewDigraphFromEdges builds a digraph with vertexCount vertices and one
// directed edge per (source, destination) pair, inserted in slice order.
// Repeats and self-loops are allowed. Any out-of-range endpoint aborts
// construction with ErrVertexOutOfRange.
// Complexity: O(V + len(edges)).
func NewDigraphFromEdges(vertexCount int, edges [][2]int) (*Digraph, error) {
	g, err := NewDigraph(vertexCount)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("NewDigraphFromEdges: edge %d: %w", i, err)
		}
	}

	return g, nil
}
