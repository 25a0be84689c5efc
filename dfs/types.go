// Package dfs defines the shared traversal constants and sentinel
// errors for the DirectedCycle, DepthFirstOrder, and Topological
// analyses.
package dfs

import "errors"

// Traversal states of a vertex during depth-first search.
const (
	// White: the vertex has not been visited yet.
	White = iota
	// Gray: the vertex is on the current recursion path (on-stack).
	Gray
	// Black: the vertex and all its descendants are fully explored.
	Black
)

// NoRank is the rank reported by Topological.Rank for every vertex of a
// cyclic digraph (the Unordered terminal state).
const NoRank = -1

var (
	// ErrDigraphNil is returned when a nil *core.Digraph is passed to
	// NewDirectedCycle, NewDepthFirstOrder, or NewTopological.
	ErrDigraphNil = errors.New("dfs: digraph is nil")

	// ErrInvariantViolated indicates that a mandatory post-construction
	// self-check failed: a reported cycle is not a closed walk over
	// existing edges, or an order sequence disagrees with its rank
	// table. It signals a defect in this package, not bad input.
	ErrInvariantViolated = errors.New("dfs: traversal invariant violated")
)
