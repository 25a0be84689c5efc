// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// builders.go — deterministic digraph factories.
//
// Every builder validates its parameters first, then constructs a fresh
// core.Digraph and emits edges in a stable, documented order, so equal
// inputs (and, for RandomDAG, equal seeds) produce identical digraphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Path builds the directed path P_n: edges 0→1→…→n-1, in that order.
// Requires n ≥ 1; Path(1) is a single isolated vertex.
// Complexity: O(n).
func Path(n int) (*core.Digraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Path(%d): %w", n, ErrTooFewVertices)
	}
	g, err := core.NewDigraph(n)
	if err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}
	for v := 0; v+1 < n; v++ {
		if err = g.AddEdge(v, v+1); err != nil {
			return nil, fmt.Errorf("Path: %w", err)
		}
	}

	return g, nil
}

// Ring builds the directed cycle C_n: edges v→(v+1) mod n for each
// vertex in index order. Requires n ≥ 1; Ring(1) is one self-loop.
// Complexity: O(n).
func Ring(n int) (*core.Digraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Ring(%d): %w", n, ErrTooFewVertices)
	}
	g, err := core.NewDigraph(n)
	if err != nil {
		return nil, fmt.Errorf("Ring: %w", err)
	}
	for v := 0; v < n; v++ {
		if err = g.AddEdge(v, (v+1)%n); err != nil {
			return nil, fmt.Errorf("Ring: %w", err)
		}
	}

	return g, nil
}

// Complete builds the complete digraph K_n with every ordered pair
// v→w, v ≠ w, emitted row by row. Requires n ≥ 1.
// Complexity: O(n²).
func Complete(n int) (*core.Digraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete(%d): %w", n, ErrTooFewVertices)
	}
	g, err := core.NewDigraph(n)
	if err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}
	for v := 0; v < n; v++ {
		for w := 0; w < n; w++ {
			if v == w {
				continue
			}
			if err = g.AddEdge(v, w); err != nil {
				return nil, fmt.Errorf("Complete: %w", err)
			}
		}
	}

	return g, nil
}

// RandomDAG builds a random acyclic digraph on n vertices: each ordered
// pair v→w with v < w is drawn independently with probability p, in row
// order. Acyclicity holds by construction (every edge points upward).
// Requires n ≥ 1, p in [0,1], and an RNG via WithSeed or WithRand.
// Complexity: O(n²).
func RandomDAG(n int, p float64, opts ...Option) (*core.Digraph, error) {
	// Validation order: size, probability, RNG presence.
	if n < 1 {
		return nil, fmt.Errorf("RandomDAG(%d): %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomDAG: p=%v: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("RandomDAG: %w", ErrNeedRandSource)
	}

	g, err := core.NewDigraph(n)
	if err != nil {
		return nil, fmt.Errorf("RandomDAG: %w", err)
	}
	for v := 0; v < n; v++ {
		for w := v + 1; w < n; w++ {
			if cfg.rng.Float64() < p {
				if err = g.AddEdge(v, w); err != nil {
					return nil, fmt.Errorf("RandomDAG: %w", err)
				}
			}
		}
	}

	return g, nil
}
