package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/builder"
	"github.com/katalvlaran/digraph/core"
)

// adjacencyOf is a shorthand for AdjacencyList in assertions.
func adjacencyOf(t *testing.T, g *core.Digraph, v int) []int {
	t.Helper()
	list, err := g.AdjacencyList(v)
	require.NoError(t, err)

	return list
}

// TestPath covers shape, counts, and the size sentinel.
func TestPath(t *testing.T) {
	g, err := builder.Path(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []int{1}, adjacencyOf(t, g, 0))
	assert.Empty(t, adjacencyOf(t, g, 3))

	// Path(1): one isolated vertex.
	g, err = builder.Path(1)
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())

	_, err = builder.Path(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

// TestRing covers the wrap-around edge and the degenerate self-loop.
func TestRing(t *testing.T) {
	g, err := builder.Ring(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []int{0}, adjacencyOf(t, g, 2))

	// Ring(1) is a single self-loop.
	g, err = builder.Ring(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, adjacencyOf(t, g, 0))

	_, err = builder.Ring(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

// TestComplete verifies K_n degrees and edge count.
func TestComplete(t *testing.T) {
	g, err := builder.Complete(4)
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount()) // n·(n-1)
	for v := 0; v < 4; v++ {
		out, errOut := g.Outdegree(v)
		require.NoError(t, errOut)
		assert.Equal(t, 3, out, "outdegree(%d)", v)

		in, errIn := g.Indegree(v)
		require.NoError(t, errIn)
		assert.Equal(t, 3, in, "indegree(%d)", v)
	}

	_, err = builder.Complete(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

// TestRandomDAG_Validation checks the documented sentinel precedence:
// size first, then probability, then RNG presence.
func TestRandomDAG_Validation(t *testing.T) {
	_, err := builder.RandomDAG(0, 0.5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.RandomDAG(5, -0.1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.RandomDAG(5, 1.5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.RandomDAG(5, 0.5)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// TestRandomDAG_Deterministic verifies that equal seeds reproduce the
// exact digraph and that p spans its extremes correctly.
func TestRandomDAG_Deterministic(t *testing.T) {
	a, err := builder.RandomDAG(20, 0.3, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.RandomDAG(20, 0.3, builder.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, a.EdgeCount(), b.EdgeCount())
	for v := 0; v < 20; v++ {
		assert.Equal(t, adjacencyOf(t, a, v), adjacencyOf(t, b, v), "vertex %d", v)
	}

	// p=1 yields every upward pair, p=0 yields none.
	full, err := builder.RandomDAG(10, 1, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 45, full.EdgeCount()) // n·(n-1)/2

	empty, err := builder.RandomDAG(10, 0, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.EdgeCount())
}

// TestRandomDAG_EdgesPointUpward verifies acyclicity by construction:
// every edge v→w has v < w.
func TestRandomDAG_EdgesPointUpward(t *testing.T) {
	g, err := builder.RandomDAG(30, 0.4, builder.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	for v := 0; v < 30; v++ {
		for _, w := range adjacencyOf(t, g, v) {
			assert.Less(t, v, w, "edge %d→%d must point upward", v, w)
		}
	}
}

// TestWithRand_NilPanics verifies the option-constructor contract.
func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}
