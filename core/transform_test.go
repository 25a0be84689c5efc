package core_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/core"
)

// edgeMultiset returns, per vertex, the sorted multiset of destinations.
// Adjacency order is deliberately ignored: Reverse does not promise it.
func edgeMultiset(t *testing.T, g *core.Digraph) [][]int {
	t.Helper()
	out := make([][]int, g.VertexCount())
	for v := 0; v < g.VertexCount(); v++ {
		list, err := g.AdjacencyList(v)
		require.NoError(t, err)
		sort.Ints(list)
		out[v] = list
	}

	return out
}

// TestClone_Independence verifies that Clone is deep: adjacency order,
// counts, and degrees carry over, and later mutation of either graph
// leaves the other untouched.
func TestClone_Independence(t *testing.T) {
	g, err := core.NewDigraphFromEdges(3, [][2]int{{0, 2}, {0, 1}, {1, 2}})
	require.NoError(t, err)

	clone := g.Clone()
	assert.Equal(t, g.VertexCount(), clone.VertexCount())
	assert.Equal(t, g.EdgeCount(), clone.EdgeCount())
	assert.Equal(t, []int{2, 1}, collect(t, clone, 0)) // insertion order preserved

	in, err := clone.Indegree(2)
	require.NoError(t, err)
	assert.Equal(t, 2, in)

	// Mutate the clone; the original must not change.
	require.NoError(t, clone.AddEdge(2, 0))
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 4, clone.EdgeCount())
	assert.Empty(t, collect(t, g, 2))
}

// TestReverse_FlipsEdges checks that every edge v→w appears as w→v in
// the reversed digraph and that degrees swap roles.
func TestReverse_FlipsEdges(t *testing.T) {
	g, err := core.NewDigraphFromEdges(4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	require.NoError(t, err)

	r := g.Reverse()
	assert.Equal(t, 4, r.VertexCount())
	assert.Equal(t, 4, r.EdgeCount())
	assert.Equal(t, []int{0}, collect(t, r, 1))
	assert.Equal(t, []int{1, 2}, collect(t, r, 3))

	// Outdegree in r equals indegree in g and vice versa.
	for v := 0; v < 4; v++ {
		gOut, _ := g.Outdegree(v)
		gIn, _ := g.Indegree(v)
		rOut, _ := r.Outdegree(v)
		rIn, _ := r.Indegree(v)
		assert.Equal(t, gIn, rOut, "vertex %d", v)
		assert.Equal(t, gOut, rIn, "vertex %d", v)
	}

	// The receiver is untouched.
	assert.Equal(t, []int{1, 2}, collect(t, g, 0))
}

// TestReverse_RoundTrip verifies that reversing twice restores the edge
// multiset per vertex (order may differ, structure may not).
func TestReverse_RoundTrip(t *testing.T) {
	g, err := core.NewDigraphFromEdges(5, [][2]int{
		{0, 1}, {1, 2}, {2, 0}, {2, 2}, {3, 4}, {3, 4}, // cycle, loop, parallel pair
	})
	require.NoError(t, err)

	rr := g.Reverse().Reverse()
	assert.Equal(t, g.EdgeCount(), rr.EdgeCount())
	assert.Equal(t, edgeMultiset(t, g), edgeMultiset(t, rr))
}
