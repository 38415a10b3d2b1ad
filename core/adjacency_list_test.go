package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isokolov/algokit/core"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.VertexCount())

	// duplicate is a no-op
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("", "B"), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", ""), core.ErrEmptyVertexID)
}

func TestAddEdge_AutoAddsEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_UndirectedMirror(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))

	nbrsA, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, nbrsA)

	nbrsB, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, nbrsB)
}

func TestAddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B"))

	nbrsA, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, nbrsA)

	nbrsB, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, nbrsB)
	assert.True(t, g.Directed())
}

func TestVertices_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"C", "A", "B"}, g.Vertices())
}

func TestNeighbors_AdjacencyOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("D", "B"))
	require.NoError(t, g.AddEdge("D", "C"))
	require.NoError(t, g.AddEdge("D", "E"))

	nbrs, err := g.Neighbors("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "E"}, nbrs)
}

func TestNeighbors_Unknown(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// Returned slices must be copies: mutating them cannot corrupt the graph.
func TestQueries_ReturnCopies(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))

	vs := g.Vertices()
	vs[0] = "X"
	assert.Equal(t, []string{"A", "B"}, g.Vertices())

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	nbrs[0] = "X"
	fresh, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, fresh)
}

func TestSelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "A"))
	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	// undirected self-loop records a single adjacency, not a mirror pair
	assert.Equal(t, []string{"A"}, nbrs)
}

// TestConcurrentMutation drives parallel writers and readers under -race.
func TestConcurrentMutation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ids := []string{"A", "B", "C", "D"}
			from := ids[n%len(ids)]
			for _, to := range ids {
				_ = g.AddEdge(from, to)
				g.HasVertex(to)
				_, _ = g.Neighbors(from)
				g.Vertices()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 32, g.EdgeCount())
}
