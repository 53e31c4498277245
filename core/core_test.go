package core_test

import (
	"testing"

	"github.com/partizangames/cgt/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertexIsIdempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"))
	assert.Equal(t, []string{"a"}, g.Vertices())
}

func TestAddVertexRejectsEmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestHasVertex(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.HasVertex("a"))
	require.NoError(t, g.AddVertex("a"))
	assert.True(t, g.HasVertex("a"))
	assert.False(t, g.HasVertex(""))
}

func TestVerticesSortedAscending(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("c"))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}

func TestAddEdgeAutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, eid)
	assert.ElementsMatch(t, []string{"a", "b"}, g.Vertices())
}

func TestAddEdgeRejectsEmptyEndpoint(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "b", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestAddEdgeRejectsLoopByDefault(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "a", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestAddEdgeAllowsLoopWithOption(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	eid, err := g.AddEdge("a", "a", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, eid)
	assert.True(t, g.Looped())
}

func TestUndirectedEdgeIsMirroredInNeighborIDs(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	aNbrs, err := g.NeighborIDs("a")
	require.NoError(t, err)
	bNbrs, err := g.NeighborIDs("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, aNbrs)
	assert.Equal(t, []string{"a"}, bNbrs)
}

func TestDirectedEdgeIsOneWayInNeighborIDs(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	aNbrs, err := g.NeighborIDs("a")
	require.NoError(t, err)
	bNbrs, err := g.NeighborIDs("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, aNbrs)
	assert.Empty(t, bNbrs)
	assert.True(t, g.Directed())
}

func TestNeighborIDsOnUnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.NeighborIDs("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestNeighborsSortedByEdgeID(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "c", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	edges, err := g.Neighbors("a")
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Less(t, edges[0].ID, edges[1].ID)
}
