package boardutil_test

import (
	"testing"

	"github.com/partizangames/cgt/boardutil"
	"github.com/partizangames/cgt/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPath3(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("0"))
	require.NoError(t, g.AddVertex("1"))
	require.NoError(t, g.AddVertex("2"))
	_, err := g.AddEdge("0", "1", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("1", "2", 0)
	require.NoError(t, err)
	return g
}

func TestGraphFingerprintStableUnderVertexInsertOrder(t *testing.T) {
	g1 := buildPath3(t)

	g2 := core.NewGraph()
	require.NoError(t, g2.AddVertex("2"))
	require.NoError(t, g2.AddVertex("0"))
	require.NoError(t, g2.AddVertex("1"))
	_, err := g2.AddEdge("1", "2", 0)
	require.NoError(t, err)
	_, err = g2.AddEdge("0", "1", 0)
	require.NoError(t, err)

	states := boardutil.VertexStates{"0": '.', "1": '.', "2": '.'}
	assert.Equal(t, boardutil.GraphFingerprint(g1, states), boardutil.GraphFingerprint(g2, states))
}

func TestGraphFingerprintDistinguishesColoring(t *testing.T) {
	g := buildPath3(t)
	a := boardutil.VertexStates{"0": '.', "1": '.', "2": '.'}
	b := boardutil.VertexStates{"0": 'L', "1": '.', "2": '.'}
	assert.NotEqual(t, boardutil.GraphFingerprint(g, a), boardutil.GraphFingerprint(g, b))
}
