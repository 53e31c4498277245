package snort_test

import (
	"testing"

	"github.com/partizangames/cgt/cgt"
	"github.com/partizangames/cgt/core"
	"github.com/partizangames/cgt/dyadic"
	"github.com/partizangames/cgt/games/snort"
	"github.com/partizangames/cgt/ruleset"
	"github.com/partizangames/cgt/thermo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func path3(t *testing.T) *core.Graph {
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

func TestPath3IsSwitchWithHalfTemperature(t *testing.T) {
	pos := snort.New(path3(t))
	rs := snort.Ruleset{}
	cache := ruleset.NewCache()

	v := ruleset.ValueOf[snort.Position](rs, cache, pos)
	assert.Equal(t, dyadic.New(1, 1), thermo.Temperature(v))
}

func TestPath3DecomposesToSingleComponent(t *testing.T) {
	pos := snort.New(path3(t))
	rs := snort.Ruleset{}
	assert.Len(t, rs.Decompose(pos), 1)
}

func TestDisconnectedGraphDecomposesAndSumsCorrectly(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	// no edge: "a" and "b" are separate components

	rs := snort.Ruleset{}
	pos := snort.New(g)
	split := rs.Decompose(pos)
	require.Len(t, split, 2)

	cache := ruleset.NewCache()
	direct := ruleset.ValueOf[snort.Position](rs, cache, pos)

	sum := cgt.Zero()
	for _, c := range split {
		sum = cgt.Add(sum, ruleset.ValueOf[snort.Position](rs, cache, c))
	}
	assert.Equal(t, direct, sum)
}

func TestMovesBlockedByOppositeColourNeighbour(t *testing.T) {
	pos := snort.New(path3(t))
	rs := snort.Ruleset{}

	leftMoves := rs.Moves(pos, ruleset.Left)
	require.NotEmpty(t, leftMoves)

	var afterCenterLeft snort.Position
	for _, m := range leftMoves {
		if m.States["1"] == 'L' {
			afterCenterLeft = m
		}
	}
	require.NotNil(t, afterCenterLeft.Graph)

	// Both end vertices are now adjacent to an L-coloured vertex, so
	// Right has nowhere left to play.
	rightMoves := rs.Moves(afterCenterLeft, ruleset.Right)
	assert.Empty(t, rightMoves)
}
