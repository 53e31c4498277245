package skijumps_test

import (
	"testing"

	"github.com/partizangames/cgt/cgt"
	"github.com/partizangames/cgt/games/skijumps"
	"github.com/partizangames/cgt/nimber"
	"github.com/partizangames/cgt/ruleset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleNeutralTokenStackIsStar(t *testing.T) {
	pos := skijumps.New([]byte{'.'})
	rs := skijumps.Ruleset{}
	cache := ruleset.NewCache()

	v := ruleset.ValueOf[skijumps.Position](rs, cache, pos)
	assert.Equal(t, cgt.Star(nimber.New(1)), v)
}

func TestSingleLeftTokenStackIsPositiveOne(t *testing.T) {
	pos := skijumps.New([]byte{'L'})
	rs := skijumps.Ruleset{}
	cache := ruleset.NewCache()

	v := ruleset.ValueOf[skijumps.Position](rs, cache, pos)
	assert.Equal(t, cgt.Integer(1), v)
}

func TestEmptyStackHasNoMoves(t *testing.T) {
	pos := skijumps.New([]byte{})
	rs := skijumps.Ruleset{}
	assert.Empty(t, rs.Moves(pos, ruleset.Left))
	assert.Empty(t, rs.Moves(pos, ruleset.Right))
}

func TestDecomposeDropsEmptyStacksAndSumsComponents(t *testing.T) {
	pos := skijumps.New([]byte{'L'}, []byte{}, []byte{'R'})
	rs := skijumps.Ruleset{}
	components := rs.Decompose(pos)
	require.Len(t, components, 2)

	cache := ruleset.NewCache()
	direct := ruleset.ValueOf[skijumps.Position](rs, cache, pos)
	sum := cgt.Zero()
	for _, c := range components {
		sum = cgt.Add(sum, ruleset.ValueOf[skijumps.Position](rs, cache, c))
	}
	assert.Equal(t, direct, sum)
}

func TestOnlyMatchingColourOrNeutralMayBePopped(t *testing.T) {
	pos := skijumps.New([]byte{'L', 'R'}) // bottom L, top R
	rs := skijumps.Ruleset{}

	leftMoves := rs.Moves(pos, ruleset.Left)
	assert.Empty(t, leftMoves, "Left cannot pop an R top token")

	rightMoves := rs.Moves(pos, ruleset.Right)
	require.Len(t, rightMoves, 1)
}
