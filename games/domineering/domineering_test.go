package domineering_test

import (
	"testing"

	"github.com/partizangames/cgt/cgt"
	"github.com/partizangames/cgt/games/domineering"
	"github.com/partizangames/cgt/nimber"
	"github.com/partizangames/cgt/ruleset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty2x2BoardIsStar(t *testing.T) {
	pos, err := domineering.New(2, 2)
	require.NoError(t, err)

	rs := domineering.Ruleset{}
	cache := ruleset.NewCache()
	v := ruleset.ValueOf[domineering.Position](rs, cache, pos)

	assert.Equal(t, cgt.Star(nimber.New(1)), v)
}

func TestEmpty2x1BoardIsOne(t *testing.T) {
	// 2 wide, 1 tall: only Left's vertical domino needs 2 rows, so only
	// Right has a legal move on a 2-wide, 1-tall board. Use a 1-wide,
	// 2-tall board instead so only Left (vertical) can move.
	pos, err := domineering.New(1, 2)
	require.NoError(t, err)

	rs := domineering.Ruleset{}
	cache := ruleset.NewCache()
	v := ruleset.ValueOf[domineering.Position](rs, cache, pos)

	assert.Equal(t, cgt.Integer(1), v)
}

func TestMovesRespectOrientation(t *testing.T) {
	pos, err := domineering.New(1, 2)
	require.NoError(t, err)
	rs := domineering.Ruleset{}

	leftMoves := rs.Moves(pos, ruleset.Left)
	rightMoves := rs.Moves(pos, ruleset.Right)
	assert.Len(t, leftMoves, 1)
	assert.Empty(t, rightMoves)
}

func TestDecomposeSplitsDisconnectedRegions(t *testing.T) {
	pos, err := domineering.New(5, 1)
	require.NoError(t, err)
	rs := domineering.Ruleset{}

	// Occupy the middle cell so two disjoint 2-cell regions remain.
	mid := pos.Board.With(2, 0, 'L')
	split := rs.Decompose(domineering.Position{Board: mid})
	assert.Len(t, split, 2)
}

func TestDecompositionSoundness(t *testing.T) {
	// A 1-wide, 5-tall board with the middle row occupied splits into two
	// independent 1x2 regions. The whole board's value must equal the
	// disjunctive sum of the two regions' values computed separately.
	pos, err := domineering.New(1, 5)
	require.NoError(t, err)
	split := domineering.Position{Board: pos.Board.With(0, 2, 'L')}

	rs := domineering.Ruleset{}
	cache := ruleset.NewCache()
	whole := ruleset.ValueOf[domineering.Position](rs, cache, split)

	regions := rs.Decompose(split)
	require.Len(t, regions, 2)
	sum := cgt.Zero()
	for _, r := range regions {
		sum = cgt.Add(sum, ruleset.ValueOf[domineering.Position](rs, cache, r))
	}

	assert.Equal(t, sum, whole)
}

func TestCanonicalPositionAgreesAcrossRotation(t *testing.T) {
	a, err := domineering.New(2, 2)
	require.NoError(t, err)
	rs := domineering.Ruleset{}

	moved := a.Board.With(0, 0, 'L').With(0, 1, 'L')
	rotated := a.Board.With(0, 0, 'R').With(1, 0, 'R')

	canonA := rs.CanonicalPosition(domineering.Position{Board: moved})
	canonB := rs.CanonicalPosition(domineering.Position{Board: rotated})
	assert.Equal(t, rs.Fingerprint(canonA), rs.Fingerprint(canonB))
}
