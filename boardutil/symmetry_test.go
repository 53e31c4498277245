package boardutil_test

import (
	"testing"

	"github.com/partizangames/cgt/boardutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalIsStableUnderItsOwnSymmetries(t *testing.T) {
	b, err := boardutil.NewBoard([][]byte{
		{'.', 'L', '.'},
		{'.', '.', 'R'},
		{'R', '.', '.'},
	})
	require.NoError(t, err)

	canon := boardutil.Canonical(b, nil)
	again := boardutil.Canonical(canon, nil)
	assert.Equal(t, canon.Fingerprint(), again.Fingerprint())
}

func TestCanonicalAgreesAcrossReflection(t *testing.T) {
	a, err := boardutil.NewBoard([][]byte{
		{'.', '.', 'L'},
		{'R', '.', '.'},
	})
	require.NoError(t, err)

	mirrored, err := boardutil.NewBoard([][]byte{
		{'L', '.', '.'},
		{'.', '.', 'R'},
	})
	require.NoError(t, err)

	assert.Equal(t, boardutil.Canonical(a, nil).Fingerprint(), boardutil.Canonical(mirrored, nil).Fingerprint())
}

func TestCanonicalAgreesAcrossSquareRotation(t *testing.T) {
	a, err := boardutil.NewBoard([][]byte{
		{'.', 'L'},
		{'.', '.'},
	})
	require.NoError(t, err)

	// 90-degree clockwise rotation of a.
	rotated, err := boardutil.NewBoard([][]byte{
		{'.', '.'},
		{'.', 'L'},
	})
	require.NoError(t, err)

	assert.Equal(t, boardutil.Canonical(a, nil).Fingerprint(), boardutil.Canonical(rotated, nil).Fingerprint())
}

func TestCanonicalKeepsTokensWhenOrientationUnchanged(t *testing.T) {
	// A 3x1 board (wider than tall) has only shape-preserving candidates,
	// so its winning candidate is at most a plain reflection, confirming
	// tokens are left alone when orientation is unchanged.
	b, err := boardutil.NewBoard([][]byte{
		{'L', '.', '.'},
	})
	require.NoError(t, err)

	flip := map[byte]byte{'L': 'R', 'R': 'L'}
	canon := boardutil.Canonical(b, flip)
	// width != height, so no rotation candidates exist; orientation
	// never swaps and tokens must be untouched.
	found := false
	for _, c := range canon.Cells() {
		if c.Token == 'L' {
			found = true
		}
	}
	assert.True(t, found)
}
