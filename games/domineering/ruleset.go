package domineering

import (
	"github.com/partizangames/cgt/boardutil"
	"github.com/partizangames/cgt/ruleset"
)

// Ruleset implements ruleset.Ruleset[Position].
type Ruleset struct {
	ruleset.Base[Position]
}

// Moves returns every placement available to player from pos. Left
// plays vertical (1 wide, 2 tall) dominoes; Right plays horizontal (2
// wide, 1 tall) dominoes.
func (Ruleset) Moves(pos Position, player ruleset.Player) []Position {
	b := pos.Board
	var out []Position
	if player == ruleset.Left {
		for y := 0; y < b.Height-1; y++ {
			for x := 0; x < b.Width; x++ {
				if b.At(x, y) == tokenEmpty && b.At(x, y+1) == tokenEmpty {
					next := b.With(x, y, tokenLeft).With(x, y+1, tokenLeft)
					out = append(out, Position{Board: next})
				}
			}
		}
		return out
	}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width-1; x++ {
			if b.At(x, y) == tokenEmpty && b.At(x+1, y) == tokenEmpty {
				next := b.With(x, y, tokenRight).With(x+1, y, tokenRight)
				out = append(out, Position{Board: next})
			}
		}
	}
	return out
}

// CanonicalPosition picks the lexicographically smallest board among
// pos's symmetries, remapping L<->R when a symmetry swaps row/column
// orientation.
func (Ruleset) CanonicalPosition(pos Position) Position {
	return Position{Board: boardutil.Canonical(pos.Board, flipTokens)}
}

// Fingerprint serializes pos's board layout.
func (Ruleset) Fingerprint(pos Position) []byte {
	return pos.Board.Fingerprint()
}

// Decompose splits pos into its disconnected empty regions (spec.md
// §9): each region becomes an independent component whose value sums
// with the others, since dominoes in one region never interact with
// another.
func (Ruleset) Decompose(pos Position) []Position {
	regions := boardutil.Components(pos.Board, isPlayable, tokenMasked)
	if len(regions) <= 1 {
		return []Position{pos}
	}
	out := make([]Position, len(regions))
	for i, r := range regions {
		out[i] = Position{Board: r}
	}
	return out
}
