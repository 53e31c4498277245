package skijumps

import (
	"bytes"

	"github.com/partizangames/cgt/ruleset"
)

// Ruleset implements ruleset.Ruleset[Position].
type Ruleset struct {
	ruleset.Base[Position]
}

func colourOf(player ruleset.Player) byte {
	if player == ruleset.Left {
		return tokenLeft
	}
	return tokenRight
}

// Moves returns one Position per stack whose top token is either
// player's colour or neutral, with that token popped.
func (Ruleset) Moves(pos Position, player ruleset.Player) []Position {
	mine := colourOf(player)

	var out []Position
	for i, s := range pos.Stacks {
		top, ok := s.top()
		if !ok || (top != mine && top != tokenNeutral) {
			continue
		}
		next := make([]Stack, len(pos.Stacks))
		for j, other := range pos.Stacks {
			if j == i {
				next[j] = s.popped()
			} else {
				next[j] = other.clone()
			}
		}
		out = append(out, Position{Stacks: next})
	}
	return out
}

// Fingerprint serializes every stack's contents, length-delimited.
func (Ruleset) Fingerprint(pos Position) []byte {
	var buf bytes.Buffer
	for _, s := range pos.Stacks {
		buf.WriteByte(byte(len(s)))
		buf.Write(s)
		buf.WriteByte(0)
	}
	return buf.Bytes()
}

// Decompose splits pos into one single-stack Position per non-empty
// stack; empty stacks contribute the zero game and are dropped.
func (Ruleset) Decompose(pos Position) []Position {
	var out []Position
	for _, s := range pos.Stacks {
		if len(s) == 0 {
			continue
		}
		out = append(out, Position{Stacks: []Stack{s.clone()}})
	}
	if len(out) == 0 {
		return []Position{{Stacks: nil}}
	}
	return out
}
