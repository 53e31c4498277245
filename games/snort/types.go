package snort

import (
	"github.com/partizangames/cgt/boardutil"
	"github.com/partizangames/cgt/core"
)

const (
	tokenUncoloured byte = '.'
	tokenLeft       byte = 'L'
	tokenRight      byte = 'R'
)

// Position is a Snort board: a fixed graph plus a coloring of its
// vertices. Graph is never mutated after construction; every move
// produces a new Position with its own States map.
type Position struct {
	Graph  *core.Graph
	States boardutil.VertexStates
}

// New returns g entirely uncoloured.
func New(g *core.Graph) Position {
	states := make(boardutil.VertexStates, len(g.Vertices()))
	for _, id := range g.Vertices() {
		states[id] = tokenUncoloured
	}
	return Position{Graph: g, States: states}
}

func (p Position) cloneStates() boardutil.VertexStates {
	out := make(boardutil.VertexStates, len(p.States))
	for id, tok := range p.States {
		out[id] = tok
	}
	return out
}
