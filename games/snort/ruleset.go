package snort

import (
	"github.com/partizangames/cgt/boardutil"
	"github.com/partizangames/cgt/core"
	"github.com/partizangames/cgt/dfs"
	"github.com/partizangames/cgt/ruleset"
)

// Ruleset implements ruleset.Ruleset[Position]. It has no board
// symmetry to exploit on an arbitrary graph (detecting graph
// automorphisms is a harder problem than this package takes on), so
// CanonicalPosition is Base's identity default.
type Ruleset struct {
	ruleset.Base[Position]
}

func colourOf(player ruleset.Player) byte {
	if player == ruleset.Left {
		return tokenLeft
	}
	return tokenRight
}

func opposite(colour byte) byte {
	switch colour {
	case tokenLeft:
		return tokenRight
	case tokenRight:
		return tokenLeft
	default:
		return tokenUncoloured
	}
}

// Moves returns one resulting Position per uncoloured vertex that has
// no neighbour already coloured the opposite colour.
func (Ruleset) Moves(pos Position, player ruleset.Player) []Position {
	mine := colourOf(player)
	forbidden := opposite(mine)

	var out []Position
	for _, id := range pos.Graph.Vertices() {
		if pos.States[id] != tokenUncoloured {
			continue
		}
		neighborIDs, err := pos.Graph.NeighborIDs(id)
		if err != nil {
			continue
		}
		blocked := false
		for _, n := range neighborIDs {
			if pos.States[n] == forbidden {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		next := pos.cloneStates()
		next[id] = mine
		out = append(out, Position{Graph: pos.Graph, States: next})
	}
	return out
}

// Fingerprint serializes pos's graph structure and coloring.
func (Ruleset) Fingerprint(pos Position) []byte {
	return boardutil.GraphFingerprint(pos.Graph, pos.States)
}

// Decompose splits pos along the connected components of its
// underlying graph: a move coloring a vertex in one component can never
// change which moves are legal in another.
func (Ruleset) Decompose(pos Position) []Position {
	components := connectedComponents(pos.Graph)
	if len(components) <= 1 {
		return []Position{pos}
	}

	out := make([]Position, 0, len(components))
	for _, ids := range components {
		out = append(out, inducedSubposition(pos, ids))
	}
	return out
}

// connectedComponents groups pos.Graph's vertex IDs by undirected
// reachability, ignoring coloring. Each component is discovered by a
// single-source dfs.DFS run seeded from the first not-yet-claimed
// vertex; DFSResult.Visited gives that run's full component.
func connectedComponents(g *core.Graph) [][]string {
	claimed := make(map[string]bool)
	var components [][]string
	for _, id := range g.Vertices() {
		if claimed[id] {
			continue
		}
		res, err := dfs.DFS(g, id)
		if err != nil {
			continue
		}
		comp := make([]string, 0, len(res.Visited))
		for v := range res.Visited {
			comp = append(comp, v)
			claimed[v] = true
		}
		components = append(components, comp)
	}
	return components
}

// inducedSubposition builds a fresh graph containing exactly ids and
// the edges between them, carrying over pos.States for those vertices.
func inducedSubposition(pos Position, ids []string) Position {
	sub := core.NewGraph()
	inSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		inSet[id] = true
		_ = sub.AddVertex(id)
	}
	for _, id := range ids {
		neighborIDs, err := pos.Graph.NeighborIDs(id)
		if err != nil {
			continue
		}
		for _, n := range neighborIDs {
			if inSet[n] && id <= n {
				_, _ = sub.AddEdge(id, n, 0)
			}
		}
	}
	states := make(boardutil.VertexStates, len(ids))
	for _, id := range ids {
		states[id] = pos.States[id]
	}
	return Position{Graph: sub, States: states}
}
