package boardutil

import (
	"sort"

	"github.com/partizangames/cgt/core"
)

// VertexStates is a board-shaped view of a core.Graph: every vertex ID
// maps to a single token drawn from a ruleset's alphabet (e.g. '.'
// uncoloured, 'L' Left-coloured, 'R' Right-coloured for Snort). Vertex
// games don't have rows and columns, so they skip Board and Canonical
// entirely and fingerprint directly off the graph's adjacency plus this
// coloring.
type VertexStates map[string]byte

// GraphFingerprint serializes g's vertex set, its coloring, and its
// edge list into a canonical byte string: vertex IDs and edges are
// sorted first so that two structurally identical but
// differently-ordered core.Graph values fingerprint identically.
func GraphFingerprint(g *core.Graph, states VertexStates) []byte {
	ids := g.Vertices()
	sort.Strings(ids)

	out := make([]byte, 0, 64)
	for _, id := range ids {
		out = append(out, []byte(id)...)
		out = append(out, 0, states[id], 0)
	}

	type edgeKey struct{ from, to string }
	var keys []edgeKey
	for _, id := range ids {
		neighborIDs, err := g.NeighborIDs(id)
		if err != nil {
			continue
		}
		for _, n := range neighborIDs {
			if id <= n {
				keys = append(keys, edgeKey{id, n})
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].to < keys[j].to
	})
	for _, k := range keys {
		out = append(out, []byte(k.from)...)
		out = append(out, '-')
		out = append(out, []byte(k.to)...)
		out = append(out, 0)
	}
	return out
}
