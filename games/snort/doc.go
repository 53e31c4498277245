// Package snort implements the Snort ruleset (spec.md §4.9, §8 scenario
// 6): vertices of an undirected core.Graph start uncoloured; a player
// may colour an uncoloured vertex their own colour provided it has no
// neighbour already coloured the opposite colour. A player with no
// legal vertex to colour loses.
//
// Positions pair a shared, read-only *core.Graph with a per-vertex
// coloring (boardutil.VertexStates). Decompose splits the graph's
// connected components — moves in one component never affect legality
// in another — so a Snort position on a disconnected graph evaluates as
// the sum of its components' values, same as a directly-played single
// component.
package snort
