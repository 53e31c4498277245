// Package domineering implements the Domineering ruleset (spec.md §4.9,
// §8 scenarios 4 and 5): on a rectangular grid, Left places 1x2 vertical
// dominoes and Right places 2x1 horizontal dominoes on pairs of empty
// cells; a player with no legal placement loses.
//
// Positions are boardutil.Board values over a four-token alphabet: '.'
// empty, 'L'/'R' domino-occupied, and '#' masked-out (a cell excluded
// from the current disconnected region by Decompose). Symmetry
// canonicalization uses boardutil.Canonical with a token-remap swapping
// 'L' and 'R' for the orientation-swapping symmetries, since a 90-degree
// rotation turns vertical dominoes into horizontal ones and vice versa.
package domineering
