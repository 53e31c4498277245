// Package boardutil provides grid-board utilities shared by concrete
// rulesets (spec.md §4.9): rectangular cell grids, 4-connectivity
// component splitting, and board-symmetry canonicalization (row,
// column, and diagonal reflection, for square boards).
//
// It generalizes the gridgraph-style approach of treating a 2D integer
// grid as a *core.Graph to find connected components, away from a fixed
// land/water threshold model toward an arbitrary per-cell token
// alphabet (empty, Left-occupied, Right-occupied, ...), the shape every
// board game in package games needs.
package boardutil
