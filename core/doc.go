// Package core provides a small, thread-safe in-memory graph used as the
// adjacency backbone for vertex-based rulesets (games/snort) and for
// board-to-graph fingerprinting (boardutil.GraphFingerprint), plus the
// traversal in package dfs.
//
// Graph supports only what that domain needs: directed or undirected
// edges (set once at construction via WithDirected), optional self-loops
// (WithLoops), and constant-time adjacency lookups via a nested
// adjacencyList[from][to][edgeID] map. Vertex and edge catalogs are
// guarded by two independent sync.RWMutex (muVert, muEdgeAdj) so reads
// of one don't contend with writes to the other.
//
// Deterministic iteration: Vertices() and NeighborIDs() both return
// sorted slices, so a Fingerprint built from them is stable regardless
// of Go's randomized map iteration order.
package core
