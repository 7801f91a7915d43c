// File: types.go
// Role: Graph type, sentinel errors, and the NewGraph constructor.
// Determinism:
//   - Vertex ids are dense ints 0..n-1; the adjacency slice index is the id.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeCount indicates a negative vertex count was requested.
	ErrNegativeCount = errors.New("core: negative count")

	// ErrVertexOutOfRange indicates a vertex id outside [0, n-1].
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrSelfLoop indicates an edge from a vertex to itself was attempted.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEdgeExists indicates the requested edge is already present.
	ErrEdgeExists = errors.New("core: edge already exists")
)

// Graph is a simple undirected graph over dense integer vertex ids.
//
// adj[i] is the neighbor set of vertex i; the slice index is the id, so the
// vertex set is exactly {0,...,n-1} and every vertex exists even at degree 0.
// edges counts undirected edges once.
type Graph struct {
	adj   []map[int]struct{}
	edges int
}

// NewGraph returns a Graph with n isolated vertices and no edges.
//
// Errors:
//   - ErrNegativeCount if n < 0.
//
// Complexity: O(n) time and space.
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrNegativeCount)
	}
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	return &Graph{adj: adj}, nil
}
