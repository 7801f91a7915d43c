// File: methods.go
// Role: Query and mutation surface: VertexCount/EdgeCount/Degree/HasEdge/
//       Neighbors/AddEdge/Clone.
// Determinism:
//   - Neighbors(v) returns unique ids sorted ascending.

package core

import (
	"fmt"
	"sort"
)

// VertexCount returns the number of vertices n. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// Degree returns |Neighbors(v)|.
//
// Errors:
//   - ErrVertexOutOfRange if v ∉ [0, n-1].
//
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= len(g.adj) {
		return 0, fmt.Errorf("Degree: v=%d, n=%d: %w", v, len(g.adj), ErrVertexOutOfRange)
	}
	return len(g.adj[v]), nil
}

// HasEdge reports whether the undirected edge {i,j} is present.
// Out-of-range ids report false rather than failing; absence is a complete
// answer for a membership query.
// Complexity: O(1).
func (g *Graph) HasEdge(i, j int) bool {
	if i < 0 || i >= len(g.adj) {
		return false
	}
	_, ok := g.adj[i][j]
	return ok
}

// Neighbors returns the neighbor ids of v, sorted ascending.
// The slice is freshly allocated; callers may retain or mutate it.
//
// Errors:
//   - ErrVertexOutOfRange if v ∉ [0, n-1].
//
// Complexity: O(d log d) where d = degree(v).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= len(g.adj) {
		return nil, fmt.Errorf("Neighbors: v=%d, n=%d: %w", v, len(g.adj), ErrVertexOutOfRange)
	}
	out := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		out = append(out, u)
	}
	sort.Ints(out)
	return out, nil
}

// AddEdge inserts the undirected edge {i,j}.
//
// Steps:
//  1. Validate both ids lie in [0, n-1].
//  2. Reject i == j (no self-loops in a simple graph).
//  3. Reject an already-present edge (no multi-edges).
//  4. Insert both directions so the adjacency stays symmetric.
//
// Errors:
//   - ErrVertexOutOfRange on either endpoint.
//   - ErrSelfLoop if i == j.
//   - ErrEdgeExists if {i,j} is already present.
//
// Complexity: O(1).
func (g *Graph) AddEdge(i, j int) error {
	n := len(g.adj)
	if i < 0 || i >= n {
		return fmt.Errorf("AddEdge: i=%d, n=%d: %w", i, n, ErrVertexOutOfRange)
	}
	if j < 0 || j >= n {
		return fmt.Errorf("AddEdge: j=%d, n=%d: %w", j, n, ErrVertexOutOfRange)
	}
	if i == j {
		return fmt.Errorf("AddEdge: i=j=%d: %w", i, ErrSelfLoop)
	}
	if _, ok := g.adj[i][j]; ok {
		return fmt.Errorf("AddEdge: {%d,%d}: %w", i, j, ErrEdgeExists)
	}

	g.adj[i][j] = struct{}{}
	g.adj[j][i] = struct{}{}
	g.edges++

	return nil
}

// Clone returns a deep copy of the graph; mutating the copy never affects
// the original.
// Complexity: O(n + e) time and space.
func (g *Graph) Clone() *Graph {
	adj := make([]map[int]struct{}, len(g.adj))
	for i, set := range g.adj {
		adj[i] = make(map[int]struct{}, len(set))
		for u := range set {
			adj[i][u] = struct{}{}
		}
	}
	return &Graph{adj: adj, edges: g.edges}
}
