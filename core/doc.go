// Package core defines the Graph value type used across rankwalk:
// a simple undirected graph over dense integer vertex ids 0..n-1,
// stored as per-vertex neighbor sets.
//
// Invariants (maintained by every mutator):
//
//   - symmetry: j ∈ Neighbors(i) ⟺ i ∈ Neighbors(j)
//   - no self-loops: i ∉ Neighbors(i)
//   - the vertex set is exactly {0,...,n-1}, fixed at construction
//   - edges are only ever added, never removed
//
// Determinism
//
//	Neighbors(v) returns unique ids sorted ascending, so iteration over a
//	neighborhood is fully reproducible regardless of map insertion order.
//
// Concurrency
//
//	None. A Graph is a single-goroutine value type; callers own it outright
//	and pass it into the stateless builder and rank packages.
//
// Errors
//
//	ErrNegativeCount    - negative vertex count at construction.
//	ErrVertexOutOfRange - vertex id outside [0, n-1].
//	ErrSelfLoop         - edge from a vertex to itself.
//	ErrEdgeExists       - edge already present.
package core
