// Package rank computes one step of degree-normalized score diffusion over a
// core.Graph.
//
// What
//
//   - Step(g, prior) returns a fresh score vector where
//     next[i] = Σ over j in Neighbors(i) of prior[j] / degree(j).
//   - A nil prior means the neutral all-ones vector (see InitialScores).
//   - Exactly one diffusion step per call: no damping, no teleportation, no
//     normalization, no convergence checking. One call is one iteration of
//     power-iteration-style propagation toward the principal eigenvector of
//     the degree-normalized adjacency matrix — a single PageRank step
//     without the damping term.
//
// Purity
//
//	Step never mutates the graph or the prior vector and retains no state
//	between calls; equal inputs always produce equal outputs.
//
// Determinism
//
//	Vertices are processed in id order and neighbors in ascending order
//	(the core.Neighbors contract), so floating-point accumulation order is
//	reproducible run to run.
//
// Complexity (n = vertices, e = edges)
//
//   - Time:   O(n + e log e) — each adjacency is materialized sorted once.
//   - Memory: O(n) for the output vector plus O(max degree) scratch.
package rank
