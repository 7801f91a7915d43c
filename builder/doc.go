// SPDX-License-Identifier: MIT

// Package builder constructs random simple undirected graphs over a fixed
// vertex count.
//
// What
//
//   - RandomGraph(n, m, opts...) samples a graph with exactly n vertices and
//     exactly m edges, uniformly among all m-subsets of the C(n,2) edge
//     universe: enumerate every unordered pair {i,j} with i<j, shuffle the
//     list uniformly, take the first m pairs.
//   - Functional options control randomness: WithSeed for reproducible
//     fixtures, WithRand for an explicit source. Unseeded runs draw from a
//     time-seeded local source; there are no package globals.
//
// Why shuffle-then-take
//
//	Every possible m-edge simple graph is reachable with equal probability,
//	edge counts are exact by construction (no duplicates to reject), and the
//	m = n(n-1)/2 case degenerates cleanly into the complete graph. Repeated
//	rejection sampling offers none of those guarantees.
//
// Errors
//
//	ErrNegativeCount - n < 0 or m < 0.
//	ErrTooManyEdges  - m exceeds n(n-1)/2.
//
// Complexity (n = vertices, m = requested edges)
//
//   - Time:   O(n²) to enumerate and shuffle the pair universe.
//   - Memory: O(n²) for the universe; the graph itself is O(n + m).
package builder
