// SPDX-License-Identifier: MIT
// Package: rankwalk/builder
//
// random_graph.go — implementation of RandomGraph(n, m).
//
// Canonical model:
//   - Uniform m-subset sampler over the simple-graph edge universe:
//     enumerate all unordered pairs {i,j} with i<j, shuffle uniformly,
//     take the first m pairs.
//
// Contract:
//   - n ≥ 0 and m ≥ 0 (else ErrNegativeCount).
//   - m ≤ n·(n-1)/2 (else ErrTooManyEdges).
//   - Returns a fresh core.Graph with every vertex id 0..n-1 present even
//     when it ends up with degree 0.
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Stable universe order (i asc, then j asc) before the shuffle, so a
//     fixed seed yields an identical edge set on every run.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rankwalk/core"
)

// methodRandomGraph tags wrapped errors with their origin (no magic strings).
const methodRandomGraph = "RandomGraph"

// pair is one unordered edge candidate {u,v} with u < v.
type pair struct{ u, v int }

// RandomGraph samples a simple undirected graph with exactly n vertices and
// exactly m edges, uniformly among all m-subsets of the C(n,2) edge universe.
//
// Errors:
//   - ErrNegativeCount if n < 0 or m < 0.
//   - ErrTooManyEdges if m > n·(n-1)/2.
//
// Complexity: O(n²) time and space (universe enumeration + shuffle).
func RandomGraph(n, m int, opts ...Option) (*core.Graph, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("%s: n=%d, m=%d: %w", methodRandomGraph, n, m, ErrNegativeCount)
	}
	maxEdges := n * (n - 1) / 2
	if m > maxEdges {
		return nil, fmt.Errorf("%s: m=%d > max=%d: %w", methodRandomGraph, m, maxEdges, ErrTooManyEdges)
	}

	// 2) Resolve options and allocate the n isolated vertices.
	cfg := newBuilderConfig(opts...)
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: NewGraph(%d): %w", methodRandomGraph, n, err)
	}

	// 3) Enumerate the edge universe in stable order: i asc, then j asc (j > i).
	universe := make([]pair, 0, maxEdges)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			universe = append(universe, pair{u: i, v: j})
		}
	}

	// 4) Uniform permutation of the universe (Fisher–Yates via rng.Shuffle),
	//    then the first m entries form the edge set. Exactness over rejection:
	//    no duplicate draws are possible and m = maxEdges yields K_n.
	cfg.rng.Shuffle(len(universe), func(a, b int) {
		universe[a], universe[b] = universe[b], universe[a]
	})
	for _, p := range universe[:m] {
		if err = g.AddEdge(p.u, p.v); err != nil {
			// Unreachable for a correctly enumerated universe; surfaced, not swallowed.
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomGraph, p.u, p.v, err)
		}
	}

	return g, nil
}
