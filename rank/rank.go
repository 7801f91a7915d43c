// File: rank.go
// Role: The diffusion kernel (Step), the neutral prior (InitialScores), and
//       sentinel errors.
// Determinism:
//   - Summation follows vertex id asc, then neighbor id asc.

package rank

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rankwalk/core"
)

// Sentinel errors for rank execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("rank: graph is nil")

	// ErrScoreLength is returned when a non-nil prior vector does not match
	// the graph's vertex count.
	ErrScoreLength = errors.New("rank: prior length mismatch")
)

// neutralScore is the prior assigned to every vertex when none is supplied.
const neutralScore = 1.0

// InitialScores returns the neutral all-ones prior for n vertices.
// Negative n yields nil, mirroring an empty graph.
// Complexity: O(n).
func InitialScores(n int) []float64 {
	if n < 0 {
		return nil
	}
	s := make([]float64, n)
	for i := range s {
		s[i] = neutralScore
	}
	return s
}

// Step computes one degree-normalized diffusion step:
//
//	next[i] = Σ over j in Neighbors(i) of prior[j] / degree(j)
//
// A nil prior is treated as InitialScores(n). The inputs are never mutated;
// the result is always freshly allocated. Isolated vertices receive 0.
//
// Errors:
//   - ErrGraphNil on a nil graph.
//   - ErrScoreLength when len(prior) != g.VertexCount() for a non-nil prior.
//
// Complexity: O(n + e log e) time, O(n) space.
func Step(g *core.Graph, prior []float64) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	if prior == nil {
		prior = InitialScores(n)
	} else if len(prior) != n {
		return nil, fmt.Errorf("Step: len(prior)=%d, n=%d: %w", len(prior), n, ErrScoreLength)
	}

	next := make([]float64, n)
	for i := 0; i < n; i++ {
		nbrs, err := g.Neighbors(i)
		if err != nil {
			return nil, fmt.Errorf("Step: Neighbors(%d): %w", i, err)
		}
		for _, j := range nbrs {
			deg, err := g.Degree(j)
			if err != nil {
				return nil, fmt.Errorf("Step: Degree(%d): %w", j, err)
			}
			// A neighbor always has degree ≥ 1 (it neighbors i). The guard
			// stays anyway so a zero degree can never reach the division.
			if deg > 0 {
				next[i] += prior[j] / float64(deg)
			}
		}
	}

	return next, nil
}
