// Package render formats a graph and its score vector for the console.
//
// Output contract: one line per vertex id in ascending order,
//
//	Node <id> | Score: <score, 4 decimal places> | Neighbors: [a b c]
//
// with neighbor ids sorted ascending; a zero-vertex graph renders as
// "Graph is empty." instead. The functions here return plain strings so
// tests can assert them exactly; terminal styling lives in styles.go.
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rankwalk/core"
)

// emptyGraphNotice replaces the per-vertex listing for a zero-vertex graph.
const emptyGraphNotice = "Graph is empty."

// bannerPad is the extra rule width around a title: "--- " + title + " ---".
const bannerPad = 6

// State renders the per-vertex listing for g and its score vector.
// A missing score (short vector) renders as 0.0000 rather than failing;
// the session always passes a matching vector.
// Complexity: O(n + e log e).
func State(g *core.Graph, scores []float64) string {
	if g == nil || g.VertexCount() == 0 {
		return emptyGraphNotice
	}

	var b strings.Builder
	for v := 0; v < g.VertexCount(); v++ {
		// v iterates the exact vertex range, so Neighbors cannot fail here.
		nbrs, _ := g.Neighbors(v)
		var score float64
		if v < len(scores) {
			score = scores[v]
		}
		fmt.Fprintf(&b, "Node %-2d | Score: %-7.4f | Neighbors: %v\n", v, score, nbrs)
	}

	return strings.TrimRight(b.String(), "\n")
}

// TitledState renders State under a "--- <title> ---" banner with a closing
// dash rule sized to the title.
func TitledState(title string, g *core.Graph, scores []float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s ---\n", title)
	b.WriteString(State(g, scores))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", len(title)+bannerPad))
	return b.String()
}
