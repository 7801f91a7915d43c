package rank_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rankwalk/builder"
	"github.com/katalvlaran/rankwalk/core"
	"github.com/katalvlaran/rankwalk/rank"
)

// StepSuite exercises the diffusion kernel under various graph shapes.
type StepSuite struct {
	suite.Suite
}

// newGraph builds an n-vertex graph with the given edges, failing the suite
// on any construction error.
func (s *StepSuite) newGraph(n int, edges [][2]int) *core.Graph {
	g, err := core.NewGraph(n)
	require.NoError(s.T(), err)
	for _, e := range edges {
		require.NoError(s.T(), g.AddEdge(e[0], e[1]))
	}
	return g
}

// TestEdgeless verifies that a graph with no edges diffuses to all zeros.
func (s *StepSuite) TestEdgeless() {
	g := s.newGraph(4, nil)

	got, err := rank.Step(g, []float64{3, 1, 4, 1})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{0, 0, 0, 0}, got)
}

// TestSingleEdgeFixedPoint verifies the two-vertex single-edge conservation
// case: each endpoint's only neighbor has degree 1 and hands over its score.
func (s *StepSuite) TestSingleEdgeFixedPoint() {
	g := s.newGraph(2, [][2]int{{0, 1}})

	got, err := rank.Step(g, []float64{1, 1})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{1, 1}, got)
}

// TestTriangleFixedPoint verifies K_3 with a uniform prior is a fixed point:
// two neighbors of degree 2 each contribute 0.5.
func (s *StepSuite) TestTriangleFixedPoint() {
	g := s.newGraph(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})

	got, err := rank.Step(g, []float64{1, 1, 1})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{1, 1, 1}, got)
}

// TestStarSplit verifies degree normalization on a star: the hub's score
// splits evenly among leaves, and each leaf hands its whole score to the hub.
func (s *StepSuite) TestStarSplit() {
	// Hub 0 with leaves 1..3.
	g := s.newGraph(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})

	got, err := rank.Step(g, []float64{3, 1, 1, 1})
	require.NoError(s.T(), err)
	// Hub gathers 1/1 from each leaf; each leaf gets 3/3 from the hub.
	require.InDeltaSlice(s.T(), []float64{3, 1, 1, 1}, got, 1e-12)
}

// TestNilPriorDefaultsToOnes verifies the neutral-prior contract.
func (s *StepSuite) TestNilPriorDefaultsToOnes() {
	g := s.newGraph(2, [][2]int{{0, 1}})

	withNil, err := rank.Step(g, nil)
	require.NoError(s.T(), err)
	explicit, err := rank.Step(g, rank.InitialScores(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), explicit, withNil)
}

// TestPure verifies Step mutates neither the prior nor the graph, and that
// repeated calls with equal inputs agree exactly.
func (s *StepSuite) TestPure() {
	g := s.newGraph(3, [][2]int{{0, 1}, {1, 2}})
	prior := []float64{0.5, 2.0, 0.25}
	snapshot := append([]float64(nil), prior...)

	first, err := rank.Step(g, prior)
	require.NoError(s.T(), err)
	second, err := rank.Step(g, prior)
	require.NoError(s.T(), err)

	require.Equal(s.T(), first, second, "equal inputs must yield equal outputs")
	require.Equal(s.T(), snapshot, prior, "prior must not be mutated")
	require.Equal(s.T(), 2, g.EdgeCount(), "graph must not be mutated")

	// The output is a fresh allocation, not an alias of the prior.
	first[0] = -1
	require.Equal(s.T(), snapshot, prior)
}

// TestEmptyGraph verifies the zero-vertex graph yields an empty vector.
func (s *StepSuite) TestEmptyGraph() {
	g := s.newGraph(0, nil)

	got, err := rank.Step(g, nil)
	require.NoError(s.T(), err)
	require.Empty(s.T(), got)
}

// TestSentinels verifies the error surface.
func (s *StepSuite) TestSentinels() {
	_, err := rank.Step(nil, nil)
	require.ErrorIs(s.T(), err, rank.ErrGraphNil)

	g := s.newGraph(3, nil)
	_, err = rank.Step(g, []float64{1, 1})
	require.ErrorIs(s.T(), err, rank.ErrScoreLength)
	_, err = rank.Step(g, []float64{1, 1, 1, 1})
	require.ErrorIs(s.T(), err, rank.ErrScoreLength)
}

// TestAfterEdgeInsertion verifies degrees are recomputed from the live
// graph: the same prior diffuses differently once an edge lands.
func (s *StepSuite) TestAfterEdgeInsertion() {
	g := s.newGraph(3, [][2]int{{0, 1}})
	prior := []float64{1, 1, 1}

	before, err := rank.Step(g, prior)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{1, 1, 0}, before)

	require.NoError(s.T(), g.AddEdge(1, 2))

	after, err := rank.Step(g, prior)
	require.NoError(s.T(), err)
	// Vertex 1 now has degree 2: it hands 0.5 each way and still gathers
	// the full score of both degree-1 endpoints.
	require.InDeltaSlice(s.T(), []float64{0.5, 2, 0.5}, after, 1e-12)
}

func TestStepSuite(t *testing.T) {
	suite.Run(t, new(StepSuite))
}

// TestInitialScores verifies the neutral prior shape.
func TestInitialScores(t *testing.T) {
	t.Parallel()

	require.Equal(t, []float64{1, 1, 1}, rank.InitialScores(3))
	require.Empty(t, rank.InitialScores(0))
	require.Nil(t, rank.InitialScores(-1))
}

// TestStep_GeneratedGraph runs the kernel over a seeded random graph and
// checks mass accounting: the total score in each connected pair exchange
// is conserved globally (Σ next = Σ prior when no vertex is isolated).
func TestStep_GeneratedGraph(t *testing.T) {
	t.Parallel()

	const (
		n = 10
		m = 45 // complete graph: no isolated vertices, mass is conserved
	)

	g, err := builder.RandomGraph(n, m, builder.WithSeed(7))
	require.NoError(t, err)

	next, err := rank.Step(g, nil)
	require.NoError(t, err)

	var total float64
	for _, v := range next {
		total += v
	}
	require.InDelta(t, float64(n), total, 1e-9, "diffusion must conserve total score")
}
