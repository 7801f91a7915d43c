// Command rankwalk is the interactive console session: it prompts for a
// vertex and edge count, samples a random graph, runs one score-diffusion
// step, then keeps accepting edge insertions, re-running the diffusion after
// each one.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/rankwalk/builder"
	"github.com/katalvlaran/rankwalk/core"
	"github.com/katalvlaran/rankwalk/rank"
	"github.com/katalvlaran/rankwalk/render"
)

// phase is the session's input state.
type phase int

const (
	phaseVertexCount phase = iota // prompting for N
	phaseEdgeCount                // prompting for M
	phaseAddEdge                  // prompting for "i j" insertions
	phaseDone                     // session finished
)

const inputWidth = 32

// Session messages mirrored at each prompt.
const (
	msgBadInteger  = "Invalid input. Please enter a whole number."
	msgBadPair     = "Invalid input. Please enter two integers separated by a space."
	msgNegativeN   = "Error: Number of vertices cannot be negative."
	msgTooFew      = "Cannot add new edges to a graph with fewer than 2 vertices."
	msgDistinct    = "Error: Vertices must be distinct."
	titleInitial   = "Initial State (All Scores 1.0)"
	titleFirstStep = "Updated State (First Iteration)"
)

// model is the bubbletea session state. It owns the graph and the latest
// score vector; the library packages stay stateless.
type model struct {
	input   textinput.Model
	phase   phase
	n       int
	graph   *core.Graph
	scores  []float64
	history []string // rendered state blocks and notices, oldest first
	errLine string   // recoverable input error shown above the prompt
}

func initialModel() model {
	ti := textinput.New()
	ti.Placeholder = "e.g. 10"
	ti.CharLimit = inputWidth
	ti.Width = inputWidth
	ti.Focus()

	return model{input: ti, phase: phaseVertexCount}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.phase = phaseDone
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit consumes the current input line according to the active phase.
func (m model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	switch m.phase {
	case phaseVertexCount:
		return m.submitVertexCount(line)
	case phaseEdgeCount:
		return m.submitEdgeCount(line)
	case phaseAddEdge:
		return m.submitEdge(line)
	default:
		return m, tea.Quit
	}
}

// submitVertexCount validates N ≥ 0 and advances to the edge-count prompt.
func (m model) submitVertexCount(line string) (tea.Model, tea.Cmd) {
	n, err := strconv.Atoi(line)
	if err != nil {
		m.errLine = msgBadInteger
		return m, nil
	}
	if n < 0 {
		m.errLine = msgNegativeN
		return m, nil
	}

	m.n = n
	m.errLine = ""
	m.phase = phaseEdgeCount
	m.input.Placeholder = fmt.Sprintf("0 to %d", maxEdges(n))
	return m, nil
}

// submitEdgeCount validates 0 ≤ M ≤ N(N-1)/2, generates the graph, renders
// the initial and first-iteration states, and opens the insertion loop.
func (m model) submitEdgeCount(line string) (tea.Model, tea.Cmd) {
	edges, err := strconv.Atoi(line)
	if err != nil {
		m.errLine = msgBadInteger
		return m, nil
	}
	if edges < 0 || edges > maxEdges(m.n) {
		m.errLine = fmt.Sprintf("Error: Number of edges must be between 0 and %d.", maxEdges(m.n))
		return m, nil
	}

	g, genErr := builder.RandomGraph(m.n, edges)
	if genErr != nil {
		// Bounds were checked above; surface anything unexpected and re-prompt.
		m.errLine = genErr.Error()
		return m, nil
	}
	m.graph = g
	m.errLine = ""
	m.history = append(m.history, render.NoticeStyle.Render(
		fmt.Sprintf("Generated a random graph with %d vertices and %d edges.", m.n, edges)))

	m.scores = rank.InitialScores(m.n)
	m.history = append(m.history, render.TitledState(titleInitial, m.graph, m.scores))

	next, stepErr := rank.Step(m.graph, m.scores)
	if stepErr != nil {
		m.errLine = stepErr.Error()
		return m, nil
	}
	m.scores = next
	m.history = append(m.history, render.TitledState(titleFirstStep, m.graph, m.scores))

	if m.n < 2 {
		m.history = append(m.history, render.SubtleStyle.Render(msgTooFew))
		m.phase = phaseDone
		return m, tea.Quit
	}

	m.phase = phaseAddEdge
	m.input.Placeholder = "i j"
	return m, nil
}

// submitEdge handles one interactive insertion; an empty line or "q" ends
// the session.
func (m model) submitEdge(line string) (tea.Model, tea.Cmd) {
	if line == "" || line == "q" {
		m.phase = phaseDone
		return m, tea.Quit
	}

	i, j, err := parsePair(line)
	if err != nil {
		m.errLine = msgBadPair
		return m, nil
	}

	if err = m.graph.AddEdge(i, j); err != nil {
		m.errLine = edgeErrorLine(err, i, j, m.n)
		return m, nil
	}
	m.errLine = ""
	m.history = append(m.history, render.NoticeStyle.Render(
		fmt.Sprintf("Edge (%d, %d) successfully added.", i, j)))

	next, stepErr := rank.Step(m.graph, m.scores)
	if stepErr != nil {
		m.errLine = stepErr.Error()
		return m, nil
	}
	m.scores = next
	m.history = append(m.history, render.TitledState(
		fmt.Sprintf("State After Adding Edge (%d, %d)", i, j), m.graph, m.scores))

	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(render.TitleStyle.Render("rankwalk — random graph score diffusion"))
	b.WriteString("\n")

	for _, block := range m.history {
		b.WriteString("\n")
		b.WriteString(block)
		b.WriteString("\n")
	}

	if m.phase == phaseDone {
		b.WriteString("\n")
		b.WriteString(render.NoticeStyle.Render("Process finished."))
		b.WriteString("\n")
		return b.String()
	}

	if m.errLine != "" {
		b.WriteString("\n")
		b.WriteString(render.ErrorStyle.Render(m.errLine))
	}
	b.WriteString("\n")
	b.WriteString(render.PromptStyle.Render(m.prompt()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(render.SubtleStyle.Render(m.hint()))
	b.WriteString("\n")

	return b.String()
}

// prompt returns the instruction line for the active phase.
func (m model) prompt() string {
	switch m.phase {
	case phaseVertexCount:
		return "Enter the number of vertices:"
	case phaseEdgeCount:
		return fmt.Sprintf("Enter the number of edges (0 to %d):", maxEdges(m.n))
	case phaseAddEdge:
		return fmt.Sprintf(
			"Enter two distinct vertices to connect (from 0 to %d), separated by a space:", m.n-1)
	default:
		return ""
	}
}

// hint returns the key help for the active phase.
func (m model) hint() string {
	if m.phase == phaseAddEdge {
		return "enter on an empty line (or q) to finish • esc to quit"
	}
	return "esc or ctrl+c to quit"
}

// maxEdges is the simple-graph edge capacity n·(n-1)/2.
func maxEdges(n int) int {
	return n * (n - 1) / 2
}

// parsePair splits "i j" into two integers.
func parsePair(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two fields, got %d", len(fields))
	}
	i, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	j, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return i, j, nil
}

// edgeErrorLine maps core sentinels to the session's re-prompt messages.
func edgeErrorLine(err error, i, j, n int) string {
	switch {
	case errors.Is(err, core.ErrVertexOutOfRange):
		return fmt.Sprintf("Error: Vertices must be within the range [0, %d].", n-1)
	case errors.Is(err, core.ErrSelfLoop):
		return msgDistinct
	case errors.Is(err, core.ErrEdgeExists):
		return fmt.Sprintf("Error: Edge (%d, %d) already exists.", i, j)
	default:
		return err.Error()
	}
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "rankwalk: %v\n", err)
		os.Exit(1)
	}
}
