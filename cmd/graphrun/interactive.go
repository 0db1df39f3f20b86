package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	igraph "github.com/wippyai/igraph-go"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	lib      *igraph.Library
	graph    *igraph.Graph
	shape    string
	spec     string
	result   string
	input    textinput.Model
	selected int
	directed bool
	busy     bool
	state    modelState
}

type modelState int

const (
	stateEditGraph modelState = iota
	stateSelectOp
	stateShowResult
)

func newInteractiveModel(lib *igraph.Library, spec string, directed bool) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "famous:Zachary"
	ti.Prompt = "graph: "
	ti.Width = 40
	ti.SetValue(spec)
	ti.Focus()
	return &interactiveModel{
		lib:      lib,
		input:    ti,
		directed: directed,
		state:    stateEditGraph,
	}
}

type graphBuiltMsg struct {
	err   error
	graph *igraph.Graph
	shape string
	spec  string
}

type opResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

// buildGraph and runOperation capture their inputs up front: the returned
// commands run on another goroutine while Update keeps receiving messages.

func (m *interactiveModel) buildGraph() tea.Cmd {
	m.busy = true
	lib, spec, directed := m.lib, m.input.Value(), m.directed
	return func() tea.Msg {
		g, err := buildGraph(lib, spec, directed)
		if err != nil {
			return graphBuiltMsg{err: err}
		}
		shape := fmt.Sprintf("(%d vertices, %d edges, directed=%t)", g.VCount(), g.ECount(), g.IsDirected())
		return graphBuiltMsg{graph: g, shape: shape, spec: spec}
	}
}

func (m *interactiveModel) runOperation() tea.Cmd {
	if m.graph == nil {
		m.err = fmt.Errorf("no graph loaded")
		return nil
	}
	m.busy = true
	lib, g, op := m.lib, m.graph, operations[m.selected]
	return func() tea.Msg {
		out, err := op.run(lib, g)
		return opResultMsg{result: out, err: err}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The graph is in use by a running command until its result arrives.
		if m.busy && msg.String() != "ctrl+c" {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateEditGraph {
				m.closeGraph()
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(operations)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateEditGraph:
				return m, m.buildGraph()
			case stateSelectOp:
				return m, m.runOperation()
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "g":
			if m.state == stateSelectOp {
				m.state = stateEditGraph
				m.input.Focus()
				return m, textinput.Blink
			}

		case "d":
			if m.state == stateSelectOp {
				m.directed = !m.directed
				m.state = stateEditGraph
				return m, m.buildGraph()
			}

		case "esc":
			switch m.state {
			case stateEditGraph:
				if m.graph != nil {
					m.state = stateSelectOp
					m.input.Blur()
					m.err = nil
				}
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}
		}

	case graphBuiltMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.closeGraph()
		m.graph = msg.graph
		m.shape = msg.shape
		m.spec = msg.spec
		m.err = nil
		m.input.Blur()
		m.state = stateSelectOp

	case opResultMsg:
		m.busy = false
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateEditGraph {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// closeGraph leaves a graph that a running command still holds to the leak
// reclaimer.
func (m *interactiveModel) closeGraph() {
	if m.graph != nil && !m.busy {
		m.graph.Close()
		m.graph = nil
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("igraph"))
	if m.graph != nil {
		b.WriteString(" ")
		b.WriteString(m.spec)
		b.WriteString(" ")
		b.WriteString(infoStyle.Render(m.shape))
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateEditGraph:
		b.WriteString("Describe a graph to build:\n\n")
		if m.busy {
			b.WriteString(infoStyle.Render("building..."))
			b.WriteString("\n\n")
		}
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("enter build • esc back • ctrl+c quit"))

	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range operations {
			line := fmt.Sprintf("%-12s %s", op.name, op.help)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter run • g new graph • d toggle directed • q quit"))

	case stateShowResult:
		op := operations[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", opStyle.Render(op.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive(lib *igraph.Library, spec string, directed bool) error {
	m := newInteractiveModel(lib, spec, directed)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.closeGraph()
	return err
}
