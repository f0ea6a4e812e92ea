package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/mstviz/pkg/graph"
	"github.com/dd0wney/mstviz/pkg/reversedelete"
)

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("mstviz — Reverse-Delete MST, one decision at a time"))
	s.WriteString("\n\n")

	switch m.currentView {
	case editView:
		s.WriteString(m.renderEdit())
	case traceView:
		s.WriteString(m.renderTrace())
	}

	if m.message != "" {
		s.WriteString("\n\n")
		if m.messageErr {
			s.WriteString(errorStyle.Render("✗ " + m.message))
		} else {
			s.WriteString(successStyle.Render("✓ " + m.message))
		}
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

func formatEdge(e graph.Edge) string {
	if !e.HasWeight() {
		return fmt.Sprintf("%s-%s (no weight)", e.U, e.V)
	}
	return fmt.Sprintf("%s-%s :%v", e.U, e.V, e.W)
}

func (m model) renderEdit() string {
	g := m.sess.Graph()

	var graphBox strings.Builder
	graphBox.WriteString(fmt.Sprintf("Vertices (%d): %s\n\n", len(g.Vertices), strings.Join(g.Vertices, " ")))
	graphBox.WriteString(fmt.Sprintf("Edges (%d):\n", len(g.Edges)))
	if len(g.Edges) == 0 {
		graphBox.WriteString(dimStyle.Render("  none"))
	}
	for _, e := range g.Edges {
		graphBox.WriteString("  " + formatEdge(e) + "\n")
	}

	var statusBox strings.Builder
	errors := m.sess.Errors()
	if len(errors) == 0 {
		statusBox.WriteString(successStyle.Render("✓ graph is valid, ready to run"))
	} else {
		statusBox.WriteString(errorStyle.Render(fmt.Sprintf("✗ %d validation error(s)", len(errors))))
		for _, e := range errors {
			statusBox.WriteString("\n  [" + e.Kind.String() + "] " + e.Message)
		}
	}
	statusBox.WriteString(fmt.Sprintf("\n\nundo: %v  redo: %v", m.sess.CanUndo(), m.sess.CanRedo()))

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(graphBox.String()),
		boxStyle.Render(statusBox.String()),
	)

	return row + "\n\n  > " + m.commandInput.View()
}

func stepBadge(kind reversedelete.StepKind) string {
	switch kind {
	case reversedelete.Consider:
		return highlightStyle.Render(" CONSIDER ")
	case reversedelete.Keep:
		return successStyle.Render(" KEEP ")
	case reversedelete.Delete:
		return errorStyle.Render(" DELETE ")
	case reversedelete.Complete:
		return titleStyle.Render(" COMPLETE ")
	default:
		return kind.String()
	}
}

func (m model) renderTrace() string {
	step, ok := m.sess.CurrentStep()
	if !ok {
		return dimStyle.Render("no active trace")
	}
	total := len(m.sess.Trace())

	var box strings.Builder
	box.WriteString(fmt.Sprintf("Step %d / %d   %s\n\n", step.Seq+1, total, stepBadge(step.Kind)))
	box.WriteString(step.Explanation)
	box.WriteString("\n\nEdges in play:\n")

	for _, e := range step.Snapshot.Edges {
		line := "  " + formatEdge(e)
		if step.Edge != nil && graph.EdgesEqual(e, *step.Edge) {
			line = highlightStyle.Render(line)
		}
		box.WriteString(line + "\n")
	}
	box.WriteString(fmt.Sprintf("\nRemaining weight: %v", graph.TotalWeight(step.Snapshot)))

	playState := "paused"
	if m.sess.Playing() {
		playState = "playing"
	}
	footer := dimStyle.Render(fmt.Sprintf("%s · speed %s · ←/→ step · space play/pause · 1/2/3 speed · esc edit", playState, m.tier))

	return stepBoxStyle.Render(box.String()) + "\n\n" + footer
}
