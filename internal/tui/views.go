package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/analysis-viz/internal/common"
)

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.state {
	case StateWidget:
		return m.renderWidget()
	default:
		return m.renderIndex()
	}
}

// renderIndex renders the list of diagrams.
func (m Model) renderIndex() string {
	parts := []string{m.index.View()}
	if m.lastError != nil {
		parts = append(parts, m.theme.StatusBad.Render("Error: "+common.UserMessage(m.lastError)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderWidget renders the open diagram with its status bar and help.
func (m Model) renderWidget() string {
	if m.widget == nil {
		return m.renderIndex()
	}
	keys := helpKeys{widget: m.widget.Keys(), app: m.keymap}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.widget.View(),
		m.renderStatusBar(),
		m.help.View(keys),
	)
}

// renderStatusBar renders the bottom status line.
func (m Model) renderStatusBar() string {
	left := m.theme.StatusInfo.Render(m.current)
	if m.lastError != nil {
		left = m.theme.StatusBad.Render("Error: " + common.UserMessage(m.lastError))
	}

	back := "esc: index"
	if m.direct {
		back = "esc: quit"
	}
	right := m.theme.StatusMuted.Render(fmt.Sprintf("%s • ?: help", back))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.theme.StatusBar.Render(left + strings.Repeat(" ", gap) + right)
}
