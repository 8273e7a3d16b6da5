// Package console provides the console panel rendering the simulation log.
package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ashritanshuman/cpp-forge-ide/internal/model"
	"github.com/ashritanshuman/cpp-forge-ide/internal/ui/styles"
)

// Model is the console panel component.
type Model struct {
	viewport viewport.Model
	phase    model.RunPhase
	focused  bool
	width    int
	height   int
	empty    bool
}

// New creates the console panel.
func New() Model {
	vp := viewport.New(0, 0)
	return Model{viewport: vp, phase: model.PhaseIdle, empty: true}
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 4
	m.viewport.Height = height - 4
}

// SetFocused updates the focus state.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// SetPhase records the simulation state shown in the panel header.
func (m *Model) SetPhase(phase model.RunPhase) {
	m.phase = phase
}

// SetLines replaces the rendered log, following the tail when the view was
// already at the bottom.
func (m *Model) SetLines(lines []model.ConsoleLine) {
	m.empty = len(lines) == 0
	atBottom := m.viewport.AtBottom()

	var sb strings.Builder
	for _, line := range lines {
		ts := styles.ConsoleTimestamp.Render(line.Timestamp.Format("15:04:05"))
		sb.WriteString(ts)
		sb.WriteString(" ")
		sb.WriteString(kindStyle(line.Kind).Render(line.Content))
		sb.WriteString("\n")
	}
	m.viewport.SetContent(sb.String())

	if atBottom {
		m.viewport.GotoBottom()
	}
}

// Update routes scroll input into the viewport.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the console panel.
func (m Model) View() string {
	title := styles.PanelTitle
	border := styles.BorderStyle
	if m.focused {
		title = styles.PanelTitleFocused
		border = styles.FocusedBorderStyle
	}

	header := title.Render("CONSOLE")
	if m.phase != model.PhaseIdle && m.phase != model.PhaseDone {
		header += " " + styles.RenderRunDot(true) + " " +
			lipgloss.NewStyle().Foreground(styles.Success).Render(string(m.phase))
	}

	body := m.viewport.View()
	if m.empty {
		body = lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Render("Press F5 to build and run the active file (simulated).")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, body)
	return border.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(content)
}

// kindStyle maps a line kind to its display style.
func kindStyle(kind model.LineKind) lipgloss.Style {
	switch kind {
	case model.LineInput:
		return styles.ConsoleInput
	case model.LineError:
		return styles.ConsoleError
	case model.LineSystem:
		return styles.ConsoleSystem
	default:
		return styles.ConsoleOutput
	}
}
