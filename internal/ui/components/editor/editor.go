// Package editor wraps the textarea widget editing the active buffer.
package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ashritanshuman/cpp-forge-ide/internal/model"
	"github.com/ashritanshuman/cpp-forge-ide/internal/ui/styles"
)

// Model is the editor component. It holds the widget state for exactly one
// buffer at a time; switching buffers swaps the content wholesale.
type Model struct {
	textarea textarea.Model
	bufferID string
	name     string
	language model.Language
	focused  bool
	width    int
	height   int
}

// New creates the editor component.
func New() Model {
	ta := textarea.New()
	ta.Placeholder = "// start typing"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.Prompt = ""
	return Model{textarea: ta}
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.textarea.SetWidth(width - 4)
	m.textarea.SetHeight(height - 4)
}

// SetFocused updates the focus state, routing key input into the widget.
func (m *Model) SetFocused(focused bool) tea.Cmd {
	m.focused = focused
	if focused {
		return m.textarea.Focus()
	}
	m.textarea.Blur()
	return nil
}

// IsFocused reports whether the editor consumes key input.
func (m Model) IsFocused() bool {
	return m.focused
}

// SetBuffer loads a buffer into the widget.
func (m *Model) SetBuffer(buf *model.FileBuffer) {
	if buf == nil {
		return
	}
	m.bufferID = buf.ID
	m.name = buf.Name
	m.language = buf.Language
	m.textarea.SetValue(buf.Content)
}

// BufferID returns the id of the loaded buffer.
func (m Model) BufferID() string {
	return m.bufferID
}

// Value returns the current widget text.
func (m Model) Value() string {
	return m.textarea.Value()
}

// Update routes messages into the textarea widget.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// View renders the editor panel with the buffer name and language badge.
func (m Model) View() string {
	title := styles.PanelTitle
	border := styles.BorderStyle
	if m.focused {
		title = styles.PanelTitleFocused
		border = styles.FocusedBorderStyle
	}

	header := title.Render(m.name)
	if m.language != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Center,
			header, styles.LanguageBadge(m.language.Label()))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, m.textarea.View())
	return border.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(content)
}

// PositionInfo renders the cursor position for the status bar.
func (m Model) PositionInfo() string {
	return fmt.Sprintf("Ln %d", m.textarea.Line()+1)
}
