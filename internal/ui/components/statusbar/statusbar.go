// Package statusbar provides the status bar UI component.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ashritanshuman/cpp-forge-ide/internal/ui/styles"
)

// Model is the status bar component.
type Model struct {
	width     int
	message   string
	isError   bool
	fileName  string
	language  string
	lineCount int
	charCount int
	position  string
	running   bool
}

// New creates a new status bar component.
func New() Model {
	return Model{}
}

// SetWidth updates the status bar width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetMessage sets a temporary message.
func (m *Model) SetMessage(msg string, isError bool) {
	m.message = msg
	m.isError = isError
}

// ClearMessage clears the temporary message.
func (m *Model) ClearMessage() {
	m.message = ""
	m.isError = false
}

// SetActiveFile updates the derived display values for the active buffer.
func (m *Model) SetActiveFile(name, language string, lines, chars int) {
	m.fileName = name
	m.language = language
	m.lineCount = lines
	m.charCount = chars
}

// SetPosition updates the cursor position info.
func (m *Model) SetPosition(pos string) {
	m.position = pos
}

// SetRunning toggles the simulation indicator.
func (m *Model) SetRunning(running bool) {
	m.running = running
}

// View renders the status bar.
func (m Model) View() string {
	brand := styles.StatusBarBrand.Render(" FORGE ")

	fileInfo := ""
	if m.fileName != "" {
		fileInfo = fmt.Sprintf(" %s %s  %d lines  %d chars  %s ",
			m.fileName, styles.LanguageBadge(m.language), m.lineCount, m.charCount, m.position)
	}

	runDot := styles.RenderRunDot(m.running) + " "

	helpItems := []string{
		m.renderKey("Tab", "pane"),
		m.renderKey("n", "new"),
		m.renderKey("d", "del"),
		m.renderKey("F5", "run"),
		m.renderKey("^S", "save"),
		m.renderKey("^Y", "copy"),
		m.renderKey("q", "quit"),
	}
	help := strings.Join(helpItems, " ")

	var msgArea string
	if m.message != "" {
		if m.isError {
			msgArea = styles.StatusBarError.Render(" " + m.message + " ")
		} else {
			msgArea = styles.StatusBarInfo.Render(" " + m.message + " ")
		}
	}

	left := brand + runDot + fileInfo
	right := msgArea + help

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styles.StatusBarStyle.Width(m.width).Render(bar)
}

// renderKey renders a key hint pair.
func (m Model) renderKey(k, desc string) string {
	return styles.StatusBarKey.Render(k) + styles.StatusBarDesc.Render(":"+desc)
}
