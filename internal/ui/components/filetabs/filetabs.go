// Package filetabs provides the buffer tab bar shown above the editor.
package filetabs

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ashritanshuman/cpp-forge-ide/internal/model"
	"github.com/ashritanshuman/cpp-forge-ide/internal/ui/styles"
)

// Tab represents a single buffer tab.
type Tab struct {
	ID       string
	Name     string
	IsActive bool
	Running  bool
}

// Model is the file tabs component.
type Model struct {
	tabs  []Tab
	width int
}

// New creates a new tab bar.
func New() Model {
	return Model{}
}

// SetWidth updates the bar width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetTabs rebuilds the bar from the buffer collection. The running dot is
// drawn on the active tab while a simulation is in flight.
func (m *Model) SetTabs(files []model.FileBuffer, activeID string, running bool) {
	m.tabs = make([]Tab, len(files))
	for i, f := range files {
		m.tabs[i] = Tab{
			ID:       f.ID,
			Name:     f.Name,
			IsActive: f.ID == activeID,
			Running:  running && f.ID == activeID,
		}
	}
}

// View renders the tab bar as a single line.
func (m Model) View() string {
	if len(m.tabs) == 0 {
		return ""
	}

	tabStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Background(styles.Surface0).
		Padding(0, 1).
		MarginRight(1)
	activeStyle := lipgloss.NewStyle().
		Foreground(styles.TextCol).
		Background(styles.Surface1).
		Bold(true).
		Padding(0, 1).
		MarginRight(1)

	parts := make([]string, 0, len(m.tabs))
	used := 0
	for _, t := range m.tabs {
		label := t.Name
		if t.Running {
			label = styles.RenderRunDot(true) + " " + label
		}
		style := tabStyle
		if t.IsActive {
			style = activeStyle
		}
		rendered := style.Render(label)
		w := lipgloss.Width(rendered)
		if m.width > 0 && used+w > m.width {
			break
		}
		parts = append(parts, rendered)
		used += w
	}

	return strings.Join(parts, "")
}
