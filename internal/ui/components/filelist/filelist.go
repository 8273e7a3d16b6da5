// Package filelist provides the workspace file list UI component.
package filelist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ashritanshuman/cpp-forge-ide/internal/model"
	"github.com/ashritanshuman/cpp-forge-ide/internal/ui/styles"
)

// Item represents a file buffer in the list.
type Item struct {
	Buffer model.FileBuffer
	Active bool
}

// Model is the file list component.
type Model struct {
	items   []Item
	cursor  int
	offset  int
	focused bool
	width   int
	height  int
}

// New creates a new file list component.
func New() Model {
	return Model{items: []Item{}}
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// SetFocused updates the focus state.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// SetFiles replaces the listed buffers, keeping the cursor on the active
// buffer when the previous selection is gone.
func (m *Model) SetFiles(files []model.FileBuffer, activeID string) {
	prevID := ""
	if sel := m.Selected(); sel != nil {
		prevID = sel.ID
	}

	m.items = make([]Item, len(files))
	for i, f := range files {
		m.items[i] = Item{Buffer: f, Active: f.ID == activeID}
	}

	m.cursor = 0
	for i := range m.items {
		if m.items[i].Buffer.ID == prevID {
			m.cursor = i
			break
		}
		if m.items[i].Active && prevID == "" {
			m.cursor = i
		}
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

// Selected returns the buffer under the cursor.
func (m Model) Selected() *model.FileBuffer {
	if m.cursor >= 0 && m.cursor < len(m.items) {
		b := m.items[m.cursor].Buffer
		return &b
	}
	return nil
}

// ItemCount returns the number of listed buffers.
func (m Model) ItemCount() int {
	return len(m.items)
}

// CursorUp moves cursor up.
func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
		m.ensureVisible()
	}
}

// CursorDown moves cursor down.
func (m *Model) CursorDown() {
	if m.cursor < len(m.items)-1 {
		m.cursor++
		m.ensureVisible()
	}
}

// visibleRows returns how many list rows fit inside the panel.
func (m Model) visibleRows() int {
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) ensureVisible() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the file list panel.
func (m Model) View() string {
	title := styles.PanelTitle
	border := styles.BorderStyle
	if m.focused {
		title = styles.PanelTitleFocused
		border = styles.FocusedBorderStyle
	}

	var sb strings.Builder
	sb.WriteString(title.Render("FILES"))
	sb.WriteString("\n")

	rows := m.visibleRows()
	innerWidth := m.width - 4
	if innerWidth < 8 {
		innerWidth = 8
	}

	end := m.offset + rows
	if end > len(m.items) {
		end = len(m.items)
	}
	for i := m.offset; i < end; i++ {
		item := m.items[i]
		marker := " "
		if item.Active {
			marker = "●"
		}
		label := marker + " " + item.Buffer.Name
		label = styles.TruncateWithEllipsis(label, innerWidth)

		style := styles.ListItem
		switch {
		case i == m.cursor && m.focused:
			style = styles.ListItemSelected
		case item.Active:
			style = styles.ListItemActive
		}
		sb.WriteString(style.Render(label))
		sb.WriteString("\n")
	}

	content := lipgloss.NewStyle().
		Width(m.width - 2).
		Height(m.height - 2).
		Render(sb.String())

	return border.Render(content)
}
