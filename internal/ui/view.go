package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ashritanshuman/cpp-forge-ide/internal/ui/styles"
)

// View renders the entire application.
func (a App) View() string {
	if a.quitting {
		bye := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Primary).
			Render("Goodbye from Forge!")
		return a.centered(bye)
	}

	if !a.ready {
		loading := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Accent).
			Render("Loading workspace...")
		return a.centered(loading)
	}

	if a.windowTooSmall() {
		msg := fmt.Sprintf("Window too small, need at least %dx%d (currently %dx%d)",
			minAppWidth, minAppHeight, a.width, a.height)
		return a.centered(lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Accent).
			Render(msg))
	}

	leftPanel := a.fileList.View()
	rightPanel := lipgloss.JoinVertical(
		lipgloss.Left,
		a.fileTabs.View(),
		a.editor.View(),
		a.consolePane.View(),
	)

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		rightPanel,
	)

	fullView := lipgloss.JoinVertical(
		lipgloss.Left,
		mainContent,
		a.statusBar.View(),
	)

	if a.dialogMode != DialogNone {
		return a.renderWithDialog()
	}

	return fullView
}

// renderWithDialog overlays the open dialog centered on a dimmed screen.
func (a App) renderWithDialog() string {
	var box string
	switch a.dialogMode {
	case DialogNewFile:
		box = a.newFileDialog.View()
	case DialogConfirmDelete:
		box = a.deleteDialog.View()
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}

// centered places content in the middle of the screen.
func (a App) centered(content string) string {
	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
