package dialog

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ashritanshuman/cpp-forge-ide/internal/ui/styles"
)

// ConfirmDialog is a yes/no modal. Declining leaves all state untouched.
type ConfirmDialog struct {
	title     string
	prompt    string
	yes       bool
	confirmed bool
	cancelled bool
}

// NewConfirmDialog creates a confirmation dialog defaulting to "No".
func NewConfirmDialog(title, prompt string) ConfirmDialog {
	return ConfirmDialog{title: title, prompt: prompt}
}

// Confirmed reports whether the user accepted.
func (d ConfirmDialog) Confirmed() bool { return d.confirmed }

// Cancelled reports whether the user declined or dismissed.
func (d ConfirmDialog) Cancelled() bool { return d.cancelled }

// Update handles key input for the dialog.
func (d ConfirmDialog) Update(msg tea.Msg) (ConfirmDialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch keyMsg.String() {
	case "esc", "n", "N":
		d.cancelled = true
	case "y", "Y":
		d.confirmed = true
	case "left", "right", "tab":
		d.yes = !d.yes
	case "enter":
		if d.yes {
			d.confirmed = true
		} else {
			d.cancelled = true
		}
	}
	return d, nil
}

// View renders the dialog box.
func (d ConfirmDialog) View() string {
	var sb strings.Builder
	sb.WriteString(styles.DialogTitle.Render(d.title))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(styles.TextCol).Render(d.prompt))
	sb.WriteString("\n\n")

	yesStyle, noStyle := styles.DialogButton, styles.DialogButtonActive
	if d.yes {
		yesStyle, noStyle = styles.DialogButtonActive, styles.DialogButton
	}
	sb.WriteString(yesStyle.Render("Yes"))
	sb.WriteString(noStyle.Render("No"))

	return styles.DialogBox.Render(sb.String())
}
