// Package dialog provides modal dialog components.
package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ashritanshuman/cpp-forge-ide/internal/ui/styles"
)

// InputField describes a single input field in the dialog.
type InputField struct {
	Label       string
	Placeholder string
	Value       string
}

// InputDialog is a modal dialog for text input.
type InputDialog struct {
	title      string
	inputs     []textinput.Model
	labels     []string
	focusIndex int
	submitted  bool
	cancelled  bool
}

// NewInputDialog creates a new input dialog.
func NewInputDialog(title string, fields []InputField) InputDialog {
	inputs := make([]textinput.Model, len(fields))
	labels := make([]string, len(fields))

	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.SetValue(f.Value)
		ti.CharLimit = 128
		ti.Width = 36
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
		labels[i] = f.Label
	}

	return InputDialog{
		title:  title,
		inputs: inputs,
		labels: labels,
	}
}

// Reset clears values and state for reuse.
func (d *InputDialog) Reset() {
	d.submitted = false
	d.cancelled = false
	d.focusIndex = 0
	for i := range d.inputs {
		d.inputs[i].SetValue("")
		d.inputs[i].Blur()
	}
	if len(d.inputs) > 0 {
		d.inputs[0].Focus()
	}
}

// Submitted reports whether the dialog was confirmed.
func (d InputDialog) Submitted() bool { return d.submitted }

// Cancelled reports whether the dialog was dismissed.
func (d InputDialog) Cancelled() bool { return d.cancelled }

// Value returns the trimmed value of field i.
func (d InputDialog) Value(i int) string {
	if i < 0 || i >= len(d.inputs) {
		return ""
	}
	return strings.TrimSpace(d.inputs[i].Value())
}

// Update handles key input for the dialog.
func (d InputDialog) Update(msg tea.Msg) (InputDialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch keyMsg.String() {
	case "esc":
		d.cancelled = true
		return d, nil
	case "enter":
		if d.focusIndex == len(d.inputs)-1 {
			d.submitted = true
			return d, nil
		}
		d.cycleFocus(1)
		return d, nil
	case "tab", "down":
		d.cycleFocus(1)
		return d, nil
	case "shift+tab", "up":
		d.cycleFocus(-1)
		return d, nil
	}

	var cmd tea.Cmd
	d.inputs[d.focusIndex], cmd = d.inputs[d.focusIndex].Update(msg)
	return d, cmd
}

// cycleFocus moves focus between fields.
func (d *InputDialog) cycleFocus(delta int) {
	d.inputs[d.focusIndex].Blur()
	d.focusIndex = (d.focusIndex + delta + len(d.inputs)) % len(d.inputs)
	d.inputs[d.focusIndex].Focus()
}

// View renders the dialog box.
func (d InputDialog) View() string {
	var sb strings.Builder
	sb.WriteString(styles.DialogTitle.Render(d.title))
	sb.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
	labelFocused := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)

	for i := range d.inputs {
		style := labelStyle
		if i == d.focusIndex {
			style = labelFocused
		}
		sb.WriteString(style.Render(d.labels[i]))
		sb.WriteString("\n")
		sb.WriteString(d.inputs[i].View())
		sb.WriteString("\n")
	}

	help := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		MarginTop(1).
		Render("enter confirm · esc cancel")
	sb.WriteString(help)

	return styles.DialogBox.Render(sb.String())
}
