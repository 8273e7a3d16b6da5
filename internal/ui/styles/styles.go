// Package styles defines the visual appearance for the cpp-forge-ide TUI.
// Using Catppuccin Mocha color palette for a modern, aesthetic look.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha color palette
var (
	Mauve    = lipgloss.Color("#CBA6F7")
	Red      = lipgloss.Color("#F38BA8")
	Peach    = lipgloss.Color("#FAB387")
	Yellow   = lipgloss.Color("#F9E2AF")
	Green    = lipgloss.Color("#A6E3A1")
	Teal     = lipgloss.Color("#94E2D5")
	Sky      = lipgloss.Color("#89DCEB")
	Sapphire = lipgloss.Color("#74C7EC")
	Blue     = lipgloss.Color("#89B4FA")
	Lavender = lipgloss.Color("#B4BEFE")

	Text     = lipgloss.Color("#CDD6F4")
	Subtext0 = lipgloss.Color("#A6ADC8")
	Overlay0 = lipgloss.Color("#6C7086")
	Surface1 = lipgloss.Color("#45475A")
	Surface0 = lipgloss.Color("#313244")
	Base     = lipgloss.Color("#1E1E2E")
	Mantle   = lipgloss.Color("#181825")
)

// Semantic colors
var (
	Primary     = Mauve
	Accent      = Sapphire
	Danger      = Red
	Success     = Green
	TextCol     = Text
	TextMuted   = Subtext0
	Border      = Surface1
	BorderFocus = Mauve
)

// Base styles
var (
	// BorderStyle for panels
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border)

	// FocusedBorderStyle for focused panels
	FocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BorderFocus)

	// PanelTitle for panel headers
	PanelTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextCol).
			Padding(0, 1)

	// PanelTitleFocused for focused panel headers
	PanelTitleFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(Primary).
				Padding(0, 1)
)

// List item styles
var (
	ListItem = lipgloss.NewStyle().
			Foreground(TextCol).
			Padding(0, 1)

	ListItemSelected = lipgloss.NewStyle().
				Foreground(TextCol).
				Background(Surface0).
				Bold(true).
				Padding(0, 1)

	ListItemActive = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Padding(0, 1)
)

// Console line styles, keyed by line kind.
var (
	ConsoleInput = lipgloss.NewStyle().
			Foreground(Sky)

	ConsoleOutput = lipgloss.NewStyle().
			Foreground(TextCol)

	ConsoleError = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	ConsoleSystem = lipgloss.NewStyle().
			Foreground(TextMuted).
			Italic(true)

	ConsoleTimestamp = lipgloss.NewStyle().
				Foreground(Overlay0)
)

// StatusBar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Background(Mantle).
			Padding(0, 1)

	StatusBarKey = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	StatusBarDesc = lipgloss.NewStyle().
			Foreground(TextMuted)

	StatusBarBrand = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	StatusBarError = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	StatusBarInfo = lipgloss.NewStyle().
			Foreground(Success)
)

// Dialog styles
var (
	DialogBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2).
			Background(Surface0)

	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextCol).
			MarginBottom(1)

	DialogButton = lipgloss.NewStyle().
			Foreground(TextMuted).
			Background(Surface1).
			Padding(0, 2).
			MarginRight(1)

	DialogButtonActive = lipgloss.NewStyle().
				Foreground(TextCol).
				Background(Primary).
				Bold(true).
				Padding(0, 2).
				MarginRight(1)
)

// RenderRunDot returns a colored indicator for the simulation state.
func RenderRunDot(running bool) string {
	if running {
		return lipgloss.NewStyle().Foreground(Success).Render("●")
	}
	return lipgloss.NewStyle().Foreground(Overlay0).Render("○")
}

// TruncateWithEllipsis truncates a string to maxLen with ellipsis.
func TruncateWithEllipsis(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// LanguageBadge returns a short colored badge for a language label.
func LanguageBadge(label string) string {
	return lipgloss.NewStyle().
		Foreground(Base).
		Background(Blue).
		Bold(true).
		Padding(0, 1).
		Render(label)
}
