// Package ui provides the terminal user interface for cpp-forge-ide.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SimTickMsg fires when the next scripted console line is due.
type SimTickMsg struct{}

// StatusClearMsg fires when a transient status bar message expires.
type StatusClearMsg struct{}

// ErrorMsg is sent when an operation fails.
type ErrorMsg struct {
	Err error
}

// SimTick schedules the next timeline advance after d.
func SimTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return SimTickMsg{}
	})
}

// ClearStatusAfter expires the status bar message after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return StatusClearMsg{}
	})
}
