package ui

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashritanshuman/cpp-forge-ide/internal/console"
	"github.com/ashritanshuman/cpp-forge-ide/internal/ui/components/dialog"
	"github.com/ashritanshuman/cpp-forge-ide/internal/workspace"
)

const statusMessageTTL = 4 * time.Second

// Update handles all messages for the application.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// If a dialog is open, only intercept key input; allow other messages
	// (ticks, resize) through.
	if a.dialogMode != DialogNone {
		if _, ok := msg.(tea.KeyMsg); ok {
			return a.handleDialogUpdate(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeys(msg)

	case SimTickMsg:
		return a.handleSimTick()

	case StatusClearMsg:
		a.statusBar.ClearMessage()
		return a, nil

	case ErrorMsg:
		return a.withStatus(msg.Err.Error(), true)
	}

	return a, nil
}

// handleKeys routes key input by focus area.
func (a App) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global bindings that never collide with text editing.
	switch {
	case msg.String() == "ctrl+q":
		return a.quit()
	case key.Matches(msg, a.keys.Run):
		return a.startRun()
	case key.Matches(msg, a.keys.Save):
		return a.saveWorkspace()
	case key.Matches(msg, a.keys.CopyLog):
		return a.copyConsole()
	case key.Matches(msg, a.keys.Escape):
		return a, a.setFocus(FocusFiles)
	}

	// Tab cycles panes except while editing, where it indents.
	if a.focus != FocusEditor {
		if key.Matches(msg, a.keys.Tab) {
			return a, a.cycleFocus()
		}
		if key.Matches(msg, a.keys.ShiftTab) {
			return a, a.cycleFocusReverse()
		}
	}

	switch a.focus {
	case FocusFiles:
		return a.handleFileListKeys(msg)
	case FocusEditor:
		return a.handleEditorKeys(msg)
	case FocusConsole:
		var cmd tea.Cmd
		a.consolePane, cmd = a.consolePane.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleFileListKeys handles input while the file list has focus.
func (a App) handleFileListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	case key.Matches(msg, a.keys.Up):
		a.fileList.CursorUp()
		return a, nil
	case key.Matches(msg, a.keys.Down):
		a.fileList.CursorDown()
		return a, nil
	case key.Matches(msg, a.keys.Enter):
		return a.openSelected()
	case key.Matches(msg, a.keys.New):
		a.newFileDialog.Reset()
		a.dialogMode = DialogNewFile
		return a, nil
	case key.Matches(msg, a.keys.Delete):
		return a.requestDelete()
	}
	return a, nil
}

// handleEditorKeys feeds input into the textarea and mirrors the result
// back into the workspace, which schedules re-persistence.
func (a App) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	a.workspace.UpdateContent(a.editor.BufferID(), a.editor.Value())
	a.refreshWorkspaceViews()
	return a, cmd
}

// handleDialogUpdate routes key input into the open dialog.
func (a App) handleDialogUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.dialogMode {
	case DialogNewFile:
		var cmd tea.Cmd
		a.newFileDialog, cmd = a.newFileDialog.Update(msg)
		if a.newFileDialog.Cancelled() {
			a.dialogMode = DialogNone
			return a, nil
		}
		if a.newFileDialog.Submitted() {
			a.dialogMode = DialogNone
			return a.createFile(a.newFileDialog.Value(0))
		}
		return a, cmd

	case DialogConfirmDelete:
		var cmd tea.Cmd
		a.deleteDialog, cmd = a.deleteDialog.Update(msg)
		if a.deleteDialog.Cancelled() {
			a.dialogMode = DialogNone
			a.deleteTargetID = ""
			return a, nil
		}
		if a.deleteDialog.Confirmed() {
			a.dialogMode = DialogNone
			return a.deleteFile(a.deleteTargetID)
		}
		return a, cmd
	}
	return a, nil
}

// openSelected makes the buffer under the cursor active and focuses the
// editor.
func (a App) openSelected() (tea.Model, tea.Cmd) {
	sel := a.fileList.Selected()
	if sel == nil {
		return a, nil
	}
	a.workspace.SetActiveFile(sel.ID)
	a.editor.SetBuffer(a.workspace.Active())
	a.refreshWorkspaceViews()
	return a, a.setFocus(FocusEditor)
}

// createFile validates and creates a new buffer. A rejected name aborts
// with no state change.
func (a App) createFile(name string) (tea.Model, tea.Cmd) {
	buf, err := a.workspace.CreateFile(name)
	if err != nil {
		return a.withStatus(err.Error(), true)
	}
	a.editor.SetBuffer(a.workspace.Active())
	a.refreshWorkspaceViews()
	model, cmd := a.withStatus("Created "+buf.Name, false)
	focusCmd := a.setFocus(FocusEditor)
	return model, tea.Batch(cmd, focusCmd)
}

// requestDelete opens the confirmation dialog for the selected buffer. The
// last remaining buffer is refused up front.
func (a App) requestDelete() (tea.Model, tea.Cmd) {
	sel := a.fileList.Selected()
	if sel == nil {
		return a, nil
	}
	if a.workspace.Count() == 1 {
		return a.withStatus("Cannot delete the last remaining file", true)
	}
	a.deleteTargetID = sel.ID
	a.deleteDialog = dialog.NewConfirmDialog("Delete File", "Delete "+sel.Name+"?")
	a.dialogMode = DialogConfirmDelete
	return a, nil
}

// deleteFile removes the buffer and repoints the editor when the active
// buffer was deleted.
func (a App) deleteFile(id string) (tea.Model, tea.Cmd) {
	a.deleteTargetID = ""
	if err := a.workspace.DeleteFile(id); err != nil {
		if errors.Is(err, workspace.ErrLastFile) {
			return a.withStatus("Cannot delete the last remaining file", true)
		}
		return a.withStatus(err.Error(), true)
	}
	if a.editor.BufferID() == id {
		a.editor.SetBuffer(a.workspace.Active())
	}
	a.refreshWorkspaceViews()
	return a.withStatus("File deleted", false)
}

// startRun kicks off the simulated build-and-run script for the active
// buffer. Overlapping runs are refused by the timeline.
func (a App) startRun() (tea.Model, tea.Cmd) {
	a.workspace.UpdateContent(a.editor.BufferID(), a.editor.Value())
	active := a.workspace.Active()
	if active == nil {
		return a, nil
	}

	delay, err := a.timeline.Start(*active)
	if err != nil {
		if errors.Is(err, console.ErrRunning) {
			return a.withStatus("A run is already in progress", true)
		}
		return a.withStatus(err.Error(), true)
	}

	a.refreshConsoleViews()
	a.refreshWorkspaceViews()
	return a, SimTick(delay)
}

// handleSimTick advances the timeline by one scripted step.
func (a App) handleSimTick() (tea.Model, tea.Cmd) {
	delay, done := a.timeline.Advance()
	a.refreshConsoleViews()
	a.refreshWorkspaceViews()

	if done {
		if active := a.workspace.Active(); active != nil {
			a.notifier.RunFinished(active.Name)
		}
		return a.withStatus("Run finished (simulated)", false)
	}
	return a, SimTick(delay)
}

// saveWorkspace is the explicit save path; unlike the implicit writes it
// reports failure.
func (a App) saveWorkspace() (tea.Model, tea.Cmd) {
	a.workspace.UpdateContent(a.editor.BufferID(), a.editor.Value())
	if err := a.workspace.Persist(); err != nil {
		return a.withStatus("Save failed: "+err.Error(), true)
	}
	a.refreshWorkspaceViews()
	return a.withStatus("Workspace saved", false)
}

// copyConsole yanks the console log to the system clipboard.
func (a App) copyConsole() (tea.Model, tea.Cmd) {
	text := a.timeline.Text()
	if text == "" {
		return a.withStatus("Console is empty", true)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return a.withStatus("Copy failed: "+err.Error(), true)
	}
	return a.withStatus("Console copied to clipboard", false)
}

// withStatus sets a transient status bar message.
func (a App) withStatus(msg string, isError bool) (tea.Model, tea.Cmd) {
	a.statusBar.SetMessage(msg, isError)
	return a, ClearStatusAfter(statusMessageTTL)
}

// quit flushes the editor and leaves the program.
func (a App) quit() (tea.Model, tea.Cmd) {
	a.workspace.UpdateContent(a.editor.BufferID(), a.editor.Value())
	a.quitting = true
	return a, tea.Quit
}
