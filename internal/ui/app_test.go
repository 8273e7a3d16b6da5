package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashritanshuman/cpp-forge-ide/internal/app"
	"github.com/ashritanshuman/cpp-forge-ide/internal/console"
	"github.com/ashritanshuman/cpp-forge-ide/internal/notify"
	"github.com/ashritanshuman/cpp-forge-ide/internal/store"
	"github.com/ashritanshuman/cpp-forge-ide/internal/workspace"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	s, err := store.NewJSONStore(t.TempDir())
	require.NoError(t, err)
	ws := workspace.New(s)
	ws.Load()

	a := New(ws, console.New(console.DefaultDelays()), &app.Config{}, notify.New(false))
	a.SetSize(120, 40)
	return a
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	next, ok := m.(App)
	require.True(t, ok)
	return next
}

func TestTabCyclesFocus(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, FocusFiles, a.focus)

	a = step(t, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusEditor, a.focus)

	// While editing, tab indents instead of switching panes.
	a = step(t, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusEditor, a.focus)

	a = step(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, FocusFiles, a.focus)

	a = step(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FocusConsole, a.focus)
}

func TestRunDrivesTimelineToCompletion(t *testing.T) {
	a := newTestApp(t)

	a = step(t, a, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, a.timeline.Running())
	require.Len(t, a.timeline.Lines(), 1)
	assert.Contains(t, a.timeline.Lines()[0].Content, "main.cpp")

	for i := 0; i < 4; i++ {
		a = step(t, a, SimTickMsg{})
	}
	assert.False(t, a.timeline.Running())
	assert.Len(t, a.timeline.Lines(), 5)
}

func TestRunWhileRunningIsRefused(t *testing.T) {
	a := newTestApp(t)

	a = step(t, a, tea.KeyMsg{Type: tea.KeyCtrlR})
	a = step(t, a, tea.KeyMsg{Type: tea.KeyCtrlR})

	// The second request must not restart or extend the log.
	assert.Len(t, a.timeline.Lines(), 1)
}

func TestNewFileDialogCreatesBuffer(t *testing.T) {
	a := newTestApp(t)

	a = step(t, a, keyRunes("n"))
	assert.Equal(t, DialogNewFile, a.dialogMode)

	a = step(t, a, keyRunes("utils.c"))
	a = step(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, DialogNone, a.dialogMode)
	assert.Equal(t, 3, a.workspace.Count())
	require.NotNil(t, a.workspace.Active())
	assert.Equal(t, "utils.c", a.workspace.Active().Name)
	assert.Equal(t, FocusEditor, a.focus)
}

func TestNewFileDialogRejectsBadExtension(t *testing.T) {
	a := newTestApp(t)
	activeBefore := a.workspace.ActiveID()

	a = step(t, a, keyRunes("n"))
	a = step(t, a, keyRunes("script.py"))
	a = step(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, DialogNone, a.dialogMode)
	assert.Equal(t, 2, a.workspace.Count())
	assert.Equal(t, activeBefore, a.workspace.ActiveID())
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	a := newTestApp(t)

	a = step(t, a, keyRunes("d"))
	assert.Equal(t, DialogConfirmDelete, a.dialogMode)

	// Declining leaves the workspace untouched.
	a = step(t, a, keyRunes("n"))
	assert.Equal(t, DialogNone, a.dialogMode)
	assert.Equal(t, 2, a.workspace.Count())

	// Accepting removes the file.
	a = step(t, a, keyRunes("d"))
	a = step(t, a, keyRunes("y"))
	assert.Equal(t, DialogNone, a.dialogMode)
	assert.Equal(t, 1, a.workspace.Count())
}

func TestDeleteLastFileRefusedWithoutDialog(t *testing.T) {
	a := newTestApp(t)

	a = step(t, a, keyRunes("d"))
	a = step(t, a, keyRunes("y"))
	require.Equal(t, 1, a.workspace.Count())

	a = step(t, a, keyRunes("d"))
	assert.Equal(t, DialogNone, a.dialogMode)
	assert.Equal(t, 1, a.workspace.Count())
}

func TestEditorInputFlowsIntoWorkspace(t *testing.T) {
	a := newTestApp(t)

	a = step(t, a, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FocusEditor, a.focus)

	a = step(t, a, keyRunes("Z"))
	assert.Contains(t, a.workspace.Active().Content, "Z")
}

func TestQuitFromFileList(t *testing.T) {
	a := newTestApp(t)

	m, cmd := a.Update(keyRunes("q"))
	next := m.(App)
	assert.True(t, next.quitting)
	assert.NotNil(t, cmd)
}
