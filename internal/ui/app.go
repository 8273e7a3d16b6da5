package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashritanshuman/cpp-forge-ide/internal/app"
	"github.com/ashritanshuman/cpp-forge-ide/internal/console"
	"github.com/ashritanshuman/cpp-forge-ide/internal/notify"
	consolepanel "github.com/ashritanshuman/cpp-forge-ide/internal/ui/components/console"
	"github.com/ashritanshuman/cpp-forge-ide/internal/ui/components/dialog"
	"github.com/ashritanshuman/cpp-forge-ide/internal/ui/components/editor"
	"github.com/ashritanshuman/cpp-forge-ide/internal/ui/components/filelist"
	"github.com/ashritanshuman/cpp-forge-ide/internal/ui/components/filetabs"
	"github.com/ashritanshuman/cpp-forge-ide/internal/ui/components/statusbar"
	"github.com/ashritanshuman/cpp-forge-ide/internal/ui/keys"
	"github.com/ashritanshuman/cpp-forge-ide/internal/workspace"
)

// FocusArea represents which UI pane has focus.
type FocusArea int

const (
	// FocusFiles is the file list pane.
	FocusFiles FocusArea = iota
	// FocusEditor is the text editor pane.
	FocusEditor
	// FocusConsole is the console pane.
	FocusConsole
)

// DialogMode represents the current modal dialog being shown.
type DialogMode int

const (
	DialogNone DialogMode = iota
	DialogNewFile
	DialogConfirmDelete
)

const (
	minAppWidth  = 50
	minAppHeight = 14
)

// App is the main application model. It carries no workspace state of its
// own; everything it displays is derived from the workspace and timeline.
type App struct {
	// Components
	fileList      filelist.Model
	fileTabs      filetabs.Model
	editor        editor.Model
	consolePane   consolepanel.Model
	statusBar     statusbar.Model
	newFileDialog dialog.InputDialog
	deleteDialog  dialog.ConfirmDialog

	// State
	focus          FocusArea
	dialogMode     DialogMode
	deleteTargetID string
	width          int
	height         int
	ready          bool
	quitting       bool

	// Dependencies
	workspace *workspace.Workspace
	timeline  *console.Timeline
	notifier  *notify.Notifier
	config    *app.Config
	keys      keys.KeyMap
}

// New creates the application model. The workspace must already be loaded.
func New(ws *workspace.Workspace, tl *console.Timeline, cfg *app.Config, notifier *notify.Notifier) App {
	a := App{
		fileList:    filelist.New(),
		fileTabs:    filetabs.New(),
		editor:      editor.New(),
		consolePane: consolepanel.New(),
		statusBar:   statusbar.New(),
		newFileDialog: dialog.NewInputDialog("New File", []dialog.InputField{
			{Label: "File name", Placeholder: "utils.c"},
		}),
		focus:      FocusFiles,
		dialogMode: DialogNone,
		workspace:  ws,
		timeline:   tl,
		notifier:   notifier,
		config:     cfg,
		keys:       keys.DefaultKeyMap(),
	}
	a.editor.SetBuffer(ws.Active())
	a.refreshWorkspaceViews()
	a.fileList.SetFocused(true)
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// SetSize recalculates the pane layout for a new terminal size.
func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	listWidth, editorHeight, consoleHeight := a.layout()
	rightWidth := width - listWidth

	a.fileList.SetSize(listWidth, height-1)
	a.fileTabs.SetWidth(rightWidth)
	a.editor.SetSize(rightWidth, editorHeight)
	a.consolePane.SetSize(rightWidth, consoleHeight)
	a.statusBar.SetWidth(width)
}

// layout returns the pane dimensions for the current size.
func (a App) layout() (listWidth, editorHeight, consoleHeight int) {
	listWidth = a.width * 22 / 100
	if listWidth < 18 {
		listWidth = 18
	}
	if listWidth > 34 {
		listWidth = 34
	}

	// One row for the tab bar, one for the status bar.
	available := a.height - 2

	consoleHeight = available * 30 / 100
	if consoleHeight < 6 {
		consoleHeight = 6
	}
	editorHeight = available - consoleHeight
	if editorHeight < 5 {
		editorHeight = 5
	}
	return listWidth, editorHeight, consoleHeight
}

func (a App) windowTooSmall() bool {
	return a.width < minAppWidth || a.height < minAppHeight
}

// refreshWorkspaceViews re-derives every workspace-backed display value.
func (a *App) refreshWorkspaceViews() {
	files := a.workspace.Files()
	activeID := a.workspace.ActiveID()
	running := a.timeline.Running()

	a.fileList.SetFiles(files, activeID)
	a.fileTabs.SetTabs(files, activeID, running)
	a.statusBar.SetRunning(running)

	if active := a.workspace.Active(); active != nil {
		a.statusBar.SetActiveFile(active.Name, active.Language.Label(),
			active.LineCount(), active.CharCount())
		a.statusBar.SetPosition(a.editor.PositionInfo())
	}
}

// refreshConsoleViews re-renders the console pane from the timeline.
func (a *App) refreshConsoleViews() {
	a.consolePane.SetPhase(a.timeline.Phase())
	a.consolePane.SetLines(a.timeline.Lines())
	a.statusBar.SetRunning(a.timeline.Running())
}

// setFocus moves pane focus and updates component focus flags.
func (a *App) setFocus(focus FocusArea) tea.Cmd {
	a.focus = focus
	a.fileList.SetFocused(focus == FocusFiles)
	a.consolePane.SetFocused(focus == FocusConsole)
	return a.editor.SetFocused(focus == FocusEditor)
}

// cycleFocus advances focus: files -> editor -> console -> files.
func (a *App) cycleFocus() tea.Cmd {
	return a.setFocus((a.focus + 1) % 3)
}

// cycleFocusReverse moves focus the other way.
func (a *App) cycleFocusReverse() tea.Cmd {
	return a.setFocus((a.focus + 2) % 3)
}
