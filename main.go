// cpp-forge-ide - a terminal C/C++ scratchpad.
// A TUI with a file list, an editor, and a console that plays back a
// simulated compile-and-run sequence. Nothing is ever really compiled.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashritanshuman/cpp-forge-ide/internal/app"
	"github.com/ashritanshuman/cpp-forge-ide/internal/console"
	"github.com/ashritanshuman/cpp-forge-ide/internal/notify"
	"github.com/ashritanshuman/cpp-forge-ide/internal/store"
	"github.com/ashritanshuman/cpp-forge-ide/internal/ui"
	"github.com/ashritanshuman/cpp-forge-ide/internal/workspace"
)

const appName = "cpp-forge-ide"

func main() {
	configDir, err := getConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating config directory: %v\n", err)
		os.Exit(1)
	}

	config, err := app.LoadConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// TUI apps cannot log to stdout; route the standard logger to a file
	// when debugging is requested.
	if os.Getenv("FORGE_DEBUG") != "" {
		f, err := tea.LogToFile(filepath.Join(configDir, "debug.log"), "forge")
		if err == nil {
			defer f.Close()
		}
	}

	dataDir := config.Storage.DataDir
	if dataDir == "" {
		dataDir = configDir
	}
	s, err := store.NewJSONStore(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing store: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	ws := workspace.New(s)
	ws.Load()

	timeline := console.New(config.Console.Delays())
	notifier := notify.New(config.Notifications.Desktop)

	application := ui.New(ws, timeline, config, notifier)

	p := tea.NewProgram(
		application,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// getConfigDir returns the application configuration directory.
func getConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if available, otherwise default to ~/.config
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, appName), nil
}
