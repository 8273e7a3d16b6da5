package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashritanshuman/cpp-forge-ide/internal/console"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	c, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "catppuccin-mocha", c.UI.Theme)
	assert.Equal(t, 4, c.UI.TabWidth)
	assert.Equal(t, 450, c.Console.CompileDelayMS)
	assert.False(t, c.Notifications.Desktop)
	assert.Empty(t, c.Storage.DataDir)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := &Config{
		UI:            UIConfig{Theme: "plain", TabWidth: 8},
		Console:       ConsoleConfig{CompileDelayMS: 10, LinkDelayMS: 20, RunDelayMS: 30, ExitDelayMS: 40},
		Storage:       StorageConfig{DataDir: "/tmp/forge"},
		Notifications: NotificationsConfig{Desktop: true},
	}
	require.NoError(t, SaveConfig(dir, c))

	got, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestConsoleDelays(t *testing.T) {
	c := ConsoleConfig{CompileDelayMS: 10, LinkDelayMS: 20, RunDelayMS: 30, ExitDelayMS: 40}
	d := c.Delays()
	assert.Equal(t, 10*time.Millisecond, d.Compile)
	assert.Equal(t, 20*time.Millisecond, d.Link)
	assert.Equal(t, 30*time.Millisecond, d.Run)
	assert.Equal(t, 40*time.Millisecond, d.Exit)
}

func TestConsoleDelaysSubstituteDefaults(t *testing.T) {
	d := ConsoleConfig{CompileDelayMS: -1}.Delays()
	assert.Equal(t, console.DefaultDelays(), d)
}
