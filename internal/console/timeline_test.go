package console

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashritanshuman/cpp-forge-ide/internal/model"
)

func cppBuffer() model.FileBuffer {
	return *model.NewFileBuffer("main.cpp", model.LangCPP, "int main() { return 0; }\n")
}

func cBuffer() model.FileBuffer {
	return *model.NewFileBuffer("utils.c", model.LangC, "int util(void);\n")
}

// drain runs the script to completion.
func drain(t *testing.T, tl *Timeline) {
	t.Helper()
	for i := 0; i < 10; i++ {
		if _, done := tl.Advance(); done {
			return
		}
	}
	t.Fatal("script did not terminate")
}

func TestRunProducesFiveLineScript(t *testing.T) {
	tl := New(DefaultDelays())

	_, err := tl.Start(cppBuffer())
	require.NoError(t, err)
	drain(t, tl)

	lines := tl.Lines()
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0].Content, "main.cpp")
	assert.Contains(t, lines[0].Content, "g++")
	assert.Equal(t, model.LineSystem, lines[0].Kind)
	assert.Equal(t, model.LineOutput, lines[1].Kind)
	assert.Equal(t, model.LineOutput, lines[2].Kind)
	assert.Equal(t, model.LineSystem, lines[3].Kind)
	assert.Contains(t, lines[3].Content, "./main")
	assert.Equal(t, model.LineSystem, lines[4].Kind)
	assert.Contains(t, lines[4].Content, "exited with code 0")
	assert.Contains(t, lines[4].Content, "simulated")
}

func TestCompileCommandMatchesLanguage(t *testing.T) {
	tl := New(DefaultDelays())

	_, err := tl.Start(cBuffer())
	require.NoError(t, err)

	lines := tl.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0].Content, "gcc")
	assert.Contains(t, lines[0].Content, "-std=c11")
	assert.Contains(t, lines[0].Content, "-o utils")
}

func TestStartRefusedWhileRunning(t *testing.T) {
	tl := New(DefaultDelays())

	_, err := tl.Start(cppBuffer())
	require.NoError(t, err)
	require.True(t, tl.Running())

	_, err = tl.Start(cppBuffer())
	assert.ErrorIs(t, err, ErrRunning)

	// The refused call must not have touched the log.
	assert.Len(t, tl.Lines(), 1)
}

func TestSecondRunResetsLog(t *testing.T) {
	tl := New(DefaultDelays())

	_, err := tl.Start(cppBuffer())
	require.NoError(t, err)
	drain(t, tl)
	require.Len(t, tl.Lines(), 5)

	_, err = tl.Start(cBuffer())
	require.NoError(t, err)
	drain(t, tl)

	lines := tl.Lines()
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.NotContains(t, line.Content, "main.cpp", "no line from the first run may remain")
	}
	assert.Contains(t, lines[0].Content, "utils.c")
}

func TestPhaseProgression(t *testing.T) {
	tl := New(DefaultDelays())
	assert.Equal(t, model.PhaseIdle, tl.Phase())
	assert.False(t, tl.Running())

	_, err := tl.Start(cppBuffer())
	require.NoError(t, err)
	assert.Equal(t, model.PhaseCompiling, tl.Phase())

	_, done := tl.Advance()
	assert.False(t, done)
	assert.Equal(t, model.PhaseLinking, tl.Phase())

	_, done = tl.Advance()
	assert.False(t, done)
	assert.Equal(t, model.PhaseRunning, tl.Phase())

	_, done = tl.Advance()
	assert.False(t, done)
	assert.Equal(t, model.PhaseRunning, tl.Phase())

	_, done = tl.Advance()
	assert.True(t, done)
	assert.Equal(t, model.PhaseDone, tl.Phase())
	assert.False(t, tl.Running())
}

func TestAdvanceDelaysFollowConfig(t *testing.T) {
	delays := Delays{
		Compile: 1 * time.Millisecond,
		Link:    2 * time.Millisecond,
		Run:     3 * time.Millisecond,
		Exit:    4 * time.Millisecond,
	}
	tl := New(delays)

	first, err := tl.Start(cppBuffer())
	require.NoError(t, err)
	assert.Equal(t, delays.Compile, first)

	next, _ := tl.Advance()
	assert.Equal(t, delays.Link, next)
	next, _ = tl.Advance()
	assert.Equal(t, delays.Run, next)
	next, _ = tl.Advance()
	assert.Equal(t, delays.Exit, next)
}

func TestAdvanceIdleIsNoOp(t *testing.T) {
	tl := New(DefaultDelays())

	_, done := tl.Advance()
	assert.True(t, done)
	assert.Empty(t, tl.Lines())
}

func TestTimestampsAreNonDecreasing(t *testing.T) {
	tl := New(DefaultDelays())
	_, err := tl.Start(cppBuffer())
	require.NoError(t, err)
	drain(t, tl)

	lines := tl.Lines()
	for i := 1; i < len(lines); i++ {
		assert.False(t, lines[i].Timestamp.Before(lines[i-1].Timestamp))
	}
}

func TestTextRendersOneLinePerEntry(t *testing.T) {
	tl := New(DefaultDelays())
	assert.Empty(t, tl.Text())

	_, err := tl.Start(cppBuffer())
	require.NoError(t, err)
	drain(t, tl)

	text := tl.Text()
	assert.Contains(t, text, "main.cpp")
	assert.Equal(t, 5, len(splitNonEmptyLines(text)))
}

func splitNonEmptyLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
