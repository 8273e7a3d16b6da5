// Package console owns the append-only console log and the scripted
// build-and-run simulation that fills it. No real compilation or process
// execution happens anywhere in this package.
package console

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ashritanshuman/cpp-forge-ide/internal/model"
)

// ErrRunning is returned by Start while a simulation is in flight.
// Overlapping runs are refused; there is no cancellation.
var ErrRunning = errors.New("a simulation is already running")

// Delays holds the four fixed pauses between the five scripted lines.
type Delays struct {
	Compile time.Duration
	Link    time.Duration
	Run     time.Duration
	Exit    time.Duration
}

// DefaultDelays returns the stock pacing of the simulation.
func DefaultDelays() Delays {
	return Delays{
		Compile: 450 * time.Millisecond,
		Link:    600 * time.Millisecond,
		Run:     500 * time.Millisecond,
		Exit:    350 * time.Millisecond,
	}
}

// step is one pending entry of the script.
type step struct {
	delayBefore time.Duration
	kind        model.LineKind
	content     string
	phase       model.RunPhase
}

// Timeline is the scripted build-and-run machine:
// idle -> compiling -> linking -> running -> done.
// It is timer-free; the caller drives it with Advance after each returned
// delay, so the pauses are cooperative suspension points.
type Timeline struct {
	lines   []model.ConsoleLine
	pending []step
	phase   model.RunPhase
	delays  Delays
	now     func() time.Time
}

// New creates an idle timeline with the given pacing.
func New(delays Delays) *Timeline {
	return &Timeline{
		phase:  model.PhaseIdle,
		delays: delays,
		now:    time.Now,
	}
}

// Running reports whether a simulation is in flight.
func (t *Timeline) Running() bool {
	return t.phase != model.PhaseIdle && t.phase != model.PhaseDone
}

// Phase returns the current machine state.
func (t *Timeline) Phase() model.RunPhase {
	return t.phase
}

// Lines returns a copy of the console log.
func (t *Timeline) Lines() []model.ConsoleLine {
	out := make([]model.ConsoleLine, len(t.lines))
	copy(out, t.lines)
	return out
}

// Text renders the log as plain text, one line per entry.
func (t *Timeline) Text() string {
	var sb strings.Builder
	for _, line := range t.lines {
		sb.WriteString(line.Content)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Start clears the log, echoes the synthetic compile command for the given
// buffer, and arms the remaining script. It returns the delay before the
// first Advance. A second Start while running is refused.
func (t *Timeline) Start(file model.FileBuffer) (time.Duration, error) {
	if t.Running() {
		return 0, ErrRunning
	}

	binary := file.Stem()
	compileCmd := fmt.Sprintf("$ %s %s %s -o %s",
		file.Language.Compiler(), standardFlag(file.Language), file.Name, binary)

	t.lines = t.lines[:0]
	t.append(model.LineSystem, compileCmd)
	t.phase = model.PhaseCompiling

	t.pending = []step{
		{t.delays.Compile, model.LineOutput, fmt.Sprintf("Compiling %s ...", file.Name), model.PhaseLinking},
		{t.delays.Link, model.LineOutput, fmt.Sprintf("Linking %s ...", binary), model.PhaseRunning},
		{t.delays.Run, model.LineSystem, "$ ./" + binary, model.PhaseRunning},
		{t.delays.Exit, model.LineSystem, "[simulated] no real process was executed; exited with code 0", model.PhaseDone},
	}
	return t.pending[0].delayBefore, nil
}

// Advance appends the next scripted line. It returns the delay before the
// following step and whether the script has completed. Advancing an idle or
// finished timeline is a no-op.
func (t *Timeline) Advance() (time.Duration, bool) {
	if !t.Running() || len(t.pending) == 0 {
		return 0, true
	}

	next := t.pending[0]
	t.pending = t.pending[1:]
	t.append(next.kind, next.content)
	t.phase = next.phase

	if len(t.pending) == 0 {
		t.phase = model.PhaseDone
		return 0, true
	}
	return t.pending[0].delayBefore, false
}

// append records a line with its capture time. Lines are never mutated
// after this point.
func (t *Timeline) append(kind model.LineKind, content string) {
	t.lines = append(t.lines, model.ConsoleLine{
		Kind:      kind,
		Content:   content,
		Timestamp: t.now(),
	})
}

// standardFlag returns the language-standard flag for the echoed command.
func standardFlag(lang model.Language) string {
	if lang == model.LangC {
		return "-std=c11 -Wall"
	}
	return "-std=c++17 -Wall"
}
