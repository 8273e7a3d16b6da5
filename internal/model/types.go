// Package model defines core data structures for cpp-forge-ide.
package model

import "time"

// Language identifies the language variant of a file buffer.
type Language string

const (
	// LangC marks a C translation unit or header.
	LangC Language = "c"
	// LangCPP marks a C++ translation unit or header.
	LangCPP Language = "cpp"
)

// Label returns the human-readable name shown in the status bar.
func (l Language) Label() string {
	switch l {
	case LangC:
		return "C"
	case LangCPP:
		return "C++"
	default:
		return string(l)
	}
}

// Compiler returns the toolchain binary used in the simulated build command.
func (l Language) Compiler() string {
	if l == LangC {
		return "gcc"
	}
	return "g++"
}

// LineKind controls how a console line is styled.
type LineKind string

const (
	// LineInput is a line the user fed to the simulated process.
	LineInput LineKind = "input"
	// LineOutput is simulated program/toolchain output.
	LineOutput LineKind = "output"
	// LineError is a simulated diagnostic.
	LineError LineKind = "error"
	// LineSystem is a shell-level echo (commands, exit status).
	LineSystem LineKind = "system"
)

// ConsoleLine is a single entry in the console log. Lines are append-only
// within a run and never mutated after append.
type ConsoleLine struct {
	Kind      LineKind  `json:"kind"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// RunPhase is the state of the simulated build-and-run machine.
type RunPhase string

const (
	// PhaseIdle means no simulation is in flight.
	PhaseIdle RunPhase = "idle"
	// PhaseCompiling means the compile command has been echoed.
	PhaseCompiling RunPhase = "compiling"
	// PhaseLinking means the compiling line has been appended.
	PhaseLinking RunPhase = "linking"
	// PhaseRunning means the link step finished and the run command is next.
	PhaseRunning RunPhase = "running"
	// PhaseDone means the script reached its final line.
	PhaseDone RunPhase = "done"
)
