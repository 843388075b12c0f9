// Package executor runs screened scripts. The ScriptExecutor interface hides
// the execution mechanism: the default implementation interprets the script
// in-process, but an out-of-process sandbox can be substituted without
// touching the session loop.
package executor

import "context"

// FailureClass distinguishes the two reportable failure modes of a run.
type FailureClass int

const (
	FailureNone FailureClass = iota
	// FailureSyntax: the script did not parse; Diagnostic carries the
	// interpreter's position information (file:line:column).
	FailureSyntax
	// FailureRuntime: the script parsed but failed while running; Diagnostic
	// carries the panic or error text, with a stack trace when available.
	FailureRuntime
)

// Result is the outcome of one script execution.
type Result struct {
	Succeeded  bool
	Class      FailureClass
	Diagnostic string
	ScriptPath string // scratch file the script was persisted to
}

// ScriptExecutor persists and runs one script per call. Scratch files are
// retained across runs; Cleanup removes everything created this session.
type ScriptExecutor interface {
	Run(ctx context.Context, scriptText string) Result
	Cleanup() []error
}
