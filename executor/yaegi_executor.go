package executor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"sheetflow/ops"
)

// YaegiExecutor interprets scripts in-process with a fresh interpreter per
// run. Each invocation gets its own minimal binding set: the Go stdlib plus
// the sheetflow/ops package, nothing of the host process leaks in.
//
// Known limitation: execution is not time-bounded. A script that blocks or
// loops forever blocks the session until it is interrupted.
type YaegiExecutor struct {
	tempDir string

	mu      sync.Mutex
	scratch []string
	seq     int
}

// NewYaegiExecutor returns an executor writing scratch scripts under tempDir.
func NewYaegiExecutor(tempDir string) *YaegiExecutor {
	return &YaegiExecutor{tempDir: tempDir}
}

// Run persists scriptText to a scratch file and executes it. Parse failures
// and runtime failures are reported as distinct classes; the scratch file is
// kept either way until Cleanup.
func (ye *YaegiExecutor) Run(ctx context.Context, scriptText string) Result {
	if err := ctx.Err(); err != nil {
		return Result{Class: FailureRuntime, Diagnostic: fmt.Sprintf("execution aborted: %v", err)}
	}

	scriptPath, err := ye.persist(scriptText)
	if err != nil {
		return Result{Class: FailureRuntime, Diagnostic: fmt.Sprintf("failed to persist script: %v", err)}
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return Result{Class: FailureRuntime, Diagnostic: fmt.Sprintf("failed to load stdlib bindings: %v", err), ScriptPath: scriptPath}
	}
	if err := i.Use(ops.Symbols); err != nil {
		return Result{Class: FailureRuntime, Diagnostic: fmt.Sprintf("failed to load ops bindings: %v", err), ScriptPath: scriptPath}
	}

	// Compiling a main package never runs it; parse and type-check errors
	// here carry the interpreter's file:line:column position.
	prog, err := i.Compile(scriptText)
	if err != nil {
		return Result{Class: FailureSyntax, Diagnostic: err.Error(), ScriptPath: scriptPath}
	}

	// Execute runs init, package-level vars and main, recovering interpreted
	// panics into an interp.Panic error.
	if _, err := i.Execute(prog); err != nil {
		return Result{Class: FailureRuntime, Diagnostic: runtimeDiagnostic(err), ScriptPath: scriptPath}
	}

	return Result{Succeeded: true, ScriptPath: scriptPath}
}

// runtimeDiagnostic renders an execution error, preserving the interpreter
// stack when the error wraps a recovered panic.
func runtimeDiagnostic(err error) string {
	var p interp.Panic
	if errors.As(err, &p) {
		return fmt.Sprintf("%v\n%s", p.Value, p.Stack)
	}
	return err.Error()
}

// persist writes the script to a uniquely timestamped scratch file and
// remembers it for session cleanup.
func (ye *YaegiExecutor) persist(scriptText string) (string, error) {
	ye.mu.Lock()
	defer ye.mu.Unlock()

	name := fmt.Sprintf("process_%s.go", time.Now().Format("20060102_150405"))
	path := filepath.Join(ye.tempDir, name)
	// Two generations within the same second get a sequence suffix.
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		ye.seq++
		path = filepath.Join(ye.tempDir, fmt.Sprintf("process_%s_%d.go", time.Now().Format("20060102_150405"), ye.seq))
	}

	if err := os.WriteFile(path, []byte(scriptText), 0644); err != nil {
		return "", err
	}
	ye.scratch = append(ye.scratch, path)
	return path, nil
}

// Cleanup deletes every scratch script created this session. Deletion
// failures are returned for reporting but do not stop the sweep.
func (ye *YaegiExecutor) Cleanup() []error {
	ye.mu.Lock()
	defer ye.mu.Unlock()

	var errs []error
	for _, path := range ye.scratch {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", path, err))
		}
	}
	ye.scratch = nil
	return errs
}
