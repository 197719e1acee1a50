// Package invoke runs the analyzer entry script as a child process. The
// launcher's stdin/stdout/stderr are attached directly to the child so
// interactive and streaming behavior pass through unchanged, and the child's
// exit status is surfaced verbatim.
package invoke

import (
	"errors"
	"os"
	"os/exec"
)

// Invoker abstracts target invocation for testability.
type Invoker interface {
	// Invoke runs the command with shared streams and blocks until it
	// exits. The int is the child's exit status; a non-nil error means
	// the process could not be started at all.
	Invoke(name string, args ...string) (int, error)
}

// RealInvoker implements Invoker using actual OS processes.
type RealInvoker struct{}

// Invoke runs the command and waits for it. No timeout and no signal
// handling: interrupt delivery reaches the child through normal
// process-group semantics.
func (r *RealInvoker) Invoke(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}

// MockInvoker is a test double for Invoker.
type MockInvoker struct {
	InvokeFunc func(name string, args ...string) (int, error)
}

// Invoke calls the mock function.
func (m *MockInvoker) Invoke(name string, args ...string) (int, error) {
	return m.InvokeFunc(name, args...)
}
