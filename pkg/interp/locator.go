package interp

import (
	"io/fs"
	"os"
	"os/exec"
)

// Locator abstracts filesystem and PATH probing for testability.
type Locator interface {
	Stat(name string) (fs.FileInfo, error)
	LookPath(file string) (string, error)
}

// RealLocator implements Locator using the actual OS.
type RealLocator struct{}

// Stat returns file info for the given path.
func (r *RealLocator) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// LookPath searches for an executable in PATH.
func (r *RealLocator) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// MockLocator is a test double for Locator.
type MockLocator struct {
	StatFunc     func(name string) (fs.FileInfo, error)
	LookPathFunc func(file string) (string, error)
}

// Stat calls the mock function.
func (m *MockLocator) Stat(name string) (fs.FileInfo, error) {
	return m.StatFunc(name)
}

// LookPath calls the mock function.
func (m *MockLocator) LookPath(file string) (string, error) {
	return m.LookPathFunc(file)
}
