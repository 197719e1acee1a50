package launcher

import (
	"io/fs"
	"os"
)

// FileSystem abstracts the directory and existence operations the launcher
// needs, so tests never touch the real filesystem or the process cwd.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	Chdir(dir string) error
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Chdir changes the process working directory.
func (r *RealFileSystem) Chdir(dir string) error {
	return os.Chdir(dir)
}

// MockFileSystem is a test double for FileSystem.
type MockFileSystem struct {
	StatFunc  func(name string) (fs.FileInfo, error)
	ChdirFunc func(dir string) error
}

// Stat calls the mock function.
func (m *MockFileSystem) Stat(name string) (fs.FileInfo, error) {
	return m.StatFunc(name)
}

// Chdir calls the mock function, or succeeds silently when unset.
func (m *MockFileSystem) Chdir(dir string) error {
	if m.ChdirFunc == nil {
		return nil
	}
	return m.ChdirFunc(dir)
}
