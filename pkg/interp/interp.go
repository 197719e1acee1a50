// Package interp selects the Python interpreter used to run the analyzer
// entry script. Candidates are probed lazily in a fixed priority order and
// the first one that resolves wins: the project virtualenv (both the POSIX
// and Windows layouts, host-preferred order first), then python3 on PATH,
// then python.
package interp

import (
	"errors"
	"path/filepath"
	"runtime"
)

// Kind identifies where a resolved interpreter came from.
type Kind string

const (
	KindVirtualenv Kind = "virtualenv"
	KindSystem     Kind = "system"
)

// Interpreter is the runtime binary selected to run the entry script.
type Interpreter struct {
	Path   string // binary path (virtualenv) or PATH-resolved location (system)
	Kind   Kind
	EnvDir string // virtualenv directory, set when Kind == KindVirtualenv
}

// ErrNoInterpreter is returned when no candidate resolves.
var ErrNoInterpreter = errors.New("no python interpreter found")

// systemCandidates are the PATH lookups tried after the virtualenv,
// version-qualified name first.
var systemCandidates = []string{"python3", "python"}

// venvLayouts returns the virtualenv interpreter sub-paths in host-preferred
// order. Both layouts are always probed so a venv created under a POSIX
// shell emulator still resolves on a Windows host and vice versa.
func venvLayouts(goos string) []string {
	posix := filepath.Join("bin", "python")
	windows := filepath.Join("Scripts", "python.exe")
	if goos == "windows" {
		return []string{windows, posix}
	}
	return []string{posix, windows}
}

// Resolve selects the interpreter for the entry script. envDir is the full
// path of the project virtualenv directory. No candidate is probed after the
// first match.
func Resolve(loc Locator, envDir string) (Interpreter, error) {
	return resolve(loc, envDir, runtime.GOOS)
}

func resolve(loc Locator, envDir, goos string) (Interpreter, error) {
	for _, sub := range venvLayouts(goos) {
		path := filepath.Join(envDir, sub)
		if info, err := loc.Stat(path); err == nil && !info.IsDir() {
			return Interpreter{Path: path, Kind: KindVirtualenv, EnvDir: envDir}, nil
		}
	}

	for _, name := range systemCandidates {
		if path, err := loc.LookPath(name); err == nil {
			return Interpreter{Path: path, Kind: KindSystem}, nil
		}
	}

	return Interpreter{}, ErrNoInterpreter
}
