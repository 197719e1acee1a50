// Package launcher drives a single analyzer run: change into the base
// directory, resolve the entry script, resolve the interpreter, run the
// advisory probes, invoke the script with forwarded arguments and relay its
// exit status.
package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/nekolite-studio/pylaunch/pkg/interp"
	"github.com/nekolite-studio/pylaunch/pkg/invoke"
	"github.com/nekolite-studio/pylaunch/pkg/output"
	"github.com/nekolite-studio/pylaunch/pkg/probe"
	"github.com/nekolite-studio/pylaunch/pkg/report"
)

// ErrMissingTarget is returned when the entry script does not exist at the
// resolved path.
var ErrMissingTarget = errors.New("entry script not found")

// Launcher resolves and runs the analyzer entry script.
type Launcher struct {
	cfg     Config
	fs      FileSystem
	locator interp.Locator
	runner  probe.Runner
	invoker invoke.Invoker
	log     *log.Logger
}

// New builds a Launcher with real OS-backed collaborators.
func New(cfg Config) *Launcher {
	return &Launcher{
		cfg:     cfg.withDefaults(),
		fs:      &RealFileSystem{},
		locator: &interp.RealLocator{},
		runner:  &probe.RealRunner{},
		invoker: &invoke.RealInvoker{},
		log:     newLogger(),
	}
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
}

// Run drives the launch and returns the process exit status: the child's
// own status after an invocation, 1 for a launcher-internal precondition
// failure. Arguments are handed to the entry script verbatim.
func (l *Launcher) Run(args []string) int {
	if err := l.fs.Chdir(l.cfg.BaseDir); err != nil {
		l.log.Error("cannot enter base directory", "dir", l.cfg.BaseDir, "err", err)
		return 1
	}

	target := filepath.Join(l.cfg.BaseDir, l.cfg.Script)

	// Target existence is checked before any interpreter probing so a
	// missing script never pays for PATH lookups or probe subprocesses.
	res := l.resolveTarget(target)
	output.PrintResult(res)
	if res.Fatal() {
		return 1
	}

	python, res := l.resolveInterpreter()
	output.PrintResult(res)
	if res.Fatal() {
		return 1
	}

	// Advisory probes. Each subprocess completes before the next starts
	// and neither outcome alters the launch.
	output.PrintResult(probe.PythonVersion(l.runner, python.Path, l.cfg.MinPythonVersion))
	output.PrintResult(probe.Capability(l.runner, python.Path, l.cfg.CapabilityModule))

	code, err := l.invoker.Invoke(python.Path, append([]string{target}, args...)...)
	if err != nil {
		l.log.Error("failed to start analyzer", "interpreter", python.Path, "err", err)
		return 1
	}

	if code == 0 {
		output.PrintSuccess(l.cfg.Script)
	} else {
		output.PrintFailure(l.cfg.Script, code)
	}
	return code
}

func (l *Launcher) resolveTarget(target string) report.Result {
	result := report.Result{Name: "target: " + target}

	info, err := l.fs.Stat(target)
	if err != nil {
		result.Fail("entry script not found", fmt.Errorf("%w: %s", ErrMissingTarget, target))
		result.AddDetailf("expected %s next to the launcher; check the BaseDir setting in cmd/pylaunch", l.cfg.Script)
		return result
	}
	if info.IsDir() {
		result.Fail("path is a directory, not a script", fmt.Errorf("%w: %s", ErrMissingTarget, target))
		return result
	}

	result.Status = report.StatusOK
	return result
}

func (l *Launcher) resolveInterpreter() (interp.Interpreter, report.Result) {
	result := report.Result{Name: "interpreter"}

	python, err := interp.Resolve(l.locator, filepath.Join(l.cfg.BaseDir, l.cfg.EnvDir))
	if err != nil {
		result.Fail("no python interpreter found", err)
		result.AddDetailf("install Python 3, or create a project virtualenv under %s", l.cfg.EnvDir)
		return interp.Interpreter{}, result
	}

	result.AddDetailf("path: %s", python.Path)
	if python.Kind == interp.KindVirtualenv {
		result.AddDetailf("using virtualenv: %s", python.EnvDir)
	}
	result.Status = report.StatusOK
	return python, result
}
