// Package probe runs the advisory pre-invocation checks against the
// resolved interpreter. Every probe in this package can only produce an OK
// or WARN result: a failed probe means degraded functionality, never a
// reason to stop the launch.
package probe

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/nekolite-studio/pylaunch/pkg/report"
)

// importCheck asks the interpreter to import the module and print a one-line
// JSON blob about it. The exit status carries the importability verdict; the
// JSON only enriches the OK line.
const importCheck = `import json, %s as m; print(json.dumps({"module": %q, "version": str(getattr(m, "version", getattr(m, "__version__", "")))}))`

// Capability checks that the optional module is importable by the
// interpreter. A missing module produces a warning with the remedy and
// nothing else: the launch continues either way.
func Capability(r Runner, interpreter, module string) report.Result {
	result := report.Result{Name: "capability: " + module}

	code := fmt.Sprintf(importCheck, module, module)
	stdout, _, err := r.RunCommand(interpreter, "-c", code)
	if err != nil {
		result.Warnf("optional module %q not importable", module)
		result.AddDetailf("complexity metrics disabled; install it with: pip install %s", module)
		return result
	}

	if v := gjson.Get(strings.TrimSpace(stdout), "version").String(); v != "" {
		result.AddDetailf("version: %s", v)
	}
	result.Status = report.StatusOK
	return result
}
