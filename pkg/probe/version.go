package probe

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/nekolite-studio/pylaunch/pkg/report"
)

// pythonVersionRe matches the "Python X.Y.Z" banner printed by --version.
var pythonVersionRe = regexp.MustCompile(`Python (\d+\.\d+(?:\.\d+)?)`)

// PythonVersion checks that the interpreter meets the minimum version the
// analyzer needs. Like Capability it is advisory: an old or unidentifiable
// interpreter produces a warning and the launch continues.
func PythonVersion(r Runner, interpreter, minVersion string) report.Result {
	result := report.Result{Name: "interpreter version"}

	floor, err := semver.NewVersion(minVersion)
	if err != nil {
		return result.Warnf("invalid minimum version %q: %v", minVersion, err)
	}

	stdout, stderr, err := r.RunCommand(interpreter, "--version")
	if err != nil {
		return result.Warnf("could not query interpreter version: %v", err)
	}

	banner := strings.TrimSpace(stdout)
	if banner == "" {
		// Python 2 prints the version banner on stderr.
		banner = strings.TrimSpace(stderr)
	}

	match := pythonVersionRe.FindStringSubmatch(banner)
	if match == nil {
		return result.Warnf("unrecognized version output %q", banner)
	}

	version, err := semver.NewVersion(match[1])
	if err != nil {
		return result.Warnf("unparsable version %q: %v", match[1], err)
	}

	result.AddDetailf("version: %s", version)
	if version.LessThan(floor) {
		result.Warnf("Python %s is older than the supported minimum %s", version, floor)
		return result
	}

	result.Status = report.StatusOK
	return result
}
