package output

import (
	"fmt"
	"io"
	"os"

	"github.com/jwalton/go-supportscolor"

	"github.com/nekolite-studio/pylaunch/pkg/report"
)

var (
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	reset  = "\033[0m"
)

// stdout is swapped in tests.
var stdout io.Writer = os.Stdout

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, yellow, red, reset = "", "", "", ""
	}
}

// PrintResult outputs a stage result with colored status.
func PrintResult(r report.Result) {
	switch r.Status {
	case report.StatusOK:
		fmt.Fprintf(stdout, "%s[OK]%s %s\n", green, reset, r.Name)
	case report.StatusWarn:
		fmt.Fprintf(stdout, "%s[WARN]%s %s\n", yellow, reset, r.Name)
	default:
		fmt.Fprintf(stdout, "%s[FAIL]%s %s\n", red, reset, r.Name)
	}
	for _, d := range r.Details {
		fmt.Fprintf(stdout, "      %s\n", d)
	}
}

// PrintSuccess outputs the final banner for a zero exit status.
func PrintSuccess(script string) {
	fmt.Fprintf(stdout, "%s==== %s finished successfully ====%s\n", green, script, reset)
}

// PrintFailure outputs the final banner for a non-zero exit status.
// The literal numeric status is part of the banner.
func PrintFailure(script string, code int) {
	fmt.Fprintf(stdout, "%s==== %s failed (exit code %d) ====%s\n", red, script, code, reset)
}
