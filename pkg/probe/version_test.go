package probe

import (
	"errors"
	"strings"
	"testing"

	"github.com/nekolite-studio/pylaunch/pkg/report"
)

func versionRunner(stdout, stderr string, err error) *MockRunner {
	return &MockRunner{
		RunCommandFunc: func(name string, args ...string) (string, string, error) {
			return stdout, stderr, err
		},
	}
}

func TestPythonVersion_MeetsMinimum(t *testing.T) {
	tests := []struct {
		banner string
	}{
		{"Python 3.8.0\n"},
		{"Python 3.11.4\n"},
		{"Python 3.13\n"},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.banner), func(t *testing.T) {
			result := PythonVersion(versionRunner(tt.banner, "", nil), "/usr/bin/python3", "3.8.0")

			if result.Status != report.StatusOK {
				t.Errorf("Status = %v, want %v (details: %v)", result.Status, report.StatusOK, result.Details)
			}
		})
	}
}

func TestPythonVersion_BelowMinimum(t *testing.T) {
	result := PythonVersion(versionRunner("Python 3.6.9\n", "", nil), "/usr/bin/python3", "3.8.0")

	if result.Status != report.StatusWarn {
		t.Errorf("Status = %v, want %v", result.Status, report.StatusWarn)
	}
	joined := strings.Join(result.Details, "\n")
	if !strings.Contains(joined, "3.6.9") || !strings.Contains(joined, "3.8.0") {
		t.Errorf("Details = %v, want both versions named", result.Details)
	}
}

func TestPythonVersion_Python2BannerOnStderr(t *testing.T) {
	// Python 2 writes the version banner to stderr with an empty stdout.
	result := PythonVersion(versionRunner("", "Python 2.7.18\n", nil), "/usr/bin/python", "3.8.0")

	if result.Status != report.StatusWarn {
		t.Errorf("Status = %v, want %v", result.Status, report.StatusWarn)
	}
	if !strings.Contains(strings.Join(result.Details, "\n"), "2.7.18") {
		t.Errorf("Details = %v, want parsed 2.7.18", result.Details)
	}
}

func TestPythonVersion_UnrecognizedBanner(t *testing.T) {
	result := PythonVersion(versionRunner("PyPy rules\n", "", nil), "/usr/bin/python3", "3.8.0")

	if result.Status != report.StatusWarn {
		t.Errorf("Status = %v, want %v", result.Status, report.StatusWarn)
	}
}

func TestPythonVersion_QueryFails(t *testing.T) {
	result := PythonVersion(versionRunner("", "", errors.New("exit status 127")), "/usr/bin/python3", "3.8.0")

	if result.Status != report.StatusWarn {
		t.Errorf("Status = %v, want %v", result.Status, report.StatusWarn)
	}
	if result.Fatal() {
		t.Error("Fatal() = true, want false: version gate is advisory")
	}
}

func TestPythonVersion_InvalidMinimum(t *testing.T) {
	result := PythonVersion(versionRunner("Python 3.11.4\n", "", nil), "/usr/bin/python3", "not-a-version")

	if result.Status != report.StatusWarn {
		t.Errorf("Status = %v, want %v", result.Status, report.StatusWarn)
	}
}
