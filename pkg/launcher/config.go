package launcher

// Defaults for the analyzer project layout. BaseDir has no default here:
// callers decide where the entry script lives (cmd/pylaunch uses the
// directory of the launcher executable).
const (
	DefaultScript           = "project_analyzer.py"
	DefaultEnvDir           = ".venv"
	DefaultCapabilityModule = "lizard"
	DefaultMinPythonVersion = "3.8.0"
)

// Config carries the operator-adjustable launch parameters.
type Config struct {
	BaseDir          string // directory containing the entry script
	Script           string // entry script filename
	EnvDir           string // project virtualenv directory name
	CapabilityModule string // optional module probed before invocation
	MinPythonVersion string // advisory minimum interpreter version
}

func (c Config) withDefaults() Config {
	if c.Script == "" {
		c.Script = DefaultScript
	}
	if c.EnvDir == "" {
		c.EnvDir = DefaultEnvDir
	}
	if c.CapabilityModule == "" {
		c.CapabilityModule = DefaultCapabilityModule
	}
	if c.MinPythonVersion == "" {
		c.MinPythonVersion = DefaultMinPythonVersion
	}
	return c
}
