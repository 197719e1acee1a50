package report

// Status represents the outcome of a launch stage.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single launch stage.
type Result struct {
	Name    string   // e.g., "target: project_analyzer.py", "interpreter"
	Status  Status   // OK, WARN or FAIL
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the stage succeeded.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Fatal returns true if the stage outcome must stop the launch.
// Warnings are advisory and never fatal.
func (r Result) Fatal() bool {
	return r.Status == StatusFail
}
