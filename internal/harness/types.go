package harness

import "github.com/roach88/expect/internal/check"

// Result is the outcome of a run.
type Result struct {
	// RunID identifies the run in log output.
	RunID string

	// Pass is true when no check failed.
	Pass bool

	// Examples is the number of examples executed.
	Examples int

	// Checks is the number of assertions evaluated.
	Checks int

	// Passed is Checks minus the number of failures.
	Passed int

	// Failures lists every failed assertion in recording order.
	Failures []check.Failure
}

// NewResult builds a result from a recorder snapshot.
func NewResult(runID string, examples, checks int, failures []check.Failure) *Result {
	return &Result{
		RunID:    runID,
		Pass:     len(failures) == 0,
		Examples: examples,
		Checks:   checks,
		Passed:   checks - len(failures),
		Failures: failures,
	}
}
