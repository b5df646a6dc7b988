package harness

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/expect/internal/check"
)

// Runner executes the examples of a registry against a recorder.
type Runner struct {
	registry *Registry
	recorder *check.Recorder
	logger   *slog.Logger
}

// NewRunner creates a runner. A nil logger discards log output.
func NewRunner(registry *Registry, recorder *check.Recorder, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		registry: registry,
		recorder: recorder,
		logger:   logger,
	}
}

// Run executes every registered example in registration order and returns
// the recorder's totals.
//
// Counts accumulate across runs on the same recorder; call
// check.Recorder.Reset between runs to start from zero.
func (r *Runner) Run(ctx context.Context) *Result {
	runID := uuid.Must(uuid.NewV7()).String()
	logger := r.logger.With("run_id", runID)
	examples := r.registry.Examples()

	logger.InfoContext(ctx, "run started", "examples", len(examples))
	start := time.Now()

	for _, ex := range examples {
		before := r.recorder.Checks()
		logger.DebugContext(ctx, "running example", "id", ex.ID, "name", ex.Name)

		ex.Fn()

		logger.DebugContext(ctx, "example finished",
			"id", ex.ID,
			"checks", r.recorder.Checks()-before,
		)
	}

	checks, failures := r.recorder.Snapshot()
	result := NewResult(runID, len(examples), checks, failures)

	logger.InfoContext(ctx, "run finished",
		"checks", result.Checks,
		"passed", result.Passed,
		"failed", len(result.Failures),
		"duration", time.Since(start),
	)
	return result
}
