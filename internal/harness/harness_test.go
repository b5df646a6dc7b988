package harness

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/roach88/expect/internal/check"
)

// RunnerSuite tests example execution and result aggregation.
type RunnerSuite struct {
	suite.Suite
	registry *Registry
	recorder *check.Recorder
	runner   *Runner
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func (s *RunnerSuite) SetupTest() {
	s.registry = NewRegistry()
	s.recorder = check.NewRecorder(check.DefaultOptions())
	s.runner = NewRunner(s.registry, s.recorder, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *RunnerSuite) loc(line int) check.Location {
	return check.Location{File: "main.go", Line: line}
}

func (s *RunnerSuite) TestEmptyRegistry() {
	result := s.runner.Run(context.Background())

	s.True(result.Pass)
	s.Equal(0, result.Examples)
	s.Equal(0, result.Checks)
	s.Empty(result.Failures)
}

func (s *RunnerSuite) TestExecutesInRegistrationOrder() {
	var order []string
	s.registry.Register(func() { order = append(order, "first") })
	s.registry.Register(func() { order = append(order, "second") })
	s.registry.Register(func() { order = append(order, "third") })

	result := s.runner.Run(context.Background())

	s.Equal([]string{"first", "second", "third"}, order)
	s.Equal(3, result.Examples)
}

func (s *RunnerSuite) TestAggregatesChecks() {
	s.registry.Register(func() {
		s.recorder.Equal(3, 3, s.loc(1))
		s.recorder.Equal(3, 4, s.loc(2))
	})
	s.registry.Register(func() {
		s.recorder.Within(1.0, 1.05, 0.1, s.loc(3))
		s.recorder.Within(1.0, 1.2, 0.1, s.loc(4))
		s.recorder.Equal([]string{}, []string{}, s.loc(5))
	})

	result := s.runner.Run(context.Background())

	s.False(result.Pass)
	s.Equal(5, result.Checks)
	s.Equal(3, result.Passed)
	s.Require().Len(result.Failures, 2)
	s.Equal(2, result.Failures[0].Location.Line)
	s.Equal(4, result.Failures[1].Location.Line)
}

func (s *RunnerSuite) TestFailingCheckDoesNotStopExample() {
	reached := false
	s.registry.Register(func() {
		s.recorder.Equal(1, "1", s.loc(1))
		reached = true
	})

	result := s.runner.Run(context.Background())

	s.True(reached)
	s.Equal(1, result.Checks)
	s.Len(result.Failures, 1)
}

func (s *RunnerSuite) TestPanicAbortsRun() {
	s.registry.Register(func() { panic("boom") })
	s.registry.Register(func() { s.Fail("second example must not run") })

	s.Panics(func() { s.runner.Run(context.Background()) })
}

func (s *RunnerSuite) TestCountsAccumulateUntilReset() {
	s.registry.Register(func() { s.recorder.Equal(1, 1, s.loc(1)) })

	s.Equal(1, s.runner.Run(context.Background()).Checks)
	s.Equal(2, s.runner.Run(context.Background()).Checks)

	s.recorder.Reset()
	s.Equal(1, s.runner.Run(context.Background()).Checks)
}

func (s *RunnerSuite) TestRunIDIsUUIDv7() {
	result := s.runner.Run(context.Background())

	id, err := uuid.Parse(result.RunID)
	s.Require().NoError(err)
	s.Equal(uuid.Version(7), id.Version())
}

func (s *RunnerSuite) TestLogsCarryRunID() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	runner := NewRunner(s.registry, s.recorder, logger)
	s.registry.Register(func() {})

	result := runner.Run(context.Background())

	s.Contains(buf.String(), "run_id="+result.RunID)
	s.Contains(buf.String(), "running example")
	s.Contains(buf.String(), "run finished")
}

func (s *RunnerSuite) TestNilLoggerDiscards() {
	runner := NewRunner(s.registry, s.recorder, nil)

	s.NotPanics(func() { runner.Run(context.Background()) })
}
