package execution

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"mdharness/internal/corpus"
	"mdharness/internal/domain"
	"mdharness/internal/logging"
)

// Reporter receives each outcome as soon as its case finishes
type Reporter interface {
	Report(outcome domain.Outcome)
	Summary(tally domain.Tally)
}

// Progress tracks how many cases have completed
type Progress interface {
	Update(completed, passed, failed int)
	Finish()
}

// Executor runs a corpus one case at a time, in declaration order
type Executor struct {
	runner   *CaseRunner
	reporter Reporter
	progress Progress
	logger   *zap.Logger
}

// NewExecutor creates a new Executor
func NewExecutor(runner *CaseRunner, reporter Reporter, logger *zap.Logger) *Executor {
	return &Executor{
		runner:   runner,
		reporter: reporter,
		logger:   logging.OrNop(logger),
	}
}

// SetProgress sets the progress display for the executor
func (e *Executor) SetProgress(progress Progress) {
	e.progress = progress
}

// Run executes every case of c and returns the tally and the outcomes in
// execution order. A failing case never stops the run; only cancellation of
// ctx does, in which case the partial results are returned with an error.
func (e *Executor) Run(ctx context.Context, c *corpus.Corpus) (domain.Tally, []domain.Outcome, time.Duration, error) {
	var tally domain.Tally
	outcomes := make([]domain.Outcome, 0, c.Len())
	start := time.Now()

	e.logger.Debug("Running corpus", zap.String("corpus", c.Name), zap.Int("cases", c.Len()))

	for i, tc := range c.Cases {
		if err := ctx.Err(); err != nil {
			return tally, outcomes, time.Since(start), fmt.Errorf("run interrupted after %d of %d cases: %w", i, c.Len(), err)
		}

		outcome := e.runner.Run(ctx, tc)
		if ctx.Err() != nil {
			// The in-flight case was killed by the interrupt, not by its input
			return tally, outcomes, time.Since(start), fmt.Errorf("run interrupted after %d of %d cases: %w", i, c.Len(), ctx.Err())
		}

		tally.Add(outcome)
		outcomes = append(outcomes, outcome)
		if e.reporter != nil {
			e.reporter.Report(outcome)
		}
		if e.progress != nil {
			e.progress.Update(tally.Total(), tally.Passed, tally.Failed+tally.Errored)
		}
	}

	if e.progress != nil {
		e.progress.Finish()
	}
	if e.reporter != nil {
		e.reporter.Summary(tally)
	}
	return tally, outcomes, time.Since(start), nil
}
