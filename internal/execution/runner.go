package execution

import (
	"context"
	"time"

	"go.uber.org/zap"

	"mdharness/internal/domain"
	"mdharness/internal/logging"
)

// CaseRunner runs a single case against the subject and classifies it
type CaseRunner struct {
	invoker Invoker
	logger  *zap.Logger
}

// NewCaseRunner creates a new CaseRunner
func NewCaseRunner(invoker Invoker, logger *zap.Logger) *CaseRunner {
	return &CaseRunner{invoker: invoker, logger: logging.OrNop(logger)}
}

// Run invokes the subject once with the case's input and flags. There are
// no retries.
func (r *CaseRunner) Run(ctx context.Context, tc domain.Case) domain.Outcome {
	start := time.Now()
	result, err := r.invoker.Invoke(ctx, tc.Input, tc.Flags)
	if err != nil {
		r.logger.Error("Invocation failed", zap.String("case", tc.Name), zap.Error(err))
		return domain.Outcome{
			Case:     tc.Name,
			Status:   domain.StatusErrored,
			Elapsed:  time.Since(start),
			ExitCode: -1,
			Stderr:   err.Error(),
			Pattern:  tc.Matcher.String(),
			Flags:    tc.Flags,
		}
	}
	return Classify(tc, result)
}

// Classify derives the outcome of a case from one invocation result.
// A non-zero exit status wins over any output content.
func Classify(tc domain.Case, result domain.InvocationResult) domain.Outcome {
	outcome := domain.Outcome{
		Case:     tc.Name,
		Elapsed:  result.Elapsed,
		ExitCode: result.ExitCode,
		Pattern:  tc.Matcher.String(),
		Flags:    tc.Flags,
	}
	switch {
	case result.ExitCode != 0:
		outcome.Status = domain.StatusErrored
		outcome.Stderr = result.Stderr
	case tc.Matcher.Match(result.Stdout):
		outcome.Status = domain.StatusPassed
	default:
		outcome.Status = domain.StatusFailed
		outcome.Output = result.Stdout
	}
	return outcome
}
