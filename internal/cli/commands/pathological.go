package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mdharness/internal/cli"
	"mdharness/internal/config"
	"mdharness/internal/corpus"
	"mdharness/internal/discovery"
	"mdharness/internal/domain"
	"mdharness/internal/execution"
	"mdharness/internal/storage"
	"mdharness/internal/ui"
)

// PathologicalCommand handles the pathological command
type PathologicalCommand struct {
	config  *config.Config
	filter  *discovery.Filter
	storage storage.Storage
	logger  *zap.Logger
}

// NewPathologicalCommand creates a new PathologicalCommand
func NewPathologicalCommand(cfg *config.Config, filter *discovery.Filter, st storage.Storage, logger *zap.Logger) *PathologicalCommand {
	return &PathologicalCommand{
		config:  cfg,
		filter:  filter,
		storage: st,
		logger:  logger,
	}
}

// Execute runs the command
func (pc *PathologicalCommand) Execute(cmd *cobra.Command, args []string) error {
	c, err := loadCorpus(pc.config, pc.filter, pc.logger)
	if err != nil {
		return err
	}
	if c.Len() == 0 {
		color.Yellow("No cases to execute")
		return nil
	}

	invoker, err := newInvoker(pc.config, pc.logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	reporter := ui.NewReporter(out, pc.config.NameWidth, pc.config.Flags.MaxOutput)
	executor := execution.NewExecutor(execution.NewCaseRunner(invoker, pc.logger), reporter, pc.logger)
	if pc.config.Flags.Progress {
		executor.SetProgress(ui.NewProgressBar(c.Len()))
	}

	reporter.Header(c.Name, c.Len(), pc.config.GetSubject())
	startedAt := time.Now()
	tally, outcomes, duration, err := executor.Run(cmd.Context(), c)
	if err != nil {
		return err
	}

	if pc.config.Flags.Record {
		record := storage.NewRecord(c.Name, pc.config.GetSubject(), startedAt, duration, tally, outcomes)
		if err := pc.storage.Save(record); err != nil {
			return fmt.Errorf("failed to save run record: %w", err)
		}
		pc.logger.Debug("Recorded run", zap.Stringer("id", record.ID), zap.String("path", pc.config.GetOutputPath()))
	}

	return cli.ExitStatus(tally.ExitCode())
}

// loadCorpus builds the configured corpus, appends the extra cases file,
// applies the name filter and validates the result
func loadCorpus(cfg *config.Config, filter *discovery.Filter, logger *zap.Logger) (*corpus.Corpus, error) {
	if len(cfg.Corpora) != 1 {
		return nil, fmt.Errorf("expected exactly one corpus, got %d", len(cfg.Corpora))
	}
	c, err := corpus.Builtin(cfg.Corpora[0])
	if err != nil {
		return nil, err
	}

	if cfg.CasesFile != "" {
		extra, err := corpus.LoadFile(cfg.CasesFile)
		if err != nil {
			return nil, err
		}
		c = c.With(extra...)
		logger.Debug("Loaded extra cases", zap.String("file", cfg.CasesFile), zap.Int("cases", len(extra)))
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if pattern := cfg.Flags.Filter; pattern != "" {
		c = c.Select(func(tc domain.Case) bool { return filter.Match(tc.Name, pattern) })
	}
	return c, nil
}

// newInvoker picks the subject: the in-process engine, the shared library,
// or the external program
func newInvoker(cfg *config.Config, logger *zap.Logger) (execution.Invoker, error) {
	switch {
	case cfg.Engine == config.EngineGoldmark:
		return execution.NewEngineInvoker(logger), nil
	case cfg.LibraryDir != "":
		lib, err := execution.OpenLibrary(cfg.LibraryDir, logger)
		if err != nil {
			return nil, err
		}
		return lib, nil
	default:
		return execution.NewProcessInvoker(cfg.GetProgram(), cfg.Flags.Timeout, logger), nil
	}
}
