package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mdharness/internal/config"
	"mdharness/internal/corpus"
	"mdharness/internal/discovery"
	"mdharness/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	filter *discovery.Filter
	logger *zap.Logger
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, filter *discovery.Filter, logger *zap.Logger) *ListCommand {
	return &ListCommand{
		config: cfg,
		filter: filter,
		logger: logger,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	names := corpus.Names()
	if len(lc.config.Flags.Corpora) > 0 {
		names = lc.config.Flags.Corpora
	}

	out := cmd.OutOrStdout()
	for i, name := range names {
		cfg := *lc.config
		cfg.Corpora = []string{name}
		c, err := loadCorpus(&cfg, lc.filter, lc.logger)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		ui.PrintCorpus(out, c, corpus.Describe(name))
	}
	return nil
}
