package commands

import (
	"github.com/spf13/cobra"

	"mdharness/internal/cli"
	"mdharness/internal/config"
	"mdharness/internal/orchestration"
)

// SuitesCommand handles the suites command
type SuitesCommand struct {
	config       *config.Config
	orchestrator *orchestration.Orchestrator
}

// NewSuitesCommand creates a new SuitesCommand
func NewSuitesCommand(cfg *config.Config, orchestrator *orchestration.Orchestrator) *SuitesCommand {
	return &SuitesCommand{
		config:       cfg,
		orchestrator: orchestrator,
	}
}

// Execute runs the command
func (sc *SuitesCommand) Execute(cmd *cobra.Command, args []string) error {
	tally, err := sc.orchestrator.Run(cmd.Context())
	if err != nil {
		return err
	}
	return cli.ExitStatus(tally.ExitCode())
}
