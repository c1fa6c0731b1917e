package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mdharness/internal/cli"
	"mdharness/internal/cli/commands"
	"mdharness/internal/config"
	"mdharness/internal/logging"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "mdharness",
		Short:         "Pathological input and conformance harness for md2html",
		Long:          `A test harness for Markdown-to-HTML converters. Runs a corpus of pathological inputs against md2html, checks each output against an expected pattern, and drives the conformance suites into one CI exit status.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create initial config with defaults, then environment and .env overrides
	cfg := config.New()
	if err := cfg.LoadEnv(config.DefaultEnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.UsageExitCode
	}

	level := logging.NewLevel()
	logger, err := logging.NewAtLevel(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.UsageExitCode
	}
	defer func() { _ = logger.Sync() }()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, logger, level)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// SIGINT kills the in-flight subject and stops the run
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.UsageExitCode
	}
	return 0
}
