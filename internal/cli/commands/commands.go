package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mdharness/internal/cli"
	"mdharness/internal/config"
	"mdharness/internal/corpus"
	"mdharness/internal/discovery"
	"mdharness/internal/logging"
	"mdharness/internal/orchestration"
	"mdharness/internal/storage"
	"mdharness/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Pathological *PathologicalCommand
	Suites       *SuitesCommand
	List         *ListCommand
	Failures     *FailuresCommand

	level zap.AtomicLevel
}

// NewCommands creates all commands with dependencies. level is the logger's
// level, raised to debug when --verbose is given.
func NewCommands(cfg *config.Config, logger *zap.Logger, level zap.AtomicLevel) *Commands {
	logger = logging.OrNop(logger)

	// Initialize dependencies
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	orchestrator := orchestration.NewOrchestrator(cfg, os.Stdout, os.Stderr, logger)
	viewer := ui.NewFailureViewer()

	return &Commands{
		Pathological: NewPathologicalCommand(cfg, filter, jsonStorage, logger),
		Suites:       NewSuitesCommand(cfg, orchestrator),
		List:         NewListCommand(cfg, filter, logger),
		Failures:     NewFailuresCommand(cfg, jsonStorage, viewer),
		level:        level,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Update config with flags after parsing
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.ApplyFlags(flags.ToConfigFlags())
		logging.SetVerbose(c.level, flags.Verbose)
		return cfg.Validate()
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging on stderr")

	// Pathological command
	pathologicalCmd := &cobra.Command{
		Use:     "pathological",
		Short:   "Run the pathological input corpus against md2html",
		Long:    "Feed each pathological case to the converter, check its output against the expected pattern and report passed, failed and errored cases",
		Args:    cobra.NoArgs,
		RunE:    c.Pathological.Execute,
		PreRunE: applyFlags,
	}
	pathologicalCmd.Flags().StringVarP(&flags.Program, "program", "p", "", "Converter program path, or a full command line that replaces case flags (default md2html)")
	pathologicalCmd.Flags().StringVar(&flags.LibraryDir, "library-dir", "", "Directory holding md2html.so; cases run in-process through its Convert symbol")
	pathologicalCmd.Flags().StringVar(&flags.Engine, "engine", "", "Run cases against a built-in engine instead of a program (goldmark)")
	pathologicalCmd.Flags().StringVar(&flags.Corpus, "corpus", "", "Corpus to run: "+strings.Join(corpus.Names(), ", ")+" (default "+corpus.Default+")")
	pathologicalCmd.Flags().StringVar(&flags.CasesFile, "cases", "", "YAML file with extra cases appended to the corpus")
	pathologicalCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Run only cases whose name matches (supports wildcards, e.g. 'nested*')")
	pathologicalCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Kill a case after this long and report it as errored (0 waits forever)")
	pathologicalCmd.Flags().IntVar(&flags.MaxOutput, "max-output", 0, "Truncate reported output and stderr to this many bytes (0 prints everything)")
	pathologicalCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr")
	pathologicalCmd.Flags().BoolVar(&flags.Record, "record", false, "Save failed and errored cases for the failures viewer")
	rootCmd.AddCommand(pathologicalCmd)

	// Suites command
	suitesCmd := &cobra.Command{
		Use:     "suites",
		Short:   "Run every conformance suite and pathological corpus",
		Long:    "Run the suite runner once per suite file in the test directory, then the pathological runner once per corpus; the exit status is the number of failing runs",
		Args:    cobra.NoArgs,
		RunE:    c.Suites.Execute,
		PreRunE: applyFlags,
	}
	suitesCmd.Flags().StringVarP(&flags.Program, "program", "p", "", "Converter program passed to every runner (default md2html)")
	suitesCmd.Flags().StringVar(&flags.TestDir, "test-dir", "", "Directory holding the suite files and the suite runner (default test)")
	suitesCmd.Flags().StringVar(&flags.SuitePattern, "pattern", "", "Glob selecting suite files (default *.txt)")
	suitesCmd.Flags().StringVar(&flags.SuiteRunner, "runner", "", "Suite runner command line, run inside the test directory (default \"python3 run-testsuite.py\")")
	suitesCmd.Flags().StringSliceVar(&flags.Corpora, "corpus", nil, "Pathological corpora to run after the suites (default md4c)")
	rootCmd.AddCommand(suitesCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List pathological cases",
		Long:    "Print the cases of each corpus with their required flags and input size, without running them",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVar(&flags.Corpus, "corpus", "", "List only this corpus")
	listCmd.Flags().StringVar(&flags.CasesFile, "cases", "", "YAML file with extra cases appended to the corpus")
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "List only cases whose name matches")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View failed cases interactively",
		Long:    "Display failed and errored cases of the last recorded pathological run in an interactive viewer",
		Args:    cobra.NoArgs,
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(failuresCmd)
}
