// Package orchestration runs the conformance suites and the pathological
// corpora as child processes and folds their exit statuses into one.
package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"mdharness/internal/config"
	"mdharness/internal/discovery"
	"mdharness/internal/logging"
)

// MaxExitCode is the largest status a POSIX process can report
const MaxExitCode = 255

// CommandFunc builds the child process for argv, run in dir
type CommandFunc func(ctx context.Context, dir string, argv []string) *exec.Cmd

// Tally counts the children the orchestrator ran
type Tally struct {
	Children int
	Failed   int
}

// ExitCode is the number of failing children, capped so it never wraps to 0
func (t Tally) ExitCode() int {
	return min(t.Failed, MaxExitCode)
}

// Orchestrator runs one suite runner per conformance suite file, then one
// pathological runner per configured corpus, sequentially
type Orchestrator struct {
	cfg    *config.Config
	out    io.Writer
	errOut io.Writer
	logger *zap.Logger

	self    func() (string, error)
	command CommandFunc
}

// NewOrchestrator creates an Orchestrator whose children inherit out and errOut
func NewOrchestrator(cfg *config.Config, out, errOut io.Writer, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:     cfg,
		out:     out,
		errOut:  errOut,
		logger:  logging.OrNop(logger),
		self:    os.Executable,
		command: defaultCommand,
	}
}

// SetCommand replaces how child processes are built
func (o *Orchestrator) SetCommand(command CommandFunc) {
	o.command = command
}

// SetSelf replaces how the pathological runner binary is located
func (o *Orchestrator) SetSelf(self func() (string, error)) {
	o.self = self
}

func defaultCommand(ctx context.Context, dir string, argv []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	return cmd
}

// Run executes every child and returns how many of them failed. The error is
// reserved for problems that prevent orchestration: a missing test directory,
// an unresolvable runner, or cancellation.
func (o *Orchestrator) Run(ctx context.Context) (Tally, error) {
	var tally Tally

	suites, err := discovery.NewScanner(o.cfg.SuitePattern).Scan(o.cfg.TestDir)
	if err != nil {
		return tally, err
	}
	runner := strings.Fields(o.cfg.SuiteRunner)
	if len(runner) == 0 {
		return tally, errors.New("empty suite runner command line")
	}
	program := o.programArg()

	o.logger.Debug("Discovered suites",
		zap.String("dir", o.cfg.TestDir),
		zap.Strings("suites", suites),
		zap.Strings("corpora", o.cfg.Corpora))

	for _, suite := range suites {
		if err := ctx.Err(); err != nil {
			return tally, err
		}
		fmt.Fprintln(o.out, color.CyanString("Testing %s", suite))

		argv := append(append([]string{}, runner...), "-s", suite, "-p", program)
		o.runChild(ctx, o.cfg.TestDir, argv, &tally)
		fmt.Fprintln(o.out)
	}

	self, err := o.self()
	if err != nil {
		return tally, fmt.Errorf("locate pathological runner: %w", err)
	}
	for _, name := range o.cfg.Corpora {
		if err := ctx.Err(); err != nil {
			return tally, err
		}
		fmt.Fprintln(o.out, color.CyanString("Testing pathological inputs (%s):", name))

		argv := []string{self, "pathological", "-p", o.cfg.GetProgram(), "--corpus", name}
		if o.cfg.Flags.Verbose {
			argv = append(argv, "--verbose")
		}
		o.runChild(ctx, "", argv, &tally)
		fmt.Fprintln(o.out)
	}

	o.logger.Debug("Orchestration finished", zap.Int("children", tally.Children), zap.Int("failed", tally.Failed))
	return tally, nil
}

// runChild runs one child to completion; a child that cannot start counts as failed
func (o *Orchestrator) runChild(ctx context.Context, dir string, argv []string, tally *Tally) {
	cmd := o.command(ctx, dir, argv)
	cmd.Stdout = o.out
	cmd.Stderr = o.errOut

	tally.Children++
	o.logger.Debug("Starting child", zap.Strings("argv", argv), zap.String("dir", dir))

	err := cmd.Run()
	if err == nil {
		return
	}
	tally.Failed++

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		o.logger.Debug("Child failed", zap.Strings("argv", argv), zap.Int("exit_code", exitErr.ExitCode()))
		return
	}
	o.logger.Warn("Child could not run", zap.Strings("argv", argv), zap.Error(err))
	fmt.Fprintln(o.errOut, color.RedString("%s: %v", argv[0], err))
}

// programArg returns the program passed to suite runners. Suite runners run
// inside the test directory, so a relative program path is made absolute.
func (o *Orchestrator) programArg() string {
	program := o.cfg.GetProgram()
	if len(strings.Fields(program)) != 1 || !strings.ContainsRune(program, filepath.Separator) || filepath.IsAbs(program) {
		return program
	}
	if abs, err := filepath.Abs(program); err == nil {
		return abs
	}
	return program
}
