package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mdharness/internal/domain"
	"mdharness/internal/logging"
)

// pipeCloseDelay is how long the pipes stay open after the subject is killed.
// A descendant that escaped the process group could otherwise hold them forever.
const pipeCloseDelay = 500 * time.Millisecond

// ProcessInvoker runs the subject as a child process, one process per call
type ProcessInvoker struct {
	cmdline string
	timeout time.Duration
	logger  *zap.Logger
}

// NewProcessInvoker creates a ProcessInvoker for a program path or command
// line. A zero timeout waits for the subject indefinitely.
func NewProcessInvoker(cmdline string, timeout time.Duration, logger *zap.Logger) *ProcessInvoker {
	return &ProcessInvoker{
		cmdline: cmdline,
		timeout: timeout,
		logger:  logging.OrNop(logger),
	}
}

// Command returns the argv used for the given case flags
func (p *ProcessInvoker) Command(flags []string) []string {
	return ResolveCommand(p.cmdline, flags)
}

// Invoke feeds input to the subject's stdin and collects its output.
//
// Stdin is written from its own goroutine while stdout and stderr are drained
// concurrently. Inputs run to tens of megabytes; writing everything before
// reading would deadlock once both pipe buffers fill.
func (p *ProcessInvoker) Invoke(ctx context.Context, input []byte, flags []string) (domain.InvocationResult, error) {
	argv := p.Command(flags)

	runCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	isolate(cmd)
	cmd.WaitDelay = pipeCloseDelay
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return domain.InvocationResult{}, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return domain.InvocationResult{}, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return domain.InvocationResult{}, fmt.Errorf("stderr pipe: %w", err)
	}

	p.logger.Debug("Starting subject",
		zap.Strings("argv", argv),
		zap.Int("input_bytes", len(input)))

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return domain.InvocationResult{}, fmt.Errorf("start %s: %w", argv[0], err)
	}

	drained := make(chan struct{})
	go func() {
		select {
		case <-drained:
			return
		case <-runCtx.Done():
		}
		select {
		case <-drained:
		case <-time.After(pipeCloseDelay):
			p.logger.Debug("Closing pipes still held after kill", zap.Strings("argv", argv))
			stdin.Close()
			stdout.Close()
			stderr.Close()
		}
	}()

	var outBuf, errBuf bytes.Buffer
	var g errgroup.Group
	g.Go(func() error {
		defer stdin.Close()
		_, err := stdin.Write(input)
		// A subject may exit without reading all of its input
		return ignoreClosed(err)
	})
	g.Go(func() error {
		_, err := io.Copy(&outBuf, stdout)
		return ignoreClosed(err)
	})
	g.Go(func() error {
		_, err := io.Copy(&errBuf, stderr)
		return ignoreClosed(err)
	})
	ioErr := g.Wait()
	close(drained)
	waitErr := cmd.Wait()
	elapsed := time.Since(start)

	result := domain.InvocationResult{
		Stdout:  decode(outBuf.Bytes()),
		Stderr:  decode(errBuf.Bytes()),
		Elapsed: elapsed,
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("invocation cancelled: %w", ctx.Err())
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		result.ExitCode = -1
		note := fmt.Sprintf("killed after %s", p.timeout)
		if s := strings.TrimRight(result.Stderr, "\n"); s != "" {
			result.Stderr = s + "\n" + note
		} else {
			result.Stderr = note
		}
		p.logger.Warn("Subject killed on timeout", zap.Strings("argv", argv), zap.Duration("timeout", p.timeout))
		return result, nil
	}

	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
		result.ExitCode = 0
	case errors.As(waitErr, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return result, fmt.Errorf("wait for %s: %w", argv[0], waitErr)
	}
	if ioErr != nil {
		return result, fmt.Errorf("subject i/o: %w", ioErr)
	}

	p.logger.Debug("Subject finished",
		zap.Strings("argv", argv),
		zap.Int("exit_code", result.ExitCode),
		zap.Int("stdout_bytes", outBuf.Len()),
		zap.Duration("elapsed", elapsed))

	return result, nil
}

func ignoreClosed(err error) error {
	if errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed) {
		return nil
	}
	return err
}
