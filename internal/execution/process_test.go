package execution

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"mdharness/internal/config"
)

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		name    string
		cmdline string
		flags   []string
		want    []string
	}{
		{name: "default program gets case flags", cmdline: "", flags: []string{"--ftables"}, want: []string{config.DefaultProgram, "--ftables"}},
		{name: "default program without flags", cmdline: "", flags: nil, want: []string{config.DefaultProgram}},
		{name: "bare path gets case flags", cmdline: "build/md2html", flags: []string{"--ftables"}, want: []string{"build/md2html", "--ftables"}},
		{name: "explicit command line ignores case flags", cmdline: "build/md2html --fverbatim-entities", flags: []string{"--ftables"}, want: []string{"build/md2html", "--fverbatim-entities"}},
		{name: "whitespace is collapsed", cmdline: "  md2html   -x ", flags: nil, want: []string{"md2html", "-x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCommand(tt.cmdline, tt.flags))
		})
	}
}

func TestResolveCommand_DoesNotAliasFlags(t *testing.T) {
	flags := make([]string, 1, 4)
	flags[0] = "--ftables"
	argv := ResolveCommand("md2html", flags)
	argv[1] = "changed"
	assert.Equal(t, "--ftables", flags[0])
}

func TestProcessInvoker_LargeInputDoesNotDeadlock(t *testing.T) {
	defer goleak.VerifyNone(t)

	program := helperSubject(t, "echo")
	input := bytes.Repeat([]byte("*a **a "), 3<<20) // ~21 MB, far beyond any pipe buffer

	inv := NewProcessInvoker(program, 0, nil)
	result, err := inv.Invoke(context.Background(), input, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, len(input), len(result.Stdout))
	assert.True(t, result.Elapsed > 0)
}

func TestProcessInvoker_NonZeroExit(t *testing.T) {
	program := helperSubject(t, "fail")

	result, err := NewProcessInvoker(program, 0, nil).Invoke(context.Background(), []byte("x"), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "boom", result.Stderr)
	assert.Equal(t, "<p>partial</p>", result.Stdout)
}

func TestProcessInvoker_SubjectIgnoresStdin(t *testing.T) {
	program := helperSubject(t, "ignore-stdin")
	input := bytes.Repeat([]byte("x"), 8<<20)

	result, err := NewProcessInvoker(program, 0, nil).Invoke(context.Background(), input, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "<p>ok</p>", result.Stdout)
}

func TestProcessInvoker_PassesCaseFlagsToBareProgram(t *testing.T) {
	program := helperSubject(t, "args")

	result, err := NewProcessInvoker(program, 0, nil).Invoke(context.Background(), nil, []string{"--ftables", "--fpermissive-www-autolinks"})
	require.NoError(t, err)
	assert.Equal(t, "--ftables --fpermissive-www-autolinks", result.Stdout)
}

func TestProcessInvoker_ExplicitCommandLineOverridesCaseFlags(t *testing.T) {
	program := helperSubject(t, "args")

	result, err := NewProcessInvoker(program+" --fverbatim-entities", 0, nil).Invoke(context.Background(), nil, []string{"--ftables"})
	require.NoError(t, err)
	assert.Equal(t, "--fverbatim-entities", result.Stdout)
}

func TestProcessInvoker_DecodesInvalidUTF8(t *testing.T) {
	program := helperSubject(t, "invalid-utf8")

	result, err := NewProcessInvoker(program, 0, nil).Invoke(context.Background(), []byte("abc\x00de\x00"), nil)
	require.NoError(t, err)
	assert.Equal(t, "abc\uFFFDde\x00", result.Stdout)
}

func TestProcessInvoker_PreservesNULAndBOM(t *testing.T) {
	program := helperSubject(t, "echo")
	input := []byte("\ufefffoo\x00bar")

	result, err := NewProcessInvoker(program, 0, nil).Invoke(context.Background(), input, nil)
	require.NoError(t, err)
	assert.Equal(t, string(input), result.Stdout)
}

func TestProcessInvoker_Timeout(t *testing.T) {
	program := helperSubject(t, "hang")

	result, err := NewProcessInvoker(program, 200*time.Millisecond, nil).Invoke(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, -1, result.ExitCode)
	assert.Contains(t, result.Stderr, "killed after 200ms")
}

func TestProcessInvoker_TimeoutKillsGrandchildren(t *testing.T) {
	program := helperSubject(t, "wrapper")

	start := time.Now()
	result, err := NewProcessInvoker(program, 200*time.Millisecond, nil).Invoke(context.Background(), []byte("# a\n"), nil)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)
	assert.Equal(t, -1, result.ExitCode)
	assert.Contains(t, result.Stderr, "killed after 200ms")
}

func TestProcessInvoker_CancelKillsGrandchildren(t *testing.T) {
	program := helperSubject(t, "wrapper")
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := NewProcessInvoker(program, 0, nil).Invoke(ctx, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestProcessInvoker_Cancelled(t *testing.T) {
	program := helperSubject(t, "hang")
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := NewProcessInvoker(program, 0, nil).Invoke(ctx, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
}

func TestProcessInvoker_MissingProgram(t *testing.T) {
	_, err := NewProcessInvoker("/nonexistent/md2html", 0, nil).Invoke(context.Background(), []byte("x"), nil)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "start /nonexistent/md2html"))
}
