package execution

import (
	"context"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"mdharness/internal/config"
	"mdharness/internal/domain"
)

// Invoker converts one Markdown document by running the subject under test.
//
// A subject that runs and exits non-zero is reported through
// InvocationResult.ExitCode. The error return is reserved for failures of the
// harness itself, such as a program that cannot be started.
type Invoker interface {
	Invoke(ctx context.Context, input []byte, flags []string) (domain.InvocationResult, error)
}

// ResolveCommand builds the argv for one invocation from the configured
// command line and a case's flags.
//
// An empty command line runs config.DefaultProgram with the flags appended,
// and so does a bare program path. A command line that carries its own
// arguments is explicit configuration: it is used verbatim and the case's
// flags are not appended.
func ResolveCommand(cmdline string, flags []string) []string {
	fields := strings.Fields(cmdline)
	switch len(fields) {
	case 0:
		return append([]string{config.DefaultProgram}, flags...)
	case 1:
		return append(fields, flags...)
	default:
		return fields
	}
}

// decode turns subject output into text. Invalid UTF-8 becomes U+FFFD; NUL
// bytes and byte order marks pass through untouched so matchers can see them.
func decode(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(out)
}
