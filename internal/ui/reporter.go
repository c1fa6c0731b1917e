package ui

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/fatih/color"

	"mdharness/internal/domain"
)

// Reporter prints one line per case outcome, followed by the diagnostic
// payload for failed and errored cases, and a closing summary line.
type Reporter struct {
	out       io.Writer
	width     int
	maxOutput int
}

// NewReporter creates a Reporter writing to out. Case names are padded to
// width; maxOutput caps diagnostic payloads in bytes (0 prints them whole).
func NewReporter(out io.Writer, width, maxOutput int) *Reporter {
	return &Reporter{out: out, width: width, maxOutput: maxOutput}
}

// Header announces the corpus about to run
func (r *Reporter) Header(corpusName string, cases int, subject string) {
	fmt.Fprintln(r.out, color.CyanString("Testing pathological cases (%s, %d cases) against %s:", corpusName, cases, subject))
}

// Report prints a single case outcome
func (r *Reporter) Report(o domain.Outcome) {
	switch o.Status {
	case domain.StatusPassed:
		fmt.Fprintf(r.out, "%-*s %s %.3f secs\n", r.width, o.Case, color.GreenString("[PASSED]"), o.Elapsed.Seconds())
	case domain.StatusFailed:
		fmt.Fprintf(r.out, "%-*s %s\n", r.width, o.Case, color.RedString("[FAILED]"))
		fmt.Fprintln(r.out, strconv.Quote(Truncate(o.Output, r.maxOutput)))
	case domain.StatusErrored:
		fmt.Fprintf(r.out, "%-*s %s\n", r.width, o.Case, color.RedString("[ERRORED (exit code %d)]", o.ExitCode))
		fmt.Fprintln(r.out, Truncate(o.Stderr, r.maxOutput))
	}
}

// Summary prints the final counts
func (r *Reporter) Summary(t domain.Tally) {
	line := fmt.Sprintf("%d passed, %d failed, %d errored", t.Passed, t.Failed, t.Errored)
	if t.OK() {
		fmt.Fprintln(r.out, color.GreenString(line))
		return
	}
	fmt.Fprintln(r.out, color.RedString(line))
}

// Truncate shortens s to at most max bytes without splitting a UTF-8
// sequence and notes how much was cut. max <= 0 leaves s untouched.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + fmt.Sprintf("... (%d more bytes)", len(s)-cut)
}
