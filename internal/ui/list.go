package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"mdharness/internal/corpus"
)

// PrintCorpus prints the cases of a corpus as a tree, with required flags
// and input size
func PrintCorpus(out io.Writer, c *corpus.Corpus, description string) {
	header := fmt.Sprintf("%s: %d case(s)", c.Name, c.Len())
	if description != "" {
		header += " - " + description
	}
	fmt.Fprintln(out, color.GreenString(header))

	for i, tc := range c.Cases {
		branch := "├── "
		if i == c.Len()-1 {
			branch = "└── "
		}
		line := branch + tc.Name
		if tc.HasFlags() {
			line += " " + color.YellowString("[%s]", strings.Join(tc.Flags, " "))
		}
		fmt.Fprintf(out, "%s %s\n", line, color.HiBlackString("(%s)", FormatSize(len(tc.Input))))
	}
}

// FormatSize renders a byte count for humans
func FormatSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
