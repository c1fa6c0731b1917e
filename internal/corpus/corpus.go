// Package corpus defines the pathological inputs the harness feeds to a
// Markdown converter. Each corpus is an ordered list of immutable cases; the
// declaration order is the execution order and the report order.
package corpus

import (
	"errors"
	"fmt"
	"strings"

	"mdharness/internal/domain"
	"mdharness/internal/matcher"
)

// Corpus is a named, ordered collection of cases
type Corpus struct {
	Name  string
	Cases []domain.Case
}

// New creates a corpus from cases in the given order
func New(name string, cases ...domain.Case) *Corpus {
	return &Corpus{Name: name, Cases: cases}
}

// Validate reports every empty name, missing matcher and duplicate name.
func (c *Corpus) Validate() error {
	var errs []error
	seen := make(map[string]int, len(c.Cases))
	for i, tc := range c.Cases {
		if strings.TrimSpace(tc.Name) == "" {
			errs = append(errs, fmt.Errorf("case #%d: empty name", i+1))
			continue
		}
		if tc.Matcher == nil {
			errs = append(errs, fmt.Errorf("case %q: no matcher", tc.Name))
		}
		if first, ok := seen[tc.Name]; ok {
			errs = append(errs, fmt.Errorf("case %q: duplicate name (cases #%d and #%d)", tc.Name, first+1, i+1))
			continue
		}
		seen[tc.Name] = i
	}
	if len(errs) > 0 {
		return fmt.Errorf("corpus %s: %w", c.Name, errors.Join(errs...))
	}
	return nil
}

// With returns a new corpus with extra cases appended after the existing ones
func (c *Corpus) With(extra ...domain.Case) *Corpus {
	cases := make([]domain.Case, 0, len(c.Cases)+len(extra))
	cases = append(cases, c.Cases...)
	cases = append(cases, extra...)
	return New(c.Name, cases...)
}

// Select returns a new corpus holding the cases keep accepts, order preserved
func (c *Corpus) Select(keep func(domain.Case) bool) *Corpus {
	var cases []domain.Case
	for _, tc := range c.Cases {
		if keep(tc) {
			cases = append(cases, tc)
		}
	}
	return New(c.Name, cases...)
}

// Names lists case names in execution order
func (c *Corpus) Names() []string {
	names := make([]string, len(c.Cases))
	for i, tc := range c.Cases {
		names[i] = tc.Name
	}
	return names
}

// Len returns the number of cases
func (c *Corpus) Len() int {
	return len(c.Cases)
}

// NewCase builds a case whose matcher is a search pattern.
// It panics on a malformed pattern; built-in corpora are fixed at compile time.
func NewCase(name, input, pattern string, flags ...string) domain.Case {
	return domain.Case{
		Name:    name,
		Input:   []byte(input),
		Matcher: matcher.MustCompile(pattern),
		Flags:   flags,
	}
}

// Series concatenates f(i) for i in [from, to)
func Series(from, to int, f func(i int) string) string {
	var b strings.Builder
	for i := from; i < to; i++ {
		b.WriteString(f(i))
	}
	return b.String()
}
