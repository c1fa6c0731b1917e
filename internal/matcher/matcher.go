// Package matcher provides the output predicates used by pathological cases.
//
// Every matcher searches the subject's output for expected structure. None of
// them require byte-for-byte equality: generated outputs differ harmlessly in
// whitespace and line endings between converters and platforms.
package matcher

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"mdharness/internal/domain"
)

// Pattern matches when its expression is found anywhere in the output.
//
// Expressions use .NET/Perl syntax (regexp2) so that repetition counts such as
// {65000} compile; RE2 caps counted repetition at 1000.
type Pattern struct {
	expr string
	re   *regexp2.Regexp
}

// Compile builds a Pattern from expr
func Compile(expr string) (*Pattern, error) {
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	return &Pattern{expr: expr, re: re}, nil
}

// MustCompile is like Compile but panics on a bad expression.
// Built-in corpora use it at init time.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether the expression occurs in output
func (p *Pattern) Match(output string) bool {
	ok, err := p.re.MatchString(output)
	return err == nil && ok
}

func (p *Pattern) String() string {
	return p.expr
}

// all is the conjunction of several matchers
type all []domain.Matcher

// All matches only when every given matcher matches
func All(matchers ...domain.Matcher) domain.Matcher {
	return all(matchers)
}

func (a all) Match(output string) bool {
	for _, m := range a {
		if !m.Match(output) {
			return false
		}
	}
	return true
}

func (a all) String() string {
	parts := make([]string, len(a))
	for i, m := range a {
		parts[i] = m.String()
	}
	return strings.Join(parts, " && ")
}

// Anything matches every output. Cases that only probe for crashes and
// running time use it.
func Anything() domain.Matcher {
	return MustCompile("")
}
