package corpus

import (
	"strconv"
	"strings"
)

// CMark is the older corpus shared with cmark's harness. It overlaps MD4C but
// uses larger backtick and reference volumes.
func CMark() *Corpus {
	return New("cmark",
		NewCase("nested strong emph",
			strings.Repeat("*a **a ", 65000)+"b"+strings.Repeat(" a** a*", 65000),
			`(<em>a <strong>a ){65000}b( a</strong> a</em>){65000}`),
		NewCase("many emph closers with no openers",
			strings.Repeat("a_ ", 65000),
			`(a[_] ){64999}a_`),
		NewCase("many emph openers with no closers",
			strings.Repeat("_a ", 65000),
			`(_a ){64999}_a`),
		NewCase("many link closers with no openers",
			strings.Repeat("a]", 65000),
			`(a\]){65000}`),
		NewCase("many link openers with no closers",
			strings.Repeat("[a", 65000),
			`(\[a){65000}`),
		NewCase("mismatched openers and closers",
			strings.Repeat("*a_ ", 50000),
			`([*]a[_] ){49999}[*]a_`),
		NewCase("openers and closers multiple of 3",
			"a**b"+strings.Repeat("c* ", 50000),
			`a[*][*]b(c[*] ){49999}c[*]`),
		NewCase("link openers and emph closers",
			strings.Repeat("[ a_", 50000),
			`(\[ a_){50000}`),
		NewCase("hard link/emph case",
			"**x [a*b**c*](d)",
			`\*\*x <a href="d">a<em>b\*\*c</em></a>`),
		NewCase("nested brackets",
			strings.Repeat("[", 50000)+"a"+strings.Repeat("]", 50000),
			`\[{50000}a\]{50000}`),
		NewCase("nested block quotes",
			strings.Repeat("> ", 50000)+"a",
			`(<blockquote>\r?\n){50000}`),
		NewCase("U+0000 in input",
			"abc\x00de\x00",
			`abc[\u0000\uFFFD]?de[\u0000\uFFFD]?`),
		NewCase("backticks",
			Series(1, 10000, func(i int) string { return "e" + strings.Repeat("`", i) }),
			"^<p>[e`]*</p>\\r?\\n$"),
		NewCase("many links",
			strings.Repeat("[t](/u) ", 50000),
			`(<a href="/u">t</a> ?){50000}`),
		NewCase("many references",
			Series(1, 50000*16, func(i int) string { return "[" + strconv.Itoa(i) + "]: u\n" })+strings.Repeat("[0] ", 50000),
			`(\[0\] ){49999}`),
		NewCase("deeply nested lists",
			Series(0, 1000, func(i int) string { return strings.Repeat("  ", i) + "* a\n" }),
			`<ul>\r?\n(<li>a<ul>\r?\n){999}<li>a</li>\r?\n</ul>\r?\n(</li>\r?\n</ul>\r?\n){999}`),
		NewCase("many autolink/html openers and closers",
			strings.Repeat("<>", 50000),
			`(&lt;&gt;){50000}`),
		NewCase("many codespan openers with no matching closers",
			strings.Repeat("\\``", 50000),
			"(``){50000}"),
	)
}
