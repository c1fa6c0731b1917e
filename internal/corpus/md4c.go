package corpus

import (
	"strconv"
	"strings"
)

// Feature flags understood by md2html
const (
	FlagTables                 = "--ftables"
	FlagPermissiveWWWAutolinks = "--fpermissive-www-autolinks"
)

// MD4C is the default pathological corpus. Sizes are chosen so a quadratic
// delimiter or bracket algorithm takes visibly long while a linear one
// finishes in well under a second.
func MD4C() *Corpus {
	return New("md4c",
		// Encoding edge cases
		NewCase("U+0000",
			"abc\x00de\x00",
			`abc[\u0000\uFFFD]?de[\u0000\uFFFD]?`),
		NewCase("U+FEFF (Unicode BOM)",
			"\ufefffoo",
			`<p>foo</p>`),

		// Delimiter runs
		NewCase("nested strong emph",
			strings.Repeat("*a **a ", 65000)+"b"+strings.Repeat(" a** a*", 65000),
			`(<em>a <strong>a ){65000}b( a</strong> a</em>){65000}`),
		NewCase("many emph closers with no openers",
			strings.Repeat("a_ ", 65000),
			`(a[_] ){64999}a_`),
		NewCase("many emph openers with no closers",
			strings.Repeat("_a ", 65000),
			`(_a ){64999}_a`),
		NewCase("many 3-emph openers with no closers",
			strings.Repeat("a***", 65000),
			`(a<em><strong>a</strong></em>){32500}`),
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

		// Nesting depth
		NewCase("nested brackets",
			strings.Repeat("[", 50000)+"a"+strings.Repeat("]", 50000),
			`\[{50000}a\]{50000}`),
		NewCase("nested block quotes",
			strings.Repeat("> ", 50000)+"a",
			`(<blockquote>\r?\n){50000}`),

		// Scanning volume
		NewCase("backticks",
			Series(1, 1000, func(i int) string { return "e" + strings.Repeat("`", i) }),
			"^<p>[e`]*</p>\\r?\\n$"),
		NewCase("many links",
			strings.Repeat("[t](/u) ", 50000),
			`(<a href="/u">t</a> ?){50000}`),
		NewCase("many references",
			Series(1, 20000*16, func(i int) string { return "[" + strconv.Itoa(i) + "]: u\n" })+strings.Repeat("[0] ", 20000),
			`(\[0\] ){19999}`),
		NewCase("deeply nested lists",
			Series(0, 1000, func(i int) string { return strings.Repeat("  ", i) + "* a\n" }),
			`<ul>\r?\n(<li>a<ul>\r?\n){999}<li>a</li>\r?\n</ul>\r?\n(</li>\r?\n</ul>\r?\n){999}`),
		NewCase("many html openers and closers",
			strings.Repeat("<>", 50000),
			`(&lt;&gt;){50000}`),
		NewCase("many html proc. inst. openers",
			"x"+strings.Repeat("<?", 50000),
			`x(&lt;\?){50000}`),
		NewCase("many html CDATA openers",
			"x"+strings.Repeat("<![CDATA[", 50000),
			`x(&lt;!\[CDATA\[){50000}`),
		NewCase("many backticks and escapes",
			strings.Repeat("\\``", 50000),
			"(``){50000}"),
		NewCase("many broken link titles",
			strings.Repeat("[ (](", 50000),
			`(\[ \(\]\(){50000}`),
		NewCase("broken thematic break",
			strings.Repeat("* ", 50000)+"a",
			`<ul>\r?\n(<li><ul>\r?\n){49999}<li>a</li>\r?\n</ul>\r?\n(</li>\r?\n</ul>\r?\n){49999}`),
		NewCase("nested invalid link references",
			strings.Repeat("[", 50000)+strings.Repeat("]", 50000)+"\n\n[a]: /b",
			`\[{50000}\]{50000}`),

		// Feature-gated
		NewCase("many broken permissive autolinks",
			strings.Repeat("www._", 50000)+"x",
			`<p>(www._){50000}x</p>`,
			FlagPermissiveWWWAutolinks),
		NewCase("huge table",
			strings.Repeat("th|", 10000)+"\n"+strings.Repeat("-|", 10000)+"\n"+strings.Repeat("td\n", 10000),
			``,
			FlagTables),

		// Reference volume
		NewCase("many broken links",
			strings.Repeat("]([\n", 50000),
			`<p>(\]\(\[\r?\n){49999}\]\(\[</p>`),
		NewCase("many link ref. def. instantiations",
			"[x]: "+strings.Repeat("x", 50000)+strings.Repeat("\n[x]", 50000),
			``),
	)
}
