package corpus

import (
	"strings"

	"mdharness/internal/domain"
	"mdharness/internal/matcher"
)

// MaxHeadingSuffix is where a converter's heading-id collision counter saturates
const MaxHeadingSuffix = 65535

const longTitle = "A long title to trigger a reallocation"

// HeadingIDs is the companion corpus for converters that generate heading
// identifiers. Identical headings must be disambiguated by an increasing
// numeric suffix which stops growing at MaxHeadingSuffix.
func HeadingIDs() *Corpus {
	return New("heading-ids",
		headingCase("many identical heading", "a", "a", 50000,
			`^<h1 id="a">a</h1>\n(<h1 id="a-\d+">a</h1>\n){50000}$`),
		headingCase("too many identical heading", "a", "a", 70001,
			`^<h1 id="a">a</h1>\n(<h1 id="a-\d+">a</h1>\n){70000}(<h1 id="a-65535">a</h1>\n)$`),
		headingCase("heading reallocation", longTitle, "a-long-title-to-trigger-a-reallocation", 300,
			`^<h1 id="a-long-title-to-trigger-a-reallocation">A long title to trigger a reallocation</h1>\n`+
				`(<h1 id="a-long-title-to-trigger-a-reallocation-\d+">A long title to trigger a reallocation</h1>\n){300}$`),
	)
}

// headingCase repeats "# title" collisions+1 times
func headingCase(name, title, id string, collisions int, pattern string) domain.Case {
	return domain.Case{
		Name:  name,
		Input: []byte(strings.Repeat("# "+title+"\n", collisions+1)),
		Matcher: matcher.All(
			matcher.MustCompile(pattern),
			matcher.HeadingIDs{Base: id, Count: collisions, Max: MaxHeadingSuffix},
		),
	}
}
