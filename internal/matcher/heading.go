package matcher

import (
	"fmt"
	"strconv"

	"github.com/dlclark/regexp2"
)

var headingIDRe = regexp2.MustCompile(`<h[1-6] id="([^"]*)">`, regexp2.None)

// HeadingIDs checks the identifiers a converter assigns to colliding headings.
//
// The output must contain exactly Count+1 headings with an id. The first keeps
// Base unchanged; the i-th collision carries Base-i until the suffix reaches
// Max, after which every further collision reuses Base-Max.
type HeadingIDs struct {
	Base  string
	Count int
	Max   int
}

// Match reports whether output carries the expected identifier sequence
func (h HeadingIDs) Match(output string) bool {
	ids, err := headingIDs(output)
	if err != nil || len(ids) != h.Count+1 {
		return false
	}
	for i, id := range ids {
		if id != h.expected(i) {
			return false
		}
	}
	return true
}

func (h HeadingIDs) expected(i int) string {
	if i == 0 {
		return h.Base
	}
	if h.Max > 0 && i > h.Max {
		i = h.Max
	}
	return h.Base + "-" + strconv.Itoa(i)
}

func (h HeadingIDs) String() string {
	return fmt.Sprintf("heading ids %s, %s-1 .. %s-%d (saturating at %d)", h.Base, h.Base, h.Base, h.Count, h.Max)
}

func headingIDs(output string) ([]string, error) {
	var ids []string
	m, err := headingIDRe.FindStringMatch(output)
	for m != nil && err == nil {
		ids = append(ids, m.GroupByNumber(1).String())
		m, err = headingIDRe.FindNextMatch(m)
	}
	return ids, err
}
