package matcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern_SearchesRatherThanMatchesWhole(t *testing.T) {
	p := MustCompile(`<p>foo</p>`)

	assert.True(t, p.Match("<p>foo</p>\n"))
	assert.True(t, p.Match("prefix <p>foo</p> suffix"))
	assert.False(t, p.Match("<p>bar</p>"))
}

func TestPattern_LargeRepetitionCounts(t *testing.T) {
	p := MustCompile(`(\[a){65000}`)

	assert.True(t, p.Match("<p>"+strings.Repeat("[a", 65000)+"</p>"))
	assert.False(t, p.Match("<p>"+strings.Repeat("[a", 100)+"</p>"))
	assert.False(t, p.Match("<p>"+strings.Repeat("[b", 65000)+"</p>"))
}

func TestPattern_ReplacementCharacterTolerance(t *testing.T) {
	p := MustCompile(`abc[\u0000\uFFFD]?de[\u0000\uFFFD]?`)

	tests := []struct {
		name   string
		output string
	}{
		{name: "replaced", output: "<p>abc\uFFFDde\uFFFD</p>"},
		{name: "preserved", output: "<p>abc\x00de\x00</p>"},
		{name: "dropped", output: "<p>abcde</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, p.Match(tt.output))
		})
	}
	assert.False(t, p.Match("<p>abcXde</p>"))
}

func TestCompile_InvalidExpression(t *testing.T) {
	_, err := Compile(`(unclosed`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(unclosed")
}

func TestAll(t *testing.T) {
	m := All(MustCompile(`a`), MustCompile(`b`))

	assert.True(t, m.Match("ab"))
	assert.False(t, m.Match("a"))
	assert.Equal(t, "a && b", m.String())
}

func TestAnything(t *testing.T) {
	assert.True(t, Anything().Match(""))
	assert.True(t, Anything().Match("<table>"))
}

func headings(ids ...string) string {
	var b strings.Builder
	for _, id := range ids {
		b.WriteString(`<h1 id="` + id + `">a</h1>` + "\n")
	}
	return b.String()
}

func TestHeadingIDs(t *testing.T) {
	h := HeadingIDs{Base: "a", Count: 4, Max: 2}

	tests := []struct {
		name   string
		output string
		want   bool
	}{
		{name: "saturates at max", output: headings("a", "a-1", "a-2", "a-2", "a-2"), want: true},
		{name: "grows past max", output: headings("a", "a-1", "a-2", "a-3", "a-4"), want: false},
		{name: "duplicate before max", output: headings("a", "a-1", "a-1", "a-2", "a-2"), want: false},
		{name: "too few headings", output: headings("a", "a-1", "a-2"), want: false},
		{name: "first heading suffixed", output: headings("a-1", "a-1", "a-2", "a-2", "a-2"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Match(tt.output))
		})
	}
}

func TestHeadingIDs_NoSaturationLimit(t *testing.T) {
	h := HeadingIDs{Base: "x", Count: 3}
	assert.True(t, h.Match(strings.ReplaceAll(headings("x", "x-1", "x-2", "x-3"), ">a<", ">x<")))
}
