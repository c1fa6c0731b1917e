package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	out, err := New().Convert([]byte("*a*"), nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<em>a</em>")
}

func TestConvert_HeadingIDs(t *testing.T) {
	out, err := New().Convert([]byte("# a\n# a\n"), nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<h1 id="a">a</h1>`)
	assert.Contains(t, string(out), `<h1 id="a-1">a</h1>`)
}

func TestConvert_Tables(t *testing.T) {
	src := []byte("a|b\n-|-\nc|d\n")

	plain, err := New().Convert(src, nil)
	require.NoError(t, err)
	assert.NotContains(t, string(plain), "<table>")

	table, err := New().Convert(src, []string{"--ftables"})
	require.NoError(t, err)
	assert.Contains(t, string(table), "<table>")
}

func TestConvert_RawHTML(t *testing.T) {
	src := []byte("<div>x</div>\n")

	out, err := New().Convert(src, nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<div>x</div>")

	out, err = New().Convert(src, []string{"--fno-html"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<div>x</div>")
}

func TestConvert_UnknownFlag(t *testing.T) {
	_, err := New().Convert([]byte("x"), []string{"--fbogus"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFlag))
	assert.Contains(t, err.Error(), "--fbogus")
}

func TestFlags(t *testing.T) {
	assert.Contains(t, New().Flags(), "--ftables")
	assert.Contains(t, New().Flags(), "--fpermissive-www-autolinks")
}
