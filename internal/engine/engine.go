// Package engine is an in-process Markdown-to-HTML converter built on
// goldmark. It understands a subset of md2html's feature flags and serves as a
// reference subject for the harness itself.
package engine

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrUnknownFlag is returned for a flag the engine does not understand
var ErrUnknownFlag = errors.New("unknown option")

type options struct {
	extensions []goldmark.Extender
	noHTML     bool
}

type flagFunc func(o *options)

func withExtension(ext goldmark.Extender) flagFunc {
	return func(o *options) { o.extensions = append(o.extensions, ext) }
}

func withoutHTML(o *options) { o.noHTML = true }

// md2html flag names mapped onto goldmark features. Permissive autolink
// variants all collapse onto Linkify.
var flagRegistry = map[string]flagFunc{
	"--ftables":                     withExtension(extension.Table),
	"--fstrikethrough":              withExtension(extension.Strikethrough),
	"--ftasklists":                  withExtension(extension.TaskList),
	"--fpermissive-autolinks":       withExtension(extension.Linkify),
	"--fpermissive-url-autolinks":   withExtension(extension.Linkify),
	"--fpermissive-www-autolinks":   withExtension(extension.Linkify),
	"--fpermissive-email-autolinks": withExtension(extension.Linkify),
	"--fno-html":                    withoutHTML,
	"--fno-html-blocks":             withoutHTML,
	"--fno-html-spans":              withoutHTML,
}

// Engine converts Markdown to HTML. It is stateless and safe for concurrent use.
type Engine struct{}

// New creates an Engine
func New() *Engine {
	return &Engine{}
}

// Flags lists the flags the engine accepts, sorted
func (e *Engine) Flags() []string {
	names := make([]string, 0, len(flagRegistry))
	for name := range flagRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Convert renders input as HTML with the given md2html-style flags enabled
func (e *Engine) Convert(input []byte, flags []string) ([]byte, error) {
	md, err := newGoldmark(flags)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := md.Convert(input, &buf); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}
	return buf.Bytes(), nil
}

func newGoldmark(flags []string) (goldmark.Markdown, error) {
	var opts options
	for _, flag := range flags {
		apply, ok := flagRegistry[flag]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFlag, flag)
		}
		apply(&opts)
	}

	rendererOptions := []renderer.Option{}
	if !opts.noHTML {
		// md2html passes raw HTML through unless told otherwise
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	}
	if len(opts.extensions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(opts.extensions...))
	}
	return goldmark.New(engineOptions...), nil
}
