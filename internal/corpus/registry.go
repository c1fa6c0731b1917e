package corpus

import (
	"fmt"
	"strings"
)

// Default is the corpus run when none is named
const Default = "md4c"

type entry struct {
	name        string
	description string
	build       func() *Corpus
}

// Corpora are built on demand: their inputs add up to tens of megabytes.
var registry = []entry{
	{name: "md4c", description: "pathological inputs for md4c/md2html", build: MD4C},
	{name: "cmark", description: "legacy pathological inputs shared with cmark", build: CMark},
	{name: "heading-ids", description: "heading identifier collisions and counter saturation", build: HeadingIDs},
}

// Builtin builds the named built-in corpus
func Builtin(name string) (*Corpus, error) {
	for _, e := range registry {
		if e.name == name {
			return e.build(), nil
		}
	}
	return nil, fmt.Errorf("unknown corpus %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names lists built-in corpus names in registration order
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}

// Describe returns the one-line description of a built-in corpus
func Describe(name string) string {
	for _, e := range registry {
		if e.name == name {
			return e.description
		}
	}
	return ""
}
