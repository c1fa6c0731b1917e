// Command md2html-plugin builds the reference engine as a shared library for
// the pathological runner's --library-dir mode:
//
//	go build -buildmode=plugin -o build/md2html.so ./cmd/md2html-plugin
//	mdharness pathological --library-dir build
package main

import "mdharness/internal/engine"

var md = engine.New()

// Convert renders input with the given md2html-style flags
func Convert(input []byte, flags []string) ([]byte, error) {
	return md.Convert(input, flags)
}

func main() {}
