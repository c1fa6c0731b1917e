package cli

import (
	"time"

	"mdharness/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Program      string
	LibraryDir   string
	Engine       string
	Corpus       string   // pathological and list take one corpus
	Corpora      []string // suites takes several
	CasesFile    string
	Filter       string
	Timeout      time.Duration
	MaxOutput    int
	Progress     bool
	Record       bool
	Verbose      bool
	TestDir      string
	SuitePattern string
	SuiteRunner  string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	corpora := f.Corpora
	if f.Corpus != "" {
		corpora = []string{f.Corpus}
	}
	return config.Flags{
		Program:      f.Program,
		LibraryDir:   f.LibraryDir,
		Engine:       f.Engine,
		Corpora:      corpora,
		CasesFile:    f.CasesFile,
		Filter:       f.Filter,
		Timeout:      f.Timeout,
		MaxOutput:    f.MaxOutput,
		Progress:     f.Progress,
		Record:       f.Record,
		Verbose:      f.Verbose,
		TestDir:      f.TestDir,
		SuitePattern: f.SuitePattern,
		SuiteRunner:  f.SuiteRunner,
	}
}
