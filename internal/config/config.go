package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Engine names for the in-process subject
const (
	EngineNone     = ""
	EngineGoldmark = "goldmark"
)

// Config holds all configuration for the application
type Config struct {
	// Subject settings
	Program    string // Program path or full command line; empty means DefaultProgram
	LibraryDir string // Directory holding md2html.so for the library variant
	Engine     string // In-process engine name

	// Corpus settings
	Corpora   []string
	CasesFile string

	// Orchestration settings
	TestDir      string
	SuitePattern string
	SuiteRunner  string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string
	NameWidth      int

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Program      string
	LibraryDir   string
	Engine       string
	Corpora      []string
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

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		TestDir:        DefaultTestDir,
		SuitePattern:   DefaultSuitePattern,
		SuiteRunner:    DefaultSuiteRunner,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		NameWidth:      DefaultNameWidth,
	}
	cfg.Corpora = make([]string, len(DefaultCorpora))
	copy(cfg.Corpora, DefaultCorpora)
	return cfg
}

// LoadEnv loads variables from an env file without overriding ones already
// set, then applies the recognised variables to the config. A missing file is
// not an error.
func (c *Config) LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	c.ApplyEnv()
	return nil
}

// ApplyEnv overrides defaults from the process environment
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvProgram); v != "" {
		c.Program = v
	}
	if v := os.Getenv(EnvLibraryDir); v != "" {
		c.LibraryDir = v
	}
	if v := os.Getenv(EnvTestDir); v != "" {
		c.TestDir = v
	}
	if v := os.Getenv(EnvSuiteRunner); v != "" {
		c.SuiteRunner = v
	}
}

// ApplyFlags stores flags and lets the non-empty ones override settings
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Program != "" {
		c.Program = flags.Program
	}
	if flags.LibraryDir != "" {
		c.LibraryDir = flags.LibraryDir
	}
	if flags.Engine != "" {
		c.Engine = flags.Engine
	}
	if len(flags.Corpora) > 0 {
		c.Corpora = flags.Corpora
	}
	if flags.CasesFile != "" {
		c.CasesFile = flags.CasesFile
	}
	if flags.TestDir != "" {
		c.TestDir = flags.TestDir
	}
	if flags.SuitePattern != "" {
		c.SuitePattern = flags.SuitePattern
	}
	if flags.SuiteRunner != "" {
		c.SuiteRunner = flags.SuiteRunner
	}
}

// Validate rejects contradictory subject settings
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineNone, EngineGoldmark:
	default:
		return fmt.Errorf("unknown engine %q", c.Engine)
	}
	if c.Engine != EngineNone && c.LibraryDir != "" {
		return errors.New("--engine and --library-dir are mutually exclusive")
	}
	if c.Flags.Timeout < 0 {
		return fmt.Errorf("negative timeout %s", c.Flags.Timeout)
	}
	if c.Flags.MaxOutput < 0 {
		return fmt.Errorf("negative max output %d", c.Flags.MaxOutput)
	}
	return nil
}

// GetProgram returns the configured subject command line or the default program
func (c *Config) GetProgram() string {
	if c.Program != "" {
		return c.Program
	}
	return DefaultProgram
}

// GetSubject describes the subject under test for reports and records
func (c *Config) GetSubject() string {
	switch {
	case c.Engine != EngineNone:
		return "engine:" + c.Engine
	case c.LibraryDir != "":
		return "library:" + c.LibraryDir
	default:
		return c.GetProgram()
	}
}

// GetOutputPath returns the absolute path of the recorded run file, so the
// pathological and failures commands agree regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
