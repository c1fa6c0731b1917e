package config

const (
	// DefaultProgram is the subject executable invoked when none is configured
	DefaultProgram = "md2html"
	// DefaultTestDir is the directory holding conformance suite files
	DefaultTestDir = "test"
	// DefaultSuitePattern selects conformance suite files inside the test directory
	DefaultSuitePattern = "*.txt"
	// DefaultSuiteRunner is the external conformance suite runner
	DefaultSuiteRunner = "python3 run-testsuite.py"
	// DefaultEnvFile is loaded from the working directory when present
	DefaultEnvFile = ".env"
	// DefaultOutputJSONFile is the recorded run file name
	DefaultOutputJSONFile = "pathological-results.json"
	// DefaultOutputJSONDir is the recorded run directory
	DefaultOutputJSONDir = "storage"
	// DefaultNameWidth is the column the case name is padded to
	DefaultNameWidth = 35
)

// Environment variables that override defaults
const (
	EnvProgram     = "MD2HTML_PROGRAM"
	EnvLibraryDir  = "MD2HTML_LIBRARY_DIR"
	EnvTestDir     = "MDHARNESS_TEST_DIR"
	EnvSuiteRunner = "MDHARNESS_SUITE_RUNNER"
)

// DefaultCorpora are the pathological corpora run when none is named
var DefaultCorpora = []string{"md4c"}
