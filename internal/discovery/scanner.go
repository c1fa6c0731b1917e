package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Scanner finds conformance suite files in a test directory
type Scanner struct {
	pattern string
}

// NewScanner creates a new Scanner selecting file names that match pattern
func NewScanner(pattern string) *Scanner {
	return &Scanner{pattern: pattern}
}

// Scan lists the suite files directly inside root, sorted by name.
// Subdirectories are not descended into.
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read test dir: %w", err)
	}

	var suites []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		matched, err := filepath.Match(s.pattern, e.Name())
		if err != nil {
			return nil, fmt.Errorf("invalid suite pattern %q: %w", s.pattern, err)
		}
		if matched {
			suites = append(suites, e.Name())
		}
	}
	sort.Strings(suites)
	return suites, nil
}
