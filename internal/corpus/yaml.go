package corpus

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mdharness/internal/domain"
	"mdharness/internal/matcher"
)

// File is the YAML layout for user-defined cases
type File struct {
	Cases []CaseSpec `yaml:"cases"`
}

// CaseSpec describes one case. Input is either literal or assembled from
// repeated parts, so large inputs stay small on disk.
type CaseSpec struct {
	Name    string     `yaml:"name"`
	Input   string     `yaml:"input,omitempty"`
	Parts   []PartSpec `yaml:"parts,omitempty"`
	Pattern string     `yaml:"pattern"`
	Flags   []string   `yaml:"flags,omitempty"`
}

// PartSpec is a fragment of input repeated Repeat times (once when zero)
type PartSpec struct {
	Text   string `yaml:"text"`
	Repeat int    `yaml:"repeat,omitempty"`
}

// LoadFile reads user-defined cases from a YAML file
func LoadFile(path string) ([]domain.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cases file: %w", err)
	}
	cases, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// Parse decodes and compiles YAML case definitions
func Parse(data []byte) ([]domain.Case, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse cases YAML: %w", err)
	}

	var errs []error
	cases := make([]domain.Case, 0, len(f.Cases))
	for i, spec := range f.Cases {
		tc, err := spec.build()
		if err != nil {
			errs = append(errs, fmt.Errorf("case #%d: %w", i+1, err))
			continue
		}
		cases = append(cases, tc)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cases, nil
}

func (s CaseSpec) build() (domain.Case, error) {
	if strings.TrimSpace(s.Name) == "" {
		return domain.Case{}, errors.New("name is required")
	}
	if s.Input != "" && len(s.Parts) > 0 {
		return domain.Case{}, fmt.Errorf("%q: input and parts are mutually exclusive", s.Name)
	}
	m, err := matcher.Compile(s.Pattern)
	if err != nil {
		return domain.Case{}, fmt.Errorf("%q: %w", s.Name, err)
	}

	input := s.Input
	if len(s.Parts) > 0 {
		var b strings.Builder
		for _, p := range s.Parts {
			if p.Repeat < 0 {
				return domain.Case{}, fmt.Errorf("%q: negative repeat %d", s.Name, p.Repeat)
			}
			n := p.Repeat
			if n == 0 {
				n = 1
			}
			b.WriteString(strings.Repeat(p.Text, n))
		}
		input = b.String()
	}

	return domain.Case{
		Name:    s.Name,
		Input:   []byte(input),
		Matcher: m,
		Flags:   s.Flags,
	}, nil
}
