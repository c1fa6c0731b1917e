package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvocationResult is what a single subject invocation produced
type InvocationResult struct {
	ExitCode int           // Process exit status (-1 when killed or never started)
	Stdout   string        // Decoded standard output
	Stderr   string        // Decoded standard error
	Elapsed  time.Duration // Wall-clock round trip
}

// Status classifies a case outcome
type Status string

const (
	StatusPassed  Status = "PASSED"
	StatusFailed  Status = "FAILED"
	StatusErrored Status = "ERRORED"
)

// Outcome is the classified result of running one case
type Outcome struct {
	Case     string        `json:"case"`
	Status   Status        `json:"status"`
	Elapsed  time.Duration `json:"elapsed"`
	ExitCode int           `json:"exit_code"`
	Output   string        `json:"output,omitempty"` // Raw output, kept for Failed only
	Stderr   string        `json:"stderr,omitempty"` // Diagnostic text, kept for Errored only
	Pattern  string        `json:"pattern,omitempty"`
	Flags    []string      `json:"flags,omitempty"`
}

// Tally accumulates outcomes across one run
type Tally struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Errored int `json:"errored"`
}

// Add counts a single outcome
func (t *Tally) Add(o Outcome) {
	switch o.Status {
	case StatusPassed:
		t.Passed++
	case StatusFailed:
		t.Failed++
	case StatusErrored:
		t.Errored++
	}
}

// Total returns the number of counted outcomes
func (t Tally) Total() int {
	return t.Passed + t.Failed + t.Errored
}

// OK reports whether nothing failed or errored
func (t Tally) OK() bool {
	return t.Failed == 0 && t.Errored == 0
}

// ExitCode maps the tally to the runner's process status
func (t Tally) ExitCode() int {
	if t.OK() {
		return 0
	}
	return 1
}

// RunRecord is the persisted snapshot of one pathological run
type RunRecord struct {
	ID        uuid.UUID `json:"id"`
	Corpus    string    `json:"corpus"`
	Subject   string    `json:"subject"`
	StartedAt time.Time `json:"started_at"`
	Duration  string    `json:"duration"`
	Tally     Tally     `json:"tally"`
	Details   []Outcome `json:"details"`
}
