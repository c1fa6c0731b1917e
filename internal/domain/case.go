package domain

// Matcher decides whether a subject's decoded output has the expected shape.
// Implementations search for structure; they never require full equality.
type Matcher interface {
	Match(output string) bool
	String() string
}

// Case is one pathological input paired with its output predicate
type Case struct {
	Name    string   // Unique display name within a corpus
	Input   []byte   // Raw input fed to the subject's stdin
	Matcher Matcher  // Predicate over the decoded output
	Flags   []string // Feature flags the subject must be invoked with
}

// HasFlags reports whether the case requires feature flags
func (c Case) HasFlags() bool {
	return len(c.Flags) > 0
}
