package discovery

import (
	"strings"
)

// Filter filters case names by pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Match reports whether name matches pattern, ignoring case. A pattern
// without wildcards matches as a substring; with '*' every non-empty part
// must appear in name, in order.
// Supports patterns like "nested*" or "*brackets*"
func (f *Filter) Match(name, pattern string) bool {
	if pattern == "" {
		return true
	}
	name = strings.ToLower(name)
	pattern = strings.ToLower(pattern)

	if !strings.Contains(pattern, "*") {
		return strings.Contains(name, pattern)
	}

	parts := strings.Split(pattern, "*")
	rest := name
	hasNonEmptyPart := false
	for i, part := range parts {
		if part == "" {
			continue
		}
		hasNonEmptyPart = true
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		// A pattern not starting with '*' anchors its first part at the start
		if i == 0 && idx != 0 {
			return false
		}
		rest = rest[idx+len(part):]
	}
	// Likewise a pattern not ending with '*' anchors its last part at the end
	if last := parts[len(parts)-1]; last != "" && !strings.HasSuffix(name, last) {
		return false
	}
	return hasNonEmptyPart
}
