package model

import (
	"fmt"
	"regexp"
)

// ManualPattern is a user-supplied regular expression paired with an explicit
// group name and optional color. Patterns are tested in insertion order and
// the first match wins; duplicates are permitted.
type ManualPattern struct {
	re        *regexp.Regexp
	Pattern   string
	GroupName string
	Color     GroupColor
}

// NewManualPattern compiles a manual pattern. The source text is kept so the
// pattern can be persisted and recompiled identically on reload.
func NewManualPattern(pattern, groupName string, color GroupColor) (ManualPattern, error) {
	if pattern == "" {
		return ManualPattern{}, fmt.Errorf("pattern cannot be empty")
	}
	if groupName == "" {
		return ManualPattern{}, fmt.Errorf("group name cannot be empty")
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return ManualPattern{}, fmt.Errorf("failed to compile pattern %q: %w", pattern, err)
	}

	return ManualPattern{
		Pattern:   pattern,
		GroupName: groupName,
		Color:     color,
		re:        re,
	}, nil
}

// Matches tests the pattern against a domain.
func (p ManualPattern) Matches(domain string) bool {
	if p.re == nil {
		return false
	}
	return p.re.MatchString(domain)
}