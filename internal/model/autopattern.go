package model

import "regexp"

// AutoPattern is a compiled auto-pattern template: a generative pattern that
// derives both a match test and a group name from the domains it matches.
// Instances are built by the template package; Template keeps the original
// source text, which is the identity used for equality and persistence.
type AutoPattern struct {
	Matcher      *regexp.Regexp
	Template     string
	NamePosition int
}

// Match tests a domain against the template. On a match it returns the raw
// captured name segment (no normalization applied).
func (a AutoPattern) Match(domain string) (string, bool) {
	if a.Matcher == nil {
		return "", false
	}
	groups := a.Matcher.FindStringSubmatch(domain)
	if groups == nil || len(groups) <= a.NamePosition {
		return "", false
	}
	return groups[a.NamePosition], true
}
