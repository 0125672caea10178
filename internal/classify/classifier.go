// Package classify decides which group name, if any, a domain maps to.
package classify

import (
	"unicode"
	"unicode/utf8"

	"github.com/joshsymonds/tab-corral/internal/model"
	"github.com/joshsymonds/tab-corral/internal/pattern"
)

// Classifier evaluates domains against the pattern store. It borrows
// read-only access to the store per call and holds no state of its own.
type Classifier struct {
	store *pattern.Store
}

// New creates a classifier over the given pattern store.
func New(store *pattern.Store) *Classifier {
	return &Classifier{store: store}
}

// Classify maps a domain to a classification. Manual patterns are tested
// first in store order; once one matches, auto-patterns are never consulted.
// Within each list the first-registered pattern wins, which is user-visible
// when patterns overlap.
func (c *Classifier) Classify(domain string) model.Classification {
	for _, p := range c.store.ManualPatterns() {
		if p.Matches(domain) {
			return model.ManualMatch(p.GroupName, p.Color)
		}
	}

	if c.store.AutoEnabled() {
		for _, a := range c.store.AutoPatterns() {
			if name, ok := a.Match(domain); ok {
				return model.AutoMatch(capitalize(name))
			}
		}
	}

	return model.NoMatch
}

// capitalize upper-cases only the first rune, leaving the rest unchanged.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
