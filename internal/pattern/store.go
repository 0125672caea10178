// Package pattern holds the in-memory pattern configuration the classifier
// reads: ordered manual patterns and ordered auto-pattern templates.
package pattern

import (
	"github.com/joshsymonds/tab-corral/internal/model"
)

// Store owns the ordered pattern lists. Insertion order is significant: it
// defines match precedence within each list. The store does no caching and
// no persistence; consumers that cache classification results must
// invalidate on every mutation.
type Store struct {
	manual      []model.ManualPattern
	auto        []model.AutoPattern
	autoEnabled bool
}

// NewStore creates an empty store with auto-patterns enabled.
func NewStore() *Store {
	return &Store{autoEnabled: true}
}

// AddManual appends a manual pattern. Duplicates are permitted; the earlier
// entry keeps precedence.
func (s *Store) AddManual(p model.ManualPattern) {
	s.manual = append(s.manual, p)
}

// RemoveManual removes the first manual pattern with the given source text
// and group name. It reports whether an entry was removed.
func (s *Store) RemoveManual(patternText, groupName string) bool {
	for i, existing := range s.manual {
		if existing.Pattern == patternText && existing.GroupName == groupName {
			s.manual = append(s.manual[:i], s.manual[i+1:]...)
			return true
		}
	}
	return false
}

// ManualPatterns returns the manual patterns in precedence order. The slice
// is a copy; callers cannot perturb store order.
func (s *Store) ManualPatterns() []model.ManualPattern {
	out := make([]model.ManualPattern, len(s.manual))
	copy(out, s.manual)
	return out
}

// AddAuto appends an auto-pattern template.
func (s *Store) AddAuto(a model.AutoPattern) {
	s.auto = append(s.auto, a)
}

// RemoveAuto removes the first template whose original string form equals
// tmpl. Equality is exact string equality, not semantic equivalence.
func (s *Store) RemoveAuto(tmpl string) bool {
	for i, existing := range s.auto {
		if existing.Template == tmpl {
			s.auto = append(s.auto[:i], s.auto[i+1:]...)
			return true
		}
	}
	return false
}

// AutoPatterns returns the templates in precedence order.
func (s *Store) AutoPatterns() []model.AutoPattern {
	out := make([]model.AutoPattern, len(s.auto))
	copy(out, s.auto)
	return out
}

// SetAutoEnabled toggles the auto-pattern path.
func (s *Store) SetAutoEnabled(enabled bool) {
	s.autoEnabled = enabled
}

// AutoEnabled reports whether auto-patterns are consulted at all.
func (s *Store) AutoEnabled() bool {
	return s.autoEnabled
}

// Replace swaps in a whole new configuration at once, preserving the order
// of both lists. Used on settings load and refresh.
func (s *Store) Replace(manual []model.ManualPattern, auto []model.AutoPattern, autoEnabled bool) {
	s.manual = make([]model.ManualPattern, len(manual))
	copy(s.manual, manual)
	s.auto = make([]model.AutoPattern, len(auto))
	copy(s.auto, auto)
	s.autoEnabled = autoEnabled
}
