package model

import "time"

// Tab is a single browser tab as seen by the engine: an identifier, a URL,
// and the group it currently belongs to (empty when ungrouped).
type Tab struct {
	ImportedAt time.Time
	ID         string
	URL        string
	Title      string
	GroupID    string
}

// Grouped reports whether the tab already belongs to a group. Grouped tabs
// are left alone by bulk grouping.
func (t Tab) Grouped() bool {
	return t.GroupID != ""
}
