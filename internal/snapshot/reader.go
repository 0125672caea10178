// Package snapshot reads browser tab snapshots: JSON exports of the form
// {"tabs": [{"id": ..., "url": ..., "title": ..., "windowId": ...}]}.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joshsymonds/tab-corral/internal/model"
)

// tabID tolerates both the numeric ids browsers export and plain strings.
type tabID string

func (id *tabID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*id = tabID(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = tabID(n.String())
	return nil
}

type snapshotTab struct {
	ID    tabID  `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

type snapshotFile struct {
	Tabs []snapshotTab `json:"tabs"`
}

// Load reads a snapshot file into tabs. Entries without an id or URL are
// dropped; any other absent field is simply empty.
func Load(path string) ([]model.Tab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return Parse(data)
}

// Parse decodes snapshot bytes into tabs.
func Parse(data []byte) ([]model.Tab, error) {
	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	tabs := make([]model.Tab, 0, len(file.Tabs))
	for _, entry := range file.Tabs {
		if entry.ID == "" || entry.URL == "" {
			continue
		}
		tabs = append(tabs, model.Tab{
			ID:    string(entry.ID),
			URL:   entry.URL,
			Title: entry.Title,
		})
	}
	return tabs, nil
}
