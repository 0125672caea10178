package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`{
		"tabs": [
			{"id": 101, "url": "https://github.com/pulls", "title": "Pull requests", "windowId": 1},
			{"id": "t-2", "url": "https://gitlab.com/"},
			{"id": 103, "title": "no url"},
			{"url": "https://no-id.example.com/"}
		]
	}`)

	tabs, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, tabs, 2, "entries without id or url are dropped")

	assert.Equal(t, "101", tabs[0].ID)
	assert.Equal(t, "https://github.com/pulls", tabs[0].URL)
	assert.Equal(t, "Pull requests", tabs[0].Title)

	assert.Equal(t, "t-2", tabs[1].ID)
	assert.Empty(t, tabs[1].Title)
}

func TestParseEmptyAndMalformed(t *testing.T) {
	tabs, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, tabs)

	_, err = Parse([]byte(`{"tabs": "nope"`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tabs":[{"id":1,"url":"https://example.com/"}]}`), 0600))

	tabs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, "1", tabs[0].ID)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
