package classify

import (
	"testing"

	"github.com/joshsymonds/tab-corral/internal/model"
	"github.com/joshsymonds/tab-corral/internal/pattern"
	"github.com/joshsymonds/tab-corral/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTemplate(t *testing.T, tmpl string) model.AutoPattern {
	t.Helper()
	a, err := template.Compile(tmpl)
	require.NoError(t, err)
	return a
}

func TestSuggest(t *testing.T) {
	store := pattern.NewStore()
	store.AddManual(manual(t, `github\.com`, "GitHub", model.ColorNone))
	store.SetAutoEnabled(false)

	tabs := []model.Tab{
		{ID: "1", URL: "https://news.ycombinator.com/item?id=1"},
		{ID: "2", URL: "https://news.ycombinator.com/item?id=2"},
		{ID: "3", URL: "https://news.ycombinator.com/"},
		{ID: "4", URL: "https://www.wikipedia.org/"},
		{ID: "5", URL: "https://www.wikipedia.org/wiki/Go"},
		{ID: "6", URL: "https://github.com/pulls"},   // already classified
		{ID: "7", URL: "https://github.com/issues"},  // already classified
		{ID: "8", URL: "https://once.example.com/"},  // below threshold
		{ID: "9", URL: "chrome://settings"},          // internal
		{ID: "10", URL: "https://lobste.rs/", GroupID: "g1"}, // already grouped
	}

	suggestions := NewSuggester(New(store), 2).Suggest(tabs)
	require.Len(t, suggestions, 2)

	assert.Equal(t, "news.ycombinator.com", suggestions[0].Domain)
	assert.Equal(t, 3, suggestions[0].TabCount)
	assert.Equal(t, `^news\.ycombinator\.com$`, suggestions[0].Pattern)
	assert.Equal(t, "News", suggestions[0].GroupName)

	assert.Equal(t, "www.wikipedia.org", suggestions[1].Domain)
	assert.Equal(t, "Wikipedia", suggestions[1].GroupName)
}

func TestSuggestEmptyWhenEverythingMatches(t *testing.T) {
	store := pattern.NewStore()
	store.SetAutoEnabled(true)
	store.AddAuto(mustTemplate(t, ":name.*"))

	tabs := []model.Tab{
		{ID: "1", URL: "https://example.com/"},
		{ID: "2", URL: "https://example.com/about"},
	}

	suggestions := NewSuggester(New(store), 2).Suggest(tabs)
	assert.Empty(t, suggestions)
}
