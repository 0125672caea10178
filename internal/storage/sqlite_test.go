package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/joshsymonds/tab-corral/internal/model"
	"github.com/joshsymonds/tab-corral/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "corral.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestMigrate(t *testing.T) {
	store := newTestStorage(t)

	version, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)

	// Re-running migrations is a no-op.
	require.NoError(t, store.Migrate(context.Background()))
}

func TestSettingsDefaults(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	settings, err := store.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings.ManualPatterns)
	assert.Empty(t, settings.AutoPatterns)
	assert.True(t, settings.AutoPatternsEnabled, "flag defaults to enabled when never persisted")
}

func TestManualPatternRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.AddManualPattern(ctx, service.ManualPatternConfig{
		Pattern: `github\.com`, GroupName: "GitHub", Color: "purple",
	}))
	require.NoError(t, store.AddManualPattern(ctx, service.ManualPatternConfig{
		Pattern: `git.*`, GroupName: "Git Stuff",
	}))
	require.NoError(t, store.AddManualPattern(ctx, service.ManualPatternConfig{
		Pattern: `github\.com`, GroupName: "GitHub", Color: "purple",
	}))

	settings, err := store.LoadSettings(ctx)
	require.NoError(t, err)
	require.Len(t, settings.ManualPatterns, 3)

	// Insertion order survives the round trip; it defines precedence.
	assert.Equal(t, "GitHub", settings.ManualPatterns[0].GroupName)
	assert.Equal(t, "Git Stuff", settings.ManualPatterns[1].GroupName)
	assert.Equal(t, `github\.com`, settings.ManualPatterns[0].Pattern)
	assert.Equal(t, "purple", settings.ManualPatterns[0].Color)

	// Removal deletes one entry, the earliest match.
	require.NoError(t, store.RemoveManualPattern(ctx, `github\.com`, "GitHub"))
	settings, err = store.LoadSettings(ctx)
	require.NoError(t, err)
	require.Len(t, settings.ManualPatterns, 2)
	assert.Equal(t, "Git Stuff", settings.ManualPatterns[0].GroupName)

	// Removing a pattern that isn't there is not an error.
	require.NoError(t, store.RemoveManualPattern(ctx, `absent`, "Nobody"))
}

func TestAutoPatternRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.AddAutoPattern(ctx, ":name.example.com"))
	require.NoError(t, store.AddAutoPattern(ctx, ":name.*"))

	settings, err := store.LoadSettings(ctx)
	require.NoError(t, err)
	require.Len(t, settings.AutoPatterns, 2)

	// The original template text is stored verbatim.
	assert.Equal(t, ":name.example.com", settings.AutoPatterns[0].Template)
	assert.Equal(t, ":name.*", settings.AutoPatterns[1].Template)

	require.NoError(t, store.RemoveAutoPattern(ctx, ":name.example.com"))
	settings, err = store.LoadSettings(ctx)
	require.NoError(t, err)
	require.Len(t, settings.AutoPatterns, 1)
	assert.Equal(t, ":name.*", settings.AutoPatterns[0].Template)
}

func TestAutoPatternsEnabledFlag(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SetAutoPatternsEnabled(ctx, false))
	settings, err := store.LoadSettings(ctx)
	require.NoError(t, err)
	assert.False(t, settings.AutoPatternsEnabled)

	require.NoError(t, store.SetAutoPatternsEnabled(ctx, true))
	settings, err = store.LoadSettings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.AutoPatternsEnabled)
}

func TestReplaceSettings(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.AddManualPattern(ctx, service.ManualPatternConfig{
		Pattern: `old`, GroupName: "Old",
	}))

	require.NoError(t, store.ReplaceSettings(ctx, service.Settings{
		ManualPatterns: []service.ManualPatternConfig{
			{Pattern: `a`, GroupName: "A"},
			{Pattern: `b`, GroupName: "B", Color: "blue"},
		},
		AutoPatterns:        []service.AutoPatternConfig{{Template: ":name.*"}},
		AutoPatternsEnabled: false,
	}))

	settings, err := store.LoadSettings(ctx)
	require.NoError(t, err)
	require.Len(t, settings.ManualPatterns, 2)
	assert.Equal(t, "A", settings.ManualPatterns[0].GroupName)
	assert.Equal(t, "B", settings.ManualPatterns[1].GroupName)
	require.Len(t, settings.AutoPatterns, 1)
	assert.False(t, settings.AutoPatternsEnabled)
}

func TestFindOrCreateGroupIdempotent(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	first, err := store.FindOrCreateGroup(ctx, "GitHub", model.ColorPurple)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	// Same name reuses the group, and a different color does not repaint it.
	second, err := store.FindOrCreateGroup(ctx, "GitHub", model.ColorRed)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, model.ColorPurple, second.Color)

	other, err := store.FindOrCreateGroup(ctx, "GitLab", model.ColorNone)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestGroupScopes(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	defaultGroup, err := store.FindOrCreateGroup(ctx, "GitHub", model.ColorNone)
	require.NoError(t, err)

	store.SetScope("window-2")
	windowGroup, err := store.FindOrCreateGroup(ctx, "GitHub", model.ColorNone)
	require.NoError(t, err)

	// Same name, separate scope, separate group.
	assert.NotEqual(t, defaultGroup.ID, windowGroup.ID)
}

func TestAssignTab(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTabs(ctx, []model.Tab{
		{ID: "t1", URL: "https://github.com/pulls", Title: "Pull requests"},
		{ID: "t2", URL: "https://github.com/issues"},
	}))

	groupID, err := store.Assign(ctx, "t1", "GitHub", model.ColorPurple)
	require.NoError(t, err)
	require.NotEmpty(t, groupID)

	// Assigning a second tab to the same name reuses the group.
	secondID, err := store.Assign(ctx, "t2", "GitHub", model.ColorPurple)
	require.NoError(t, err)
	assert.Equal(t, groupID, secondID)

	tab, err := store.GetTab(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, groupID, tab.GroupID)
	assert.True(t, tab.Grouped())

	ungrouped, err := store.GetUngroupedTabs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ungrouped)

	groups, err := store.GetGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "GitHub", groups[0].Name)
	assert.Equal(t, 2, groups[0].TabCount)
}

func TestSaveTabsKeepsGroupMembership(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTabs(ctx, []model.Tab{{ID: "t1", URL: "https://github.com/"}}))
	_, err := store.Assign(ctx, "t1", "GitHub", model.ColorNone)
	require.NoError(t, err)

	// Re-import with a new URL: the membership must survive.
	require.NoError(t, store.SaveTabs(ctx, []model.Tab{{ID: "t1", URL: "https://github.com/pulls"}}))

	tab, err := store.GetTab(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, tab.Grouped())
	assert.Equal(t, "https://github.com/pulls", tab.URL)
}

func TestGetUngroupedTabs(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTabs(ctx, []model.Tab{
		{ID: "t1", URL: "https://github.com/"},
		{ID: "t2", URL: "https://gitlab.com/"},
	}))
	_, err := store.Assign(ctx, "t1", "GitHub", model.ColorNone)
	require.NoError(t, err)

	ungrouped, err := store.GetUngroupedTabs(ctx)
	require.NoError(t, err)
	require.Len(t, ungrouped, 1)
	assert.Equal(t, "t2", ungrouped[0].ID)
}

func TestGetTabs(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTabs(ctx, []model.Tab{
		{ID: "t1", URL: "https://github.com/", Title: "GitHub"},
		{ID: "t2", URL: "https://gitlab.com/"},
	}))
	_, err := store.Assign(ctx, "t1", "GitHub", model.ColorNone)
	require.NoError(t, err)

	tabs, err := store.GetTabs(ctx)
	require.NoError(t, err)
	require.Len(t, tabs, 2)
	assert.True(t, tabs[0].Grouped())
	assert.Equal(t, "GitHub", tabs[0].Title)
	assert.False(t, tabs[1].Grouped())
}
