package classify

import (
	"testing"

	"github.com/joshsymonds/tab-corral/internal/model"
	"github.com/joshsymonds/tab-corral/internal/pattern"
	"github.com/joshsymonds/tab-corral/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWith(t *testing.T, manual []model.ManualPattern, templates []string, autoEnabled bool) *pattern.Store {
	t.Helper()
	s := pattern.NewStore()
	for _, p := range manual {
		s.AddManual(p)
	}
	for _, tmpl := range templates {
		compiled, err := template.Compile(tmpl)
		require.NoError(t, err)
		s.AddAuto(compiled)
	}
	s.SetAutoEnabled(autoEnabled)
	return s
}

func manual(t *testing.T, patternText, group string, color model.GroupColor) model.ManualPattern {
	t.Helper()
	p, err := model.NewManualPattern(patternText, group, color)
	require.NoError(t, err)
	return p
}

func TestClassifyManualBeforeAuto(t *testing.T) {
	// Manual and auto would disagree on github.com; manual must win and the
	// auto path must never be consulted once it does.
	s := storeWith(t,
		[]model.ManualPattern{manual(t, `github\.com`, "GitHub", model.ColorPurple)},
		[]string{":name.*"},
		true,
	)
	c := New(s)

	got := c.Classify("github.com")
	assert.True(t, got.Matched)
	assert.Equal(t, "GitHub", got.GroupName)
	assert.Equal(t, model.SourceManual, got.Source)
	assert.Equal(t, model.ColorPurple, got.Color)

	// No manual match: the auto fallback derives and capitalizes the name.
	got = c.Classify("gitlab.com")
	assert.True(t, got.Matched)
	assert.Equal(t, "Gitlab", got.GroupName)
	assert.Equal(t, model.SourceAuto, got.Source)
	assert.Equal(t, model.ColorNone, got.Color)
}

func TestClassifyFirstManualWins(t *testing.T) {
	// Overlapping patterns: insertion order decides the outcome.
	s := storeWith(t,
		[]model.ManualPattern{
			manual(t, `git.*`, "Git Stuff", model.ColorNone),
			manual(t, `github\.com`, "GitHub", model.ColorNone),
		},
		nil,
		true,
	)

	got := New(s).Classify("github.com")
	assert.Equal(t, "Git Stuff", got.GroupName)
}

func TestClassifyFirstAutoWins(t *testing.T) {
	s := storeWith(t, nil, []string{":name.dev.example.com", ":name.*.example.com"}, true)

	got := New(s).Classify("api.dev.example.com")
	require.True(t, got.Matched)
	assert.Equal(t, "Api", got.GroupName)
}

func TestClassifyAutoDisabled(t *testing.T) {
	s := storeWith(t, nil, []string{":name.*"}, false)

	got := New(s).Classify("github.com")
	assert.False(t, got.Matched)
	assert.Equal(t, model.SourceNone, got.Source)
}

func TestClassifyNoMatch(t *testing.T) {
	s := storeWith(t,
		[]model.ManualPattern{manual(t, `github\.com`, "GitHub", model.ColorNone)},
		[]string{":name.*.example.com"},
		true,
	)

	got := New(s).Classify("localhost")
	assert.False(t, got.Matched)
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dev", "Dev"},
		{"Dev", "Dev"},
		{"d", "D"},
		{"dEV", "DEV"},
		{"1dev", "1dev"},
		{"über", "Über"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, capitalize(tt.in), "capitalize(%q)", tt.in)
	}
}
