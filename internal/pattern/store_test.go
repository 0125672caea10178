package pattern

import (
	"testing"

	"github.com/joshsymonds/tab-corral/internal/model"
	"github.com/joshsymonds/tab-corral/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustManual(t *testing.T, pattern, group string) model.ManualPattern {
	t.Helper()
	p, err := model.NewManualPattern(pattern, group, model.ColorNone)
	require.NoError(t, err)
	return p
}

func mustAuto(t *testing.T, tmpl string) model.AutoPattern {
	t.Helper()
	a, err := template.Compile(tmpl)
	require.NoError(t, err)
	return a
}

func TestStoreManualOrder(t *testing.T) {
	s := NewStore()
	s.AddManual(mustManual(t, `github\.com`, "GitHub"))
	s.AddManual(mustManual(t, `git.*`, "Git Stuff"))
	s.AddManual(mustManual(t, `github\.com`, "GitHub"))

	patterns := s.ManualPatterns()
	require.Len(t, patterns, 3)
	assert.Equal(t, "GitHub", patterns[0].GroupName)
	assert.Equal(t, "Git Stuff", patterns[1].GroupName)
}

func TestStoreRemoveManual(t *testing.T) {
	s := NewStore()
	s.AddManual(mustManual(t, `github\.com`, "GitHub"))
	s.AddManual(mustManual(t, `github\.com`, "Work"))

	// Equality is pattern text plus group name; only the matching entry goes.
	removed := s.RemoveManual(`github\.com`, "Work")
	assert.True(t, removed)

	patterns := s.ManualPatterns()
	require.Len(t, patterns, 1)
	assert.Equal(t, "GitHub", patterns[0].GroupName)

	assert.False(t, s.RemoveManual(`nope`, "Nope"))
}

func TestStoreRemoveAutoByTemplateString(t *testing.T) {
	s := NewStore()
	s.AddAuto(mustAuto(t, ":name.example.com"))
	s.AddAuto(mustAuto(t, ":name.*"))

	assert.True(t, s.RemoveAuto(":name.example.com"))
	assert.False(t, s.RemoveAuto(":name.example.com"))

	autos := s.AutoPatterns()
	require.Len(t, autos, 1)
	assert.Equal(t, ":name.*", autos[0].Template)
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	s := NewStore()
	s.AddManual(mustManual(t, `a`, "A"))
	s.AddManual(mustManual(t, `b`, "B"))

	snapshot := s.ManualPatterns()
	snapshot[0], snapshot[1] = snapshot[1], snapshot[0]

	patterns := s.ManualPatterns()
	assert.Equal(t, "A", patterns[0].GroupName)
}

func TestStoreReplace(t *testing.T) {
	s := NewStore()
	s.AddManual(mustManual(t, `old`, "Old"))
	assert.True(t, s.AutoEnabled())

	s.Replace(
		[]model.ManualPattern{mustManual(t, `new`, "New")},
		[]model.AutoPattern{mustAuto(t, ":name.*")},
		false,
	)

	patterns := s.ManualPatterns()
	require.Len(t, patterns, 1)
	assert.Equal(t, "New", patterns[0].GroupName)
	require.Len(t, s.AutoPatterns(), 1)
	assert.False(t, s.AutoEnabled())
}
