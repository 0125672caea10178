// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/joshsymonds/tab-corral/internal/model"
)

// ManualPatternConfig is the serialized form of a manual pattern: the
// original regex source text, never the compiled form.
type ManualPatternConfig struct {
	Pattern   string `yaml:"pattern"`
	GroupName string `yaml:"group"`
	Color     string `yaml:"color,omitempty"`
}

// AutoPatternConfig is the serialized form of an auto-pattern: the original
// template string, so it recompiles identically on reload.
type AutoPatternConfig struct {
	Template string `yaml:"template"`
}

// Settings is the durable engine configuration. Absent fields load as
// empty/default.
type Settings struct {
	ManualPatterns      []ManualPatternConfig `yaml:"manual_patterns"`
	AutoPatterns        []AutoPatternConfig   `yaml:"auto_patterns"`
	AutoPatternsEnabled bool                  `yaml:"auto_patterns_enabled"`
}

// Storage defines the contract for our persistence layer: the engine's
// configuration source and sink, plus the tab and group inventory.
type Storage interface {
	// Settings (configuration source/sink)
	LoadSettings(ctx context.Context) (Settings, error)
	AddManualPattern(ctx context.Context, p ManualPatternConfig) error
	RemoveManualPattern(ctx context.Context, pattern, groupName string) error
	AddAutoPattern(ctx context.Context, template string) error
	RemoveAutoPattern(ctx context.Context, template string) error
	SetAutoPatternsEnabled(ctx context.Context, enabled bool) error
	ReplaceSettings(ctx context.Context, settings Settings) error

	// Tab inventory (resource enumeration)
	SaveTabs(ctx context.Context, tabs []model.Tab) error
	GetTab(ctx context.Context, id string) (*model.Tab, error)
	GetUngroupedTabs(ctx context.Context) ([]model.Tab, error)
	GetTabs(ctx context.Context) ([]model.Tab, error)

	// Groups
	GetGroups(ctx context.Context) ([]model.Group, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// GroupAssigner is the external group-assignment sink: it places a tab into
// the group with the given name, creating the group (with the given color)
// only if no group with that name exists yet in the scope. Assigning the
// same name twice must reuse the existing group, never duplicate it.
type GroupAssigner interface {
	Assign(ctx context.Context, tabID, groupName string, color model.GroupColor) (groupID string, err error)
}

// GroupingStats summarizes a bulk grouping run.
type GroupingStats struct {
	Total    int
	Grouped  int
	NoMatch  int
	Skipped  int
	Failed   int
	Duration time.Duration
}
