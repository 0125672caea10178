package engine

import (
	"context"
	"fmt"

	"github.com/joshsymonds/tab-corral/internal/model"
	"github.com/joshsymonds/tab-corral/internal/service"
	"github.com/joshsymonds/tab-corral/internal/template"
)

// Configuration mutations. Every mutation persists through storage, updates
// the in-memory pattern store, and synchronously invalidates the whole
// cache before returning, so no later classification can see a stale
// result. A rejected add (bad regex, bad template, bad color) leaves both
// the store and storage untouched.

// AddManualPattern validates and adds a manual pattern.
func (e *GroupingEngine) AddManualPattern(ctx context.Context, patternText, groupName, colorName string) error {
	color, err := model.ParseGroupColor(colorName)
	if err != nil {
		return fmt.Errorf("invalid color: %w", err)
	}

	p, err := model.NewManualPattern(patternText, groupName, color)
	if err != nil {
		return err
	}

	if err := e.storage.AddManualPattern(ctx, service.ManualPatternConfig{
		Pattern:   patternText,
		GroupName: groupName,
		Color:     colorName,
	}); err != nil {
		return fmt.Errorf("failed to persist pattern: %w", err)
	}

	e.store.AddManual(p)
	e.cache.InvalidateAll()
	return nil
}

// RemoveManualPattern removes a manual pattern by source text and group name.
func (e *GroupingEngine) RemoveManualPattern(ctx context.Context, patternText, groupName string) error {
	if err := e.storage.RemoveManualPattern(ctx, patternText, groupName); err != nil {
		return fmt.Errorf("failed to remove pattern: %w", err)
	}

	e.store.RemoveManual(patternText, groupName)
	e.cache.InvalidateAll()
	return nil
}

// AddAutoPattern compiles and adds an auto-pattern template.
func (e *GroupingEngine) AddAutoPattern(ctx context.Context, tmpl string) error {
	compiled, err := template.Compile(tmpl)
	if err != nil {
		return err
	}

	if err := e.storage.AddAutoPattern(ctx, tmpl); err != nil {
		return fmt.Errorf("failed to persist template: %w", err)
	}

	e.store.AddAuto(compiled)
	e.cache.InvalidateAll()
	return nil
}

// RemoveAutoPattern removes a template by its original string form.
func (e *GroupingEngine) RemoveAutoPattern(ctx context.Context, tmpl string) error {
	if err := e.storage.RemoveAutoPattern(ctx, tmpl); err != nil {
		return fmt.Errorf("failed to remove template: %w", err)
	}

	e.store.RemoveAuto(tmpl)
	e.cache.InvalidateAll()
	return nil
}

// SetAutoPatternsEnabled toggles the auto-pattern path.
func (e *GroupingEngine) SetAutoPatternsEnabled(ctx context.Context, enabled bool) error {
	if err := e.storage.SetAutoPatternsEnabled(ctx, enabled); err != nil {
		return fmt.Errorf("failed to persist auto-patterns flag: %w", err)
	}

	e.store.SetAutoEnabled(enabled)
	e.cache.InvalidateAll()
	return nil
}

// AutoPatternsEnabled reports the current auto-pattern flag.
func (e *GroupingEngine) AutoPatternsEnabled() bool {
	return e.store.AutoEnabled()
}

// AutoPatternTemplates returns the current templates in precedence order,
// in their original string form.
func (e *GroupingEngine) AutoPatternTemplates() []string {
	autos := e.store.AutoPatterns()
	out := make([]string, len(autos))
	for i, a := range autos {
		out[i] = a.Template
	}
	return out
}

// ManualPatterns returns the current manual patterns in precedence order.
func (e *GroupingEngine) ManualPatterns() []service.ManualPatternConfig {
	patterns := e.store.ManualPatterns()
	out := make([]service.ManualPatternConfig, len(patterns))
	for i, p := range patterns {
		out[i] = service.ManualPatternConfig{
			Pattern:   p.Pattern,
			GroupName: p.GroupName,
			Color:     string(p.Color),
		}
	}
	return out
}
