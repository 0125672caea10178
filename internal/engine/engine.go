// Package engine implements the grouping orchestrator: it classifies tab
// URLs, consults the classification cache, and emits group-assignment
// requests for matches.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joshsymonds/tab-corral/internal/cache"
	"github.com/joshsymonds/tab-corral/internal/classify"
	"github.com/joshsymonds/tab-corral/internal/common"
	"github.com/joshsymonds/tab-corral/internal/model"
	"github.com/joshsymonds/tab-corral/internal/pattern"
	"github.com/joshsymonds/tab-corral/internal/service"
	"github.com/joshsymonds/tab-corral/internal/template"
)

// GroupingEngine ties the pattern store, classifier, cache, and the external
// collaborators together. Construct one per process, load settings once, and
// hold it for the process lifetime.
type GroupingEngine struct {
	storage    service.Storage
	assigner   service.GroupAssigner
	store      *pattern.Store
	classifier *classify.Classifier
	cache      *cache.ResultCache
	config     Config
}

// Config holds configuration options for the grouping engine.
type Config struct {
	// OnProgress, when set, is called after each resource in a batch.
	OnProgress  func(processed, total int)
	AssignRetry common.RetryOptions
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		AssignRetry: common.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: 50 * time.Millisecond,
			MaxDelay:     2 * time.Second,
		},
	}
}

// New creates a grouping engine with the given collaborators.
func New(storage service.Storage, assigner service.GroupAssigner) *GroupingEngine {
	return NewWithConfig(storage, assigner, DefaultConfig())
}

// NewWithConfig creates a grouping engine with custom configuration.
func NewWithConfig(storage service.Storage, assigner service.GroupAssigner, config Config) *GroupingEngine {
	store := pattern.NewStore()
	return &GroupingEngine{
		storage:    storage,
		assigner:   assigner,
		store:      store,
		classifier: classify.New(store),
		cache:      cache.New(),
		config:     config,
	}
}

// LoadSettings reads the persisted configuration into the pattern store and
// invalidates the cache. A stored pattern or template that no longer
// compiles is discarded with a log entry; if discarding leaves no templates
// at all, the default template takes its place so the engine never runs with
// zero auto-patterns.
func (e *GroupingEngine) LoadSettings(ctx context.Context) error {
	settings, err := e.storage.LoadSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	manual := make([]model.ManualPattern, 0, len(settings.ManualPatterns))
	for _, cfg := range settings.ManualPatterns {
		color, colorErr := model.ParseGroupColor(cfg.Color)
		if colorErr != nil {
			slog.Warn("Discarding stored pattern with unknown color",
				"pattern", cfg.Pattern, "color", cfg.Color)
			color = model.ColorNone
		}
		p, compileErr := model.NewManualPattern(cfg.Pattern, cfg.GroupName, color)
		if compileErr != nil {
			slog.Warn("Discarding stored pattern that no longer compiles",
				"pattern", cfg.Pattern, "error", compileErr)
			continue
		}
		manual = append(manual, p)
	}

	auto := make([]model.AutoPattern, 0, len(settings.AutoPatterns))
	for _, cfg := range settings.AutoPatterns {
		compiled, compileErr := template.Compile(cfg.Template)
		if compileErr != nil {
			slog.Warn("Discarding stored template that no longer compiles",
				"template", cfg.Template, "error", compileErr)
			continue
		}
		auto = append(auto, compiled)
	}

	if len(auto) == 0 {
		fallback, compileErr := template.Compile(template.DefaultTemplate)
		if compileErr != nil {
			return fmt.Errorf("failed to compile default template: %w", compileErr)
		}
		auto = append(auto, fallback)
		slog.Info("No usable templates, falling back to default",
			"template", template.DefaultTemplate)
	}

	e.store.Replace(manual, auto, settings.AutoPatternsEnabled)
	e.cache.InvalidateAll()

	slog.Info("Loaded settings",
		"manual_patterns", len(manual),
		"auto_patterns", len(auto),
		"auto_enabled", settings.AutoPatternsEnabled)

	return nil
}

// ClassifyURL classifies a single URL through the cache without emitting any
// assignment request. Browser-internal URLs classify to NoMatch.
func (e *GroupingEngine) ClassifyURL(url string) (model.Classification, error) {
	if common.IsExcludedURL(url) {
		return model.NoMatch, nil
	}

	if result, ok := e.cache.LookupURL(url); ok {
		return result, nil
	}

	domain, err := common.DomainFromURL(url)
	if err != nil {
		return model.NoMatch, err
	}

	result := e.classifier.Classify(domain)
	e.cache.Store(url, domain, result)
	return result, nil
}

// ClassifyAndAssign classifies one tab and, on a match, requests assignment
// from the external collaborator. Tabs without an ID or URL, and tabs on
// browser-internal pages, are ignored. A URL that cannot be parsed is
// skipped, not propagated.
func (e *GroupingEngine) ClassifyAndAssign(ctx context.Context, tab model.Tab) error {
	if tab.ID == "" || tab.URL == "" || common.IsExcludedURL(tab.URL) {
		return nil
	}

	if result, ok := e.cache.LookupURL(tab.URL); ok {
		if !result.Matched {
			return nil
		}
		if result.GroupID != "" && tab.GroupID == result.GroupID {
			// Already sitting in the right group; nothing to request.
			return nil
		}
		return e.assign(ctx, tab, result)
	}

	domain, err := common.DomainFromURL(tab.URL)
	if err != nil {
		slog.Warn("Skipping tab with unparseable URL", "tab", tab.ID, "url", tab.URL, "error", err)
		return nil
	}

	result := e.classifier.Classify(domain)
	e.cache.Store(tab.URL, domain, result)

	if !result.Matched {
		return nil
	}
	return e.assign(ctx, tab, result)
}

// ClassifyAndAssignBatch groups a collection of tabs. Processing is strictly
// sequential: each assignment completes before the next tab is examined, so
// later tabs in the batch observe groups created for earlier ones. Tabs that
// are already grouped are left alone, and per-tab failures are logged and
// skipped rather than aborting the batch.
func (e *GroupingEngine) ClassifyAndAssignBatch(ctx context.Context, tabs []model.Tab) (service.GroupingStats, error) {
	start := time.Now()
	stats := service.GroupingStats{Total: len(tabs)}

	for i, tab := range tabs {
		select {
		case <-ctx.Done():
			stats.Duration = time.Since(start)
			return stats, ctx.Err()
		default:
		}

		e.processBatchTab(ctx, tab, &stats)

		if e.config.OnProgress != nil {
			e.config.OnProgress(i+1, len(tabs))
		}
	}

	stats.Duration = time.Since(start)
	slog.Info("Bulk grouping finished",
		"total", stats.Total,
		"grouped", stats.Grouped,
		"no_match", stats.NoMatch,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
		"duration", stats.Duration)

	return stats, nil
}

func (e *GroupingEngine) processBatchTab(ctx context.Context, tab model.Tab, stats *service.GroupingStats) {
	if tab.Grouped() || tab.ID == "" || tab.URL == "" || common.IsExcludedURL(tab.URL) {
		stats.Skipped++
		return
	}

	domain, err := common.DomainFromURL(tab.URL)
	if err != nil {
		slog.Warn("Skipping tab with unparseable URL", "tab", tab.ID, "url", tab.URL, "error", err)
		stats.Skipped++
		return
	}

	// Many tabs in a batch often share a domain; the domain tier answers
	// those without re-running template matching per tab.
	result, ok := e.cache.LookupDomain(domain)
	if !ok {
		if result, ok = e.cache.LookupURL(tab.URL); !ok {
			result = e.classifier.Classify(domain)
			e.cache.Store(tab.URL, domain, result)
		}
	}

	if !result.Matched {
		stats.NoMatch++
		return
	}

	if err := e.assign(ctx, tab, result); err != nil {
		common.LogError(err, "Failed to assign tab to group",
			common.Fields{"tab": tab.ID, "group": result.GroupName})
		stats.Failed++
		return
	}
	stats.Grouped++
}

// SuggestPatterns proposes manual patterns for domains that keep appearing
// among ungrouped tabs without matching the current configuration.
func (e *GroupingEngine) SuggestPatterns(ctx context.Context, minTabs int) ([]classify.Suggestion, error) {
	tabs, err := e.storage.GetUngroupedTabs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ungrouped tabs: %w", err)
	}
	return classify.NewSuggester(e.classifier, minTabs).Suggest(tabs), nil
}

// assign requests the external assignment with bounded retry, then records
// the resulting group ID in the cache so identical repeat calls become pure
// cache hits.
func (e *GroupingEngine) assign(ctx context.Context, tab model.Tab, result model.Classification) error {
	var groupID string
	err := common.WithRetry(ctx, func() error {
		var assignErr error
		groupID, assignErr = e.assigner.Assign(ctx, tab.ID, result.GroupName, result.Color)
		return assignErr
	}, e.config.AssignRetry)
	if err != nil {
		return fmt.Errorf("%w: tab %s to group %q: %v", common.ErrAssignment, tab.ID, result.GroupName, err)
	}

	if domain, domainErr := common.DomainFromURL(tab.URL); domainErr == nil {
		result.GroupID = groupID
		e.cache.Store(tab.URL, domain, result)
	}

	slog.Debug("Assigned tab to group", "tab", tab.ID, "group", result.GroupName, "group_id", groupID)
	return nil
}
