package engine

import (
	"context"
	"fmt"

	"github.com/joshsymonds/tab-corral/internal/model"
	"github.com/joshsymonds/tab-corral/internal/service"
)

// mockStorage is an in-memory Storage implementation for engine tests.
type mockStorage struct {
	tabs     map[string]*model.Tab
	groups   map[string]model.Group
	settings service.Settings
	loadErr  error
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		tabs:     make(map[string]*model.Tab),
		groups:   make(map[string]model.Group),
		settings: service.Settings{AutoPatternsEnabled: true},
	}
}

func (m *mockStorage) LoadSettings(_ context.Context) (service.Settings, error) {
	if m.loadErr != nil {
		return service.Settings{}, m.loadErr
	}
	return m.settings, nil
}

func (m *mockStorage) AddManualPattern(_ context.Context, p service.ManualPatternConfig) error {
	m.settings.ManualPatterns = append(m.settings.ManualPatterns, p)
	return nil
}

func (m *mockStorage) RemoveManualPattern(_ context.Context, pattern, groupName string) error {
	for i, p := range m.settings.ManualPatterns {
		if p.Pattern == pattern && p.GroupName == groupName {
			m.settings.ManualPatterns = append(m.settings.ManualPatterns[:i], m.settings.ManualPatterns[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockStorage) AddAutoPattern(_ context.Context, template string) error {
	m.settings.AutoPatterns = append(m.settings.AutoPatterns, service.AutoPatternConfig{Template: template})
	return nil
}

func (m *mockStorage) RemoveAutoPattern(_ context.Context, template string) error {
	for i, a := range m.settings.AutoPatterns {
		if a.Template == template {
			m.settings.AutoPatterns = append(m.settings.AutoPatterns[:i], m.settings.AutoPatterns[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockStorage) SetAutoPatternsEnabled(_ context.Context, enabled bool) error {
	m.settings.AutoPatternsEnabled = enabled
	return nil
}

func (m *mockStorage) ReplaceSettings(_ context.Context, settings service.Settings) error {
	m.settings = settings
	return nil
}

func (m *mockStorage) SaveTabs(_ context.Context, tabs []model.Tab) error {
	for _, tab := range tabs {
		saved := tab
		m.tabs[tab.ID] = &saved
	}
	return nil
}

func (m *mockStorage) GetTab(_ context.Context, id string) (*model.Tab, error) {
	tab, ok := m.tabs[id]
	if !ok {
		return nil, fmt.Errorf("tab %s not found", id)
	}
	copied := *tab
	return &copied, nil
}

func (m *mockStorage) GetUngroupedTabs(_ context.Context) ([]model.Tab, error) {
	var out []model.Tab
	for _, tab := range m.tabs {
		if !tab.Grouped() {
			out = append(out, *tab)
		}
	}
	return out, nil
}

func (m *mockStorage) GetTabs(_ context.Context) ([]model.Tab, error) {
	out := make([]model.Tab, 0, len(m.tabs))
	for _, tab := range m.tabs {
		out = append(out, *tab)
	}
	return out, nil
}

func (m *mockStorage) GetGroups(_ context.Context) ([]model.Group, error) {
	out := make([]model.Group, 0, len(m.groups))
	for _, g := range m.groups {
		out = append(out, g)
	}
	return out, nil
}

func (m *mockStorage) Migrate(_ context.Context) error { return nil }

func (m *mockStorage) Close() error { return nil }
