package engine

import (
	"context"
	"fmt"

	"github.com/joshsymonds/tab-corral/internal/model"
)

// assignCall records one request made against the mock assigner.
type assignCall struct {
	TabID     string
	GroupName string
	Color     model.GroupColor
}

// mockAssigner is a GroupAssigner that creates groups idempotently by name
// and, when given a storage, mirrors assignments into tab state the way the
// real collaborator would.
type mockAssigner struct {
	storage    *mockStorage
	groupsByID map[string]string
	failTabs   map[string]error
	calls      []assignCall
	nextID     int
}

func newMockAssigner(storage *mockStorage) *mockAssigner {
	return &mockAssigner{
		storage:    storage,
		groupsByID: make(map[string]string),
		failTabs:   make(map[string]error),
	}
}

func (m *mockAssigner) Assign(_ context.Context, tabID, groupName string, color model.GroupColor) (string, error) {
	m.calls = append(m.calls, assignCall{TabID: tabID, GroupName: groupName, Color: color})

	if err, ok := m.failTabs[tabID]; ok {
		return "", err
	}

	groupID, ok := m.groupsByID[groupName]
	if !ok {
		m.nextID++
		groupID = fmt.Sprintf("group-%d", m.nextID)
		m.groupsByID[groupName] = groupID
		if m.storage != nil {
			m.storage.groups[groupID] = model.Group{ID: groupID, Name: groupName, Color: color}
		}
	}

	if m.storage != nil {
		if tab, exists := m.storage.tabs[tabID]; exists {
			tab.GroupID = groupID
		}
	}

	return groupID, nil
}
