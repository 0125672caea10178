package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joshsymonds/tab-corral/internal/model"
)

// Assign implements service.GroupAssigner: it places a tab into the group
// with the given name in the current scope, creating the group only if it
// does not exist yet. Assigning the same name twice reuses the group.
func (s *SQLiteStorage) Assign(ctx context.Context, tabID, groupName string, color model.GroupColor) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateString(tabID, "tabID"); err != nil {
		return "", err
	}
	if err := validateString(groupName, "groupName"); err != nil {
		return "", err
	}

	group, err := s.FindOrCreateGroup(ctx, groupName, color)
	if err != nil {
		return "", err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE tabs SET group_id = ? WHERE id = ?`, group.ID, tabID)
	if err != nil {
		return "", fmt.Errorf("failed to assign tab %s: %w", tabID, err)
	}

	// A tab the inventory has never seen still gets a group: record it so
	// the assignment is durable.
	affected, err := result.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to check assignment: %w", err)
	}
	if affected == 0 {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO tabs (id, url, group_id) VALUES (?, '', ?)`,
			tabID, group.ID); err != nil {
			return "", fmt.Errorf("failed to record tab %s: %w", tabID, err)
		}
	}

	slog.Debug("Assigned tab", "tab", tabID, "group", groupName, "group_id", group.ID)
	return group.ID, nil
}

// FindOrCreateGroup returns the group with the given name in the current
// scope, creating it with a fresh UUID when absent. The color only applies
// at creation; an existing group keeps its color.
func (s *SQLiteStorage) FindOrCreateGroup(ctx context.Context, name string, color model.GroupColor) (*model.Group, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	group := &model.Group{Name: name, Scope: s.scope}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, color, created_at FROM groups WHERE name = ? AND scope = ?`,
		name, s.scope).Scan(&group.ID, &group.Color, &group.CreatedAt)
	if err == nil {
		return group, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up group %q: %w", name, err)
	}

	group.ID = uuid.New().String()
	group.Color = color
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO groups (id, name, color, scope) VALUES (?, ?, ?, ?)`,
		group.ID, name, string(color), s.scope); err != nil {
		return nil, fmt.Errorf("failed to create group %q: %w", name, err)
	}

	slog.Info("Created group", "name", name, "color", color, "scope", s.scope)
	return group, nil
}

// GetGroups returns all groups in the current scope with their tab counts,
// oldest first.
func (s *SQLiteStorage) GetGroups(ctx context.Context) ([]model.Group, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT g.id, g.name, g.color, g.scope, g.created_at, COUNT(t.id)
		FROM groups g
		LEFT JOIN tabs t ON t.group_id = g.id
		WHERE g.scope = ?
		GROUP BY g.id
		ORDER BY g.created_at, g.name`, s.scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []model.Group
	for rows.Next() {
		var g model.Group
		var color string
		if err := rows.Scan(&g.ID, &g.Name, &color, &g.Scope, &g.CreatedAt, &g.TabCount); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		g.Color = model.GroupColor(color)
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}
