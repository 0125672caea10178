package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshsymonds/tab-corral/internal/common"
	"github.com/joshsymonds/tab-corral/internal/model"
)

// SaveTabs upserts a snapshot of tabs into the inventory. Re-importing a tab
// refreshes its URL and title but keeps its group membership.
func (s *SQLiteStorage) SaveTabs(ctx context.Context, tabs []model.Tab) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if len(tabs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, tab := range tabs {
		if tab.ID == "" || tab.URL == "" {
			slog.Warn("Skipping tab with missing id or url", "tab", tab.ID)
			continue
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO tabs (id, url, title)
			VALUES (?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET url = excluded.url, title = excluded.title`,
			tab.ID, tab.URL, tab.Title); err != nil {
			return fmt.Errorf("failed to save tab %s: %w", tab.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tabs: %w", err)
	}

	slog.Info("Saved tabs", "count", len(tabs))
	return nil
}

// GetTab retrieves a single tab by ID.
func (s *SQLiteStorage) GetTab(ctx context.Context, id string) (*model.Tab, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	tab := &model.Tab{}
	var title, groupID sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, url, title, group_id, imported_at FROM tabs WHERE id = ?`, id).
		Scan(&tab.ID, &tab.URL, &title, &groupID, &tab.ImportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: tab %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tab %s: %w", id, err)
	}

	tab.Title = title.String
	tab.GroupID = groupID.String
	return tab, nil
}

// GetUngroupedTabs returns tabs not yet assigned to any group, in import order.
func (s *SQLiteStorage) GetUngroupedTabs(ctx context.Context) ([]model.Tab, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.queryTabs(ctx,
		`SELECT id, url, title, group_id, imported_at FROM tabs
		 WHERE group_id IS NULL ORDER BY imported_at, id`)
}

// GetTabs returns the whole tab inventory, in import order.
func (s *SQLiteStorage) GetTabs(ctx context.Context) ([]model.Tab, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.queryTabs(ctx,
		`SELECT id, url, title, group_id, imported_at FROM tabs
		 ORDER BY imported_at, id`)
}

func (s *SQLiteStorage) queryTabs(ctx context.Context, query string) ([]model.Tab, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tabs: %w", err)
	}
	defer rows.Close()

	var tabs []model.Tab
	for rows.Next() {
		var tab model.Tab
		var title, groupID sql.NullString
		if err := rows.Scan(&tab.ID, &tab.URL, &title, &groupID, &tab.ImportedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tab: %w", err)
		}
		tab.Title = title.String
		tab.GroupID = groupID.String
		tabs = append(tabs, tab)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tabs: %w", err)
	}

	return tabs, nil
}
