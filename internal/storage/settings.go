package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshsymonds/tab-corral/internal/service"
)

// autoEnabledKey is the settings row holding the auto-patterns flag.
const autoEnabledKey = "auto_patterns_enabled"

// LoadSettings reads the whole pattern configuration. Absent rows load as
// empty lists; an absent flag defaults to enabled.
func (s *SQLiteStorage) LoadSettings(ctx context.Context) (service.Settings, error) {
	if err := validateContext(ctx); err != nil {
		return service.Settings{}, err
	}

	settings := service.Settings{AutoPatternsEnabled: true}

	rows, err := s.db.QueryContext(ctx,
		`SELECT pattern, group_name, color FROM manual_patterns ORDER BY position`)
	if err != nil {
		return service.Settings{}, fmt.Errorf("failed to load manual patterns: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cfg service.ManualPatternConfig
		if err := rows.Scan(&cfg.Pattern, &cfg.GroupName, &cfg.Color); err != nil {
			return service.Settings{}, fmt.Errorf("failed to scan manual pattern: %w", err)
		}
		settings.ManualPatterns = append(settings.ManualPatterns, cfg)
	}
	if err := rows.Err(); err != nil {
		return service.Settings{}, fmt.Errorf("failed to iterate manual patterns: %w", err)
	}

	autoRows, err := s.db.QueryContext(ctx,
		`SELECT template FROM auto_patterns ORDER BY position`)
	if err != nil {
		return service.Settings{}, fmt.Errorf("failed to load auto patterns: %w", err)
	}
	defer autoRows.Close()

	for autoRows.Next() {
		var cfg service.AutoPatternConfig
		if err := autoRows.Scan(&cfg.Template); err != nil {
			return service.Settings{}, fmt.Errorf("failed to scan auto pattern: %w", err)
		}
		settings.AutoPatterns = append(settings.AutoPatterns, cfg)
	}
	if err := autoRows.Err(); err != nil {
		return service.Settings{}, fmt.Errorf("failed to iterate auto patterns: %w", err)
	}

	var value string
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, autoEnabledKey).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Never persisted; keep the default.
	case err != nil:
		return service.Settings{}, fmt.Errorf("failed to load auto-patterns flag: %w", err)
	default:
		settings.AutoPatternsEnabled = value == "true"
	}

	return settings, nil
}

// AddManualPattern appends a manual pattern at the end of the precedence order.
func (s *SQLiteStorage) AddManualPattern(ctx context.Context, p service.ManualPatternConfig) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(p.Pattern, "pattern"); err != nil {
		return err
	}
	if err := validateString(p.GroupName, "groupName"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO manual_patterns (pattern, group_name, color, position)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM manual_patterns))`,
		p.Pattern, p.GroupName, p.Color)
	if err != nil {
		return fmt.Errorf("failed to add manual pattern: %w", err)
	}

	slog.Debug("Added manual pattern", "pattern", p.Pattern, "group", p.GroupName)
	return nil
}

// RemoveManualPattern deletes the first (lowest-position) pattern with the
// given source text and group name. Removing a pattern that does not exist
// is not an error.
func (s *SQLiteStorage) RemoveManualPattern(ctx context.Context, pattern, groupName string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM manual_patterns WHERE id = (
			SELECT id FROM manual_patterns
			WHERE pattern = ? AND group_name = ?
			ORDER BY position LIMIT 1
		)`, pattern, groupName)
	if err != nil {
		return fmt.Errorf("failed to remove manual pattern: %w", err)
	}
	return nil
}

// AddAutoPattern appends a template at the end of the precedence order. The
// original template string is stored, never the compiled form.
func (s *SQLiteStorage) AddAutoPattern(ctx context.Context, template string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(template, "template"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO auto_patterns (template, position)
		VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM auto_patterns))`,
		template)
	if err != nil {
		return fmt.Errorf("failed to add auto pattern: %w", err)
	}

	slog.Debug("Added auto pattern", "template", template)
	return nil
}

// RemoveAutoPattern deletes the first template equal to the given string.
func (s *SQLiteStorage) RemoveAutoPattern(ctx context.Context, template string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM auto_patterns WHERE id = (
			SELECT id FROM auto_patterns
			WHERE template = ?
			ORDER BY position LIMIT 1
		)`, template)
	if err != nil {
		return fmt.Errorf("failed to remove auto pattern: %w", err)
	}
	return nil
}

// SetAutoPatternsEnabled persists the auto-patterns flag.
func (s *SQLiteStorage) SetAutoPatternsEnabled(ctx context.Context, enabled bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	value := "false"
	if enabled {
		value = "true"
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		autoEnabledKey, value)
	if err != nil {
		return fmt.Errorf("failed to set auto-patterns flag: %w", err)
	}
	return nil
}

// ReplaceSettings atomically swaps in a whole configuration, preserving the
// order of both lists. Used by configuration import.
func (s *SQLiteStorage) ReplaceSettings(ctx context.Context, settings service.Settings) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM manual_patterns`); err != nil {
		return fmt.Errorf("failed to clear manual patterns: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM auto_patterns`); err != nil {
		return fmt.Errorf("failed to clear auto patterns: %w", err)
	}

	for i, p := range settings.ManualPatterns {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO manual_patterns (pattern, group_name, color, position)
			VALUES (?, ?, ?, ?)`,
			p.Pattern, p.GroupName, p.Color, i+1); err != nil {
			return fmt.Errorf("failed to insert manual pattern: %w", err)
		}
	}
	for i, a := range settings.AutoPatterns {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO auto_patterns (template, position)
			VALUES (?, ?)`,
			a.Template, i+1); err != nil {
			return fmt.Errorf("failed to insert auto pattern: %w", err)
		}
	}

	value := "false"
	if settings.AutoPatternsEnabled {
		value = "true"
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		autoEnabledKey, value); err != nil {
		return fmt.Errorf("failed to set auto-patterns flag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}

	slog.Info("Replaced settings",
		"manual_patterns", len(settings.ManualPatterns),
		"auto_patterns", len(settings.AutoPatterns))
	return nil
}
