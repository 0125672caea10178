package main

import (
	"context"
	"fmt"

	"github.com/joshsymonds/tab-corral/internal/config"
	"github.com/joshsymonds/tab-corral/internal/engine"
	"github.com/joshsymonds/tab-corral/internal/storage"
	"github.com/spf13/viper"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initEngine builds the grouping engine over storage, which doubles as the
// group-assignment collaborator, and loads the persisted settings.
func initEngine(ctx context.Context, store *storage.SQLiteStorage) (*engine.GroupingEngine, error) {
	e := engine.New(store, store)
	if err := e.LoadSettings(ctx); err != nil {
		return nil, err
	}
	return e, nil
}
