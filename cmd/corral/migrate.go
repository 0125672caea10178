package main

import (
	"fmt"

	"github.com/joshsymonds/tab-corral/internal/cli"
	"github.com/joshsymonds/tab-corral/internal/storage"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Bring the database schema up to the current version. Safe to run repeatedly.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// initStorage migrates as a side effect; this command exists so
			// the upgrade can be run deliberately and reports the version.
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			version, err := store.SchemaVersion(ctx)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Database schema is at version %d (expected %d)",
				version, storage.ExpectedSchemaVersion)))
			return nil
		},
	}
}
