package main

import (
	"fmt"

	"github.com/joshsymonds/tab-corral/internal/cli"
	"github.com/joshsymonds/tab-corral/internal/snapshot"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <snapshot.json>",
		Short: "Import a browser tab snapshot",
		Long: `Load a JSON tab snapshot (an array of tab objects, or an object with a
"tabs" array) into storage. Re-importing a tab keeps its group membership.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tabs, err := snapshot.Load(args[0])
			if err != nil {
				return err
			}
			if len(tabs) == 0 {
				fmt.Println(cli.WarningStyle.Render("snapshot contains no usable tabs"))
				return nil
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SaveTabs(ctx, tabs); err != nil {
				return fmt.Errorf("failed to save tabs: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d tabs from %s", len(tabs), args[0])))
			return nil
		},
	}
}
