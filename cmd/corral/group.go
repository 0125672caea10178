package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joshsymonds/tab-corral/internal/cli"
	"github.com/joshsymonds/tab-corral/internal/engine"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func groupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Classify and group imported tabs",
		Long: `Run every ungrouped tab through the classifier and move matches into
their groups. Tabs already sitting in a group are left alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			tabs, err := store.GetUngroupedTabs(ctx)
			if err != nil {
				return fmt.Errorf("failed to load tabs: %w", err)
			}

			if len(tabs) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nothing to group. Use 'corral import' to load a tab snapshot."))
				return nil
			}

			bar := progressbar.NewOptions(len(tabs),
				progressbar.OptionSetDescription("Grouping tabs"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			config := engine.DefaultConfig()
			config.OnProgress = func(processed, _ int) {
				_ = bar.Set(processed)
			}

			eng := engine.NewWithConfig(store, store, config)
			if err := eng.LoadSettings(ctx); err != nil {
				return err
			}

			stats, err := eng.ClassifyAndAssignBatch(ctx, tabs)
			_ = bar.Finish()
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Grouping complete"))
			fmt.Printf("  %s %d tabs grouped\n", cli.SuccessStyle.Render(cli.SuccessIcon), stats.Grouped)
			fmt.Printf("  %d no match, %d skipped, %d failed\n", stats.NoMatch, stats.Skipped, stats.Failed)
			fmt.Printf("  %s\n", cli.SubtleStyle.Render(fmt.Sprintf("took %s", stats.Duration.Round(time.Millisecond))))

			if stats.Failed > 0 {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("%d assignments failed; see the log for details", stats.Failed)))
			}
			return nil
		},
	}
	return cmd
}
