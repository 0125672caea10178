package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joshsymonds/tab-corral/internal/cli"
	"github.com/joshsymonds/tab-corral/internal/model"
	"github.com/spf13/cobra"
)

func groupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List groups and their tab counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			groups, err := store.GetGroups(ctx)
			if err != nil {
				return fmt.Errorf("failed to load groups: %w", err)
			}

			if len(groups) == 0 {
				fmt.Println(cli.InfoStyle.Render("No groups yet. Run 'corral group' to create some."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Groups"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Tabs"),
				cli.HeaderStyle.Render("Color"))

			for _, g := range groups {
				color := string(g.Color)
				if g.Color == model.ColorNone {
					color = cli.SubtleStyle.Render("-")
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", g.Name, g.TabCount, color)
			}

			return nil
		},
	}
}
