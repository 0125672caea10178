package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joshsymonds/tab-corral/internal/cli"
	"github.com/spf13/cobra"
)

func tabsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "List the imported tab inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			tabs, err := store.GetTabs(ctx)
			if err != nil {
				return fmt.Errorf("failed to load tabs: %w", err)
			}

			if len(tabs) == 0 {
				fmt.Println(cli.InfoStyle.Render("No tabs imported yet. Use 'corral import' to load a snapshot."))
				return nil
			}

			groups, err := store.GetGroups(ctx)
			if err != nil {
				return fmt.Errorf("failed to load groups: %w", err)
			}
			groupNames := make(map[string]string, len(groups))
			for _, g := range groups {
				groupNames[g.ID] = g.Name
			}

			fmt.Println(cli.FormatTitle("Tabs"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("URL"),
				cli.HeaderStyle.Render("Title"),
				cli.HeaderStyle.Render("Group"))

			for _, tab := range tabs {
				group := cli.SubtleStyle.Render("-")
				if tab.Grouped() {
					if name, ok := groupNames[tab.GroupID]; ok {
						group = name
					} else {
						group = tab.GroupID
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", tab.URL, tab.Title, group)
			}

			return nil
		},
	}
}
