package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joshsymonds/tab-corral/internal/cli"
	"github.com/spf13/cobra"
)

func suggestCmd() *cobra.Command {
	var minTabs int

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest manual patterns for frequent unmatched domains",
		Long: `Look at the ungrouped tabs that no current pattern matches and suggest
manual patterns for the domains that show up often enough to be worth
grouping.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			eng, err := initEngine(ctx, store)
			if err != nil {
				return err
			}

			suggestions, err := eng.SuggestPatterns(ctx, minTabs)
			if err != nil {
				return err
			}

			if len(suggestions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No suggestions; everything frequent already matches a pattern."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Suggested patterns"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Domain"),
				cli.HeaderStyle.Render("Tabs"),
				cli.HeaderStyle.Render("Pattern"),
				cli.HeaderStyle.Render("Group"))

			for _, s := range suggestions {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", s.Domain, s.TabCount, s.Pattern, s.GroupName)
			}
			w.Flush()

			fmt.Println(cli.SubtleStyle.Render("Add one with: corral patterns add <pattern> <group>"))
			return nil
		},
	}

	cmd.Flags().IntVar(&minTabs, "min-tabs", 3, "minimum open tabs on a domain before it is suggested")
	return cmd
}
