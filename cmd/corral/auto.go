package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joshsymonds/tab-corral/internal/cli"
	"github.com/spf13/cobra"
)

func autoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Manage auto-pattern templates",
		Long: `Auto-pattern templates derive a group name from the domain itself.
A template is a dot-separated form with exactly one :name placeholder and
any number of * wildcards, e.g. ':name.example.com' or ':name.*'.`,
	}

	cmd.AddCommand(listAutoCmd())
	cmd.AddCommand(addAutoCmd())
	cmd.AddCommand(removeAutoCmd())
	cmd.AddCommand(setAutoEnabledCmd("enable", true))
	cmd.AddCommand(setAutoEnabledCmd("disable", false))

	return cmd
}

func listAutoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List auto-pattern templates in precedence order",
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

			if !eng.AutoPatternsEnabled() {
				fmt.Println(cli.WarningStyle.Render("auto-patterns are disabled"))
			}

			templates := eng.AutoPatternTemplates()
			if len(templates) == 0 {
				fmt.Println(cli.InfoStyle.Render("No auto-pattern templates."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.HeaderStyle.Render("#"),
				cli.HeaderStyle.Render("Template"))
			for i, tmpl := range templates {
				fmt.Fprintf(w, "%d\t%s\n", i+1, tmpl)
			}

			return nil
		},
	}
}

func addAutoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <template>",
		Short: "Add an auto-pattern template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if err := eng.AddAutoPattern(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added template %q", args[0])))
			return nil
		},
	}
}

func removeAutoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <template>",
		Short: "Remove an auto-pattern template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if err := eng.RemoveAutoPattern(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed template %q", args[0])))
			return nil
		},
	}
}

func setAutoEnabledCmd(use string, enabled bool) *cobra.Command {
	short := "Enable auto-pattern classification"
	if !enabled {
		short = "Disable auto-pattern classification"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
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

			if err := eng.SetAutoPatternsEnabled(ctx, enabled); err != nil {
				return err
			}

			if enabled {
				fmt.Println(cli.FormatSuccess("Auto-patterns enabled"))
			} else {
				fmt.Println(cli.FormatSuccess("Auto-patterns disabled"))
			}
			return nil
		},
	}
}
