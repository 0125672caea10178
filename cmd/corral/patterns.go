package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joshsymonds/tab-corral/internal/cli"
	"github.com/joshsymonds/tab-corral/internal/service"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Manage manual patterns",
		Long:  `Add, remove, list, and export the manual regex patterns that map domains to groups.`,
	}

	cmd.AddCommand(listPatternsCmd())
	cmd.AddCommand(addPatternCmd())
	cmd.AddCommand(removePatternCmd())
	cmd.AddCommand(exportPatternsCmd())
	cmd.AddCommand(importPatternsCmd())

	return cmd
}

func listPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List manual patterns in precedence order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			settings, err := store.LoadSettings(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			if len(settings.ManualPatterns) == 0 {
				fmt.Println(cli.InfoStyle.Render("No manual patterns. Use 'corral patterns add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("#"),
				cli.HeaderStyle.Render("Pattern"),
				cli.HeaderStyle.Render("Group"),
				cli.HeaderStyle.Render("Color"))

			for i, p := range settings.ManualPatterns {
				color := p.Color
				if color == "" {
					color = cli.SubtleStyle.Render("(auto)")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, p.Pattern, p.GroupName, color)
			}

			return nil
		},
	}
}

func addPatternCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <pattern> <group>",
		Short: "Add a manual pattern",
		Long: `Add a regex pattern mapping matching domains to a group. Patterns are
tested in the order they were added; the first match wins.`,
		Args: cobra.ExactArgs(2),
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

			if err := eng.AddManualPattern(ctx, args[0], args[1], color); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added pattern %q → %q", args[0], args[1])))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "group color (grey, blue, red, yellow, green, pink, purple, cyan, orange)")
	return cmd
}

func removePatternCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <pattern> <group>",
		Short: "Remove a manual pattern",
		Args:  cobra.ExactArgs(2),
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

			if err := eng.RemoveManualPattern(ctx, args[0], args[1]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed pattern %q → %q", args[0], args[1])))
			return nil
		},
	}
}

func exportPatternsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the pattern configuration as YAML",
		Long: `Write the whole pattern configuration to stdout or a file. Patterns and
templates are exported as their original source text, so an import
recompiles them identically.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			settings, err := store.LoadSettings(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			data, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("failed to marshal settings: %w", err)
			}

			if output == "" {
				fmt.Print(string(data))
				return nil
			}

			if err := os.WriteFile(output, data, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Println(cli.FormatSuccess("Exported configuration to " + output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func importPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a pattern configuration from YAML",
		Long:  `Replace the whole pattern configuration with the contents of a YAML export.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			var settings service.Settings
			if err := yaml.Unmarshal(data, &settings); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.ReplaceSettings(ctx, settings); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d patterns and %d templates from %s",
				len(settings.ManualPatterns), len(settings.AutoPatterns), args[0])))
			if !settings.AutoPatternsEnabled {
				fmt.Println(cli.WarningStyle.Render("auto-patterns are disabled in this configuration"))
			}
			return nil
		},
	}
}
