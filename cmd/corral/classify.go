package main

import (
	"errors"
	"fmt"

	"github.com/joshsymonds/tab-corral/internal/cli"
	"github.com/joshsymonds/tab-corral/internal/common"
	"github.com/joshsymonds/tab-corral/internal/model"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <url>",
		Short: "Classify a URL without assigning anything",
		Long: `Run a URL through the current pattern configuration and print which
group it would land in. Nothing is persisted.`,
		Args: cobra.ExactArgs(1),
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

			result, err := eng.ClassifyURL(args[0])
			if err != nil {
				if errors.Is(err, common.ErrInvalidURL) {
					return common.NewUserError(fmt.Sprintf("%q is not a classifiable URL", args[0]), err)
				}
				return err
			}

			printClassification(args[0], result)
			return nil
		},
	}
}

func printClassification(url string, result model.Classification) {
	if !result.Matched {
		fmt.Printf("%s %s\n", cli.SubtleStyle.Render("no match:"), url)
		return
	}

	source := "manual pattern"
	if result.Source == model.SourceAuto {
		source = "auto-pattern"
	}

	fmt.Printf("%s → %s %s\n",
		url,
		cli.SuccessStyle.Render(result.GroupName),
		cli.SubtleStyle.Render("("+source+")"))
	if result.Color != model.ColorNone {
		fmt.Printf("  color: %s\n", result.Color)
	}
}
