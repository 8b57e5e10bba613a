package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlatformsCommand(ctx *commandContext) *cobra.Command {
	platformsCmd := &cobra.Command{
		Use:   "platforms",
		Short: "Platform catalog operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlatformsList(ctx, cmd)
		},
	}

	platformsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every platform in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlatformsList(ctx, cmd)
		},
	})
	platformsCmd.AddCommand(newPlatformsRankCommand(ctx))

	return platformsCmd
}

func runPlatformsList(ctx *commandContext, cmd *cobra.Command) error {
	cat, err := ctx.ensureCatalog()
	if err != nil {
		return err
	}

	platforms := cat.Platforms()
	if ctx.jsonOutput() {
		return writeJSON(cmd, platforms)
	}

	rows := make([][]string, 0, len(platforms))
	for _, platform := range platforms {
		recommended := platform.RecommendedVariant()
		rows = append(rows, []string{
			platform.ID,
			platform.DisplayName,
			fmt.Sprintf("%d", len(platform.Variants)),
			recommended.Name,
			fmt.Sprintf("%dx%d", recommended.Width, recommended.Height),
			fmt.Sprintf("%d kbps", recommended.Bitrate.Recommended),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(cmd.OutOrStdout(),
		[]string{"ID", "Name", "Variants", "Recommended", "Resolution", "Bitrate"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignRight},
	))
	return nil
}

func newPlatformsRankCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rank <metrics.json>",
		Short: "Rank platforms by compatibility with a clip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics, err := loadMetricsArg(args[0])
			if err != nil {
				return err
			}
			if err := metrics.Validate(); err != nil {
				return err
			}
			eng, err := ctx.ensureEngine()
			if err != nil {
				return err
			}

			ranked := eng.RankPlatforms(metrics)
			if ctx.jsonOutput() {
				return writeJSON(cmd, ranked)
			}

			rows := make([][]string, 0, len(ranked))
			for i, rec := range ranked {
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					rec.Platform.DisplayName,
					formatScore(rec.Confidence),
					truncateList(rec.Reasons, 3),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(cmd.OutOrStdout(),
				[]string{"#", "Platform", "Confidence", "Reasons"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
}
