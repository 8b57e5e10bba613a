package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var platforms []string
	var store bool

	cmd := &cobra.Command{
		Use:   "analyze <metrics.json>",
		Short: "Run the full export analysis pipeline on a clip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics, err := loadMetricsArg(args[0])
			if err != nil {
				return err
			}
			eng, err := ctx.ensureEngine()
			if err != nil {
				return err
			}

			targets := resolveTargets(platforms, ctx.defaultPlatforms())
			analysis, err := eng.Analyze(metrics, targets)
			if err != nil {
				return err
			}

			if store {
				reports, err := ctx.openStore()
				if err != nil {
					return err
				}
				defer reports.Close()
				record, err := reports.Save(cmd.Context(), args[0], analysis)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved report %s\n", record.ID)
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, analysis)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Content type: %s (confidence %s)\n",
				analysis.Classification.ContentType, formatScore(analysis.Classification.Confidence))
			if evidence := truncateList(analysis.Classification.Characteristics, 4); evidence != "" {
				fmt.Fprintf(out, "Characteristics: %s\n", evidence)
			}
			fmt.Fprintln(out)

			rows := make([][]string, 0, len(analysis.Ranking))
			for _, rec := range analysis.Ranking {
				rows = append(rows, []string{
					rec.Platform.DisplayName,
					formatScore(rec.Confidence),
					truncateList(rec.Reasons, 3),
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Platform", "Confidence", "Reasons"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))

			if analysis.Plan != nil {
				fmt.Fprintf(out, "\nPreset: %s (confidence %s)\n",
					analysis.Plan.Preset.ID, formatScore(analysis.Plan.Confidence))
				keys := make([]string, 0, len(analysis.Plan.Customizations))
				for key := range analysis.Plan.Customizations {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					fmt.Fprintf(out, "  %s: %s\n", key, analysis.Plan.Customizations[key])
				}
			}

			fmt.Fprintln(out)
			renderVerdict(out, "Quality", analysis.Report.Valid,
				fmt.Sprintf("score %s", formatScore(analysis.Report.Score)))
			renderVerdict(out, "Export ready", analysis.Readiness.Ready, "")
			for _, blocker := range analysis.Readiness.Blockers {
				renderNote(out, blocker)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&platforms, "platform", "p", nil, "Target platform (repeatable; defaults to the top-ranked platform)")
	cmd.Flags().BoolVar(&store, "store", false, "Save the analysis to the report history")
	return cmd
}
