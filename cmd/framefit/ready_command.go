package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newReadyCommand(ctx *commandContext) *cobra.Command {
	var platforms []string

	cmd := &cobra.Command{
		Use:   "ready <metrics.json>",
		Short: "Report whether a clip is ready to export",
		Long: "Prints the go/no-go verdict for a clip. The exit status is zero only\n" +
			"when the clip is export ready, so the command can gate scripted pipelines.",
		Args: cobra.ExactArgs(1),
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
			readiness, err := eng.ExportReady(metrics, targets)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				if err := writeJSON(cmd, readiness); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				renderVerdict(out, "Export ready", readiness.Ready,
					fmt.Sprintf("score %s", formatScore(readiness.Score)))
				for _, blocker := range readiness.Blockers {
					renderNote(out, blocker)
				}
			}

			if !readiness.Ready {
				return errors.New("clip is not export ready")
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&platforms, "platform", "p", nil, "Platform to check against (repeatable)")
	return cmd
}
