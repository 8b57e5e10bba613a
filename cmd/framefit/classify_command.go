package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <metrics.json>",
		Short: "Label a clip's content type from its metrics",
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

			result := eng.ClassifyContent(metrics)
			if ctx.jsonOutput() {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Content type: %s\n", result.ContentType)
			fmt.Fprintf(out, "Confidence: %s\n", formatScore(result.Confidence))
			for _, characteristic := range result.Characteristics {
				fmt.Fprintf(out, "  - %s\n", characteristic)
			}
			return nil
		},
	}
}
