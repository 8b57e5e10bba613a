package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"framefit/internal/catalog"
	"framefit/internal/config"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var platforms []string
	var presetID string
	var settingsPath string

	cmd := &cobra.Command{
		Use:   "validate <metrics.json>",
		Short: "Validate a clip against technical and platform constraints",
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

			var settings *catalog.CompressionPreset
			if trimmed := strings.TrimSpace(settingsPath); trimmed != "" {
				path, err := config.ExpandPath(trimmed)
				if err != nil {
					return err
				}
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read settings %q: %w", path, err)
				}
				var preset catalog.CompressionPreset
				if err := json.Unmarshal(data, &preset); err != nil {
					return fmt.Errorf("parse settings %q: %w", path, err)
				}
				settings = &preset
			}
			if trimmed := strings.TrimSpace(presetID); settings == nil && trimmed != "" {
				cat, err := ctx.ensureCatalog()
				if err != nil {
					return err
				}
				for _, preset := range cat.Presets() {
					if strings.EqualFold(preset.ID, trimmed) {
						settings = &preset
						break
					}
				}
				if settings == nil {
					return fmt.Errorf("preset %q not found", trimmed)
				}
			}

			targets := resolveTargets(platforms, ctx.defaultPlatforms())
			report, err := eng.Validate(metrics, targets, settings)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			renderVerdict(out, "Quality", report.Valid,
				fmt.Sprintf("score %s", formatScore(report.Score)))

			if len(report.Issues) > 0 {
				rows := make([][]string, 0, len(report.Issues))
				for _, issue := range report.Issues {
					fix := issue.Fix
					if issue.AutoFixable && fix != "" {
						fix += " (auto-fixable)"
					}
					rows = append(rows, []string{
						string(issue.Severity),
						string(issue.Category),
						issue.Message,
						fix,
					})
				}
				fmt.Fprintln(out, renderTable(out,
					[]string{"Severity", "Category", "Issue", "Fix"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				))
			}
			for _, warning := range report.Warnings {
				renderNote(out, "warning: "+warning)
			}

			for _, compliance := range report.Platforms {
				renderVerdict(out, compliance.Platform, compliance.Compliant,
					fmt.Sprintf("%s%%", formatScore(compliance.Percentage)))
				for _, violation := range compliance.Violations {
					renderNote(out, violation)
				}
			}

			if len(report.Recommendations) > 0 {
				fmt.Fprintln(out, "Recommendations:")
				for _, recommendation := range report.Recommendations {
					fmt.Fprintf(out, "  - %s\n", recommendation)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&platforms, "platform", "p", nil, "Platform to check compliance against (repeatable)")
	cmd.Flags().StringVar(&presetID, "preset", "", "Also sanity-check this catalog preset's settings")
	cmd.Flags().StringVar(&settingsPath, "settings", "", "JSON file with export settings to sanity-check (overrides --preset)")
	return cmd
}
