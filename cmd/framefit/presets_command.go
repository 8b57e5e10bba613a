package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"framefit/internal/catalog"
)

func newPresetsCommand(ctx *commandContext) *cobra.Command {
	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "Compression preset operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresetsList(ctx, cmd, "")
		},
	}

	var platformFlag string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List compression presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresetsList(ctx, cmd, platformFlag)
		},
	}
	listCmd.Flags().StringVarP(&platformFlag, "platform", "p", "", "Only show presets for this platform")
	presetsCmd.AddCommand(listCmd)
	presetsCmd.AddCommand(newPresetsCheckCommand(ctx))
	presetsCmd.AddCommand(newPresetsSelectCommand(ctx))

	return presetsCmd
}

func runPresetsList(ctx *commandContext, cmd *cobra.Command, platform string) error {
	cat, err := ctx.ensureCatalog()
	if err != nil {
		return err
	}

	var presets []catalog.CompressionPreset
	platform = strings.TrimSpace(platform)
	if platform == "" {
		presets = cat.Presets()
	} else {
		presets = cat.PresetsFor(platform)
		if len(presets) == 0 {
			return fmt.Errorf("no presets for platform %q", platform)
		}
	}

	if ctx.jsonOutput() {
		return writeJSON(cmd, presets)
	}

	rows := make([][]string, 0, len(presets))
	for _, preset := range presets {
		rows = append(rows, []string{
			preset.ID,
			preset.Platform,
			preset.Codec,
			fmt.Sprintf("%d", preset.CRF),
			fmt.Sprintf("%d kbps", preset.Bitrate.Target),
			preset.EncodeProfile,
			preset.Complexity,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(cmd.OutOrStdout(),
		[]string{"ID", "Platform", "Codec", "CRF", "Target", "Profile", "Complexity"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft},
	))
	return nil
}

func newPresetsCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check <preset-id>",
		Short: "Sanity-check a preset's settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.ensureCatalog()
			if err != nil {
				return err
			}

			var target *catalog.CompressionPreset
			for _, preset := range cat.Presets() {
				if strings.EqualFold(preset.ID, strings.TrimSpace(args[0])) {
					target = &preset
					break
				}
			}
			if target == nil {
				return fmt.Errorf("preset %q not found", args[0])
			}

			check := cat.ValidatePreset(*target)
			if ctx.jsonOutput() {
				return writeJSON(cmd, check)
			}

			out := cmd.OutOrStdout()
			renderVerdict(out, "Preset", check.Valid, target.ID)
			for _, issue := range check.Errors {
				renderNote(out, "error: "+issue)
			}
			for _, warning := range check.Warnings {
				renderNote(out, "warning: "+warning)
			}
			return nil
		},
	}
}

func newPresetsSelectCommand(ctx *commandContext) *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "select <metrics.json>",
		Short: "Pick and customize a preset for a clip",
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

			target := strings.ToLower(strings.TrimSpace(platform))
			if target == "" {
				ranked := eng.RankPlatforms(metrics)
				if len(ranked) == 0 {
					return fmt.Errorf("catalog has no platforms to rank")
				}
				target = ranked[0].Platform.ID
			}

			result := eng.ClassifyContent(metrics)
			plan, err := eng.SelectPreset(target, result.ContentType, metrics)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, plan)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Platform: %s\n", target)
			fmt.Fprintf(out, "Preset: %s (confidence %s)\n", plan.Preset.ID, formatScore(plan.Confidence))
			fmt.Fprintf(out, "Codec: %s, CRF %d, target %d kbps\n",
				plan.Preset.Codec, plan.Preset.CRF, plan.Preset.Bitrate.Target)
			if len(plan.Preset.Flags) > 0 {
				fmt.Fprintf(out, "Flags: %s\n", strings.Join(plan.Preset.Flags, " "))
			}
			keys := make([]string, 0, len(plan.Customizations))
			for key := range plan.Customizations {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(out, "  %s: %s\n", key, plan.Customizations[key])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Platform to select for (defaults to the top-ranked platform)")
	return cmd
}
