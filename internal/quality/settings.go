package quality

import (
	"fmt"
	"strings"

	"framefit/internal/catalog"
	"framefit/internal/media"
)

// Preset-settings sanity thresholds.
const (
	crfOptimalMin          = 15
	crfOptimalMax          = 35
	slowProfileDurationMax = 300
)

var knownCompatibleCodecs = map[string]bool{
	"h264": true,
	"hevc": true,
	"h265": true,
	"vp9":  true,
	"av1":  true,
}

var standardContainers = map[string]bool{
	"mp4":  true,
	"mov":  true,
	"webm": true,
}

// checkPresetSettings sanity-checks the chosen encoding settings against the
// asset. All findings are warnings; settings problems never block export.
func checkPresetSettings(report *Report, m media.Metrics, settings catalog.CompressionPreset) {
	codec := strings.ToLower(strings.TrimSpace(settings.Codec))
	container := strings.ToLower(strings.TrimSpace(settings.Container))
	if !knownCompatibleCodecs[codec] && !standardContainers[container] {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("codec %q in container %q has limited player support", settings.Codec, settings.Container))
	}

	if settings.CRF < crfOptimalMin || settings.CRF > crfOptimalMax {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("crf %d is outside the %d-%d sweet spot", settings.CRF, crfOptimalMin, crfOptimalMax))
	}

	if isSlowProfile(settings.EncodeProfile) && m.Duration > slowProfileDurationMax {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%q profile on a %.0fs asset will encode very slowly", settings.EncodeProfile, m.Duration))
	}
}

func isSlowProfile(profile string) bool {
	switch strings.ToLower(strings.TrimSpace(profile)) {
	case "slow", "slower", "veryslow":
		return true
	}
	return false
}
