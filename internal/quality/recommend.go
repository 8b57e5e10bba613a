package quality

import (
	"strings"

	"framefit/internal/media"
	"framefit/internal/numutil"
)

const fourKPixelCount = 3840 * 2160

// recommend aggregates validator output into a prioritized action list.
// Order is deterministic and mirrors the check order: quality first, then
// resolution class, aspect note, size/bitrate, and technical filters last.
func recommend(report Report, m media.Metrics) []string {
	var out []string

	if avg, ok := media.Signal(m.AverageQuality); ok && avg < warnAverageQuality {
		out = append(out, "increase bitrate by 20-30% to improve visual quality")
	}

	if m.PixelCount() >= fourKPixelCount {
		out = append(out, "use two-pass encoding to hold detail at this resolution")
	}

	if note := aspectNote(m.Ratio()); note != "" {
		out = append(out, note)
	}

	if hasFileSizeFinding(report) {
		out = append(out, "use variable bitrate encoding to control file size")
	}

	if noise, ok := media.Signal(m.NoiseLevel); ok && noise > warnNoiseLevel {
		out = append(out, "apply denoise filtering before export")
	}
	if stability, ok := media.Signal(m.StabilityScore); ok && stability < warnStabilityScore {
		out = append(out, "enable stabilization to smooth handheld footage")
	}

	return out
}

func aspectNote(ratio float64) string {
	switch {
	case ratio < 0.8:
		return "vertical framing suits TikTok and Instagram stories"
	case numutil.NearlyEqual(ratio, 1, 0.1):
		return "square framing suits Instagram feed placement"
	case ratio > 1.7:
		return "widescreen framing suits YouTube and LinkedIn"
	}
	return ""
}

func hasFileSizeFinding(report Report) bool {
	for _, issue := range report.Issues {
		if issue.Category == CategoryFileSize {
			return true
		}
	}
	for _, platform := range report.Platforms {
		for _, violation := range platform.Violations {
			if strings.Contains(violation, "size") {
				return true
			}
		}
	}
	return false
}
