package quality

import (
	"fmt"

	"framefit/internal/catalog"
	"framefit/internal/media"
	"framefit/internal/numutil"
)

// Compliance deductions per violated constraint.
const (
	aspectViolationCost   = 30
	durationViolationCost = 25
	fileSizeViolationCost = 20
	bitrateLowCost        = 15
	bitrateHighCost       = 10
)

// checkPlatformCompliance scores the asset against one platform's declared
// constraints. Violations deduct from 100; the result never goes below zero.
func checkPlatformCompliance(spec catalog.PlatformSpec, m media.Metrics) Compliance {
	c := Compliance{Platform: spec.ID, Percentage: 100}

	ratio := m.Ratio()
	if !spec.HasAspectWithin(ratio, catalog.AspectTolerance) {
		c.Violations = append(c.Violations,
			fmt.Sprintf("aspect ratio %.2f matches no %s format", ratio, spec.DisplayName))
		c.Recommendations = append(c.Recommendations,
			fmt.Sprintf("crop or pad to %s", describeVariantRatios(spec)))
		c.Percentage -= aspectViolationCost
	}

	if maxDuration := spec.MaxDuration(); m.Duration > maxDuration {
		c.Violations = append(c.Violations,
			fmt.Sprintf("duration %.0fs exceeds the %.0fs limit", m.Duration, maxDuration))
		c.Recommendations = append(c.Recommendations, "trim or split the cut before uploading")
		c.Percentage -= durationViolationCost
	}

	if maxSize := spec.MaxFileSizeMB(); m.EstimatedSizeMB() > maxSize {
		c.Violations = append(c.Violations,
			fmt.Sprintf("estimated size %.0f MB exceeds the %.0f MB limit", m.EstimatedSizeMB(), maxSize))
		c.Recommendations = append(c.Recommendations, "lower the bitrate or shorten the cut")
		c.Percentage -= fileSizeViolationCost
	}

	recommended := spec.RecommendedVariant()
	if m.Bitrate < float64(recommended.Bitrate.Min) {
		c.Violations = append(c.Violations,
			fmt.Sprintf("bitrate %.0f kbps is below the recommended minimum %d kbps", m.Bitrate, recommended.Bitrate.Min))
		c.Recommendations = append(c.Recommendations,
			fmt.Sprintf("target %d kbps for the %s variant", recommended.Bitrate.Recommended, recommended.Name))
		c.Percentage -= bitrateLowCost
	} else if m.Bitrate > float64(recommended.Bitrate.Max) {
		c.Violations = append(c.Violations,
			fmt.Sprintf("bitrate %.0f kbps exceeds the recommended maximum %d kbps", m.Bitrate, recommended.Bitrate.Max))
		c.Recommendations = append(c.Recommendations,
			fmt.Sprintf("target %d kbps for the %s variant", recommended.Bitrate.Recommended, recommended.Name))
		c.Percentage -= bitrateHighCost
	}

	c.Percentage = numutil.Clamp(c.Percentage, 0, 100)
	c.Compliant = len(c.Violations) == 0
	return c
}

func describeVariantRatios(spec catalog.PlatformSpec) string {
	if len(spec.Variants) == 0 {
		return "a supported aspect ratio"
	}
	seen := map[string]bool{}
	out := ""
	for _, v := range spec.Variants {
		label := ratioLabel(v.Ratio())
		if seen[label] {
			continue
		}
		seen[label] = true
		if out != "" {
			out += " or "
		}
		out += label
	}
	return out
}

func ratioLabel(ratio float64) string {
	switch {
	case numutil.NearlyEqual(ratio, 16.0/9.0, 0.01):
		return "16:9"
	case numutil.NearlyEqual(ratio, 9.0/16.0, 0.01):
		return "9:16"
	case numutil.NearlyEqual(ratio, 1, 0.01):
		return "1:1"
	case numutil.NearlyEqual(ratio, 4.0/3.0, 0.01):
		return "4:3"
	default:
		return fmt.Sprintf("%.2f:1", ratio)
	}
}
