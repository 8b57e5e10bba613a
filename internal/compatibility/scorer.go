package compatibility

import (
	"fmt"
	"sort"

	"framefit/internal/catalog"
	"framefit/internal/media"
	"framefit/internal/numutil"
)

// Recommendation is one platform's fit verdict for an asset.
type Recommendation struct {
	Platform   catalog.PlatformSpec `json:"platform"`
	Confidence float64              `json:"confidence"`
	Reasons    []string             `json:"reasons"`
}

// Rank scores the asset against every platform in the catalog and returns
// the full list sorted by descending confidence. The sort is stable, so tied
// platforms keep catalog declaration order.
func Rank(cat *catalog.Catalog, m media.Metrics) []Recommendation {
	platforms := cat.Platforms()
	out := make([]Recommendation, 0, len(platforms))
	for _, spec := range platforms {
		out = append(out, scorePlatform(spec, m))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

func scorePlatform(spec catalog.PlatformSpec, m media.Metrics) Recommendation {
	score := float64(baseScore)
	var reasons []string

	ratio := m.Ratio()
	if spec.HasAspectWithin(ratio, catalog.AspectTolerance) {
		score += aspectMatchBonus
		reasons = append(reasons, fmt.Sprintf("aspect ratio %.2f matches a supported format", ratio))
	}

	if mean := spec.MeanMaxDuration(); m.Duration <= mean {
		score += durationFitBonus
		reasons = append(reasons, "duration fits the platform's typical limits")
	} else {
		score -= durationOverPenalty
		reasons = append(reasons, fmt.Sprintf("duration %.0fs exceeds the platform's typical limits", m.Duration))
	}

	bonus, bonusReasons := platformBonus(spec.ID, m, ratio)
	score += bonus
	reasons = append(reasons, bonusReasons...)

	return Recommendation{
		Platform:   spec,
		Confidence: numutil.ClampScore(score),
		Reasons:    reasons,
	}
}

// platformBonus applies the hand-tuned per-platform heuristics. Only the
// platform under consideration is evaluated.
func platformBonus(platformID string, m media.Metrics, ratio float64) (float64, []string) {
	var score float64
	var reasons []string

	switch platformID {
	case "youtube":
		if ratio > widescreenRatioMin {
			score += youtubeWidescreenBonus
			reasons = append(reasons, "widescreen framing suits long-form viewing")
		}
		if m.FrameRate >= youtubeHighFrameRateMin {
			score += youtubeHighFrameRateBonus
			reasons = append(reasons, "high frame rate is preserved on playback")
		}
		if m.TextDetected {
			score += textLongFormBonus
			reasons = append(reasons, "on-screen text suits tutorial-style content")
		}
	case "instagram":
		if numutil.NearlyEqual(ratio, 1, squareRatioTolerance) {
			score += instagramSquareBonus
			reasons = append(reasons, "square format maximizes feed presence")
		} else if ratio < verticalRatioMax {
			score += instagramVerticalBonus
			reasons = append(reasons, "vertical format works for stories and reels")
		}
		if m.FaceDetected {
			score += faceSocialBonus
			reasons = append(reasons, "faces drive engagement on social feeds")
		}
	case "tiktok":
		if ratio < verticalRatioMax && m.Duration <= tiktokShortDurationMax {
			score += tiktokVerticalShortBonus
			reasons = append(reasons, "short vertical clips are native to the platform")
		}
		if m.FaceDetected {
			score += faceSocialBonus
			reasons = append(reasons, "faces drive engagement on social feeds")
		}
	case "twitter":
		if m.Duration <= twitterDurationCeiling && m.FileSizeMB <= twitterFileSizeCeilingMB {
			score += twitterCeilingBonus
			reasons = append(reasons, "fits under the duration and size ceilings")
		}
	case "linkedin":
		if ratio > landscapeRatioMin && m.Duration >= linkedinDurationMin && m.Duration <= linkedinDurationMax {
			score += linkedinLandscapeBonus
			reasons = append(reasons, "landscape format at moderate length suits professional feeds")
		}
		if m.TextDetected {
			score += textLongFormBonus
			reasons = append(reasons, "on-screen text carries muted feed playback")
		}
	}

	return score, reasons
}
