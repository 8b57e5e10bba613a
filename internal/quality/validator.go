package quality

import (
	"fmt"

	"framefit/internal/catalog"
	"framefit/internal/media"
	"framefit/internal/numutil"
)

// Absolute technical thresholds for the basic checks.
const (
	minEdgePixels        = 480
	maxWidthPixels       = 7680
	maxHeightPixels      = 4320
	minDurationSec       = 1
	warnDurationSec      = 3600
	minBitratePerPixel   = 0.001
	maxBitratePerPixel   = 0.1
	fixBitratePerPixel   = 0.002
	minFrameRate         = 15
	maxFrameRate         = 120
	suggestFrameRate     = 24
	minAudioBitrateKbps  = 64
	suggestAudioKbps     = 128
	lowAverageQuality    = 0.70
	warnAverageQuality   = 0.85
	warnNoiseLevel       = 0.3
	warnMotionBlur       = 0.4
	warnColorAccuracy    = 0.8
	lowAudioQuality      = 0.7
	warnStabilityScore   = 0.6
	goodStabilityScore   = 0.8
	goodColorAccuracy    = 0.9
	sweetSpotBPPMin      = 0.005
	sweetSpotBPPMax      = 0.02
	baseValidationScore  = 85
	criticalPenalty      = 25
	majorPenalty         = 15
	minorPenalty         = 5
	warningPenalty       = 3
	signalBonus          = 5
	qualityBonusPerPoint = 30
)

// DefaultReadyScoreFloor is the minimum score for the export-ready verdict
// when the caller supplies no policy of its own.
const DefaultReadyScoreFloor = 60

// Validate runs the full check pipeline: basic requirements, quality signals,
// per-platform compliance, and preset-settings sanity when settings are
// supplied. Identical inputs always produce identical reports.
func Validate(cat *catalog.Catalog, m media.Metrics, platformIDs []string, settings *catalog.CompressionPreset) (Report, error) {
	if err := m.Validate(); err != nil {
		return Report{}, err
	}

	var report Report
	checkBasicRequirements(&report, m)
	checkQualitySignals(&report, m)

	for _, id := range platformIDs {
		spec, err := cat.Platform(id)
		if err != nil {
			return Report{}, err
		}
		report.Platforms = append(report.Platforms, checkPlatformCompliance(spec, m))
	}

	if settings != nil {
		checkPresetSettings(&report, m, *settings)
	}

	report.Valid = report.countBySeverity(SeverityCritical) == 0
	report.Score = computeScore(report, m)
	report.Recommendations = recommend(report, m)
	return report, nil
}

// ExportReady derives the go/no-go verdict from a validation run.
func ExportReady(cat *catalog.Catalog, m media.Metrics, platformIDs []string) (Readiness, error) {
	return ExportReadyAt(cat, m, platformIDs, DefaultReadyScoreFloor)
}

// ExportReadyAt derives the verdict using a caller-supplied score floor.
func ExportReadyAt(cat *catalog.Catalog, m media.Metrics, platformIDs []string, floor float64) (Readiness, error) {
	report, err := Validate(cat, m, platformIDs, nil)
	if err != nil {
		return Readiness{}, err
	}
	blockers := report.CriticalMessages()
	return Readiness{
		Ready:    len(blockers) == 0 && report.Score >= floor,
		Blockers: blockers,
		Score:    report.Score,
	}, nil
}

func checkBasicRequirements(report *Report, m media.Metrics) {
	if m.Width < minEdgePixels || m.Height < minEdgePixels {
		report.Issues = append(report.Issues, Issue{
			Severity: SeverityMajor,
			Category: CategoryResolution,
			Message:  fmt.Sprintf("resolution %dx%d is below the %dp minimum", m.Width, m.Height, minEdgePixels),
			Fix:      "re-export from a higher-resolution source",
		})
	}
	if m.Width > maxWidthPixels || m.Height > maxHeightPixels {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("resolution %dx%d exceeds 8K; most platforms will downscale it", m.Width, m.Height))
	}

	if m.Duration < minDurationSec {
		report.Issues = append(report.Issues, Issue{
			Severity: SeverityCritical,
			Category: CategoryDuration,
			Message:  fmt.Sprintf("duration is too short (%.2fs)", m.Duration),
			Fix:      "export at least one full second of footage",
		})
	}
	if m.Duration > warnDurationSec {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("duration %.0fs exceeds one hour; consider splitting", m.Duration))
	}

	bpp := m.BitratePerPixel()
	if bpp < minBitratePerPixel {
		minKbps := numutil.RoundUp(float64(m.PixelCount()) * fixBitratePerPixel)
		report.Issues = append(report.Issues, Issue{
			Severity:    SeverityMajor,
			Category:    CategoryBitrate,
			Message:     fmt.Sprintf("bitrate %.0f kbps is too low for %dx%d", m.Bitrate, m.Width, m.Height),
			Fix:         fmt.Sprintf("increase bitrate to at least %d kbps", minKbps),
			AutoFixable: true,
		})
	}
	if bpp > maxBitratePerPixel {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("bitrate %.0f kbps is unusually high for %dx%d; file size suffers", m.Bitrate, m.Width, m.Height))
	}

	if m.FrameRate < minFrameRate {
		report.Issues = append(report.Issues, Issue{
			Severity:    SeverityMinor,
			Category:    CategoryFormat,
			Message:     fmt.Sprintf("frame rate %.1f fps is below the playable minimum", m.FrameRate),
			Fix:         fmt.Sprintf("re-encode at %d fps or higher", suggestFrameRate),
			AutoFixable: true,
		})
	}
	if m.FrameRate > maxFrameRate {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("frame rate %.0f fps exceeds 120; most platforms cap playback below it", m.FrameRate))
	}

	if audio, ok := media.PositiveSignal(m.AudioBitrate); ok && audio < minAudioBitrateKbps {
		report.Issues = append(report.Issues, Issue{
			Severity:    SeverityMinor,
			Category:    CategoryAudio,
			Message:     fmt.Sprintf("audio bitrate %.0f kbps is below %d kbps", audio, minAudioBitrateKbps),
			Fix:         fmt.Sprintf("raise audio bitrate to %d kbps or higher", suggestAudioKbps),
			AutoFixable: true,
		})
	}
}

func checkQualitySignals(report *Report, m media.Metrics) {
	if avg, ok := media.Signal(m.AverageQuality); ok {
		switch {
		case avg < lowAverageQuality:
			report.Issues = append(report.Issues, Issue{
				Severity: SeverityMajor,
				Category: CategoryQuality,
				Message:  fmt.Sprintf("average quality %.2f is below the acceptable floor", avg),
				Fix:      "re-encode at a higher bitrate or slower profile",
			})
		case avg < warnAverageQuality:
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("average quality %.2f leaves visible headroom", avg))
		}
	}
	if noise, ok := media.Signal(m.NoiseLevel); ok && noise > warnNoiseLevel {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("noise level %.2f is noticeable on large displays", noise))
	}
	if blur, ok := media.Signal(m.MotionBlur); ok && blur > warnMotionBlur {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("motion blur %.2f smears fast movement", blur))
	}
	if color, ok := media.Signal(m.ColorAccuracy); ok && color < warnColorAccuracy {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("color accuracy %.2f drifts from the source grade", color))
	}
	if audio, ok := media.Signal(m.AudioQuality); ok && audio < lowAudioQuality {
		report.Issues = append(report.Issues, Issue{
			Severity: SeverityMinor,
			Category: CategoryAudio,
			Message:  fmt.Sprintf("audio quality %.2f is degraded", audio),
			Fix:      "re-master audio from the original track",
		})
	}
	if stability, ok := media.Signal(m.StabilityScore); ok && stability < warnStabilityScore {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("stability %.2f reads as shaky footage", stability))
	}
}

func computeScore(report Report, m media.Metrics) float64 {
	score := float64(baseValidationScore)
	score -= float64(report.countBySeverity(SeverityCritical) * criticalPenalty)
	score -= float64(report.countBySeverity(SeverityMajor) * majorPenalty)
	score -= float64(report.countBySeverity(SeverityMinor) * minorPenalty)
	score -= float64(len(report.Warnings) * warningPenalty)

	if avg, ok := media.Signal(m.AverageQuality); ok {
		score += (avg - lowAverageQuality) * qualityBonusPerPoint
	}
	if stability, ok := media.Signal(m.StabilityScore); ok && stability > goodStabilityScore {
		score += signalBonus
	}
	if color, ok := media.Signal(m.ColorAccuracy); ok && color > goodColorAccuracy {
		score += signalBonus
	}
	if bpp := m.BitratePerPixel(); bpp >= sweetSpotBPPMin && bpp <= sweetSpotBPPMax {
		score += signalBonus
	}
	return numutil.ClampScore(score)
}
