package quality

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"framefit/internal/catalog"
	"framefit/internal/media"
)

func ptr(v float64) *float64 { return &v }

func cleanMetrics() media.Metrics {
	return media.Metrics{Width: 1920, Height: 1080, Duration: 120, FrameRate: 30, Bitrate: 8000, FileSizeMB: 120}
}

func TestValidateCleanAssetPasses(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	report, err := Validate(cat, cleanMetrics(), nil, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !report.Valid {
		t.Fatalf("expected valid report: %+v", report)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("unexpected issues: %+v", report.Issues)
	}
	if report.Score != 85 {
		t.Fatalf("score = %f, want base 85", report.Score)
	}
}

func TestValidateShortDurationIsCritical(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	m := cleanMetrics()
	m.Duration = 0.5
	m.AverageQuality = ptr(0.95)

	report, err := Validate(cat, m, []string{"youtube"}, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if report.Valid {
		t.Fatal("critical issue must invalidate regardless of other metrics")
	}
	blockers := report.CriticalMessages()
	if len(blockers) != 1 || !strings.Contains(blockers[0], "duration is too short") {
		t.Fatalf("blockers = %v", blockers)
	}
}

func TestValidateLowResolutionIsMajorEverywhere(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	m := cleanMetrics()
	m.Width, m.Height = 320, 240
	m.Bitrate = 300

	for _, platforms := range [][]string{nil, {"youtube"}, {"tiktok", "twitter"}} {
		report, err := Validate(cat, m, platforms, nil)
		if err != nil {
			t.Fatalf("Validate(%v): %v", platforms, err)
		}
		found := false
		for _, issue := range report.Issues {
			if issue.Category == CategoryResolution && issue.Severity == SeverityMajor {
				found = true
				if issue.AutoFixable {
					t.Fatal("resolution issues are not auto-fixable")
				}
			}
		}
		if !found {
			t.Fatalf("missing resolution issue for platforms %v: %+v", platforms, report.Issues)
		}
	}
}

func TestValidateLowBitrateComputesFix(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	m := cleanMetrics()
	m.Bitrate = 1000 // 1920*1080 = 2073600 pixels -> bpp 0.00048

	report, err := Validate(cat, m, nil, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	var bitrateIssue *Issue
	for i := range report.Issues {
		if report.Issues[i].Category == CategoryBitrate {
			bitrateIssue = &report.Issues[i]
		}
	}
	if bitrateIssue == nil {
		t.Fatalf("missing bitrate issue: %+v", report.Issues)
	}
	// pixelCount * 0.002 = 4147.2, rounded up.
	if !strings.Contains(bitrateIssue.Fix, "4148") {
		t.Fatalf("fix = %q, want computed minimum 4148 kbps", bitrateIssue.Fix)
	}
	if !bitrateIssue.AutoFixable {
		t.Fatal("bitrate fix should be auto-fixable")
	}
}

func TestValidateFrameRateBounds(t *testing.T) {
	cat := catalog.MustLoadBuiltin()

	m := cleanMetrics()
	m.FrameRate = 12
	report, err := Validate(cat, m, nil, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if n := report.countBySeverity(SeverityMinor); n != 1 {
		t.Fatalf("minor issues = %d, want 1: %+v", n, report.Issues)
	}

	m.FrameRate = 144
	report, err = Validate(cat, m, nil, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(report.Warnings) == 0 {
		t.Fatalf("expected a high frame rate warning: %+v", report)
	}
}

func TestValidateQualitySignalsOnlyWhenPresent(t *testing.T) {
	cat := catalog.MustLoadBuiltin()

	report, err := Validate(cat, cleanMetrics(), nil, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(report.Warnings) != 0 {
		t.Fatalf("absent signals must not warn: %v", report.Warnings)
	}

	m := cleanMetrics()
	m.AverageQuality = ptr(0.6)
	m.NoiseLevel = ptr(0.5)
	m.MotionBlur = ptr(0.5)
	m.ColorAccuracy = ptr(0.5)
	m.AudioQuality = ptr(0.5)
	m.StabilityScore = ptr(0.5)

	report, err = Validate(cat, m, nil, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if n := report.countBySeverity(SeverityMajor); n != 1 {
		t.Fatalf("major issues = %d, want 1 (low average quality)", n)
	}
	if n := report.countBySeverity(SeverityMinor); n != 1 {
		t.Fatalf("minor issues = %d, want 1 (audio quality)", n)
	}
	if len(report.Warnings) != 4 {
		t.Fatalf("warnings = %d, want 4: %v", len(report.Warnings), report.Warnings)
	}
}

func TestValidateUnknownPlatformSurfacesNotFound(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	_, err := Validate(cat, cleanMetrics(), []string{"youtube", "vimeo"}, nil)
	if !errors.Is(err, catalog.ErrPlatformNotFound) {
		t.Fatalf("expected ErrPlatformNotFound, got %v", err)
	}
}

func TestValidateStructurallyInvalidMetricsFail(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	_, err := Validate(cat, media.Metrics{}, nil, nil)
	if !errors.Is(err, media.ErrInvalidMetrics) {
		t.Fatalf("expected ErrInvalidMetrics, got %v", err)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	m := cleanMetrics()
	m.AverageQuality = ptr(0.8)
	m.NoiseLevel = ptr(0.4)

	first, err := Validate(cat, m, []string{"youtube", "twitter"}, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	second, err := Validate(cat, m, []string{"youtube", "twitter"}, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reports differ:\n%+v\n%+v", first, second)
	}
}

func TestValidateScoreArithmetic(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	m := cleanMetrics()
	m.AverageQuality = ptr(0.9)
	m.StabilityScore = ptr(0.9)
	m.ColorAccuracy = ptr(0.95)

	report, err := Validate(cat, m, nil, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	// 85 + (0.9-0.7)*30 + 5 (stability) + 5 (color) = 101 -> clamped.
	if report.Score != 100 {
		t.Fatalf("score = %f, want 100", report.Score)
	}
}

func TestValidatePresetSettingsSanity(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	settings := cat.PresetsFor("youtube")[0]
	settings.Codec = "prores"
	settings.Container = "mxf"
	settings.CRF = 10
	settings.EncodeProfile = "veryslow"

	m := cleanMetrics()
	m.Duration = 900
	report, err := Validate(cat, m, nil, &settings)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(report.Warnings) != 3 {
		t.Fatalf("warnings = %d, want codec+crf+profile: %v", len(report.Warnings), report.Warnings)
	}
}

func TestExportReady(t *testing.T) {
	cat := catalog.MustLoadBuiltin()

	ready, err := ExportReady(cat, cleanMetrics(), []string{"youtube"})
	if err != nil {
		t.Fatalf("ExportReady: %v", err)
	}
	if !ready.Ready || len(ready.Blockers) != 0 {
		t.Fatalf("clean asset should be ready: %+v", ready)
	}

	m := cleanMetrics()
	m.Duration = 0.5
	ready, err = ExportReady(cat, m, []string{"youtube"})
	if err != nil {
		t.Fatalf("ExportReady: %v", err)
	}
	if ready.Ready {
		t.Fatalf("critical issue should block: %+v", ready)
	}
	if len(ready.Blockers) != 1 {
		t.Fatalf("blockers = %v", ready.Blockers)
	}
}
