package quality

import (
	"strings"
	"testing"

	"framefit/internal/catalog"
	"framefit/internal/media"
)

func TestComplianceVerticalClipOnTikTok(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	m := media.Metrics{Width: 1080, Height: 1920, Duration: 45, FrameRate: 30, Bitrate: 8000, FileSizeMB: 40}

	report, err := Validate(cat, m, []string{"tiktok"}, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(report.Platforms) != 1 {
		t.Fatalf("platforms = %d", len(report.Platforms))
	}
	c := report.Platforms[0]
	if !c.Compliant || len(c.Violations) != 0 {
		t.Fatalf("expected full compliance, got %+v", c)
	}
	if c.Percentage != 100 {
		t.Fatalf("percentage = %f", c.Percentage)
	}
}

func TestComplianceRoundTripWithRecommendedVariant(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	spec, err := cat.Platform("youtube")
	if err != nil {
		t.Fatalf("Platform: %v", err)
	}
	v := spec.RecommendedVariant()

	m := media.Metrics{
		Width:     v.Width,
		Height:    v.Height,
		Duration:  60,
		FrameRate: v.FrameRate,
		Bitrate:   float64(v.Bitrate.Recommended),
	}
	m.FileSizeMB = m.EstimatedSizeMB()

	report, err := Validate(cat, m, []string{spec.ID}, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	c := report.Platforms[0]
	if !c.Compliant || len(c.Violations) != 0 {
		t.Fatalf("metrics built from the recommended variant must comply: %+v", c)
	}
}

func TestComplianceStacksDeductions(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	// Landscape, over-long, oversized, over-bitrate for twitter.
	m := media.Metrics{Width: 1080, Height: 1080, Duration: 3000, FrameRate: 30, Bitrate: 20000, FileSizeMB: 9000}

	report, err := Validate(cat, m, []string{"twitter"}, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	c := report.Platforms[0]
	if c.Compliant {
		t.Fatalf("expected violations: %+v", c)
	}
	// aspect 30 + duration 25 + size 20 + bitrate-high 10 = 85 off.
	if c.Percentage != 15 {
		t.Fatalf("percentage = %f, want 15; violations: %v", c.Percentage, c.Violations)
	}
	if len(c.Violations) != 4 {
		t.Fatalf("violations = %v", c.Violations)
	}
	if len(c.Recommendations) != len(c.Violations) {
		t.Fatalf("each violation needs a recommendation: %+v", c)
	}
}

func TestComplianceWorstCaseStaysNonNegative(t *testing.T) {
	platforms := []catalog.PlatformSpec{{
		ID: "strict",
		Variants: []catalog.PresetVariant{{
			Name: "tiny", Width: 640, Height: 480, AspectRatio: 4.0 / 3.0,
			Bitrate:        catalog.BitrateEnvelope{Min: 5000, Recommended: 6000, Max: 7000},
			MaxDurationSec: 10, MaxFileSizeMB: 1,
		}},
	}}
	cat, err := catalog.New(platforms, nil)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	m := media.Metrics{Width: 1080, Height: 1920, Duration: 4000, FrameRate: 30, Bitrate: 900, FileSizeMB: 500}
	report, err := Validate(cat, m, []string{"strict"}, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	c := report.Platforms[0]
	// All four deductions stack: 100 - 30 - 25 - 20 - 15.
	if c.Percentage != 10 {
		t.Fatalf("percentage = %f; violations: %v", c.Percentage, c.Violations)
	}
	if c.Percentage < 0 {
		t.Fatal("percentage must never go negative")
	}
}

func TestComplianceViolationMentionsRatioLabel(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	m := media.Metrics{Width: 1920, Height: 1080, Duration: 30, FrameRate: 30, Bitrate: 6000, FileSizeMB: 30}

	report, err := Validate(cat, m, []string{"tiktok"}, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	c := report.Platforms[0]
	if c.Compliant {
		t.Fatalf("16:9 asset cannot comply with tiktok: %+v", c)
	}
	joined := strings.Join(c.Recommendations, " ")
	if !strings.Contains(joined, "9:16") {
		t.Fatalf("recommendation should name the target ratio: %v", c.Recommendations)
	}
}
