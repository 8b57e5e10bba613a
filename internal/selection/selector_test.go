package selection

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"framefit/internal/catalog"
	"framefit/internal/classification"
	"framefit/internal/media"
)

func ptr(v float64) *float64 { return &v }

func metricsFor(width, height int) media.Metrics {
	return media.Metrics{Width: width, Height: height, Duration: 120, FrameRate: 30, Bitrate: 8000, FileSizeMB: 120}
}

func TestSelectPresetUnknownPlatform(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	_, err := SelectPreset(cat, "vimeo", classification.General, metricsFor(1920, 1080))
	if !errors.Is(err, catalog.ErrNoPresets) {
		t.Fatalf("expected ErrNoPresets, got %v", err)
	}
}

func TestSelectPresetDefaultsToFirstCatalogEntry(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	plan, err := SelectPreset(cat, "YouTube", classification.General, metricsFor(1920, 1080))
	if err != nil {
		t.Fatalf("SelectPreset: %v", err)
	}
	if plan.Preset.ID != "youtube-1080p-balanced" {
		t.Fatalf("preset = %q", plan.Preset.ID)
	}
	if plan.Confidence != 70 {
		t.Fatalf("confidence = %f, want base 70", plan.Confidence)
	}
	if len(plan.Customizations) != 0 {
		t.Fatalf("unexpected customizations: %+v", plan.Customizations)
	}
}

func TestSelectPresetGamingPrefersHighFrameRate(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	plan, err := SelectPreset(cat, "youtube", classification.Gaming, metricsFor(1920, 1080))
	if err != nil {
		t.Fatalf("SelectPreset: %v", err)
	}
	if plan.Preset.ID != "youtube-1080p60-motion" {
		t.Fatalf("preset = %q, want the 60fps sibling", plan.Preset.ID)
	}
	if plan.Preset.BFrames > 1 {
		t.Fatalf("gaming should minimize B-frames, got %d", plan.Preset.BFrames)
	}
	if _, ok := plan.Customizations["tune"]; !ok {
		t.Fatalf("missing tune customization: %+v", plan.Customizations)
	}
	if plan.Confidence <= 70 {
		t.Fatalf("applied overrides should raise confidence, got %f", plan.Confidence)
	}
}

func TestSelectPresetGamingFallsBackWithoutFastPreset(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	plan, err := SelectPreset(cat, "tiktok", classification.Gaming, metricsFor(1080, 1920))
	if err != nil {
		t.Fatalf("SelectPreset: %v", err)
	}
	if plan.Preset.ID != "tiktok-vertical" {
		t.Fatalf("preset = %q", plan.Preset.ID)
	}
	if _, swapped := plan.Customizations["preset"]; swapped {
		t.Fatal("no 60fps preset exists for tiktok; nothing should swap")
	}
}

func TestSelectPresetTalkingHeadTightensCRF(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	base := cat.PresetsFor("linkedin")[0]
	plan, err := SelectPreset(cat, "linkedin", classification.TalkingHead, metricsFor(1920, 1080))
	if err != nil {
		t.Fatalf("SelectPreset: %v", err)
	}
	if plan.Preset.CRF != base.CRF-2 {
		t.Fatalf("crf = %d, want %d", plan.Preset.CRF, base.CRF-2)
	}
	if !plan.Preset.Denoise {
		t.Fatal("talking_head should enable denoise")
	}
}

func TestSelectPresetMusicRaisesAudioFloor(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	plan, err := SelectPreset(cat, "instagram", classification.Music, metricsFor(1080, 1080))
	if err != nil {
		t.Fatalf("SelectPreset: %v", err)
	}
	if plan.Preset.AudioBitrate < 192 {
		t.Fatalf("audio bitrate = %d, want >= 192", plan.Preset.AudioBitrate)
	}
}

func TestSelectPresetSignalOverrides(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	m := metricsFor(1920, 1080)
	m.NoiseLevel = ptr(0.8)
	m.StabilityScore = ptr(0.2)

	plan, err := SelectPreset(cat, "youtube", classification.General, m)
	if err != nil {
		t.Fatalf("SelectPreset: %v", err)
	}
	if !plan.Preset.Denoise {
		t.Fatal("noise > 0.7 should force denoise")
	}
	if !plan.Preset.Stabilize {
		t.Fatal("stability < 0.4 should force stabilization")
	}
}

func TestSelectPresetResizeWhenSourceExceedsPresetMax(t *testing.T) {
	cat := catalog.MustLoadBuiltin()
	plan, err := SelectPreset(cat, "tiktok", classification.General, metricsFor(2160, 3840))
	if err != nil {
		t.Fatalf("SelectPreset: %v", err)
	}
	resize, ok := plan.Customizations["resize"]
	if !ok {
		t.Fatalf("missing resize customization: %+v", plan.Customizations)
	}
	if !strings.Contains(resize, "1080x1920") {
		t.Fatalf("resize target = %q, want preset max resolution", resize)
	}
	if !strings.Contains(resize, "lanczos") {
		t.Fatalf("resize should request high-quality resampling, got %q", resize)
	}
}

func flaggedCatalog(t *testing.T, flags ...string) *catalog.Catalog {
	t.Helper()
	platforms := []catalog.PlatformSpec{{
		ID: "demo",
		Variants: []catalog.PresetVariant{{
			Name: "v", Width: 1920, Height: 1080,
			Bitrate: catalog.BitrateEnvelope{Min: 1000, Recommended: 2000, Max: 3000},
		}},
	}}
	presets := []catalog.CompressionPreset{{
		ID: "demo-default", Platform: "demo", CRF: 23,
		MaxResolution: catalog.Resolution{Width: 1920, Height: 1080},
		Bitrate:       catalog.BitrateBounds{Min: 1000, Target: 2000, Max: 3000},
		// Spare capacity so an aliasing append would land in the shared array.
		Flags: append(make([]string, 0, 16), flags...),
	}}
	cat, err := catalog.New(platforms, presets)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func TestSelectPresetFlagOverridesDoNotAliasCatalog(t *testing.T) {
	cat := flaggedCatalog(t, "faststart")

	gaming, err := SelectPreset(cat, "demo", classification.Gaming, metricsFor(1920, 1080))
	if err != nil {
		t.Fatalf("SelectPreset: %v", err)
	}
	sports, err := SelectPreset(cat, "demo", classification.Sports, metricsFor(1920, 1080))
	if err != nil {
		t.Fatalf("SelectPreset: %v", err)
	}

	want := []string{"faststart", "tune=zerolatency"}
	if !slices.Equal(gaming.Preset.Flags, want) {
		t.Fatalf("earlier plan's flags rewritten by later call: %v", gaming.Preset.Flags)
	}
	if !slices.Equal(sports.Preset.Flags, []string{"faststart", "me=esa"}) {
		t.Fatalf("sports flags = %v", sports.Preset.Flags)
	}
	if got := cat.PresetsFor("demo")[0].Flags; !slices.Equal(got, []string{"faststart"}) {
		t.Fatalf("catalog preset mutated: %v", got)
	}
}

func TestSelectPresetDoesNotDuplicateExistingFlags(t *testing.T) {
	cat := flaggedCatalog(t, "me=esa")

	plan, err := SelectPreset(cat, "demo", classification.Sports, metricsFor(1920, 1080))
	if err != nil {
		t.Fatalf("SelectPreset: %v", err)
	}
	if !slices.Equal(plan.Preset.Flags, []string{"me=esa"}) {
		t.Fatalf("flags = %v, want single me=esa", plan.Preset.Flags)
	}
	if _, ok := plan.Customizations["motion_search"]; !ok {
		t.Fatalf("customization should still be recorded: %+v", plan.Customizations)
	}
}

func TestSelectPresetCRFNeverGoesNegative(t *testing.T) {
	platforms := []catalog.PlatformSpec{{
		ID: "demo",
		Variants: []catalog.PresetVariant{{
			Name: "v", Width: 1920, Height: 1080,
			Bitrate: catalog.BitrateEnvelope{Min: 1000, Recommended: 2000, Max: 3000},
		}},
	}}
	presets := []catalog.CompressionPreset{{
		ID: "demo-low-crf", Platform: "demo", CRF: 1,
		MaxResolution: catalog.Resolution{Width: 1920, Height: 1080},
		Bitrate:       catalog.BitrateBounds{Min: 1000, Target: 2000, Max: 3000},
	}}
	cat, err := catalog.New(platforms, presets)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	plan, err := SelectPreset(cat, "demo", classification.TalkingHead, metricsFor(1920, 1080))
	if err != nil {
		t.Fatalf("SelectPreset: %v", err)
	}
	if plan.Preset.CRF < 0 {
		t.Fatalf("crf = %d, must be clamped", plan.Preset.CRF)
	}
}
