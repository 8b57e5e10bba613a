package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"framefit/internal/media"
)

func standardClip() media.Metrics {
	return media.Metrics{
		Width:      1920,
		Height:     1080,
		Duration:   120,
		FrameRate:  30,
		Bitrate:    8000,
		FileSizeMB: 120,
	}
}

func TestClassifyCommandPrintsLabel(t *testing.T) {
	setupHome(t)
	path := writeMetricsFile(t, media.Metrics{
		Width:        1080,
		Height:       1920,
		Duration:     45,
		FrameRate:    30,
		Bitrate:      6000,
		FileSizeMB:   34,
		FaceDetected: true,
	})

	out, err := runCLI(t, "classify", path)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	requireContains(t, out, "talking_head")
	requireContains(t, out, "face in vertical frame")
}

func TestPlatformsListShowsCatalogOrder(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "platforms", "list")
	if err != nil {
		t.Fatalf("platforms list: %v", err)
	}
	youtube := strings.Index(out, "youtube")
	linkedin := strings.Index(out, "linkedin")
	if youtube < 0 || linkedin < 0 {
		t.Fatalf("expected youtube and linkedin in output: %q", out)
	}
	if youtube > linkedin {
		t.Fatal("expected catalog declaration order in listing")
	}
}

func TestPlatformsRankOutputsEveryPlatform(t *testing.T) {
	setupHome(t)
	path := writeMetricsFile(t, standardClip())

	out, err := runCLI(t, "platforms", "rank", path)
	if err != nil {
		t.Fatalf("platforms rank: %v", err)
	}
	for _, name := range []string{"YouTube", "Instagram", "TikTok", "Twitter", "LinkedIn"} {
		requireContains(t, out, name)
	}
}

func TestPresetsListFilterByPlatform(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "presets", "list", "--platform", "tiktok")
	if err != nil {
		t.Fatalf("presets list: %v", err)
	}
	requireContains(t, out, "tiktok-vertical")
	if strings.Contains(out, "youtube-1080p-balanced") {
		t.Fatal("expected only tiktok presets in filtered listing")
	}

	if _, err := runCLI(t, "presets", "list", "--platform", "nosuch"); err == nil {
		t.Fatal("expected error for unknown platform")
	}
}

func TestValidateCommandReportsScore(t *testing.T) {
	setupHome(t)
	path := writeMetricsFile(t, standardClip())

	out, err := runCLI(t, "validate", path, "--platform", "youtube")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	requireContains(t, out, "Quality:")
	requireContains(t, out, "youtube")
}

func TestReadyCommandFailsForBrokenClip(t *testing.T) {
	setupHome(t)
	broken := standardClip()
	broken.Duration = 0.5

	path := writeMetricsFile(t, broken)
	out, err := runCLI(t, "ready", path, "--platform", "youtube")
	if err == nil {
		t.Fatalf("expected non-ready exit, output: %q", out)
	}

	good := writeMetricsFile(t, standardClip())
	if _, err := runCLI(t, "ready", good, "--platform", "youtube"); err != nil {
		t.Fatalf("expected ready clip to pass: %v", err)
	}
}

func TestAnalyzeStoreAndHistoryRoundTrip(t *testing.T) {
	setupHome(t)
	path := writeMetricsFile(t, standardClip())

	out, err := runCLI(t, "analyze", path, "--store")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, out, "Saved report")
	requireContains(t, out, "Content type:")

	out, err = runCLI(t, "history", "list")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "metrics.json")

	out, err = runCLI(t, "history", "clear")
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, out, "Removed 1 report(s)")
}

func TestAnalyzeJSONOutput(t *testing.T) {
	setupHome(t)
	path := writeMetricsFile(t, standardClip())

	out, err := runCLI(t, "--json", "analyze", path)
	if err != nil {
		t.Fatalf("analyze --json: %v", err)
	}
	requireContains(t, out, "\"classification\"")
	requireContains(t, out, "\"readiness\"")
}

func TestValidateWithSettingsFile(t *testing.T) {
	setupHome(t)
	path := writeMetricsFile(t, standardClip())

	settings := filepath.Join(t.TempDir(), "settings.json")
	body := `{"id":"custom","platform":"youtube","codec":"h264","container":"mp4","crf":40,"bitrate":{"min":1000,"target":4000,"max":8000}}`
	if err := os.WriteFile(settings, []byte(body), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	out, err := runCLI(t, "validate", path, "--platform", "youtube", "--settings", settings)
	if err != nil {
		t.Fatalf("validate --settings: %v", err)
	}
	requireContains(t, out, "crf 40 is outside")
}
