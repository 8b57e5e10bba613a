package classification

import (
	"slices"
	"testing"

	"framefit/internal/media"
)

func ptr(v float64) *float64 { return &v }

func baseMetrics() media.Metrics {
	return media.Metrics{Width: 1920, Height: 1080, Duration: 120, FrameRate: 30, Bitrate: 8000, FileSizeMB: 120}
}

func TestClassifyDefaultsToGeneral(t *testing.T) {
	got := Classify(baseMetrics())
	if got.ContentType != General {
		t.Fatalf("content type = %q, want general", got.ContentType)
	}
	if got.Confidence != 60 {
		t.Fatalf("confidence = %f, want base 60", got.Confidence)
	}
	if !slices.Contains(got.Characteristics, "widescreen format") {
		t.Fatalf("missing widescreen evidence: %v", got.Characteristics)
	}
}

func TestClassifyHighFrameRateIsGaming(t *testing.T) {
	m := baseMetrics()
	m.FrameRate = 60
	got := Classify(m)
	if got.ContentType != Gaming {
		t.Fatalf("content type = %q, want gaming", got.ContentType)
	}
	if got.Confidence < 85 {
		t.Fatalf("confidence = %f, want >= 85", got.Confidence)
	}
	if !slices.Contains(got.Characteristics, "high frame rate capture") {
		t.Fatalf("missing gaming evidence: %v", got.Characteristics)
	}
}

func TestClassifyVerticalFaceIsTalkingHead(t *testing.T) {
	m := baseMetrics()
	m.Width, m.Height = 1080, 1920
	m.FaceDetected = true
	got := Classify(m)
	if got.ContentType != TalkingHead {
		t.Fatalf("content type = %q, want talking_head", got.ContentType)
	}
	if got.Confidence != 80 {
		t.Fatalf("confidence = %f, want 80", got.Confidence)
	}
}

func TestClassifyFrameRateOverridesAspectLabel(t *testing.T) {
	m := baseMetrics()
	m.Width, m.Height = 1080, 1920
	m.FaceDetected = true
	m.FrameRate = 120
	got := Classify(m)
	if got.ContentType != Gaming {
		t.Fatalf("later rule should win, got %q", got.ContentType)
	}
	// Both rules contributed confidence even though only the later label survived.
	if got.Confidence != 100 {
		t.Fatalf("confidence = %f, want 100 (60+20+25 clamped)", got.Confidence)
	}
	if !slices.Contains(got.Characteristics, "face in vertical frame") {
		t.Fatalf("overridden rule's evidence must remain: %v", got.Characteristics)
	}
}

func TestClassifyLongLowSceneChangeIsTutorial(t *testing.T) {
	m := baseMetrics()
	m.Duration = 1200
	m.SceneChanges = ptr(0.05)
	got := Classify(m)
	if got.ContentType != Tutorial {
		t.Fatalf("content type = %q, want tutorial", got.ContentType)
	}
	if got.Confidence != 80 {
		t.Fatalf("confidence = %f, want 80", got.Confidence)
	}
}

func TestClassifyLoudAudioIsMusic(t *testing.T) {
	m := baseMetrics()
	m.AudioLevel = ptr(0.9)
	got := Classify(m)
	if got.ContentType != Music {
		t.Fatalf("content type = %q, want music", got.ContentType)
	}
}

func TestClassifyExtremeMotionIsSports(t *testing.T) {
	m := baseMetrics()
	m.MotionVectors = ptr(0.95)
	got := Classify(m)
	if got.ContentType != Sports {
		t.Fatalf("content type = %q, want sports", got.ContentType)
	}
}

func TestClassifyStaticMotionOnlyWhenGeneral(t *testing.T) {
	m := baseMetrics()
	m.MotionVectors = ptr(0.1)
	got := Classify(m)
	if got.ContentType != TalkingHead {
		t.Fatalf("static general asset should be talking_head, got %q", got.ContentType)
	}

	m.AudioLevel = ptr(0.9)
	got = Classify(m)
	if got.ContentType != Music {
		t.Fatalf("static framing must not demote music, got %q", got.ContentType)
	}
}

func TestClassifyHandheldGeneralIsEntertainment(t *testing.T) {
	m := baseMetrics()
	m.StabilityScore = ptr(0.2)
	got := Classify(m)
	if got.ContentType != Entertainment {
		t.Fatalf("content type = %q, want entertainment", got.ContentType)
	}
	if !slices.Contains(got.Characteristics, "handheld camera") {
		t.Fatalf("missing handheld evidence: %v", got.Characteristics)
	}
}

func TestClassifyAnimationNeedsCinematicRateAndColor(t *testing.T) {
	m := baseMetrics()
	m.FrameRate = 24
	m.ColorComplexity = ptr(0.9)
	got := Classify(m)
	if got.ContentType != Animation {
		t.Fatalf("content type = %q, want animation", got.ContentType)
	}
	if !slices.Contains(got.Characteristics, "cinematic frame rate") {
		t.Fatalf("missing cinematic evidence: %v", got.Characteristics)
	}
}

func TestClassifyBoundsHoldAcrossInputGrid(t *testing.T) {
	durations := []float64{0.5, 15, 120, 4000}
	rates := []float64{12, 24, 30, 60, 144}
	dims := [][2]int{{320, 240}, {1080, 1920}, {1920, 1080}, {1080, 1080}, {7680, 4320}}
	signals := []*float64{nil, ptr(0), ptr(0.5), ptr(1)}

	for _, d := range durations {
		for _, r := range rates {
			for _, wh := range dims {
				for _, sig := range signals {
					m := media.Metrics{
						Width: wh[0], Height: wh[1], Duration: d, FrameRate: r,
						Bitrate: 5000, FileSizeMB: 50,
						MotionVectors: sig, AudioLevel: sig, SceneChanges: sig,
						ColorComplexity: sig, StabilityScore: sig,
					}
					got := Classify(m)
					if got.Confidence < 0 || got.Confidence > 100 {
						t.Fatalf("confidence %f out of range for %+v", got.Confidence, m)
					}
					if !got.ContentType.Known() {
						t.Fatalf("unknown content type %q for %+v", got.ContentType, m)
					}
				}
			}
		}
	}
}
