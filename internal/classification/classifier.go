package classification

import (
	"framefit/internal/media"
	"framefit/internal/numutil"
)

// Result is the classifier's verdict for one asset.
type Result struct {
	ContentType ContentType `json:"content_type"`
	Confidence  float64     `json:"confidence"`
	// Characteristics is append-only evidence, in rule order.
	Characteristics []string `json:"characteristics"`
}

const baseConfidence = 60

// Signal thresholds used by the rule table. These are hand-tuned against the
// reference corpus; change them only with new evidence.
const (
	verticalRatioMax     = 0.8
	squareRatioTolerance = 0.1
	widescreenRatioMin   = 1.7
	shortDurationMax     = 30
	mediumDurationMax    = 180
	highMotionMin        = 0.8
	sportsMotionMin      = 0.9
	staticMotionMax      = 0.2
	lowSceneChangeMax    = 0.1
	gamingFrameRateMin   = 60
	cinematicFrameRate   = 24
	highColorMin         = 0.8
	loudAudioMin         = 0.8
	handheldStabilityMax = 0.3
)

// outcome is one rule's contribution: optional evidence, and optionally a
// label overwrite with a confidence delta.
type outcome struct {
	label    ContentType
	delta    float64
	evidence []string
}

// rule inspects the metrics and the label accumulated so far. Rules run in
// slice order and later rules win label conflicts.
type rule func(m media.Metrics, current ContentType) outcome

var rules = []rule{
	aspectRule,
	durationRule,
	frameRateRule,
	audioRule,
	motionRule,
	stabilityRule,
}

// Classify folds the rule table over the metrics, starting from the
// "general" label at base confidence.
func Classify(m media.Metrics) Result {
	label := General
	confidence := float64(baseConfidence)
	var characteristics []string

	for _, r := range rules {
		out := r(m, label)
		characteristics = append(characteristics, out.evidence...)
		if out.label != "" {
			label = out.label
			confidence += out.delta
		}
	}

	return Result{
		ContentType:     label,
		Confidence:      numutil.ClampScore(confidence),
		Characteristics: characteristics,
	}
}

func aspectRule(m media.Metrics, _ ContentType) outcome {
	ratio := m.Ratio()
	var out outcome
	switch {
	case ratio < verticalRatioMax:
		out.evidence = append(out.evidence, "vertical format")
	case numutil.NearlyEqual(ratio, 1, squareRatioTolerance):
		out.evidence = append(out.evidence, "square format")
	case ratio > widescreenRatioMin:
		out.evidence = append(out.evidence, "widescreen format")
	}
	if ratio < verticalRatioMax && m.FaceDetected {
		out.label = TalkingHead
		out.delta = 20
		out.evidence = append(out.evidence, "face in vertical frame")
	}
	return out
}

func durationRule(m media.Metrics, _ ContentType) outcome {
	var out outcome
	switch {
	case m.Duration <= shortDurationMax:
		out.evidence = append(out.evidence, "short-form duration")
	case m.Duration <= mediumDurationMax:
		out.evidence = append(out.evidence, "medium duration")
	default:
		out.evidence = append(out.evidence, "long-form duration")
	}

	motion, hasMotion := media.Signal(m.MotionVectors)
	if m.Duration <= shortDurationMax && hasMotion && motion > highMotionMin {
		out.label = Entertainment
		out.delta = 15
		out.evidence = append(out.evidence, "fast-paced short clip")
		return out
	}
	scenes, hasScenes := media.Signal(m.SceneChanges)
	if m.Duration > mediumDurationMax && hasScenes && scenes < lowSceneChangeMax {
		out.label = Tutorial
		out.delta = 20
		out.evidence = append(out.evidence, "long single-scene presentation")
	}
	return out
}

func frameRateRule(m media.Metrics, _ ContentType) outcome {
	var out outcome
	if m.FrameRate >= gamingFrameRateMin {
		out.label = Gaming
		out.delta = 25
		out.evidence = append(out.evidence, "high frame rate capture")
		return out
	}
	if m.FrameRate <= cinematicFrameRate {
		out.evidence = append(out.evidence, "cinematic frame rate")
		if color, ok := media.Signal(m.ColorComplexity); ok && color > highColorMin {
			out.label = Animation
			out.delta = 15
			out.evidence = append(out.evidence, "saturated palette at film cadence")
		}
	}
	return out
}

func audioRule(m media.Metrics, _ ContentType) outcome {
	if level, ok := media.Signal(m.AudioLevel); ok && level > loudAudioMin {
		return outcome{label: Music, delta: 20, evidence: []string{"prominent audio track"}}
	}
	return outcome{}
}

func motionRule(m media.Metrics, current ContentType) outcome {
	motion, ok := media.Signal(m.MotionVectors)
	if !ok {
		return outcome{}
	}
	if motion > sportsMotionMin {
		return outcome{label: Sports, delta: 15, evidence: []string{"sustained high motion"}}
	}
	// Static framing only reclassifies assets nothing stronger has claimed.
	if motion < staticMotionMax && current == General {
		return outcome{label: TalkingHead, delta: 10, evidence: []string{"static framing"}}
	}
	return outcome{}
}

func stabilityRule(m media.Metrics, current ContentType) outcome {
	stability, ok := media.Signal(m.StabilityScore)
	if !ok || stability >= handheldStabilityMax {
		return outcome{}
	}
	out := outcome{evidence: []string{"handheld camera"}}
	if current == General {
		out.label = Entertainment
		out.delta = 10
	}
	return out
}
