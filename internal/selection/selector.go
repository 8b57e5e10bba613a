package selection

import (
	"fmt"
	"slices"

	"framefit/internal/catalog"
	"framefit/internal/classification"
	"framefit/internal/media"
	"framefit/internal/numutil"
)

// Plan is the selector's output: the adjusted preset, a confidence score
// describing decision strength (informational, not a gate), and the
// customization map recording every override applied to the base preset.
type Plan struct {
	Preset         catalog.CompressionPreset `json:"preset"`
	Confidence     float64                   `json:"confidence"`
	Customizations map[string]string         `json:"customizations"`
}

const (
	baseConfidence       = 70
	customizationBonus   = 5
	gamingFrameRateMin   = 60
	talkingHeadCRFTight  = 2
	animationExtraBFrame = 2
	musicAudioFloorKbps  = 192
	noiseDenoiseMin      = 0.7
	stabilizeBelow       = 0.4
	crfMin               = 0
	crfMax               = 51
)

// SelectPreset picks and customizes a compression preset for the platform.
// Platform matching is case-insensitive; a platform with no catalog presets
// fails with catalog.ErrNoPresets.
func SelectPreset(cat *catalog.Catalog, platformID string, contentType classification.ContentType, m media.Metrics) (Plan, error) {
	presets := cat.PresetsFor(platformID)
	if len(presets) == 0 {
		return Plan{}, fmt.Errorf("%w: %q", catalog.ErrNoPresets, platformID)
	}

	plan := Plan{
		Preset:         presets[0],
		Confidence:     baseConfidence,
		Customizations: map[string]string{},
	}

	applyContentOverrides(&plan, presets, contentType)
	applySignalOverrides(&plan, m)

	plan.Confidence = numutil.ClampScore(plan.Confidence)
	return plan, nil
}

func (p *Plan) customize(key, value string) {
	p.Customizations[key] = value
	p.Confidence += customizationBonus
}

// addFlag appends an encoder flag onto a fresh copy of the flag slice so the
// catalog's preset is never written through, and skips flags the preset
// already carries.
func (p *Plan) addFlag(flag string) {
	if slices.Contains(p.Preset.Flags, flag) {
		return
	}
	p.Preset.Flags = append(slices.Clone(p.Preset.Flags), flag)
}

func applyContentOverrides(plan *Plan, presets []catalog.CompressionPreset, contentType classification.ContentType) {
	switch contentType {
	case classification.Gaming:
		for _, candidate := range presets {
			if candidate.FrameRate >= gamingFrameRateMin {
				plan.Preset = candidate
				plan.customize("preset", fmt.Sprintf("switched to %s for high frame rate", candidate.ID))
				break
			}
		}
		plan.addFlag("tune=zerolatency")
		plan.customize("tune", "low-latency")
		if plan.Preset.BFrames > 1 {
			plan.Preset.BFrames = 1
		}
		plan.customize("b_frames", fmt.Sprintf("%d", plan.Preset.BFrames))
	case classification.TalkingHead:
		plan.Preset.Denoise = true
		plan.customize("denoise", "strong")
		plan.Preset.CRF = clampCRF(plan.Preset.CRF - talkingHeadCRFTight)
		plan.customize("crf", fmt.Sprintf("%d", plan.Preset.CRF))
	case classification.Animation:
		plan.Preset.BFrames += animationExtraBFrame
		plan.customize("b_frames", fmt.Sprintf("%d", plan.Preset.BFrames))
	case classification.Music:
		if plan.Preset.AudioBitrate < musicAudioFloorKbps {
			plan.Preset.AudioBitrate = musicAudioFloorKbps
			plan.customize("audio_bitrate", fmt.Sprintf("%d", musicAudioFloorKbps))
		}
	case classification.Sports:
		plan.addFlag("me=esa")
		plan.customize("motion_search", "exhaustive")
	}
}

func applySignalOverrides(plan *Plan, m media.Metrics) {
	if noise, ok := media.Signal(m.NoiseLevel); ok && noise > noiseDenoiseMin {
		if !plan.Preset.Denoise {
			plan.Preset.Denoise = true
			plan.customize("denoise", "enabled")
		}
	}
	if stability, ok := media.Signal(m.StabilityScore); ok && stability < stabilizeBelow {
		plan.Preset.Stabilize = true
		plan.customize("stabilize", "enabled")
	}

	source := catalog.Resolution{Width: m.Width, Height: m.Height}
	if limit := plan.Preset.MaxResolution; !source.AtMost(limit) {
		plan.customize("resize", fmt.Sprintf("%dx%d lanczos", limit.Width, limit.Height))
	}
}

func clampCRF(value int) int {
	if value < crfMin {
		return crfMin
	}
	if value > crfMax {
		return crfMax
	}
	return value
}
