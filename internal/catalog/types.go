package catalog

import "strings"

// AspectTolerance is the maximum aspect-ratio distance treated as a match.
// Measured ratios are never compared exactly; uploads report slightly odd
// dimensions all the time.
const AspectTolerance = 0.1

// Resolution is a width/height pair in pixels.
type Resolution struct {
	Width  int `toml:"width" json:"width"`
	Height int `toml:"height" json:"height"`
}

// AtMost reports whether r fits within limit componentwise.
func (r Resolution) AtMost(limit Resolution) bool {
	return r.Width <= limit.Width && r.Height <= limit.Height
}

// BitrateEnvelope bounds a variant's video bitrate in kbps.
// Invariant: Min <= Recommended <= Max.
type BitrateEnvelope struct {
	Min         int `toml:"min" json:"min"`
	Recommended int `toml:"recommended" json:"recommended"`
	Max         int `toml:"max" json:"max"`
}

// BitrateBounds bounds a compression preset's target bitrate in kbps.
// Invariant: Min <= Target <= Max.
type BitrateBounds struct {
	Min    int `toml:"min" json:"min"`
	Target int `toml:"target" json:"target"`
	Max    int `toml:"max" json:"max"`
}

// PresetVariant is one deliverable format a platform accepts. It doubles as a
// recommendation target and as a constraint source during validation.
type PresetVariant struct {
	Name             string          `toml:"name" json:"name"`
	Width            int             `toml:"width" json:"width"`
	Height           int             `toml:"height" json:"height"`
	AspectRatio      float64         `toml:"aspect_ratio" json:"aspect_ratio"`
	VideoCodec       string          `toml:"video_codec" json:"video_codec"`
	AudioCodec       string          `toml:"audio_codec" json:"audio_codec"`
	Bitrate          BitrateEnvelope `toml:"bitrate" json:"bitrate"`
	FrameRate        float64         `toml:"frame_rate" json:"frame_rate"`
	KeyframeInterval int             `toml:"keyframe_interval" json:"keyframe_interval"`
	Mode             string          `toml:"mode" json:"mode"`
	MaxFileSizeMB    float64         `toml:"max_file_size_mb" json:"max_file_size_mb"`
	MaxDurationSec   float64         `toml:"max_duration_sec" json:"max_duration_sec"`
	Recommended      bool            `toml:"recommended" json:"recommended"`
}

// Ratio returns the declared aspect ratio, deriving it from the target
// dimensions when the table omits it.
func (v PresetVariant) Ratio() float64 {
	if v.AspectRatio > 0 {
		return v.AspectRatio
	}
	if v.Height == 0 {
		return 0
	}
	return float64(v.Width) / float64(v.Height)
}

// PlatformSpec describes one distribution platform: its accepted variants and
// the optimization tips surfaced to users.
type PlatformSpec struct {
	ID          string          `toml:"id" json:"id"`
	DisplayName string          `toml:"display_name" json:"display_name"`
	Variants    []PresetVariant `toml:"variant" json:"variants"`
	Tips        []string        `toml:"tips" json:"tips"`
}

// RecommendedVariant returns the variant marked recommended, defaulting to
// the first entry when none is marked.
func (p PlatformSpec) RecommendedVariant() PresetVariant {
	for _, v := range p.Variants {
		if v.Recommended {
			return v
		}
	}
	if len(p.Variants) == 0 {
		return PresetVariant{}
	}
	return p.Variants[0]
}

// HasAspectWithin reports whether any variant's aspect ratio is within
// tolerance of ratio.
func (p PlatformSpec) HasAspectWithin(ratio, tolerance float64) bool {
	for _, v := range p.Variants {
		diff := v.Ratio() - ratio
		if diff < 0 {
			diff = -diff
		}
		if diff <= tolerance {
			return true
		}
	}
	return false
}

// MeanMaxDuration returns the average max duration across variants.
func (p PlatformSpec) MeanMaxDuration() float64 {
	if len(p.Variants) == 0 {
		return 0
	}
	var total float64
	for _, v := range p.Variants {
		total += v.MaxDurationSec
	}
	return total / float64(len(p.Variants))
}

// MaxDuration returns the largest max duration across variants.
func (p PlatformSpec) MaxDuration() float64 {
	var max float64
	for _, v := range p.Variants {
		if v.MaxDurationSec > max {
			max = v.MaxDurationSec
		}
	}
	return max
}

// MaxFileSizeMB returns the largest declared size ceiling across variants.
func (p PlatformSpec) MaxFileSizeMB() float64 {
	var max float64
	for _, v := range p.Variants {
		if v.MaxFileSizeMB > max {
			max = v.MaxFileSizeMB
		}
	}
	return max
}

// CompressionPreset is a full encoding profile for one platform.
type CompressionPreset struct {
	ID               string        `toml:"id" json:"id"`
	Name             string        `toml:"name" json:"name"`
	Platform         string        `toml:"platform" json:"platform"`
	Codec            string        `toml:"codec" json:"codec"`
	Container        string        `toml:"container" json:"container"`
	Mode             string        `toml:"mode" json:"mode"`
	CRF              int           `toml:"crf" json:"crf"`
	BFrames          int           `toml:"b_frames" json:"b_frames"`
	RefFrames        int           `toml:"ref_frames" json:"ref_frames"`
	Flags            []string      `toml:"flags" json:"flags"`
	MinResolution    Resolution    `toml:"min_resolution" json:"min_resolution"`
	MaxResolution    Resolution    `toml:"max_resolution" json:"max_resolution"`
	Bitrate          BitrateBounds `toml:"bitrate" json:"bitrate"`
	FrameRate        float64       `toml:"frame_rate" json:"frame_rate"`
	AudioBitrate     int           `toml:"audio_bitrate" json:"audio_bitrate"`
	MaxDurationSec   float64       `toml:"max_duration_sec" json:"max_duration_sec"`
	MaxFileSizeMB    float64       `toml:"max_file_size_mb" json:"max_file_size_mb"`
	EncodeProfile    string        `toml:"encode_profile" json:"encode_profile"`
	Complexity       string        `toml:"complexity" json:"complexity"`
	RecommendedCores int           `toml:"recommended_cores" json:"recommended_cores"`
	Denoise          bool          `toml:"denoise" json:"denoise"`
	Stabilize        bool          `toml:"stabilize" json:"stabilize"`
}

// MatchesPlatform reports whether the preset belongs to the named platform.
// Matching is case-insensitive.
func (p CompressionPreset) MatchesPlatform(platform string) bool {
	return strings.EqualFold(strings.TrimSpace(p.Platform), strings.TrimSpace(platform))
}
