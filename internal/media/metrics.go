package media

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMetrics marks structurally unusable measurements. Soft-signal
// problems never produce this error; only missing or non-positive required
// fields do.
var ErrInvalidMetrics = errors.New("invalid metrics")

// Metrics captures the measured properties of a single video asset.
// Required numeric fields must be positive (bitrate may be zero for
// unmeasured sources). Soft signals are normalized to [0,1] and optional.
type Metrics struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Duration   float64 `json:"duration"`
	FrameRate  float64 `json:"frame_rate"`
	Bitrate    float64 `json:"bitrate"`
	FileSizeMB float64 `json:"file_size_mb"`

	// AspectRatio may be supplied by the caller; when zero it is derived
	// from width/height. Supplied values are compared with tolerance, never
	// for exact equality.
	AspectRatio float64 `json:"aspect_ratio,omitempty"`

	MotionVectors   *float64 `json:"motion_vectors,omitempty"`
	SceneChanges    *float64 `json:"scene_changes,omitempty"`
	AudioLevel      *float64 `json:"audio_level,omitempty"`
	ColorComplexity *float64 `json:"color_complexity,omitempty"`
	StabilityScore  *float64 `json:"stability_score,omitempty"`
	NoiseLevel      *float64 `json:"noise_level,omitempty"`
	TextDetected    bool     `json:"text_detected,omitempty"`
	FaceDetected    bool     `json:"face_detected,omitempty"`

	AverageQuality *float64 `json:"average_quality,omitempty"`
	MotionBlur     *float64 `json:"motion_blur,omitempty"`
	ColorAccuracy  *float64 `json:"color_accuracy,omitempty"`
	AudioQuality   *float64 `json:"audio_quality,omitempty"`

	// AudioBitrate is in kbps, like Bitrate.
	AudioBitrate *float64 `json:"audio_bitrate,omitempty"`
}

// Validate reports whether the required fields are structurally usable.
func (m Metrics) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: resolution %dx%d must be positive", ErrInvalidMetrics, m.Width, m.Height)
	}
	if m.Duration <= 0 {
		return fmt.Errorf("%w: duration %.3fs must be positive", ErrInvalidMetrics, m.Duration)
	}
	if m.FrameRate <= 0 {
		return fmt.Errorf("%w: frame rate %.3f must be positive", ErrInvalidMetrics, m.FrameRate)
	}
	if m.Bitrate < 0 {
		return fmt.Errorf("%w: bitrate %.1f must not be negative", ErrInvalidMetrics, m.Bitrate)
	}
	return nil
}

// Ratio returns the supplied aspect ratio when present, otherwise the ratio
// derived from width and height.
func (m Metrics) Ratio() float64 {
	if m.AspectRatio > 0 {
		return m.AspectRatio
	}
	if m.Height == 0 {
		return 0
	}
	return float64(m.Width) / float64(m.Height)
}

// PixelCount returns the total pixels per frame.
func (m Metrics) PixelCount() int {
	return m.Width * m.Height
}

// BitratePerPixel returns kbps divided by pixel count, the density measure
// the validator thresholds against.
func (m Metrics) BitratePerPixel() float64 {
	pixels := m.PixelCount()
	if pixels == 0 {
		return 0
	}
	return m.Bitrate / float64(pixels)
}

// EstimatedSizeMB estimates output size from bitrate and duration.
func (m Metrics) EstimatedSizeMB() float64 {
	return m.Bitrate * m.Duration / 8 / 1024
}

// Signal dereferences an optional normalized signal. Values outside [0,1]
// (or NaN) are treated as unmeasured so a bad probe never fails a decision.
func Signal(value *float64) (float64, bool) {
	if value == nil {
		return 0, false
	}
	v := *value
	if math.IsNaN(v) || v < 0 || v > 1 {
		return 0, false
	}
	return v, true
}

// PositiveSignal dereferences an optional positive-valued signal such as an
// audio bitrate.
func PositiveSignal(value *float64) (float64, bool) {
	if value == nil {
		return 0, false
	}
	v := *value
	if math.IsNaN(v) || v <= 0 {
		return 0, false
	}
	return v, true
}
