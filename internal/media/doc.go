// Package media defines the measured-metrics input type consumed by every
// decision component.
//
// Metrics are produced by an external measurement step (ffprobe, an upload
// analyzer, or a test fixture) and arrive here as plain data. The package
// owns structural validation, derived values such as aspect ratio and
// bitrate-per-pixel, and the optional-signal convention: soft signals are
// pointers, absent unless measured, and out-of-range values are treated as
// absent rather than fatal.
package media
