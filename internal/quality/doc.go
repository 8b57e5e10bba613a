// Package quality validates measured metrics against absolute technical
// thresholds and per-platform constraints, producing issues, warnings, a
// numeric score, compliance records, and prioritized recommendations.
//
// Low quality and non-compliance are data, never errors: the validator's job
// is to describe quality, not to gate it. Only structurally invalid input or
// an unknown platform id comes back as a hard error.
package quality
