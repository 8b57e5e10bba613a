// Package classification maps measured video metrics to a coarse content
// type with a confidence value and supporting evidence.
//
// The classifier is an ordered fold over independent rules. Each rule may
// append evidence and may overwrite the running label while adding
// confidence. Later rules intentionally override earlier ones: high-signal
// cues such as frame rate or audio level are more discriminative than aspect
// ratio alone, so the rule order is load-bearing and must not be shuffled.
package classification
