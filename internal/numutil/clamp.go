// Package numutil provides shared numeric helpers for confidence, compliance,
// and score arithmetic. All components clamp through this package so boundary
// behavior stays identical everywhere.
package numutil

import "math"

// Clamp constrains value to the inclusive range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ClampScore constrains value to the canonical [0,100] score range.
func ClampScore(value float64) float64 {
	return Clamp(value, 0, 100)
}

// RoundUp returns value rounded up to the nearest integer.
func RoundUp(value float64) int {
	return int(math.Ceil(value))
}

// NearlyEqual reports whether a and b differ by at most tolerance.
func NearlyEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
