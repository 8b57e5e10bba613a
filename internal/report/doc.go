// Package report persists analysis results to a local SQLite history.
//
// Each saved analysis becomes a Record keyed by a random UUID, storing the
// full analysis payload as JSON alongside summary columns used for listings.
// Writes are serialized with a file lock so concurrent CLI invocations do
// not interleave.
package report
