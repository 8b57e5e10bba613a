// Package catalog holds the static per-platform export catalog: platform
// specs with their preset variants, richer compression presets, and the
// preset invariant checks.
//
// The catalog is pure data. It is decoded once at process start, either from
// the embedded default tables or from a user-supplied TOML override, and is
// never mutated afterwards, so any number of goroutines may read it without
// coordination. Iteration order is declaration order and stays stable across
// calls; the compatibility scorer relies on that for deterministic
// tie-breaking.
package catalog
