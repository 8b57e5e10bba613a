// Package compatibility scores how well a measured asset fits each platform
// in the catalog.
//
// Every platform gets a score and a reasoning trail; nothing is filtered.
// Callers decide the display cutoff. The per-platform bonuses are hand-tuned
// heuristics expressed as named constants so they can be tested in isolation;
// they carry no derivation beyond observed fit and should be preserved as-is.
package compatibility
