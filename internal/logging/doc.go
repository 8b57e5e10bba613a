// Package logging assembles structured slog loggers and formatting helpers
// used across framefit components.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes typed attribute helpers plus canonical field names so every
// component tags decision logs the same way. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit data with the same shape as the rest of the system.
package logging
