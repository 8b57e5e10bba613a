// Package config loads, normalizes, and validates framefit configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// FRAMEFIT_LOG_LEVEL. The Config type centralizes every knob the CLI needs,
// from log formatting to the catalog override path and report history
// location.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
