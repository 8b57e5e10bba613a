package catalog

import "errors"

var (
	// ErrPlatformNotFound marks lookups for platform ids the catalog does not
	// declare. Callers surface this; nothing silently defaults.
	ErrPlatformNotFound = errors.New("platform not found")

	// ErrNoPresets marks preset selection against a platform with no
	// compression presets in the catalog.
	ErrNoPresets = errors.New("no presets for platform")

	// ErrInvalidCatalog marks catalog data that violates its own invariants.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
