// Package testsupport provides helpers shared across package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"framefit/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.ReportDir = filepath.Join(base, "reports")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCatalogPath sets a catalog override path on the test config.
func WithCatalogPath(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.CatalogPath = path
	}
}

// WithDefaultPlatforms sets the default target platforms on the test config.
func WithDefaultPlatforms(names ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Analysis.DefaultPlatforms = names
	}
}
