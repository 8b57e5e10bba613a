package main

import (
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"framefit/internal/catalog"
	"framefit/internal/config"
	"framefit/internal/engine"
	"framefit/internal/logging"
	"framefit/internal/report"
)

type commandContext struct {
	configFlag *string
	jsonFlag   *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	engineOnce sync.Once
	catalog    *catalog.Catalog
	engine     *engine.Engine
	engineErr  error
}

func newCommandContext(configFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		jsonFlag:   jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureEngine resolves the catalog (honoring a configured override path)
// and builds the shared decision engine.
func (c *commandContext) ensureEngine() (*engine.Engine, error) {
	c.engineOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.engineErr = err
			return
		}
		cat, err := catalog.Load(cfg.Paths.CatalogPath)
		if err != nil {
			c.engineErr = err
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: os.Stderr,
		})
		if err != nil {
			c.engineErr = err
			return
		}
		c.catalog = cat
		c.engine = engine.New(cat, logger,
			engine.WithReadyFloor(float64(cfg.Analysis.ReadyScoreFloor)))
	})
	return c.engine, c.engineErr
}

func (c *commandContext) ensureCatalog() (*catalog.Catalog, error) {
	if _, err := c.ensureEngine(); err != nil {
		return nil, err
	}
	return c.catalog, nil
}

// openStore opens the report history database. Callers own the Close.
func (c *commandContext) openStore() (*report.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return report.Open(cfg)
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

// defaultPlatforms returns the configured fallback target platforms.
func (c *commandContext) defaultPlatforms() []string {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return nil
	}
	return cfg.Analysis.DefaultPlatforms
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
