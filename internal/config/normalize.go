package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeAnalysis()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ReportDir) == "" {
		c.Paths.ReportDir = defaultReportDir
	}
	if c.Paths.ReportDir, err = expandPath(c.Paths.ReportDir); err != nil {
		return fmt.Errorf("paths.report_dir: %w", err)
	}
	c.Paths.CatalogPath = strings.TrimSpace(c.Paths.CatalogPath)
	if c.Paths.CatalogPath != "" {
		if c.Paths.CatalogPath, err = expandPath(c.Paths.CatalogPath); err != nil {
			return fmt.Errorf("paths.catalog_path: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeLogging() {
	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		if value, ok := os.LookupEnv("FRAMEFIT_LOG_LEVEL"); ok {
			level = strings.ToLower(strings.TrimSpace(value))
		}
	}
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level

	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if format == "" {
		format = defaultLogFormat
	}
	c.Logging.Format = format
}

func (c *Config) normalizeAnalysis() {
	cleaned := make([]string, 0, len(c.Analysis.DefaultPlatforms))
	for _, name := range c.Analysis.DefaultPlatforms {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			cleaned = append(cleaned, name)
		}
	}
	c.Analysis.DefaultPlatforms = cleaned
}
