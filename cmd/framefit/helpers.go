package main

import (
	"errors"
	"fmt"
	"strings"

	"framefit/internal/config"
	"framefit/internal/media"
)

// loadMetricsArg reads a metrics JSON file named on the command line,
// expanding ~ and relative paths.
func loadMetricsArg(arg string) (media.Metrics, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return media.Metrics{}, errors.New("metrics file path is required")
	}
	path, err := config.ExpandPath(arg)
	if err != nil {
		return media.Metrics{}, err
	}
	metrics, err := media.LoadMetrics(path)
	if err != nil {
		return media.Metrics{}, fmt.Errorf("load metrics %q: %w", path, err)
	}
	return metrics, nil
}

// resolveTargets returns the platforms to validate against: explicit flags
// win, then configured defaults, then empty (caller semantics apply).
func resolveTargets(flagged []string, fallback []string) []string {
	cleaned := make([]string, 0, len(flagged))
	for _, name := range flagged {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			cleaned = append(cleaned, name)
		}
	}
	if len(cleaned) > 0 {
		return cleaned
	}
	return fallback
}

func truncateList(items []string, limit int) string {
	if len(items) == 0 {
		return ""
	}
	if limit > 0 && len(items) > limit {
		return strings.Join(items[:limit], "; ") + fmt.Sprintf(" (+%d more)", len(items)-limit)
	}
	return strings.Join(items, "; ")
}
