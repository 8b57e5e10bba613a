package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Catalog is the immutable set of platform specs and compression presets.
// Build one with New or Load and share it freely; it has no mutable state.
type Catalog struct {
	platforms []PlatformSpec
	presets   []CompressionPreset
	byID      map[string]int
}

var titleCaser = cases.Title(language.English)

// New assembles and verifies a catalog. Platform order is preserved; it is
// the tie-break order for every ranked result downstream.
func New(platforms []PlatformSpec, presets []CompressionPreset) (*Catalog, error) {
	if len(platforms) == 0 {
		return nil, fmt.Errorf("%w: no platforms declared", ErrInvalidCatalog)
	}

	byID := make(map[string]int, len(platforms))
	for i := range platforms {
		p := &platforms[i]
		p.ID = strings.ToLower(strings.TrimSpace(p.ID))
		if p.ID == "" {
			return nil, fmt.Errorf("%w: platform %d has no id", ErrInvalidCatalog, i)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate platform id %q", ErrInvalidCatalog, p.ID)
		}
		if strings.TrimSpace(p.DisplayName) == "" {
			p.DisplayName = titleCaser.String(p.ID)
		}
		if len(p.Variants) == 0 {
			return nil, fmt.Errorf("%w: platform %q declares no variants", ErrInvalidCatalog, p.ID)
		}
		for _, v := range p.Variants {
			if err := checkVariant(p.ID, v); err != nil {
				return nil, err
			}
		}
		byID[p.ID] = i
	}

	cat := &Catalog{platforms: platforms, presets: presets, byID: byID}
	for _, preset := range presets {
		if _, ok := byID[strings.ToLower(strings.TrimSpace(preset.Platform))]; !ok {
			return nil, fmt.Errorf("%w: preset %q references unknown platform %q", ErrInvalidCatalog, preset.ID, preset.Platform)
		}
		check := cat.ValidatePreset(preset)
		if !check.Valid {
			return nil, fmt.Errorf("%w: preset %q: %s", ErrInvalidCatalog, preset.ID, strings.Join(check.Errors, "; "))
		}
	}
	return cat, nil
}

func checkVariant(platformID string, v PresetVariant) error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: platform %q variant %q has non-positive dimensions", ErrInvalidCatalog, platformID, v.Name)
	}
	b := v.Bitrate
	if b.Min > b.Recommended || b.Recommended > b.Max {
		return fmt.Errorf("%w: platform %q variant %q bitrate envelope %d/%d/%d is not ordered",
			ErrInvalidCatalog, platformID, v.Name, b.Min, b.Recommended, b.Max)
	}
	return nil
}

// Platforms returns every platform spec in declaration order. The returned
// slice is shared; treat it as read-only.
func (c *Catalog) Platforms() []PlatformSpec {
	return c.platforms
}

// Platform looks up a platform spec by id, case-insensitively.
func (c *Catalog) Platform(id string) (PlatformSpec, error) {
	idx, ok := c.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return PlatformSpec{}, fmt.Errorf("%w: %q", ErrPlatformNotFound, id)
	}
	return c.platforms[idx], nil
}

// PresetsFor returns the compression presets declared for the named platform
// in declaration order. Platform matching is case-insensitive. An empty slice
// means the catalog has no presets for that platform.
func (c *Catalog) PresetsFor(platform string) []CompressionPreset {
	var out []CompressionPreset
	for _, p := range c.presets {
		if p.MatchesPlatform(platform) {
			out = append(out, p)
		}
	}
	return out
}

// Presets returns every compression preset in declaration order.
func (c *Catalog) Presets() []CompressionPreset {
	return c.presets
}

// PresetCheck is the structured verdict of ValidatePreset.
type PresetCheck struct {
	Valid    bool     `json:"is_valid"`
	Warnings []string `json:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// ValidatePreset verifies a compression preset against its own invariants.
// Violations come back as structured errors and warnings; nothing panics or
// throws during normal flows.
func (c *Catalog) ValidatePreset(preset CompressionPreset) PresetCheck {
	check := PresetCheck{Valid: true}

	b := preset.Bitrate
	if b.Target > b.Max {
		check.Valid = false
		check.Errors = append(check.Errors,
			fmt.Sprintf("target bitrate %d kbps exceeds maximum %d kbps", b.Target, b.Max))
	}
	if b.Target < b.Min {
		check.Valid = false
		check.Errors = append(check.Errors,
			fmt.Sprintf("target bitrate %d kbps is below minimum %d kbps", b.Target, b.Min))
	}
	if preset.MaxResolution.Width < preset.MinResolution.Width ||
		preset.MaxResolution.Height < preset.MinResolution.Height {
		check.Valid = false
		check.Errors = append(check.Errors,
			fmt.Sprintf("max resolution %dx%d is smaller than min resolution %dx%d",
				preset.MaxResolution.Width, preset.MaxResolution.Height,
				preset.MinResolution.Width, preset.MinResolution.Height))
	}
	if strings.EqualFold(preset.Complexity, "high") && preset.RecommendedCores < 4 {
		check.Warnings = append(check.Warnings,
			fmt.Sprintf("high-complexity preset recommends only %d cores; expect slow encodes", preset.RecommendedCores))
	}
	return check
}
