package engine

import (
	"log/slog"

	"framefit/internal/catalog"
	"framefit/internal/classification"
	"framefit/internal/compatibility"
	"framefit/internal/logging"
	"framefit/internal/media"
	"framefit/internal/quality"
	"framefit/internal/selection"
)

// Engine is the export decision facade. Construct once and share.
type Engine struct {
	cat        *catalog.Catalog
	logger     *slog.Logger
	readyFloor float64
}

// Option customizes engine construction.
type Option func(*Engine)

// WithReadyFloor overrides the minimum score for the export-ready verdict.
func WithReadyFloor(floor float64) Option {
	return func(e *Engine) {
		e.readyFloor = floor
	}
}

// New builds an engine over the given catalog. A nil logger disables
// decision logging.
func New(cat *catalog.Catalog, logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	e := &Engine{
		cat:        cat,
		logger:     logging.NewComponentLogger(logger, "engine"),
		readyFloor: quality.DefaultReadyScoreFloor,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog exposes the read-only catalog the engine decides against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// ClassifyContent labels the asset's content type from its metrics.
func (e *Engine) ClassifyContent(m media.Metrics) classification.Result {
	result := classification.Classify(m)
	e.logger.Debug("content classified",
		logging.String(logging.FieldContentType, result.ContentType.String()),
		logging.Float64("confidence", result.Confidence),
		logging.Int("characteristics", len(result.Characteristics)),
	)
	return result
}

// RankPlatforms scores the asset against every catalog platform. The full
// list is always returned; callers choose the cutoff.
func (e *Engine) RankPlatforms(m media.Metrics) []compatibility.Recommendation {
	ranked := compatibility.Rank(e.cat, m)
	if len(ranked) > 0 {
		e.logger.Debug("platforms ranked",
			logging.String(logging.FieldPlatform, ranked[0].Platform.ID),
			logging.Float64("top_confidence", ranked[0].Confidence),
			logging.Int("count", len(ranked)),
		)
	}
	return ranked
}

// SelectPreset picks and customizes a compression preset for the platform.
func (e *Engine) SelectPreset(platformID string, contentType classification.ContentType, m media.Metrics) (selection.Plan, error) {
	plan, err := selection.SelectPreset(e.cat, platformID, contentType, m)
	if err != nil {
		e.logger.Warn("preset selection failed",
			logging.String(logging.FieldPlatform, platformID),
			logging.Error(err),
			logging.String(logging.FieldEventType, "preset_selection_failed"),
			logging.String(logging.FieldErrorHint, "add presets for the platform to the catalog"),
		)
		return selection.Plan{}, err
	}
	attrs := []logging.Attr{
		logging.String(logging.FieldPlatform, platformID),
		logging.String("preset", plan.Preset.ID),
		logging.Float64("confidence", plan.Confidence),
		logging.Int("customizations", len(plan.Customizations)),
	}
	attrs = append(attrs, logging.DecisionAttrs("preset_selection", "applied", string(contentType))...)
	e.logger.Info("preset selected", logging.Args(attrs...)...)
	return plan, nil
}

// Validate checks the asset against technical thresholds and the named
// platforms' constraints. Settings, when supplied, get a sanity pass too.
func (e *Engine) Validate(m media.Metrics, platformIDs []string, settings *catalog.CompressionPreset) (quality.Report, error) {
	report, err := quality.Validate(e.cat, m, platformIDs, settings)
	if err != nil {
		return quality.Report{}, err
	}
	e.logger.Debug("validation finished",
		logging.Bool("valid", report.Valid),
		logging.Float64("score", report.Score),
		logging.Int("issues", len(report.Issues)),
		logging.Int("warnings", len(report.Warnings)),
	)
	return report, nil
}

// ExportReady derives the go/no-go verdict for the asset.
func (e *Engine) ExportReady(m media.Metrics, platformIDs []string) (quality.Readiness, error) {
	return quality.ExportReadyAt(e.cat, m, platformIDs, e.readyFloor)
}
