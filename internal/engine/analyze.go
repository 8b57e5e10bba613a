package engine

import (
	"framefit/internal/catalog"
	"framefit/internal/classification"
	"framefit/internal/compatibility"
	"framefit/internal/logging"
	"framefit/internal/media"
	"framefit/internal/quality"
	"framefit/internal/selection"
)

// Analysis is the combined output of the full decision pipeline for one
// asset: classification, the complete platform ranking, the preset plan for
// the top-ranked platform, and the validation report.
type Analysis struct {
	Metrics        media.Metrics                  `json:"metrics"`
	Classification classification.Result          `json:"classification"`
	Ranking        []compatibility.Recommendation `json:"ranking"`
	Plan           *selection.Plan                `json:"plan,omitempty"`
	Report         quality.Report                 `json:"report"`
	Readiness      quality.Readiness              `json:"readiness"`
}

// Analyze runs the whole pipeline. When platformIDs is empty, validation
// targets the top-ranked platform. A platform without catalog presets skips
// the preset plan rather than failing the analysis; every other error is
// structural and surfaces.
func (e *Engine) Analyze(m media.Metrics, platformIDs []string) (Analysis, error) {
	if err := m.Validate(); err != nil {
		return Analysis{}, err
	}

	result := e.ClassifyContent(m)
	ranked := e.RankPlatforms(m)

	analysis := Analysis{
		Metrics:        m,
		Classification: result,
		Ranking:        ranked,
	}

	targets := platformIDs
	if len(targets) == 0 && len(ranked) > 0 {
		targets = []string{ranked[0].Platform.ID}
	}

	var chosen *catalog.CompressionPreset
	if len(ranked) > 0 {
		plan, err := e.SelectPreset(ranked[0].Platform.ID, result.ContentType, m)
		if err == nil {
			analysis.Plan = &plan
			chosen = &plan.Preset
		}
	}

	report, err := e.Validate(m, targets, chosen)
	if err != nil {
		return Analysis{}, err
	}
	analysis.Report = report

	readiness, err := e.ExportReady(m, targets)
	if err != nil {
		return Analysis{}, err
	}
	analysis.Readiness = readiness

	e.logger.Info("analysis complete",
		logging.String(logging.FieldContentType, result.ContentType.String()),
		logging.Float64("score", report.Score),
		logging.Bool("ready", readiness.Ready),
	)
	return analysis, nil
}
