package quality

// Severity grades how strongly an issue blocks export.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// Category names the metric family an issue belongs to.
type Category string

const (
	CategoryResolution Category = "resolution"
	CategoryDuration   Category = "duration"
	CategoryFileSize   Category = "file_size"
	CategoryBitrate    Category = "bitrate"
	CategoryAudio      Category = "audio"
	CategoryFormat     Category = "format"
	CategoryQuality    Category = "quality"
)

// Issue is one concrete problem found during validation.
type Issue struct {
	Severity    Severity `json:"severity"`
	Category    Category `json:"category"`
	Message     string   `json:"message"`
	Fix         string   `json:"fix,omitempty"`
	AutoFixable bool     `json:"auto_fixable"`
}

// Compliance reports how one requested platform's constraints are satisfied.
type Compliance struct {
	Platform        string   `json:"platform"`
	Compliant       bool     `json:"is_compliant"`
	Percentage      float64  `json:"percentage"`
	Violations      []string `json:"violations,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Report is the full validation verdict for one asset.
type Report struct {
	Valid           bool         `json:"is_valid"`
	Score           float64      `json:"score"`
	Issues          []Issue      `json:"issues,omitempty"`
	Warnings        []string     `json:"warnings,omitempty"`
	Recommendations []string     `json:"recommendations,omitempty"`
	Platforms       []Compliance `json:"platforms,omitempty"`
}

// CriticalMessages returns the messages of every critical issue, in order.
func (r Report) CriticalMessages() []string {
	var out []string
	for _, issue := range r.Issues {
		if issue.Severity == SeverityCritical {
			out = append(out, issue.Message)
		}
	}
	return out
}

func (r Report) countBySeverity(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// Readiness is the derived go/no-go verdict for export.
type Readiness struct {
	Ready    bool     `json:"ready"`
	Blockers []string `json:"blockers,omitempty"`
	Score    float64  `json:"score"`
}
