package trends

import "context"

// AnalysisReport mirrors the analyze-trends function payload: observations
// drawn from the time, leave and employee snapshots, with an overall
// confidence and the usual caveats.
type AnalysisReport struct {
	Synthesis       []string `json:"synthesis"`
	Recommendations []string `json:"recommendations"`
	Confidence      float64  `json:"confidence"`
	Limitations     []string `json:"limitations"`
}

// TrendsService runs the analysis over the full data set.
type TrendsService interface {
	Analyze(ctx context.Context) (AnalysisReport, error)
}
