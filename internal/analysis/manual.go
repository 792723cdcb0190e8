package analysis

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/fineprint/internal/model"
	"github.com/nao1215/fineprint/internal/provider"
	"github.com/nao1215/fineprint/internal/risk"
	"github.com/nao1215/fineprint/internal/summary"
)

// ManualResult bundles the outcome of a manual analysis.
type ManualResult struct {
	// Summary is the final summary text with its producing stage.
	Summary model.SummaryResult `json:"summary"`

	// Assessment is the keyword-derived risk classification.
	Assessment model.RiskAssessment `json:"assessment"`
}

// AnalyzeManualText scores pasted text and runs the summary pipeline.
//
// Validation is the only failure mode: empty input returns ErrEmptyText
// and input under MinTextLength characters returns ErrTextTooShort. Once
// validation passes, the result is guaranteed: a non-empty summary and a
// classification are produced even when every provider in the set is
// absent or failing.
func (a *Analyzer) AnalyzeManualText(ctx context.Context, text string, providers provider.Set) (*ManualResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyText
	}
	if utf8.RuneCountInString(trimmed) < MinTextLength {
		return nil, ErrTextTooShort
	}

	assessment := risk.Assess(text)

	a.logger.Debug("manual text assessed",
		"score", assessment.RiskScore,
		"level", assessment.Level.String(),
		"risks", len(assessment.FoundRisks),
		"positives", len(assessment.FoundPositives),
	)

	result := summary.Summarize(ctx, text, assessment, providers, summary.WithLogger(a.logger))

	return &ManualResult{
		Summary:    result,
		Assessment: assessment,
	}, nil
}
