package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nao1215/fineprint/internal/model"
	"github.com/nao1215/fineprint/internal/provider"
)

// Option configures a Summarize call.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets a custom logger. Provider failures are logged at debug
// level because they are expected and recovered, never surfaced.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Summarize runs the fallback chain over text and returns the final
// summary. Stages run strictly sequentially because each depends on the
// prior stage's output; there is no parallelism to exploit here.
//
// Stage rules:
//  1. Condense runs when its provider exists. Failure or empty output is
//     treated the same as absence.
//  2. Reframe runs when its provider exists, on the condensed output or on
//     the raw text when condense produced nothing. The assessment's found
//     terms are appended so the backing service can foreground them.
//  3. Polish runs only when an earlier stage produced output; a polish-only
//     provider set falls through to the heuristic.
//
// If no stage produced output, the deterministic heuristic sentence is
// returned. The result text is never empty.
func Summarize(ctx context.Context, text string, assessment model.RiskAssessment, providers provider.Set, opts ...Option) model.SummaryResult {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	current := ""
	stage := model.StageHeuristic

	if providers.Condense != nil {
		out, err := providers.Condense.Transform(ctx, text)
		switch {
		case err != nil:
			o.logger.Debug("condense provider failed, continuing without it",
				"provider", providers.Condense.Name(),
				"error", err,
			)
		case strings.TrimSpace(out) != "":
			current = out
			stage = model.StageCondensed
		}
	}

	if providers.Reframe != nil {
		input := current
		if input == "" {
			input = text
		}

		out, err := providers.Reframe.Transform(ctx, reframeInput(input, assessment))
		switch {
		case err != nil:
			o.logger.Debug("reframe provider failed, keeping prior stage output",
				"provider", providers.Reframe.Name(),
				"error", err,
			)
		case strings.TrimSpace(out) != "":
			current = out
			stage = model.StageReframed
		}
	}

	if providers.Polish != nil && current != "" {
		out, err := providers.Polish.Transform(ctx, current)
		switch {
		case err != nil:
			o.logger.Debug("polish provider failed, keeping prior stage output",
				"provider", providers.Polish.Name(),
				"error", err,
			)
		case strings.TrimSpace(out) != "":
			current = out
			stage = model.StagePolished
		}
	}

	if strings.TrimSpace(current) == "" {
		return model.SummaryResult{
			Text:      HeuristicSummary(text),
			Stage:     model.StageHeuristic,
			StageText: model.StageHeuristic.String(),
		}
	}

	return model.SummaryResult{
		Text:      current,
		Stage:     stage,
		StageText: stage.String(),
	}
}

// reframeInput appends the detected risk terms so the reframe service can
// foreground them. The raw input passes through unchanged when the
// assessment found nothing.
func reframeInput(text string, assessment model.RiskAssessment) string {
	if len(assessment.FoundRisks) == 0 {
		return text
	}
	return text + "\n\nDetected risk terms: " + strings.Join(assessment.FoundRisks, ", ")
}

// HeuristicSummary is the deterministic terminal stage of the chain.
// The word count is the whitespace-split token count of text.
func HeuristicSummary(text string) string {
	return fmt.Sprintf("Policy contains %d words. Analysis based on risk keyword detection.", len(strings.Fields(text)))
}
