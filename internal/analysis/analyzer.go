package analysis

import (
	"log/slog"

	"github.com/nao1215/fineprint/internal/model"
)

// Annotator receives each deduplicated policy link match during page
// analysis. Implementations typically mark the matched link visually;
// the keyword on the match tells them what to label it with.
//
// Design decision: Scanning and presentation are split deliberately. The
// link scanner returns pure match data, and this hook is the only channel
// through which a display layer learns about matches, keeping the core
// free of rendering concerns.
type Annotator interface {
	// Annotate is called once per deduplicated match, in scan order.
	Annotate(match model.PolicyMatch)
}

// Analyzer runs the page and manual analysis flows.
// A zero-option Analyzer is fully functional; the annotator and logger
// are optional collaborators.
//
// Each analysis invocation is independent and reentrant: the keyword sets
// are read-only shared constants and no state is carried between calls.
type Analyzer struct {
	// annotator receives link matches during page analysis, may be nil.
	annotator Annotator

	// logger is used for structured logging.
	logger *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithAnnotator sets the annotator that receives policy link matches.
func WithAnnotator(annotator Annotator) Option {
	return func(a *Analyzer) {
		a.annotator = annotator
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// NewAnalyzer creates an Analyzer with the given options.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}
