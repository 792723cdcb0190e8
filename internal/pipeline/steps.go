package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/fineprint/internal/analysis"
	"github.com/nao1215/fineprint/internal/content"
	"github.com/nao1215/fineprint/internal/database"
)

// Step errors.
var (
	// ErrNoPage is returned by the analyze step when the fetch step has
	// not populated the job's page.
	ErrNoPage = errors.New("pipeline: no page to analyze")

	// ErrNoReport is returned by the save step when the analyze step has
	// not populated the job's report.
	ErrNoReport = errors.New("pipeline: no report to save")
)

// FetchStep downloads and parses the target page.
type FetchStep struct {
	fetcher *content.Fetcher
}

// NewFetchStep creates a fetch step backed by the given fetcher.
func NewFetchStep(fetcher *content.Fetcher) *FetchStep {
	return &FetchStep{fetcher: fetcher}
}

// Name returns the step's name for logging purposes.
func (s *FetchStep) Name() string { return "fetch" }

// Do fetches the job's URL and stores the parsed page on the job.
func (s *FetchStep) Do(ctx context.Context, job *Job) error {
	page, err := s.fetcher.Fetch(ctx, job.URL)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", job.URL, err)
	}
	job.Page = page
	return nil
}

// AnalyzeStep scans the fetched page for policy links and risk keywords.
type AnalyzeStep struct {
	analyzer *analysis.Analyzer
}

// NewAnalyzeStep creates an analyze step backed by the given analyzer.
func NewAnalyzeStep(analyzer *analysis.Analyzer) *AnalyzeStep {
	return &AnalyzeStep{analyzer: analyzer}
}

// Name returns the step's name for logging purposes.
func (s *AnalyzeStep) Name() string { return "analyze" }

// Do analyzes the job's page and stores the report on the job.
func (s *AnalyzeStep) Do(_ context.Context, job *Job) error {
	if job.Page == nil {
		return ErrNoPage
	}

	job.Report = s.analyzer.AnalyzePage(analysis.PageData{
		URL:      job.Page.URL,
		Hostname: job.Page.Hostname,
		Text:     job.Page.Text,
		Links:    job.Page.Links,
	})
	return nil
}

// SaveStep persists the analysis report to the history database.
type SaveStep struct {
	db     *database.HistoryDB
	logger *slog.Logger
}

// SaveStepOption is a functional option for configuring a SaveStep.
type SaveStepOption func(*SaveStep)

// WithSaveLogger sets the logger used to record store failures.
func WithSaveLogger(logger *slog.Logger) SaveStepOption {
	return func(s *SaveStep) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSaveStep creates a save step backed by the given database.
func NewSaveStep(db *database.HistoryDB, opts ...SaveStepOption) *SaveStep {
	s := &SaveStep{
		db:     db,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step's name for logging purposes.
func (s *SaveStep) Name() string { return "save" }

// Do stores the job's report. A store failure is logged and swallowed:
// the report has already been computed, so a broken history database must
// not withhold it from the caller.
func (s *SaveStep) Do(ctx context.Context, job *Job) error {
	if job.Report == nil {
		return ErrNoReport
	}

	if err := s.db.SaveReport(ctx, job.Report); err != nil {
		s.logger.Warn("failed to save report to history", "url", job.URL, "error", err)
	}
	return nil
}
