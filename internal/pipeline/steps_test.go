package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nao1215/fineprint/internal/analysis"
	"github.com/nao1215/fineprint/internal/content"
	"github.com/nao1215/fineprint/internal/database"
)

const policyPageHTML = `<!DOCTYPE html>
<html>
<head><title>Example Service</title></head>
<body>
<p>We may sell your data to third parties without notice.</p>
<a href="/privacy">Privacy Policy</a>
</body>
</html>`

func TestFetchStep(t *testing.T) {
	t.Parallel()

	t.Run("fetches and parses page", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(policyPageHTML))
		}))
		defer server.Close()

		step := NewFetchStep(content.NewFetcher())
		job := NewJob(server.URL)

		if err := step.Do(context.Background(), job); err != nil {
			t.Fatalf("Do() error = %v", err)
		}
		if job.Page == nil {
			t.Fatal("job.Page is nil after fetch")
		}
		if job.Page.Title != "Example Service" {
			t.Errorf("Title = %q", job.Page.Title)
		}
		if len(job.Page.Links) != 1 {
			t.Errorf("Links = %v, want 1 link", job.Page.Links)
		}
	})

	t.Run("fetch failure is an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		step := NewFetchStep(content.NewFetcher())
		job := NewJob(server.URL)

		if err := step.Do(context.Background(), job); err == nil {
			t.Error("expected error for 404 response, got nil")
		}
	})
}

func TestAnalyzeStep(t *testing.T) {
	t.Parallel()

	t.Run("analyzes fetched page", func(t *testing.T) {
		t.Parallel()

		step := NewAnalyzeStep(analysis.NewAnalyzer())
		job := NewJob("https://example.com")
		job.Page = &content.Page{
			URL:      "https://example.com",
			Hostname: "example.com",
			Text:     "we may sell your data to third parties without notice",
		}

		if err := step.Do(context.Background(), job); err != nil {
			t.Fatalf("Do() error = %v", err)
		}
		if job.Report == nil {
			t.Fatal("job.Report is nil after analyze")
		}
		if !job.Report.HasRiskyKeywords {
			t.Error("HasRiskyKeywords = false, want true")
		}
	})

	t.Run("missing page is an error", func(t *testing.T) {
		t.Parallel()

		step := NewAnalyzeStep(analysis.NewAnalyzer())
		job := NewJob("https://example.com")

		if err := step.Do(context.Background(), job); !errors.Is(err, ErrNoPage) {
			t.Errorf("Do() error = %v, want ErrNoPage", err)
		}
	})
}

func TestSaveStep(t *testing.T) {
	t.Parallel()

	t.Run("persists the report", func(t *testing.T) {
		t.Parallel()

		db, err := database.Open(t.TempDir(), database.DefaultOptions())
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer db.Close()

		analyzeStep := NewAnalyzeStep(analysis.NewAnalyzer())
		job := NewJob("https://example.com")
		job.Page = &content.Page{
			URL:      "https://example.com",
			Hostname: "example.com",
			Text:     "please read our privacy policy before using the service",
		}
		if err := analyzeStep.Do(context.Background(), job); err != nil {
			t.Fatalf("analyze Do() error = %v", err)
		}

		step := NewSaveStep(db)
		if err := step.Do(context.Background(), job); err != nil {
			t.Fatalf("save Do() error = %v", err)
		}

		stored, err := db.LatestReport(context.Background(), "https://example.com")
		if err != nil {
			t.Fatalf("LatestReport() error = %v", err)
		}
		if !stored.HasPolicyContent {
			t.Error("stored report HasPolicyContent = false, want true")
		}
	})

	t.Run("missing report is an error", func(t *testing.T) {
		t.Parallel()

		db, err := database.Open(t.TempDir(), database.DefaultOptions())
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer db.Close()

		step := NewSaveStep(db)
		if err := step.Do(context.Background(), NewJob("https://example.com")); !errors.Is(err, ErrNoReport) {
			t.Errorf("Do() error = %v, want ErrNoReport", err)
		}
	})

	t.Run("store failure does not block the report", func(t *testing.T) {
		t.Parallel()

		db, err := database.Open(t.TempDir(), database.DefaultOptions())
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		// Closing the database makes every subsequent save fail, which
		// stands in for a full disk or corrupted history store.
		if err := db.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		p := New(WithLogger(logger))
		p.AddStep(NewAnalyzeStep(analysis.NewAnalyzer()))
		p.AddStep(NewSaveStep(db, WithSaveLogger(logger)))

		job := NewJob("https://example.com")
		job.Page = &content.Page{
			URL:      "https://example.com",
			Hostname: "example.com",
			Text:     "we may sell your data to third parties without notice",
		}

		if err := p.Execute(context.Background(), job); err != nil {
			t.Fatalf("Execute() error = %v, want nil despite the failed save", err)
		}
		if job.Err != nil {
			t.Errorf("job.Err = %v, want nil", job.Err)
		}
		if job.Report == nil {
			t.Fatal("job.Report is nil, want the computed report delivered")
		}
		if !job.Report.HasRiskyKeywords {
			t.Error("HasRiskyKeywords = false, want true")
		}
	})
}
