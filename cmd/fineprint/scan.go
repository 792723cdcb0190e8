package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/nao1215/fineprint/internal/analysis"
	"github.com/nao1215/fineprint/internal/config"
	"github.com/nao1215/fineprint/internal/content"
	"github.com/nao1215/fineprint/internal/database"
	"github.com/nao1215/fineprint/internal/log"
	"github.com/nao1215/fineprint/internal/pipeline"
	"github.com/nao1215/fineprint/internal/report"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [url]",
		Short: "Scan a web page for policy links and risk language",
		Long: `Scan fetches a web page and checks it for privacy-policy and
terms-of-service signals:

- Links pointing at policy documents (privacy policy, terms, cookies)
- Risk language in the page text (data selling, arbitration, waivers)

Results are printed to the terminal and stored in a local history
database so past scans can be reviewed with 'fineprint history'.

Examples:
  # Scan a single page
  fineprint scan example.com

  # Scan multiple pages concurrently
  fineprint scan site1.com site2.com site3.com

  # Output JSON report
  fineprint scan --json example.com

  # Write a Markdown report to a file
  fineprint scan --markdown -o report.md example.com

  # Scan without storing history
  fineprint scan --no-store example.com`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	// Scan behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Connection timeout for each page fetch")
	cmd.Flags().IntP("concurrency", "b", config.DefaultConcurrency,
		"Number of concurrent scans")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .fineprint.yml in current or XDG config directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Storage flags
	cmd.Flags().Bool("no-store", false,
		"Do not save scan results to the history database")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScan(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// LoadConfigFile reports an error for an explicitly given missing
	// file, and returns defaults when no file exists anywhere.
	cfg.File, err = config.LoadConfigFile(cfg.ConfigFilePath)
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noStore, err := cmd.Flags().GetBool("no-store")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noStore
	cfg.DBDir = config.XDGDataDir()

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are the target URLs
	cfg.Targets = args

	return cfg, nil
}

// runScan executes the scan over all targets.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Debug("starting scan",
		"targets", cfg.Targets,
		"concurrency", cfg.Concurrency,
		"saveToDB", cfg.SaveToDB,
	)

	// Open database connection if saving is enabled
	var db *database.HistoryDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Debug("database opened", "dir", cfg.DBDir)
	}

	fetcher := content.NewFetcher(
		content.WithTimeout(cfg.Timeout),
		content.WithUserAgent(cfg.UserAgent),
		content.WithMaxBodySize(cfg.MaxBodySize),
		content.WithLogger(logger),
	)
	analyzer := analysis.NewAnalyzer(analysis.WithLogger(logger))

	pipelineFactory := func() *pipeline.Pipeline {
		p := pipeline.New(
			pipeline.WithLogger(logger),
			pipeline.WithContinueOnError(false),
		)
		p.AddStep(pipeline.NewFetchStep(fetcher))
		p.AddStep(pipeline.NewAnalyzeStep(analyzer))
		if db != nil {
			p.AddStep(pipeline.NewSaveStep(db, pipeline.WithSaveLogger(logger)))
		}
		return p
	}

	autoSurface := autoSurfacePreference(ctx, cfg, db, logger)

	// Use batch processor for parallel scanning if multiple targets
	if len(cfg.Targets) > 1 && cfg.Concurrency > 1 {
		return runBatchScan(ctx, cfg, pipelineFactory, autoSurface, logger)
	}

	return runSequentialScan(ctx, cfg, pipelineFactory, autoSurface, logger)
}

// autoSurfacePreference resolves whether full reports are printed for
// flagged pages. The database preference, set by past runs, wins over
// the config file value.
func autoSurfacePreference(ctx context.Context, cfg *config.Config, db *database.HistoryDB, logger *slog.Logger) bool {
	if db != nil {
		enabled, err := db.AutoSurface(ctx)
		if err == nil {
			return enabled
		}
		logger.Warn("failed to read auto-surface preference", "error", err)
	}
	return cfg.File.AutoSurface()
}

// runSequentialScan scans targets one at a time.
func runSequentialScan(ctx context.Context, cfg *config.Config, factory func() *pipeline.Pipeline, autoSurface bool, logger *slog.Logger) error {
	for _, target := range cfg.Targets {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		job := pipeline.NewJob(target)

		fmt.Printf("Scanning %s...\n", target)
		startTime := time.Now()

		if err := factory().Execute(ctx, job); err != nil {
			logger.Error("scan failed", "target", target, "error", err)
			fmt.Fprintf(os.Stderr, "Scan error for %s: %v\n", target, err)
			continue
		}

		elapsed := time.Since(startTime)
		fmt.Printf("Scan completed in %s\n\n", elapsed.Round(time.Millisecond))

		if err := outputReport(cfg, job, autoSurface); err != nil {
			logger.Error("report failed", "target", target, "error", err)
		}
	}

	return nil
}

// runBatchScan scans multiple targets concurrently using BatchProcessor.
func runBatchScan(ctx context.Context, cfg *config.Config, factory func() *pipeline.Pipeline, autoSurface bool, logger *slog.Logger) error {
	fmt.Printf("Starting batch scan of %d targets (concurrency: %d)...\n\n",
		len(cfg.Targets), cfg.Concurrency)

	startTime := time.Now()

	bp := pipeline.NewBatchProcessor(
		factory,
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithBatchLogger(logger),
	)

	// Process with callback for streaming output
	var mu sync.Mutex
	err := bp.ProcessBatchWithCallback(ctx, cfg.Targets, func(job *pipeline.Job, index int) {
		mu.Lock()
		defer mu.Unlock()

		if job.Err != nil {
			fmt.Fprintf(os.Stderr, "[%d/%d] Scan error for %s: %v\n", index+1, len(cfg.Targets), job.URL, job.Err)
			return
		}

		fmt.Printf("[%d/%d] Scan completed: %s\n", index+1, len(cfg.Targets), job.URL)

		if err := outputReport(cfg, job, autoSurface); err != nil {
			logger.Error("report failed", "target", job.URL, "error", err)
		}
	})

	elapsed := time.Since(startTime)
	fmt.Printf("\nBatch scan completed in %s\n", elapsed.Round(time.Millisecond))

	return err
}

// outputReport outputs the scan result in the requested format.
//
// Machine-readable formats and file output always get the full report.
// Default terminal output respects the auto-surface preference: flagged
// pages print the full report, clean pages a one-liner.
func outputReport(cfg *config.Config, job *pipeline.Job, autoSurface bool) error {
	if job.Report == nil {
		return nil
	}

	explicit := cfg.JSONReport || cfg.MarkdownReport || cfg.ReportFile != ""
	if !explicit {
		if !job.Report.WorthSurfacing() {
			fmt.Printf("Nothing flagged on %s\n\n", job.URL)
			return nil
		}
		if !autoSurface {
			fmt.Printf("Findings on %s stored; run 'fineprint history' to view them\n\n", job.URL)
			return nil
		}
	}

	output, closeFn, err := openReportOutput(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeFn()

	writer := selectWriter(cfg, output)
	_, err = writer.Write(job.Report)
	return err
}

// openReportOutput resolves the report destination. An empty path means
// stdout; otherwise the file is created with owner-only permissions.
func openReportOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// selectWriter picks a report writer for the configured format.
func selectWriter(cfg *config.Config, output *os.File) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output)
	}
}
