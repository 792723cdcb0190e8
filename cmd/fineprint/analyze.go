package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/fineprint/internal/analysis"
	"github.com/nao1215/fineprint/internal/config"
	"github.com/nao1215/fineprint/internal/log"
	"github.com/nao1215/fineprint/internal/provider"
	"github.com/spf13/cobra"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze pasted policy text for risk language",
		Long: `Analyze scores a policy or terms-of-service document that you provide
directly, without fetching any page. The text is checked against risk
and positive phrase lists and scored; a short summary is produced.

When summary providers are configured (see 'fineprint init'), the
summary is refined through them stage by stage. Without providers, or
when every provider fails, a built-in heuristic summary is used.

The text must be at least 100 characters long.

Examples:
  # Analyze a saved policy document
  fineprint analyze terms.txt

  # Analyze text from stdin
  pbpaste | fineprint analyze -

  # Output JSON for tooling
  fineprint analyze --json terms.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .fineprint.yml in current or XDG config directory)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg.File, err = config.LoadConfigFile(cfg.ConfigFilePath)
	if err != nil {
		return err
	}
	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if cfg.JSONReport && cfg.MarkdownReport {
		return config.ErrConflictingReportFormats
	}
	cfg.Verbose = getVerboseFlag(cmd)

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	text, err := readAnalyzeInput(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	providers := buildProviders(cfg, logger)
	analyzer := analysis.NewAnalyzer(analysis.WithLogger(logger))

	result, err := analyzer.AnalyzeManualText(ctx, text, providers)
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrEmptyText):
			return errors.New("no text to analyze (the input is empty)")
		case errors.Is(err, analysis.ErrTextTooShort):
			return fmt.Errorf("text too short to analyze (need at least %d characters)", analysis.MinTextLength)
		default:
			return err
		}
	}

	output, closeFn, err := openReportOutput(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeFn()

	_, err = selectWriter(cfg, output).WriteManual(result)
	return err
}

// readAnalyzeInput reads the text to analyze from a file, or from stdin
// when the argument is "-".
func readAnalyzeInput(stdin io.Reader, arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg) //nolint:gosec // path comes from the user's own argument
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", arg, err)
	}
	return string(data), nil
}

// buildProviders constructs the summary provider set from the
// configuration file. Every provider is wrapped with a timeout so a hung
// endpoint can never block the analysis.
func buildProviders(cfg *config.Config, logger *slog.Logger) provider.Set {
	var set provider.Set

	for name, pc := range cfg.File.Providers {
		if pc.Endpoint == "" {
			logger.Warn("provider has no endpoint, skipping", "provider", name)
			continue
		}

		role := provider.Role(name)
		opts := []provider.HTTPOption{}
		if pc.Token != "" {
			opts = append(opts, provider.WithToken(pc.Token))
		}

		p := provider.WithTimeout(
			provider.NewHTTPProvider(role, pc.Endpoint, opts...),
			pc.Timeout(cfg.ProviderTimeout),
		)

		switch role {
		case provider.RoleCondense:
			set.Condense = p
		case provider.RoleReframe:
			set.Reframe = p
		case provider.RolePolish:
			set.Polish = p
		default:
			logger.Warn("unknown provider role, skipping", "provider", name)
		}
	}

	return set
}
