package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nao1215/fineprint/internal/config"
	"github.com/nao1215/fineprint/internal/database"
	"github.com/nao1215/fineprint/internal/log"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [url]",
		Short: "Show past scan results",
		Long: `History lists scan reports stored in the local database.

Without arguments it lists recent scans across all URLs. With a URL
argument it shows past reports for that page only.

Examples:
  # List recent scans
  fineprint history

  # Show scan history for one page
  fineprint history https://example.com

  # Show the full latest report for a page
  fineprint history --full https://example.com

  # Disable automatic surfacing of future scan results
  fineprint history --auto-surface=false`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of reports to list")
	cmd.Flags().Bool("full", false, "Print the full latest report instead of a listing")
	cmd.Flags().Bool("auto-surface", true,
		"Store whether scan results are surfaced automatically (use with =false to disable)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	full, err := cmd.Flags().GetBool("full")
	if err != nil {
		return err
	}

	db, err := database.Open(config.XDGDataDir(), database.Options{CreateIfNotExists: true, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()

	// Persist the auto-surface preference when the flag was given
	if cmd.Flags().Changed("auto-surface") {
		enabled, err := cmd.Flags().GetBool("auto-surface")
		if err != nil {
			return err
		}
		if err := db.SetAutoSurface(ctx, enabled); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Auto-surface preference set to %t\n", enabled)
		return nil
	}

	url := ""
	if len(args) == 1 {
		url = args[0]
	}

	if full {
		if url == "" {
			return fmt.Errorf("--full requires a URL argument")
		}
		return showFullReport(cmd, db, url)
	}

	reports, err := db.Reports(ctx, url, limit)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No scan history found")
		return nil
	}

	for _, r := range reports {
		status := "clean"
		switch {
		case r.HasRiskyKeywords:
			status = "RISKY"
		case r.HasPolicyContent:
			status = "policy"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  [%-6s]  %s (links: %d, risk terms: %d)\n",
			r.ScannedAt.Format("2006-01-02 15:04"),
			status,
			r.URL,
			len(r.FoundPolicyLinks),
			len(r.FoundRiskyTerms),
		)
	}

	return nil
}

// showFullReport prints the full latest report for a URL.
func showFullReport(cmd *cobra.Command, db *database.HistoryDB, url string) error {
	stored, err := db.LatestReport(cmd.Context(), url)
	if err != nil {
		return err
	}

	cfg := config.NewConfig()
	_, err = selectWriter(cfg, os.Stdout).Write(stored)
	return err
}
