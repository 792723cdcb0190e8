// Package main provides the entry point for the fineprint CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for fineprint.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fineprint",
		Short: "Heuristic scanner for privacy policies and terms of service",
		Long: `Fineprint scans web pages and pasted documents for privacy-policy and
terms-of-service language that deserves a closer look: data selling,
forced arbitration, unilateral changes, and similar red flags.

Scans are heuristic keyword checks, not legal advice. Results highlight
terms worth reading carefully rather than rendering a verdict.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
