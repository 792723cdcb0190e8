package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultTimeout is the per-request timeout for page fetches.
	// Policy pages are ordinary clearnet pages; 30 seconds is generous.
	DefaultTimeout = 30 * time.Second

	// DefaultProviderTimeout bounds each optional provider call.
	// This limit is mandatory in spirit: a hung provider must never block
	// delivery of the heuristic result.
	DefaultProviderTimeout = 15 * time.Second

	// DefaultConcurrency is the number of concurrent page scans when
	// multiple URLs are given. Page fetches are I/O bound, so a small
	// number keeps throughput up without hammering any one host.
	DefaultConcurrency = 4

	// DefaultMaxBodySize limits the response body size to read.
	// 5MB covers any realistic policy page.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultUserAgent identifies fineprint in HTTP requests.
	DefaultUserAgent = "fineprint/1.0 (+https://github.com/nao1215/fineprint)"

	// AppName is the application name used for XDG directory paths.
	AppName = "fineprint"
)

// Config holds all options for a fineprint run.
// It is populated from CLI flags and the optional config file, then passed
// through the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// Targets is the list of URLs to scan (scan command) .
	Targets []string

	// Timeout is the per-request timeout for page fetches.
	Timeout time.Duration

	// ProviderTimeout bounds each optional provider call.
	ProviderTimeout time.Duration

	// Concurrency is the number of concurrent page scans.
	Concurrency int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of human-readable text.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// ConfigFilePath is the path to the configuration file. If empty, the
	// tool searches for .fineprint.yml in the current directory and then
	// in the XDG config directory.
	ConfigFilePath string

	// File holds provider endpoints and preferences loaded from the
	// configuration file. Never nil after buildConfig.
	File *File

	// UserAgent is the User-Agent header sent with page fetches.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	MaxBodySize int64

	// DBDir is the directory for the SQLite history database.
	// When empty, scan reports are not persisted.
	DBDir string

	// SaveToDB indicates whether to save scan reports to the database.
	SaveToDB bool
}

// NewConfig creates a Config with default values.
//
// Design decision: We use a constructor instead of relying on zero values
// because many defaults are non-zero. This also documents the defaults.
func NewConfig() *Config {
	return &Config{
		Timeout:         DefaultTimeout,
		ProviderTimeout: DefaultProviderTimeout,
		Concurrency:     DefaultConcurrency,
		UserAgent:       DefaultUserAgent,
		MaxBodySize:     DefaultMaxBodySize,
		File:            NewFile(),
	}
}

// XDGDataDir returns the XDG data directory for fineprint.
// On Linux: ~/.local/share/fineprint
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for fineprint.
// On Linux: ~/.config/fineprint
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns a specific
// error describing the first problem found. It is called once after CLI
// parsing, before any scanning begins.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.ProviderTimeout <= 0 {
		return ErrInvalidProviderTimeout
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	return nil
}
