package config

import "errors"

var (
	// ErrNoTarget is returned when no target URL is specified.
	ErrNoTarget = errors.New("config: no target URL specified")

	// ErrInvalidTimeout is returned when the fetch timeout is zero or negative.
	ErrInvalidTimeout = errors.New("config: timeout must be positive")

	// ErrInvalidProviderTimeout is returned when the provider timeout is
	// zero or negative. Provider calls must always be bounded.
	ErrInvalidProviderTimeout = errors.New("config: provider timeout must be positive")

	// ErrInvalidConcurrency is returned when concurrency is zero or negative.
	ErrInvalidConcurrency = errors.New("config: concurrency must be positive")

	// ErrConflictingReportFormats is returned when both JSON and Markdown
	// report formats are requested at once.
	ErrConflictingReportFormats = errors.New("config: JSON and Markdown report formats are mutually exclusive")

	// ErrInvalidMaxBodySize is returned when the maximum body size is negative.
	ErrInvalidMaxBodySize = errors.New("config: max body size must not be negative")

	// ErrConfigFileNotFound is returned when an explicitly specified
	// configuration file does not exist.
	ErrConfigFileNotFound = errors.New("config: configuration file not found")
)
