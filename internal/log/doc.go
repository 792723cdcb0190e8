// Package log provides logging utilities for fineprint.
//
// All logging goes through log/slog. The package contributes a handler
// wrapper that masks credentials (provider tokens, authorization headers)
// and truncates oversized string attributes so that full policy-page
// text never floods the log output.
package log
