// Package report renders analysis results for the user.
//
// Three formats are supported: human-readable text for terminal display,
// JSON for tool integration, and Markdown for documentation and sharing.
// All writers implement the same Writer interface so the CLI can select
// a format without caring about the destination.
package report
