// Package database provides SQLite-based persistence for fineprint.
//
// Scan reports are stored as JSON blobs keyed by URL so past analyses can
// be listed and compared without re-fetching pages. A small key-value
// preferences table holds user settings such as whether scan results are
// surfaced automatically.
package database
