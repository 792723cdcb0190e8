package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/fineprint/internal/model"
)

// ErrReportNotFound is returned when no stored report exists for a URL.
var ErrReportNotFound = errors.New("database: report not found")

// dbFileName is the SQLite database file name inside the data directory.
const dbFileName = "fineprint.db"

// autoSurfaceKey is the preferences key controlling automatic surfacing
// of scan results.
const autoSurfaceKey = "auto_surface_reports"

// HistoryDB provides SQLite-based storage for page analysis reports.
//
// Design decision: Reports are stored as JSON blobs rather than
// normalized across tables. A report is always read and written as a
// unit, and the schema stays stable as report fields evolve.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB inside dbDir.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Page reports store complete analysis results as JSON
	CREATE TABLE IF NOT EXISTS page_reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT NOT NULL,
		hostname TEXT NOT NULL,
		worth_surfacing INTEGER NOT NULL DEFAULT 0,
		report_json TEXT NOT NULL,
		scanned_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_reports_url ON page_reports(url);
	CREATE INDEX IF NOT EXISTS idx_reports_hostname ON page_reports(hostname);
	CREATE INDEX IF NOT EXISTS idx_reports_scanned_at ON page_reports(scanned_at);

	-- Preferences is a small key-value store for user settings
	CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveReport stores a page analysis report.
func (hdb *HistoryDB) SaveReport(ctx context.Context, report *model.PageAnalysisReport) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	worthSurfacing := 0
	if report.WorthSurfacing() {
		worthSurfacing = 1
	}

	query := `
	INSERT INTO page_reports (url, hostname, worth_surfacing, report_json)
	VALUES (?, ?, ?, ?)
	`

	_, err = hdb.db.ExecContext(ctx, query,
		report.URL,
		report.Hostname,
		worthSurfacing,
		string(reportJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

// LatestReport retrieves the most recent report for a URL.
// Returns ErrReportNotFound when no report is stored.
func (hdb *HistoryDB) LatestReport(ctx context.Context, url string) (*model.PageAnalysisReport, error) {
	query := `
	SELECT report_json FROM page_reports
	WHERE url = ?
	ORDER BY scanned_at DESC, id DESC
	LIMIT 1
	`

	var reportJSON string
	err := hdb.db.QueryRowContext(ctx, query, url).Scan(&reportJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrReportNotFound, url)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report model.PageAnalysisReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &report, nil
}

// Reports retrieves up to limit reports, newest first. An empty url
// returns reports for all URLs; a non-empty url filters to that URL.
// A limit of zero or less means no limit.
func (hdb *HistoryDB) Reports(ctx context.Context, url string, limit int) ([]*model.PageAnalysisReport, error) {
	query := `
	SELECT report_json FROM page_reports
	`
	args := make([]any, 0, 2)

	if url != "" {
		query += " WHERE url = ?"
		args = append(args, url)
	}

	query += " ORDER BY scanned_at DESC, id DESC"

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []*model.PageAnalysisReport
	for rows.Next() {
		var reportJSON string
		if err := rows.Scan(&reportJSON); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}

		var report model.PageAnalysisReport
		if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
			continue // Skip malformed reports
		}
		reports = append(reports, &report)
	}

	return reports, rows.Err()
}

// ScannedURLs returns the distinct URLs that have stored reports.
func (hdb *HistoryDB) ScannedURLs(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT url FROM page_reports
	ORDER BY url
	`

	rows, err := hdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list URLs: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("failed to scan URL: %w", err)
		}
		urls = append(urls, url)
	}

	return urls, rows.Err()
}

// SetPreference stores a preference value, replacing any existing value.
func (hdb *HistoryDB) SetPreference(ctx context.Context, key, value string) error {
	query := `
	INSERT INTO preferences (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	if _, err := hdb.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}

	return nil
}

// Preference retrieves a preference value. Missing keys return an empty
// string without error.
func (hdb *HistoryDB) Preference(ctx context.Context, key string) (string, error) {
	query := `
	SELECT value FROM preferences WHERE key = ?
	`

	var value string
	err := hdb.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference: %w", err)
	}

	return value, nil
}

// AutoSurface reports whether scan results should be surfaced
// automatically. Unset defaults to true.
func (hdb *HistoryDB) AutoSurface(ctx context.Context) (bool, error) {
	value, err := hdb.Preference(ctx, autoSurfaceKey)
	if err != nil {
		return true, err
	}
	if value == "" {
		return true, nil
	}

	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return true, nil // Treat unreadable values as the default
	}
	return enabled, nil
}

// SetAutoSurface stores the automatic surfacing preference.
func (hdb *HistoryDB) SetAutoSurface(ctx context.Context, enabled bool) error {
	return hdb.SetPreference(ctx, autoSurfaceKey, strconv.FormatBool(enabled))
}
