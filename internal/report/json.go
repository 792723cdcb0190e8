package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/fineprint/internal/analysis"
	"github.com/nao1215/fineprint/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indent:       false,
		indentPrefix: "",
		indentString: "",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the page scan report in JSON format.
func (w *JSONWriter) Write(report *model.PageAnalysisReport) (int, error) {
	return w.writeJSON(report)
}

// WriteManual outputs a manual text analysis in JSON format.
func (w *JSONWriter) WriteManual(result *analysis.ManualResult) (int, error) {
	return w.writeJSON(result)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// VersionedReport wraps a report with tool metadata.
//
// Design decision: We wrap the report rather than modifying
// PageAnalysisReport because this allows us to add output-specific fields
// without polluting the core data structure.
type VersionedReport struct {
	// Version is the fineprint version that generated this report.
	Version string `json:"version"`

	// Report is the page scan report, set for page scans.
	Report *model.PageAnalysisReport `json:"report,omitempty"`

	// Manual is the manual analysis result, set for manual text analyses.
	Manual *analysis.ManualResult `json:"manual,omitempty"`
}

// FullJSONWriter outputs reports wrapped with version metadata.
type FullJSONWriter struct {
	*JSONWriter

	// version is the fineprint version string.
	version string
}

// NewFullJSONWriter creates a writer for reports with metadata.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// Write outputs the page scan report wrapped with metadata.
func (w *FullJSONWriter) Write(report *model.PageAnalysisReport) (int, error) {
	return w.writeJSON(&VersionedReport{Version: w.version, Report: report})
}

// WriteManual outputs the manual analysis wrapped with metadata.
func (w *FullJSONWriter) WriteManual(result *analysis.ManualResult) (int, error) {
	return w.writeJSON(&VersionedReport{Version: w.version, Manual: result})
}
