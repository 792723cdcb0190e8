package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/fineprint/internal/analysis"
	"github.com/nao1215/fineprint/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no findings are shown.
	showEmpty bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the page scan report in human-readable format.
func (w *SimpleWriter) Write(report *model.PageAnalysisReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeRiskTerms(&sb, report)
	w.writePolicyLinks(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// WriteManual outputs a manual text analysis in human-readable format.
func (w *SimpleWriter) WriteManual(result *analysis.ManualResult) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                       FINEPRINT ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	assessment := result.Assessment
	sb.WriteString(fmt.Sprintf("Verdict:     [%s] %s\n", assessment.LevelText, assessment.Description))
	sb.WriteString(fmt.Sprintf("Risk Score:  %.1f\n", assessment.RiskScore))
	sb.WriteString("\n")

	if len(assessment.FoundRisks) > 0 || w.showEmpty {
		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n")
		sb.WriteString("RISK TERMS\n")
		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n\n")
		if len(assessment.FoundRisks) == 0 {
			sb.WriteString("  No risk terms found\n")
		}
		for _, term := range assessment.FoundRisks {
			sb.WriteString(fmt.Sprintf("  [!] %s\n", term))
		}
		sb.WriteString("\n")
	}

	if len(assessment.FoundPositives) > 0 {
		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n")
		sb.WriteString("POSITIVE TERMS\n")
		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n\n")
		for _, term := range assessment.FoundPositives {
			sb.WriteString(fmt.Sprintf("  [+] %s\n", term))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("  %s\n", result.Summary.Text))
	sb.WriteString(fmt.Sprintf("  (stage: %s)\n", result.Summary.StageText))
	sb.WriteString("\n")

	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with scan information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.PageAnalysisReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                        FINEPRINT REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("URL:        %s\n", report.URL))
	sb.WriteString(fmt.Sprintf("Hostname:   %s\n", report.Hostname))
	sb.WriteString(fmt.Sprintf("Scan Date:  %s\n", report.ScannedAt.Format("2006-01-02 15:04:05 MST")))

	switch {
	case report.HasRiskyKeywords:
		sb.WriteString("Status:     [RISKY] risk language detected\n")
	case report.HasPolicyContent:
		sb.WriteString("Status:     [POLICY] policy content detected\n")
	default:
		sb.WriteString("Status:     [CLEAN] nothing flagged\n")
	}

	sb.WriteString("\n")
}

// writeRiskTerms writes the detected risk terms section.
func (w *SimpleWriter) writeRiskTerms(sb *strings.Builder, report *model.PageAnalysisReport) {
	if len(report.FoundRiskyTerms) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RISK TERMS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(report.FoundRiskyTerms) == 0 {
		sb.WriteString("  No risk terms found\n")
	} else {
		for _, term := range report.FoundRiskyTerms {
			sb.WriteString(fmt.Sprintf("  [!] %s\n", term))
		}
	}
	sb.WriteString("\n")
}

// writePolicyLinks writes the detected policy links section.
func (w *SimpleWriter) writePolicyLinks(sb *strings.Builder, report *model.PageAnalysisReport) {
	if len(report.FoundPolicyLinks) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("POLICY LINKS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(report.FoundPolicyLinks) == 0 {
		sb.WriteString("  No policy links found\n")
	} else {
		for _, link := range report.FoundPolicyLinks {
			text := link.Text
			if text == "" {
				text = "(no text)"
			}
			sb.WriteString(fmt.Sprintf("  [+] %s\n", text))
			sb.WriteString(fmt.Sprintf("      %s\n", link.Href))
		}
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by fineprint\n")
	sb.WriteString("https://github.com/nao1215/fineprint\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
