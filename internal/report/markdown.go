package report

import (
	"io"
	"strconv"

	"github.com/nao1215/fineprint/internal/analysis"
	"github.com/nao1215/fineprint/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the page scan report in Markdown format.
func (w *MarkdownWriter) Write(report *model.PageAnalysisReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Fineprint Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", "`" + report.URL + "`"},
			{"Hostname", "`" + report.Hostname + "`"},
			{"Scan Date", report.ScannedAt.Format("2006-01-02 15:04:05 MST")},
			{"Policy Content", yesNo(report.HasPolicyContent)},
			{"Risk Language", yesNo(report.HasRiskyKeywords)},
		},
	})
	md.PlainText("")

	switch {
	case report.HasRiskyKeywords:
		md.Warningf(
			"Risk language detected. %d risk term(s) found on this page.",
			len(report.FoundRiskyTerms),
		)
	case report.HasPolicyContent:
		md.Note("Policy content detected but no risk language found.")
	default:
		md.Tip("Nothing flagged on this page.")
	}
	md.PlainText("")

	w.writeRiskTerms(md, report.FoundRiskyTerms)
	w.writePolicyLinks(md, report.FoundPolicyLinks)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteManual outputs a manual text analysis in Markdown format.
func (w *MarkdownWriter) WriteManual(result *analysis.ManualResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	assessment := result.Assessment

	md.H1("Fineprint Analysis")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Verdict", assessment.LevelText},
			{"Risk Score", strconv.FormatFloat(assessment.RiskScore, 'f', 1, 64)},
			{"Risk Terms", strconv.Itoa(len(assessment.FoundRisks))},
			{"Positive Terms", strconv.Itoa(len(assessment.FoundPositives))},
		},
	})
	md.PlainText("")

	if assessment.Level == model.LevelRisky {
		md.Warningf("%s", assessment.Description)
	} else {
		md.Tip(assessment.Description)
	}
	md.PlainText("")

	if len(assessment.FoundRisks) > 0 || len(assessment.FoundPositives) > 0 {
		w.writePieChart(md, assessment)
	}

	if len(assessment.FoundRisks) > 0 {
		md.H2("Risk Terms")
		md.PlainText("")
		md.BulletList(assessment.FoundRisks...)
		md.PlainText("")
	}

	if len(assessment.FoundPositives) > 0 {
		md.H2("Positive Terms")
		md.PlainText("")
		md.BulletList(assessment.FoundPositives...)
		md.PlainText("")
	}

	md.H2("Summary")
	md.PlainText("")
	md.PlainText(result.Summary.Text)
	md.PlainText("")
	md.PlainTextf("*Summary stage: %s*", result.Summary.StageText)
	md.PlainText("")

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writePieChart writes a mermaid pie chart of term counts.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, assessment model.RiskAssessment) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Matched Term Distribution"),
		piechart.WithShowData(true),
	)

	if len(assessment.FoundRisks) > 0 {
		chart.LabelAndIntValue("Risk", uint64(len(assessment.FoundRisks)))
	}
	if len(assessment.FoundPositives) > 0 {
		chart.LabelAndIntValue("Positive", uint64(len(assessment.FoundPositives)))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeRiskTerms writes the detected risk terms section.
func (w *MarkdownWriter) writeRiskTerms(md *markdown.Markdown, terms []string) {
	md.H2("Risk Terms")
	md.PlainText("")

	if len(terms) == 0 {
		md.PlainText("No risk terms found.")
		md.PlainText("")
		return
	}

	md.BulletList(terms...)
	md.PlainText("")
}

// writePolicyLinks writes the detected policy links section.
func (w *MarkdownWriter) writePolicyLinks(md *markdown.Markdown, links []model.PolicyMatch) {
	md.H2("Policy Links")
	md.PlainText("")

	if len(links) == 0 {
		md.PlainText("No policy links found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(links))
	for i, link := range links {
		text := link.Text
		if text == "" {
			text = "-"
		}
		rows[i] = []string{
			truncateString(text, 40),
			"`" + truncateString(link.Href, 60) + "`",
			link.Keyword,
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Text", "URL", "Matched Keyword"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [fineprint](https://github.com/nao1215/fineprint)*")
}

// yesNo renders a boolean as a friendly table value.
func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
