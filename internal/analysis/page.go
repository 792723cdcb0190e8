package analysis

import (
	"github.com/nao1215/fineprint/internal/keywords"
	"github.com/nao1215/fineprint/internal/model"
	"github.com/nao1215/fineprint/internal/scanner"
)

// PageData contains everything available for one page analysis.
//
// Design decision: We pass all data in a single struct rather than
// multiple parameters because the content source already gathers it
// together and adding fields later doesn't change the signature.
type PageData struct {
	// URL is the full URL of the page.
	URL string

	// Hostname is the page's host.
	Hostname string

	// Text is the rendered plain text of the page.
	Text string

	// Links are the hyperlink descriptors collected from the page.
	Links []model.Link
}

// AnalyzePage scans one page visit and assembles the report.
//
// The page text is scanned against the policy and risk phrase sets, and
// the links against the policy set. The report keeps at most
// model.MaxPolicyLinks links and model.MaxRiskyTerms distinct risk terms,
// truncated in scan order. Whether the report is worth surfacing is the
// caller's decision via report.WorthSurfacing().
func (a *Analyzer) AnalyzePage(data PageData) *model.PageAnalysisReport {
	report := model.NewPageAnalysisReport(data.URL, data.Hostname)

	report.HasPolicyContent = len(scanner.ScanText(data.Text, keywords.PolicyPhrases)) > 0

	riskTerms := scanner.ScanText(data.Text, keywords.RiskPhrases)
	report.HasRiskyKeywords = len(riskTerms) > 0
	for _, term := range riskTerms {
		report.AddRiskTerm(term)
	}

	// The scanner returns the full deduplicated match list; the annotator
	// sees every match even when the report cap drops the tail.
	matches := scanner.ScanLinks(data.Links, keywords.PolicyPhrases)
	for _, match := range matches {
		report.AddPolicyLink(match)
		if a.annotator != nil {
			a.annotator.Annotate(match)
		}
	}

	a.logger.Debug("page analyzed",
		"url", data.URL,
		"policy_content", report.HasPolicyContent,
		"risky_keywords", report.HasRiskyKeywords,
		"policy_links", len(report.FoundPolicyLinks),
	)

	return report
}
