package model

import "time"

// Caps on the per-report match lists. These are truncation limits, not
// sampling: the first N entries in scan order are kept and the rest dropped.
const (
	// MaxPolicyLinks is the maximum number of policy links per report.
	MaxPolicyLinks = 5

	// MaxRiskyTerms is the maximum number of risky terms per report.
	MaxRiskyTerms = 5
)

// PageAnalysisReport is the result of scanning one page visit.
// It is created once per scan invocation and owned by the caller; the
// storage and display collaborators receive it by value.
type PageAnalysisReport struct {
	// HasPolicyContent is true if the page text contains any policy phrase.
	HasPolicyContent bool `json:"has_policy_content"`

	// HasRiskyKeywords is true if the page text contains any risk phrase.
	HasRiskyKeywords bool `json:"has_risky_keywords"`

	// FoundPolicyLinks holds up to MaxPolicyLinks matched links in link
	// traversal order, deduplicated by (href, text).
	FoundPolicyLinks []PolicyMatch `json:"found_policy_links,omitempty"`

	// FoundRiskyTerms holds up to MaxRiskyTerms distinct matched risk
	// phrases in keyword-set order.
	FoundRiskyTerms []string `json:"found_risky_terms,omitempty"`

	// Hostname is the host of the scanned page.
	Hostname string `json:"hostname"`

	// URL is the full URL of the scanned page.
	URL string `json:"url"`

	// ScannedAt is the timestamp of the scan, used by the history store.
	ScannedAt time.Time `json:"scanned_at"`
}

// NewPageAnalysisReport creates an empty report for the given page.
func NewPageAnalysisReport(pageURL, hostname string) *PageAnalysisReport {
	return &PageAnalysisReport{
		URL:              pageURL,
		Hostname:         hostname,
		FoundPolicyLinks: make([]PolicyMatch, 0, MaxPolicyLinks),
		FoundRiskyTerms:  make([]string, 0, MaxRiskyTerms),
		ScannedAt:        time.Now().UTC(),
	}
}

// AddPolicyLink appends a match unless the cap is reached or an entry with
// the same (href, text) pair already exists. It reports whether the match
// was added.
func (r *PageAnalysisReport) AddPolicyLink(match PolicyMatch) bool {
	if len(r.FoundPolicyLinks) >= MaxPolicyLinks {
		return false
	}
	for _, existing := range r.FoundPolicyLinks {
		if existing.Href == match.Href && existing.Text == match.Text {
			return false
		}
	}
	r.FoundPolicyLinks = append(r.FoundPolicyLinks, match)
	return true
}

// AddRiskTerm appends a risk term unless the cap is reached or the term is
// already present. It reports whether the term was added.
func (r *PageAnalysisReport) AddRiskTerm(term string) bool {
	if len(r.FoundRiskyTerms) >= MaxRiskyTerms {
		return false
	}
	for _, existing := range r.FoundRiskyTerms {
		if existing == term {
			return false
		}
	}
	r.FoundRiskyTerms = append(r.FoundRiskyTerms, term)
	return true
}

// WorthSurfacing reports whether the page produced anything worth showing
// to the user. The decision of how to surface it belongs to the caller.
func (r *PageAnalysisReport) WorthSurfacing() bool {
	return r.HasPolicyContent || r.HasRiskyKeywords
}
