// Package model defines the core data structures used throughout fineprint.
//
// This package contains the following main types:
//   - Link: A hyperlink descriptor collected from a rendered page
//   - PolicyMatch: One deduplicated matched policy link
//   - PageAnalysisReport: The result of scanning one page visit
//   - RiskAssessment: The keyword-derived risk score and classification
//   - SummaryResult: The summary text and the pipeline stage that produced it
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (scanner, risk, summary, report, database)
// need these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
