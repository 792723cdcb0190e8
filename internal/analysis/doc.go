// Package analysis exposes the two orchestrators that make up fineprint's
// public surface: page analysis (scan rendered page text and links for
// policy content) and manual analysis (score and summarize pasted text).
//
// Both flows follow the same principle: heuristic, locally-computable
// results must always be deliverable. Provider failures are recovered,
// malformed links are skipped, and only input validation errors reach
// the caller.
package analysis
