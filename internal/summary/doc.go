// Package summary orchestrates the layered summarization chain.
//
// Three optional stages run in order: condense, reframe, polish. Each
// stage is independently failable, and every failure falls back to the
// previous stage's output. A deterministic heuristic sentence terminates
// the chain, so the pipeline always delivers a usable summary even when
// every optional provider is absent or failing. That guarantee is the
// defining contract of this package, not incidental error suppression.
package summary
