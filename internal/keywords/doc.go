// Package keywords defines the static phrase sets used by the scanners.
//
// The sets are ordered, lowercase, and treated as process-wide constants.
// Matching is plain case-insensitive substring containment, so every phrase
// here must already be in the form it is searched for.
package keywords
