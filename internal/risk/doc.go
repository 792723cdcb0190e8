// Package risk converts keyword matches into a numeric score and a
// safe/risky classification with a human-readable description.
//
// The scorer is pure and deterministic: the same input text always yields
// the same assessment. It shares the substring-containment caveat of
// package scanner.
package risk
