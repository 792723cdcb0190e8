// Package main provides the entry point for the fineprint CLI.
//
// Fineprint scans web pages and pasted documents for privacy-policy and
// terms-of-service language that deserves a closer look: data selling,
// forced arbitration, unilateral changes, and similar red flags.
//
// Usage:
//
//	fineprint scan <url>
//	fineprint analyze <file>
//
// See --help for all available options.
package main

// main is the entry point for fineprint.
func main() {
	Execute()
}
