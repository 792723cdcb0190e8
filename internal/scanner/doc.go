// Package scanner implements the lexical matching engine.
//
// It provides two pure functions: ScanText matches a keyword set against a
// blob of plain text, and ScanLinks matches a keyword set against hyperlink
// descriptors using several normalization strategies. Neither performs I/O.
//
// Matching is case-insensitive substring containment with no word-boundary
// enforcement. That makes "terms" fire inside unrelated words; the behavior
// is kept deliberately because the heuristic favors false positives over
// missed policy content.
package scanner
