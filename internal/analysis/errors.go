package analysis

import "errors"

// MinTextLength is the minimum number of characters (after trimming) a
// manual analysis accepts. Shorter texts do not carry enough signal for
// keyword scoring to mean anything.
const MinTextLength = 100

// Validation errors returned by AnalyzeManualText. These are the only
// errors the orchestrators surface; everything else is recovered locally.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at the call site. This allows callers to
// use errors.Is() for programmatic handling while keeping the messages
// human-readable.
var (
	// ErrEmptyText is returned when the manual text is empty or whitespace.
	ErrEmptyText = errors.New("no text provided: paste the policy text to analyze")

	// ErrTextTooShort is returned when the trimmed text is under MinTextLength.
	ErrTextTooShort = errors.New("text too short: at least 100 characters are needed for analysis")
)
