package model

// Link describes a hyperlink collected from a rendered page.
// It is produced by the page content source and consumed read-only by the
// link scanner. A Link with an empty Href is considered malformed and is
// skipped during scanning rather than treated as an error.
type Link struct {
	// Text is the visible text of the anchor, whitespace-collapsed.
	Text string `json:"text"`

	// Href is the resolved target URL of the anchor.
	Href string `json:"href"`

	// AriaLabel is the accessible name from the aria-label attribute.
	AriaLabel string `json:"aria_label,omitempty"`

	// Title is the title attribute, if present.
	Title string `json:"title,omitempty"`
}

// PolicyMatch is one deduplicated matched link. Two matches are considered
// equal when both Href and Text are equal; the Keyword field does not
// participate in equality.
type PolicyMatch struct {
	// Text is the trimmed visible text of the matched link.
	Text string `json:"text"`

	// Href is the target URL of the matched link.
	Href string `json:"href"`

	// Keyword is the phrase that triggered the match. An external annotator
	// can use it to label the link; it is informational for everything else.
	Keyword string `json:"keyword,omitempty"`
}
