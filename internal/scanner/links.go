package scanner

import (
	"strings"
	"unicode"

	"github.com/nao1215/fineprint/internal/model"
)

// ScanLinks matches a keyword set against hyperlink descriptors.
//
// A link matches a keyword when any of the normalization strategies in
// linkMatches holds. The first matching keyword wins per link, and results
// are deduplicated by (href, trimmed text) across the whole call: a link
// that matches several keywords still yields one entry. Result order is
// link traversal order. Links with an empty Href are malformed and skipped;
// a bad descriptor never aborts the remaining scan.
//
// No cap is applied here. The page analysis orchestrator truncates the list
// when assembling the report, so callers that want the full match set (for
// annotation, for example) can still see it.
func ScanLinks(links []model.Link, keywords []string) []model.PolicyMatch {
	if len(links) == 0 || len(keywords) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	matches := make([]model.PolicyMatch, 0)

	for _, link := range links {
		if strings.TrimSpace(link.Href) == "" {
			continue
		}

		for _, keyword := range keywords {
			if !linkMatches(link, keyword) {
				continue
			}

			match := model.PolicyMatch{
				Text:    strings.TrimSpace(link.Text),
				Href:    link.Href,
				Keyword: keyword,
			}

			key := match.Href + "|" + match.Text
			if !seen[key] {
				seen[key] = true
				matches = append(matches, match)
			}
			break
		}
	}

	return matches
}

// linkMatches reports whether a single link matches a single keyword under
// any of the normalization strategies. All comparisons are case-insensitive.
//
// URLs rarely contain spaces, so the keyword is also tried with whitespace
// stripped and with whitespace replaced by "-" and "_", covering the
// common slug styles for paths like /privacy-policy or /terms_of_service.
func linkMatches(link model.Link, keyword string) bool {
	text := strings.ToLower(link.Text)
	href := strings.ToLower(link.Href)

	// Visible text containment
	if strings.Contains(text, keyword) {
		return true
	}

	// URL containment under slug normalizations
	if strings.Contains(href, strings.ReplaceAll(keyword, " ", "")) {
		return true
	}
	if strings.Contains(href, strings.ReplaceAll(keyword, " ", "-")) {
		return true
	}
	if strings.Contains(href, strings.ReplaceAll(keyword, " ", "_")) {
		return true
	}

	// Accessibility attributes
	if strings.Contains(strings.ToLower(link.AriaLabel), keyword) {
		return true
	}
	if strings.Contains(strings.ToLower(link.Title), keyword) {
		return true
	}

	// Visible text with punctuation stripped, for decorated anchors
	if strings.Contains(stripPunctuation(text), keyword) {
		return true
	}

	if strings.HasPrefix(text, keyword) {
		return true
	}
	if strings.HasSuffix(text, keyword) {
		return true
	}

	return false
}

// stripPunctuation removes punctuation and symbol runes from s.
func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, s)
}
