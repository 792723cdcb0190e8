package scanner

import "strings"

// ScanText returns the subset of keywords whose phrase occurs as a
// case-insensitive substring of text, in keyword-set order.
// Keywords are expected to be lowercase already (see package keywords).
//
// The complexity is O(len(text) * len(keywords)), which is acceptable
// because both inputs are small and the function is pure and allocation-light.
func ScanText(text string, keywords []string) []string {
	if text == "" || len(keywords) == 0 {
		return nil
	}

	lower := strings.ToLower(text)

	var found []string
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}
