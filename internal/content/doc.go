// Package content retrieves and parses web pages for analysis.
//
// It is the concrete page content source: given a URL it produces the
// rendered plain text and the hyperlink descriptors the scanners consume.
// HTML is parsed with golang.org/x/net/html, which handles the malformed
// markup common on the web, and response bodies are decoded through
// x/net/html/charset so non-UTF-8 pages scan correctly.
package content
