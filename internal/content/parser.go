package content

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/nao1215/fineprint/internal/model"
)

// Page holds everything extracted from one fetched page.
type Page struct {
	// URL is the full URL of the page.
	URL string

	// Hostname is the page's host.
	Hostname string

	// Title is the page title from the <title> tag.
	Title string

	// Text is the visible plain text of the page, whitespace-collapsed.
	Text string

	// Links contains a descriptor for every anchor with an href.
	Links []model.Link
}

// Parse extracts the visible text and link descriptors from HTML content.
// Relative hrefs are resolved against baseURL so deduplication downstream
// works on canonical URLs.
func Parse(baseURL *url.URL, content io.Reader) (*Page, error) {
	doc, err := html.Parse(content)
	if err != nil {
		return nil, err
	}

	page := &Page{
		URL:      baseURL.String(),
		Hostname: baseURL.Hostname(),
		Links:    make([]model.Link, 0),
	}

	var text strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript", "template":
				// Invisible content never reaches the scanners
				return
			case "title":
				if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					page.Title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "a":
				if href := getAttr(n, "href"); href != "" {
					if resolved := resolveURL(baseURL, href); resolved != "" {
						page.Links = append(page.Links, model.Link{
							Text:      collapseWhitespace(innerText(n)),
							Href:      resolved,
							AriaLabel: getAttr(n, "aria-label"),
							Title:     getAttr(n, "title"),
						})
					}
				}
			}
		case html.TextNode:
			text.WriteString(n.Data)
			text.WriteString(" ")
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	page.Text = collapseWhitespace(text.String())
	return page, nil
}

// resolveURL resolves href against base and filters out non-navigational
// schemes. Returning "" marks the link as unusable; the caller drops it.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || href == "#" ||
		strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:") {
		return ""
	}

	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}

// innerText collects the text content of a node's subtree.
func innerText(n *html.Node) string {
	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return sb.String()
}

// collapseWhitespace trims and squeezes runs of whitespace to one space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
