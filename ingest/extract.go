// Package ingest — main-content extraction.
// Isolates the content worth converting from a full HTML page by removing
// noise elements and selecting the best content container.
package ingest

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are HTML elements removed before extraction. None of them
// survive a Markdown-subset PDF anyway (no images, no navigation, no forms).
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header", "aside",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// Extract parses raw HTML, strips noise, and returns the main content
// fragment plus the page title. The content container is chosen in priority
// order: <main>, then <article>, then <body>.
func Extract(html string) (content, title string, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", fmt.Errorf("parsing HTML: %w", err)
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var main *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			main = sel.First()
			break
		}
	}
	if main == nil {
		return "", "", fmt.Errorf("no content container found in HTML")
	}

	content, err = goquery.OuterHtml(main)
	if err != nil {
		return "", "", fmt.Errorf("serializing content: %w", err)
	}
	return content, title, nil
}
