// Package ingest sources Markdown documents from the web.
// A page is fetched, stripped down to its main content, and normalized to
// Markdown so the batch converter can turn it into a PDF like any other
// document in the source directory.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	fetchTimeout     = 30 * time.Second
	defaultUserAgent = "mdpress/1.0 (https://github.com/gaurav-prasanna/mdpress)"
)

// Page holds the raw HTML and response metadata from a fetch.
type Page struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves web pages via HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with a sensible timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: fetchTimeout}}
}

// Fetch retrieves the HTML content of the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Page{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}
