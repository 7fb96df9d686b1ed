// Package cmd — ingest command.
// Fetches a web page, extracts its main content, normalizes it to Markdown,
// and saves it into the source directory so the next batch run converts it.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/gaurav-prasanna/mdpress/core/output"
	"github.com/gaurav-prasanna/mdpress/ingest"
	"github.com/spf13/cobra"
)

var flagIngestOut string

var ingestCmd = &cobra.Command{
	Use:   "ingest <url>",
	Short: "Fetch a web page and save it as a Markdown document",
	Long: `Ingest fetches a webpage, extracts the main content, normalizes it to
Markdown, and writes it into the source directory for later conversion.

Examples:
  mdpress ingest https://example.com/docs/intro
  mdpress ingest https://example.com --out notes`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringVar(&flagIngestOut, "out", docsDir, "Directory to save the Markdown document in")
}

func runIngest(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	page, err := ingest.NewFetcher().Fetch(context.Background(), rawURL)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	content, title, err := ingest.Extract(page.HTML)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	markdown, err := ingest.Normalize(content, title)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	writer, err := output.New(flagIngestOut)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	path, err := writer.Write(ingest.Slug(rawURL), []byte(markdown), ".md")
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Saved %s -> %s\n", rawURL, path)
	return nil
}
