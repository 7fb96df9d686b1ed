// Package cmd implements the CLI commands for mdpress using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdpress",
	Short: "mdpress — convert Markdown documents into paginated PDFs",
	Long: `mdpress converts the Markdown files in docs/ into A4 PDF files
under dist/pdf/, one PDF per document, with Unicode font fallback
for non-Latin scripts.

Running mdpress without a subcommand performs the batch conversion.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
