// Package cmd — batch conversion.
// The flagless default run: discover → read → transform → render → write,
// once per Markdown document in the source directory.
//
// A failing document halts the batch; this is a best-effort single-pass
// tool with no per-document error isolation.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/mdpress/core"
	"github.com/gaurav-prasanna/mdpress/core/fonts"
	"github.com/gaurav-prasanna/mdpress/core/output"
	"github.com/gaurav-prasanna/mdpress/core/render"
	"github.com/gaurav-prasanna/mdpress/core/transform"
	"github.com/gaurav-prasanna/mdpress/discover"
	"github.com/spf13/cobra"
)

// Fixed batch paths.
const (
	docsDir = "docs"
	outDir  = "dist/pdf"
)

func runConvert(cmd *cobra.Command, args []string) error {
	inputs, err := discover.Scan(docsDir)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		fmt.Fprintf(os.Stdout, "No Markdown files found in %s/.\n", docsDir)
		return nil
	}

	writer, err := output.New(outDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	// One resolver per process; the resolved font serves every document.
	resolver := fonts.NewResolver()
	renderer := render.NewPDFRenderer(resolver.Resolve())
	transformer := transform.New()

	for _, input := range inputs {
		base := output.BaseName(input)
		outPath := filepath.Join(writer.OutputDir, base+renderer.Extension())
		fmt.Fprintf(os.Stdout, "Converting %s -> %s\n", input, outPath)

		if err := convertFile(input, base, transformer, renderer, writer); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "Done. PDFs at: %s\n", writer.OutputDir)
	return nil
}

// convertFile runs a single document through the pipeline.
func convertFile(
	input, base string,
	transformer core.Transformer,
	renderer core.Renderer,
	writer *output.Writer,
) error {
	text, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	blocks := transformer.Transform(string(text))

	data, err := renderer.Render(blocks, core.DocMeta{
		SourcePath: input,
		Title:      base,
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if _, err := writer.Write(base, data, renderer.Extension()); err != nil {
		return err
	}
	return nil
}
