// Package render — PDF renderer.
// Paginates a block sequence into a styled A4 PDF using gofpdf.
// Headings get the three fixed sizes, lists an indent with bullet markers,
// and preformatted blocks (code, table rows) a monospace face.
package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/mdpress/core"
	"github.com/gaurav-prasanna/mdpress/core/fonts"
	"github.com/jung-kurt/gofpdf"
)

const mm = 72.0 / 25.4 // points per millimetre

// Page geometry: A4 portrait with uniform 18 mm margins.
const pageMargin = 18 * mm

// listIndent is the extra left margin applied to bullet-list items.
const listIndent = 12

// style holds the visual attributes of one block style.
type style struct {
	size       float64 // font size in points
	leading    float64 // line height in points
	spaceAfter float64 // extra vertical space after the block
}

var (
	normalStyle = style{size: 11, leading: 15}
	codeStyle   = style{size: 9, leading: 12}

	// Heading styles by level; level 1 is the largest.
	headingStyles = map[int]style{
		1: {size: 18, leading: 22, spaceAfter: 8},
		2: {size: 16, leading: 20, spaceAfter: 6},
		3: {size: 14, leading: 18, spaceAfter: 4},
	}
)

// codeFamily is the fixed monospace family for preformatted blocks.
const codeFamily = "Courier"

// PDFRenderer renders block sequences as PDF documents.
// Normal and heading text use the resolved font; preformatted blocks always
// use Courier. One renderer serves any number of documents.
type PDFRenderer struct {
	font fonts.Font
}

// NewPDFRenderer creates a PDFRenderer using the given resolved font for
// body and heading text.
func NewPDFRenderer(font fonts.Font) *PDFRenderer {
	return &PDFRenderer{font: font}
}

// Render paginates the block sequence into PDF bytes.
func (r *PDFRenderer) Render(blocks []core.Block, meta core.DocMeta) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(meta.Title, true)

	// gofpdf fonts are registered per document, so a file-backed resolved
	// font is added to every output document.
	if !r.font.Core() {
		pdf.SetFontLocation(filepath.Dir(r.font.Path))
		pdf.AddUTF8Font(r.font.Family, "", filepath.Base(r.font.Path))
	}
	pdf.AddPage()

	for _, b := range blocks {
		switch b.Kind {
		case core.BlockHeading:
			st, ok := headingStyles[b.Level]
			if !ok {
				return nil, fmt.Errorf("rendering %s: no style for heading level %d", meta.SourcePath, b.Level)
			}
			pdf.SetFont(r.font.Family, "", st.size)
			pdf.MultiCell(0, st.leading, b.Text, "", "L", false)
			pdf.Ln(st.spaceAfter)

		case core.BlockParagraph:
			pdf.SetFont(r.font.Family, "", normalStyle.size)
			pdf.MultiCell(0, normalStyle.leading, b.Text, "", "L", false)

		case core.BlockList:
			pdf.SetFont(r.font.Family, "", normalStyle.size)
			pdf.SetLeftMargin(pageMargin + listIndent)
			pdf.SetX(pageMargin + listIndent)
			for _, item := range b.Items {
				pdf.MultiCell(0, normalStyle.leading, "• "+item, "", "L", false)
			}
			pdf.SetLeftMargin(pageMargin)
			pdf.SetX(pageMargin)

		case core.BlockPreformatted:
			pdf.SetFont(codeFamily, "", codeStyle.size)
			for _, line := range strings.Split(b.Text, "\n") {
				pdf.CellFormat(0, codeStyle.leading, line, "", 1, "L", false, 0, "")
			}

		case core.BlockSpacer:
			pdf.Ln(b.Gap)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF for %s: %w", meta.SourcePath, err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
