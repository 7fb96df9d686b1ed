package render

import (
	"testing"

	"github.com/gaurav-prasanna/mdpress/core"
	"github.com/gaurav-prasanna/mdpress/core/fonts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fallbackRenderer() *PDFRenderer {
	return NewPDFRenderer(fonts.Font{Family: fonts.FallbackFamily})
}

func TestRender_ProducesPDF(t *testing.T) {
	blocks := []core.Block{
		core.Heading(1, "Title"),
		core.Spacer(6),
		core.Paragraph("Hello world"),
		core.List([]string{"a", "b"}),
		core.Spacer(4),
		core.Preformatted("code here\nmore code"),
		core.Spacer(6),
	}

	data, err := fallbackRenderer().Render(blocks, core.DocMeta{
		SourcePath: "docs/sample.md",
		Title:      "sample",
	})

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_EachBlockKind(t *testing.T) {
	tests := []struct {
		name  string
		block core.Block
	}{
		{"heading 1", core.Heading(1, "h")},
		{"heading 2", core.Heading(2, "h")},
		{"heading 3", core.Heading(3, "h")},
		{"paragraph", core.Paragraph("p")},
		{"list", core.List([]string{"x", "y"})},
		{"preformatted", core.Preformatted("| a | b |")},
		{"spacer", core.Spacer(6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := fallbackRenderer().Render([]core.Block{tt.block}, core.DocMeta{Title: "t"})
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestRender_EmptySequence(t *testing.T) {
	// An empty document still yields a valid single-page PDF.
	data, err := fallbackRenderer().Render(nil, core.DocMeta{Title: "empty"})

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_UnknownHeadingLevel(t *testing.T) {
	_, err := fallbackRenderer().Render(
		[]core.Block{core.Heading(5, "too deep")},
		core.DocMeta{SourcePath: "docs/bad.md", Title: "bad"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "heading level 5")
}

func TestRender_RendererIsReusable(t *testing.T) {
	// One renderer serves the whole batch; a second document must not be
	// affected by the first.
	r := fallbackRenderer()

	_, err := r.Render([]core.Block{core.Paragraph("first")}, core.DocMeta{Title: "a"})
	require.NoError(t, err)

	data, err := r.Render([]core.Block{core.Paragraph("second")}, core.DocMeta{Title: "b"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".pdf", fallbackRenderer().Extension())
}
