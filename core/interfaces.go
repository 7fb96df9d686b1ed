// Package core defines the block model and stage interfaces for mdpress.
// A document flows through the stages as an ordered sequence of blocks:
// transform classifies lines into blocks, render paginates them into a PDF.
package core

// BlockKind identifies one kind of rendering instruction.
type BlockKind int

const (
	// BlockHeading is a level 1-3 heading.
	BlockHeading BlockKind = iota
	// BlockParagraph is a single line of body text.
	BlockParagraph
	// BlockList is a grouped bullet list.
	BlockList
	// BlockPreformatted is verbatim monospace content (fenced code or a
	// pipe-table row), preserved with its original whitespace.
	BlockPreformatted
	// BlockSpacer is vertical whitespace between blocks.
	BlockSpacer
)

// Block is one discrete rendering instruction in the output sequence.
// The sequence for a document is owned by a single conversion call and
// discarded once the PDF is built.
type Block struct {
	Kind  BlockKind
	Level int      // heading level 1-3, BlockHeading only
	Text  string   // heading, paragraph, and preformatted content
	Items []string // list items in accumulation order, BlockList only
	Gap   float64  // vertical space in points, BlockSpacer only
}

// Heading builds a heading block.
func Heading(level int, text string) Block {
	return Block{Kind: BlockHeading, Level: level, Text: text}
}

// Paragraph builds a paragraph block.
func Paragraph(text string) Block {
	return Block{Kind: BlockParagraph, Text: text}
}

// List builds a grouped bullet-list block.
func List(items []string) Block {
	return Block{Kind: BlockList, Items: items}
}

// Preformatted builds a verbatim monospace block.
func Preformatted(text string) Block {
	return Block{Kind: BlockPreformatted, Text: text}
}

// Spacer builds a vertical-space block of gap points.
func Spacer(gap float64) Block {
	return Block{Kind: BlockSpacer, Gap: gap}
}

// DocMeta carries per-document metadata into the renderer.
type DocMeta struct {
	SourcePath string // path of the input file, for diagnostics
	Title      string // PDF document title: input base name, no extension
}

// Transformer converts a document's text into an ordered block sequence.
type Transformer interface {
	Transform(text string) []Block
}

// Renderer converts a block sequence into final output bytes.
type Renderer interface {
	Render(blocks []Block, meta DocMeta) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".pdf").
	Extension() string
}
