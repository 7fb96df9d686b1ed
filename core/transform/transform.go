// Package transform converts Markdown text into an ordered block sequence.
// It runs a two-state machine (normal / in-code) over the document's lines,
// delegating line recognition to classify and accumulating bullets and code
// lines until their group closes.
package transform

import (
	"strings"

	"github.com/gaurav-prasanna/mdpress/core"
	"github.com/gaurav-prasanna/mdpress/core/classify"
)

// Spacer gaps in points, matching the gap each block kind carries after it.
const (
	listGap  = 4
	blankGap = 6
	codeGap  = 6
)

// MarkdownTransformer turns Markdown text into core blocks.
// The zero value is ready to use; Transform is a pure function of its input.
type MarkdownTransformer struct{}

// New creates a MarkdownTransformer.
func New() *MarkdownTransformer {
	return &MarkdownTransformer{}
}

// state carries everything the line loop mutates: the current mode plus the
// two accumulators. One value per Transform call, never shared.
type state struct {
	inCode  bool
	code    []string
	bullets []string
	blocks  []core.Block
}

// flushBullets converts the accumulated bullet texts into one grouped list
// block followed by a spacer, then resets the accumulator. A flush with no
// pending bullets is a no-op.
func (s *state) flushBullets() {
	if len(s.bullets) == 0 {
		return
	}
	items := make([]string, len(s.bullets))
	copy(items, s.bullets)
	s.blocks = append(s.blocks, core.List(items), core.Spacer(listGap))
	s.bullets = s.bullets[:0]
}

// step processes one physical line.
func (s *state) step(raw string) {
	line := classify.Classify(s.inCode, raw)

	switch line.Kind {
	case classify.Fence:
		if !s.inCode {
			s.flushBullets()
			s.inCode = true
			s.code = nil
			return
		}
		s.blocks = append(s.blocks,
			core.Preformatted(strings.Join(s.code, "\n")),
			core.Spacer(codeGap))
		s.inCode = false

	case classify.CodeLine:
		s.code = append(s.code, line.Text)

	case classify.Blank:
		s.flushBullets()
		s.blocks = append(s.blocks, core.Spacer(blankGap))

	case classify.Heading:
		s.flushBullets()
		s.blocks = append(s.blocks, core.Heading(line.Level, line.Text))

	case classify.Bullet:
		s.bullets = append(s.bullets, line.Text)

	case classify.TableRow:
		s.flushBullets()
		s.blocks = append(s.blocks, core.Preformatted(line.Text))

	case classify.Paragraph:
		s.flushBullets()
		s.blocks = append(s.blocks, core.Paragraph(line.Text))
	}
}

// Transform converts text into the ordered block sequence.
// End of input forces a final bullet flush; an unterminated fence discards
// its accumulated content rather than emitting a partial code block.
func (t *MarkdownTransformer) Transform(text string) []core.Block {
	lines := strings.Split(text, "\n")
	// A trailing newline yields one empty trailing element, not a line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	s := &state{}
	for _, raw := range lines {
		s.step(raw)
	}
	s.flushBullets()
	return s.blocks
}
