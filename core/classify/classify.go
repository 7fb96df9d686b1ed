// Package classify maps one physical input line to exactly one line kind.
// Classification is a pure function of (code-block mode, raw line); it never
// emits blocks, so the transformer's state machine stays separate from the
// recognition rules.
package classify

import "strings"

// Kind is the classification of a single input line.
type Kind int

const (
	// Fence is the triple-backtick marker toggling code-block mode.
	Fence Kind = iota
	// CodeLine is any line inside code-block mode.
	CodeLine
	// Blank is an empty line (after BOM stripping).
	Blank
	// Heading is a "# ", "## ", or "### " line; Line.Level carries 1-3.
	Heading
	// Bullet is a "- " or "* " list item.
	Bullet
	// TableRow is a pipe-delimited line rendered verbatim.
	TableRow
	// Paragraph is any line no earlier rule claimed.
	Paragraph
)

// Line is the classification result for one input line.
type Line struct {
	Kind  Kind
	Level int    // heading level, Heading only
	Text  string // content with the marker stripped (see Classify)
}

const bom = "\ufeff"

// Classify determines the kind of raw under the given code-block mode.
// Rules are evaluated in priority order: fence, code line, blank, heading,
// bullet, table row, paragraph — the first match wins.
//
// A byte-order mark is trimmed from every line before classification, but
// CodeLine and TableRow keep the raw line untouched: fenced content and
// table rows are preserved verbatim, including leading whitespace. Heading
// and Bullet text is the remainder after the marker; Paragraph text is the
// space-trimmed line.
func Classify(inCode bool, raw string) Line {
	line := strings.Trim(raw, bom)

	if strings.HasPrefix(line, "```") {
		return Line{Kind: Fence}
	}
	if inCode {
		return Line{Kind: CodeLine, Text: raw}
	}
	if line == "" {
		return Line{Kind: Blank}
	}

	switch {
	case strings.HasPrefix(line, "# "):
		return Line{Kind: Heading, Level: 1, Text: line[2:]}
	case strings.HasPrefix(line, "## "):
		return Line{Kind: Heading, Level: 2, Text: line[3:]}
	case strings.HasPrefix(line, "### "):
		return Line{Kind: Heading, Level: 3, Text: line[4:]}
	}

	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return Line{Kind: Bullet, Text: line[2:]}
	}

	// Naive table heuristic: a pipe plus either a separator run or a second
	// pipe. Prose containing two pipes will match; that is accepted rather
	// than inferring a stricter table grammar.
	if strings.Contains(line, "|") &&
		(strings.Contains(line, "---") || strings.Count(line, "|") >= 2) {
		return Line{Kind: TableRow, Text: raw}
	}

	return Line{Kind: Paragraph, Text: strings.TrimSpace(line)}
}
