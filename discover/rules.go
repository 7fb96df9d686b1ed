// Package discover — input filtering rules.
// Provides helpers to decide which directory entries are convertible
// Markdown documents.
package discover

import (
	"path/filepath"
	"strings"
)

// markdownExt is the only input extension the batch converts.
const markdownExt = ".md"

// IsMarkdown checks if a file name has the Markdown extension.
// The comparison is case-insensitive so README.MD is picked up too.
func IsMarkdown(name string) bool {
	return strings.EqualFold(filepath.Ext(name), markdownExt)
}

// IsHidden checks if a file name is a dot file (editor droppings like
// .#draft.md or .hidden.md are skipped during discovery).
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
