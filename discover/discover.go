// Package discover enumerates the Markdown documents of a source directory.
// Discovery is non-recursive: only regular .md files directly under the
// directory are reported, in name order.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
)

// Scan returns the paths of all Markdown files directly under dir, sorted
// by name and deduplicated. A missing source directory is not an error:
// it simply yields no documents.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading source directory %s: %w", dir, err)
	}

	list := NewList()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if IsHidden(name) || !IsMarkdown(name) {
			continue
		}
		list.Add(filepath.Join(dir, name))
	}
	return list.All(), nil
}
