// Package output handles file naming and writing for converted documents.
// Output names keep the input's base name with the renderer's extension,
// placed flat under a single output directory.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory, creating the
// directory (and any parents) if absent.
func New(outputDir string) (*Writer, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data as <dir>/<base><ext> and returns the written path.
func (w *Writer) Write(base string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, base+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// BaseName derives the output base name from an input path: the file name
// with its extension removed.
func BaseName(inputPath string) string {
	name := filepath.Base(inputPath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
