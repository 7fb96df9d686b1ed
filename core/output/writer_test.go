package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist", "pdf")

	w, err := New(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, w.OutputDir)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNew_ExistingDirIsFine(t *testing.T) {
	dir := t.TempDir()

	_, err := New(dir)

	require.NoError(t, err)
}

func TestWrite(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := w.Write("guide", []byte("%PDF fake"), ".pdf")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.OutputDir, "guide.pdf"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF fake", string(data))
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"docs/guide.md", "guide"},
		{"guide.md", "guide"},
		{"docs/notes.v2.md", "notes.v2"},
		{"docs/noext", "noext"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BaseName(tt.path), tt.path)
	}
}
