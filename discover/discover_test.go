package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// touch creates an empty file under dir.
func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.md")
	touch(t, dir, "a.md")
	touch(t, dir, "README.MD")
	touch(t, dir, "notes.txt")
	touch(t, dir, ".hidden.md")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	touch(t, filepath.Join(dir, "sub"), "nested.md")

	got, err := Scan(dir)

	require.NoError(t, err)
	// Name order, markdown only, no hidden files, no recursion.
	want := []string{
		filepath.Join(dir, "README.MD"),
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.md"),
	}
	assert.Equal(t, want, got)
}

func TestScan_EmptyDir(t *testing.T) {
	got, err := Scan(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScan_MissingDirIsNotAnError(t *testing.T) {
	got, err := Scan(filepath.Join(t.TempDir(), "nope"))

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, IsMarkdown("guide.md"))
	assert.True(t, IsMarkdown("GUIDE.MD"))
	assert.False(t, IsMarkdown("guide.markdown"))
	assert.False(t, IsMarkdown("guide.txt"))
	assert.False(t, IsMarkdown("md"))
}

func TestList_Dedup(t *testing.T) {
	l := NewList()
	l.Add("a")
	l.Add("b")
	l.Add("a")

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []string{"a", "b"}, l.All())
}
