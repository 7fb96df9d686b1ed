package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConvert_Batch(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(docsDir, 0o755))

	md := "# Guide\n\nHello world\n\n- a\n- b\n\n```\ncode\n```\n"
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "guide.md"), []byte(md), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "second.md"), []byte("plain text\n"), 0o644))

	require.NoError(t, runConvert(rootCmd, nil))

	for _, name := range []string{"guide.pdf", "second.pdf"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		assert.Equal(t, "%PDF", string(data[:4]), name)
	}
}

func TestRunConvert_NoInputsIsNotAnError(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(docsDir, 0o755))

	require.NoError(t, runConvert(rootCmd, nil))

	// No output directory is created when there is nothing to convert.
	_, err := os.Stat(outDir)
	assert.True(t, os.IsNotExist(err))
}

func TestRunConvert_MissingDocsDir(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, runConvert(rootCmd, nil))
}
