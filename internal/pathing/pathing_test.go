// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pathing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/doc-engine/pkg/types"
)

// writeFile creates path (and parents) with placeholder content.
func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
}

func TestResolve_SingleFileExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "page.html")
	writeFile(t, in)
	out := filepath.Join(dir, "result.md")

	pairs, err := Resolve(in, out, []string{".html", ".htm"}, MarkdownName(""))
	require.NoError(t, err)

	require.Len(t, pairs, 1)
	assert.Equal(t, in, pairs[0].Input)
	assert.Equal(t, out, pairs[0].Output)
}

func TestResolve_SingleFileIntoDirectory(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "guide.md")
	writeFile(t, in)
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(outDir, 0o755))

	pairs, err := Resolve(in, outDir, []string{".md"}, MarkdownName("zh_"))
	require.NoError(t, err)

	require.Len(t, pairs, 1)
	assert.Equal(t, filepath.Join(outDir, "zh_guide.md"), pairs[0].Output)
}

func TestResolve_DirectoryMirrorsStructure(t *testing.T) {
	dir := t.TempDir()
	inDir := filepath.Join(dir, "site")
	writeFile(t, filepath.Join(inDir, "index.html"))
	writeFile(t, filepath.Join(inDir, "docs", "intro.htm"))
	writeFile(t, filepath.Join(inDir, "docs", "notes.txt")) // wrong extension
	writeFile(t, filepath.Join(inDir, "UPPER.HTML"))        // extension match is case-insensitive
	outDir := filepath.Join(dir, "out")

	pairs, err := Resolve(inDir, outDir, []string{".html", ".htm"}, MarkdownName(""))
	require.NoError(t, err)

	outputs := make(map[string]bool)
	for _, p := range pairs {
		outputs[p.Output] = true
	}
	assert.Len(t, pairs, 3)
	assert.True(t, outputs[filepath.Join(outDir, "index.md")])
	assert.True(t, outputs[filepath.Join(outDir, "docs", "intro.md")])
	assert.True(t, outputs[filepath.Join(outDir, "UPPER.md")])
}

func TestResolve_DirectoryWithPrefix(t *testing.T) {
	dir := t.TempDir()
	inDir := filepath.Join(dir, "md")
	writeFile(t, filepath.Join(inDir, "readme.md"))

	pairs, err := Resolve(inDir, filepath.Join(dir, "out"), []string{".md"}, MarkdownName("zh_"))
	require.NoError(t, err)

	require.Len(t, pairs, 1)
	assert.Equal(t, filepath.Join(dir, "out", "zh_readme.md"), pairs[0].Output)
}

func TestResolve_MissingInput(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope"), "out", []string{".md"}, MarkdownName(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidPath)
}

func TestResolve_NoMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "only.txt"))

	_, err := Resolve(dir, "out", []string{".html", ".htm"}, MarkdownName(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidPath)
	assert.Contains(t, err.Error(), "no .html/.htm files")
}
