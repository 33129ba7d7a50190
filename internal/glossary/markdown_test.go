package glossary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarkdown(t *testing.T) {
	text := "AI: The field of intelligent machines\n\nsome heading without a definition\nML: Learning from data\n"

	entries := ParseMarkdown(text)

	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Term: "AI", Definition: "The field of intelligent machines"}, entries[0])
	assert.Equal(t, Entry{Term: "ML", Definition: "Learning from data"}, entries[1])
}

func TestConvertMarkdown(t *testing.T) {
	dir := t.TempDir()
	mdPath := filepath.Join(dir, "glossary.md")
	jsonPath := filepath.Join(dir, "glossary.json")
	require.NoError(t, os.WriteFile(mdPath, []byte("AI: The field\nML: Subfield\n"), 0o644))

	entries, err := ConvertMarkdown(mdPath, jsonPath, "")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	// The written file loads back as a list-shape glossary.
	g, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"AI", "ML"}, g.Terms())
}

func TestConvertMarkdown_RefusesToOverwriteSource(t *testing.T) {
	dir := t.TempDir()
	mdPath := filepath.Join(dir, "glossary.md")
	jsonPath := filepath.Join(dir, "glossary.json")
	require.NoError(t, os.WriteFile(mdPath, []byte("AI: The field\n"), 0o644))

	_, err := ConvertMarkdown(mdPath, jsonPath, jsonPath)
	assert.ErrorContains(t, err, "refusing to overwrite")
}

func TestConvertMarkdown_MissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := ConvertMarkdown(filepath.Join(dir, "missing.md"), filepath.Join(dir, "out.json"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRenderMarkdown(t *testing.T) {
	entries := []Entry{
		{Term: "AI", Definition: "The field", Links: []string{"ML", "NN"}},
		{Term: "ML", Definition: "Subfield"},
	}

	out := RenderMarkdown(entries)

	assert.Contains(t, out, "### AI\nThe field\n")
	assert.Contains(t, out, "Links: ML, NN\n")
	assert.Contains(t, out, "### ML\nSubfield\n")
	assert.NotContains(t, out, "Links: \n")
}
