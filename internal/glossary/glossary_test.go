package glossary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_MapShape(t *testing.T) {
	data := []byte(`{"Machine Learning": "Learning from data", "Neural Network": "A model"}`)

	g, err := ParseJSON(data)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []string{"Machine Learning", "Neural Network"}, g.Terms())

	entry, ok := g.Entry("Machine Learning")
	assert.True(t, ok)
	assert.Equal(t, "Learning from data", entry.Definition)
}

func TestParseJSON_ListShape(t *testing.T) {
	data := []byte(`[
		{"term": "AI", "definition": "The field", "tags": ["core"], "examples": ["chess", {"label": "go", "url": "https://example.com"}]},
		{"term": "ML", "definition": "A subfield of AI"}
	]`)

	g, err := ParseJSON(data)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())

	entry, ok := g.Entry("AI")
	require.True(t, ok)
	assert.Equal(t, []string{"core"}, entry.Tags)
	require.Len(t, entry.Examples, 2)
	assert.Equal(t, "chess", entry.Examples[0].Label)
	assert.Equal(t, "go", entry.Examples[1].Label)
	assert.Equal(t, "https://example.com", entry.Examples[1].URL)
}

func TestParseJSON_UnsupportedShape(t *testing.T) {
	_, err := ParseJSON([]byte(`"just a string"`))
	assert.ErrorIs(t, err, ErrUnsupportedShape)

	_, err = ParseJSON([]byte(``))
	assert.ErrorIs(t, err, ErrUnsupportedShape)
}

func TestParseJSON_DuplicateTermsLastWins(t *testing.T) {
	data := []byte(`[
		{"term": "AI", "definition": "first"},
		{"term": "AI", "definition": "second"}
	]`)

	g, err := ParseJSON(data)
	require.NoError(t, err)

	assert.Equal(t, 1, g.Len())
	entry, _ := g.Entry("AI")
	assert.Equal(t, "second", entry.Definition)
	// Source order is preserved for both records.
	assert.Len(t, g.Entries(), 2)
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	entries := []Entry{
		{Term: "", Definition: "no term"},
		{Term: "OK", Definition: "fine"},
		{Term: "Empty", Definition: "  "},
		{Term: " ", Definition: ""},
	}

	err := Validate(entries)
	require.Error(t, err)

	var malformed *MalformedGlossaryError
	require.ErrorAs(t, err, &malformed)
	// Entry 1 missing term, entry 3 missing definition, entry 4 missing both.
	assert.Len(t, malformed.Violations, 4)
	assert.Equal(t, Violation{Index: 1, Field: "term"}, malformed.Violations[0])
	assert.Equal(t, Violation{Index: 3, Field: "definition"}, malformed.Violations[1])
	assert.Equal(t, Violation{Index: 4, Field: "term"}, malformed.Violations[2])
	assert.Equal(t, Violation{Index: 4, Field: "definition"}, malformed.Violations[3])
}

func TestParseYAML_BothShapes(t *testing.T) {
	list := []byte("- term: AI\n  definition: The field\n- term: ML\n  definition: Subfield\n")
	g, err := ParseYAML(list)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())

	m := []byte("AI: The field\nML: Subfield\n")
	g, err = ParseYAML(m)
	require.NoError(t, err)
	assert.Equal(t, []string{"AI", "ML"}, g.Terms())
}

func TestParse_EmptyListIsZeroTermGlossary(t *testing.T) {
	g, err := ParseJSON([]byte(`[]`))
	require.NoError(t, err)
	assert.Zero(t, g.Len())

	g, err = ParseYAML([]byte("[]\n"))
	require.NoError(t, err)
	assert.Zero(t, g.Len())
}

func TestParseYAML_UnsupportedShape(t *testing.T) {
	_, err := ParseYAML([]byte(`"just a string"`))
	assert.ErrorIs(t, err, ErrUnsupportedShape)

	_, err = ParseYAML([]byte(""))
	assert.ErrorIs(t, err, ErrUnsupportedShape)
}

func TestParseYAML_MapShapeValidated(t *testing.T) {
	_, err := ParseYAML([]byte("AI: \"\"\n"))

	var malformed *MalformedGlossaryError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "definition", malformed.Violations[0].Field)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "glossary.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"AI": "The field"}`), 0o644))
	g, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())

	yamlPath := filepath.Join(dir, "glossary.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("AI: The field\n"), 0o644))
	g, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnrich(t *testing.T) {
	g := New([]Entry{
		{Term: "AI", Definition: "The field"},
		{Term: "ML", Definition: "Uses AI"},
	})

	entries := Enrich(g, map[string][]string{"ML": {"AI"}})

	require.Len(t, entries, 2)
	assert.Nil(t, entries[0].Links)
	assert.Equal(t, []string{"AI"}, entries[1].Links)

	// The source glossary is untouched.
	orig, _ := g.Entry("ML")
	assert.Nil(t, orig.Links)
}
