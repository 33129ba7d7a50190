package glossary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ParseMarkdown converts "Term: Definition" lines into glossary entries.
// Lines without a colon are skipped.
func ParseMarkdown(text string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(text, "\n") {
		term, definition, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Term:       strings.TrimSpace(term),
			Definition: strings.TrimSpace(definition),
		})
	}
	return entries
}

// ConvertMarkdown reads a Markdown glossary and writes it back as JSON.
// It refuses to overwrite the source glossary file.
func ConvertMarkdown(markdownPath, jsonPath, sourceGlossary string) ([]Entry, error) {
	if sourceGlossary != "" {
		src, err := filepath.Abs(sourceGlossary)
		if err != nil {
			return nil, err
		}
		dst, err := filepath.Abs(jsonPath)
		if err != nil {
			return nil, err
		}
		if src == dst {
			return nil, fmt.Errorf("refusing to overwrite source glossary file: %s", jsonPath)
		}
	}

	data, err := os.ReadFile(markdownPath)
	if err != nil {
		return nil, fmt.Errorf("markdown file not found: %w", err)
	}

	entries := ParseMarkdown(string(data))

	if err := os.MkdirAll(filepath.Dir(jsonPath), 0o755); err != nil {
		return nil, err
	}
	if err := writeEntriesJSON(jsonPath, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// RenderMarkdown writes enriched entries as a Markdown glossary: a heading
// per term, the definition, and the term's links when present.
func RenderMarkdown(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "### %s\n%s\n\n", e.Term, e.Definition)
		if len(e.Links) > 0 {
			fmt.Fprintf(&b, "Links: %s\n\n", strings.Join(e.Links, ", "))
		}
	}
	return b.String()
}
