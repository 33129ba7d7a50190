package glossary

import (
	"encoding/json"
	"os"
)

// Enrich attaches each term's link list to its entry. The input glossary is
// not modified; enrichment returns fresh entries in source order.
func Enrich(g *Glossary, links map[string][]string) []Entry {
	entries := g.Entries()
	for i := range entries {
		if linked, ok := links[entries[i].Term]; ok {
			entries[i].Links = append([]string(nil), linked...)
		}
	}
	return entries
}

// WriteEntries persists an entry list as JSON, the list input shape.
func WriteEntries(path string, entries []Entry) error {
	return writeEntriesJSON(path, entries)
}

func writeEntriesJSON(path string, entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
