package glossary

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedShape is returned when glossary input is neither a
// term->definition map nor a list of entry objects.
var ErrUnsupportedShape = errors.New("glossary must be a map of term to definition or a list of entries")

// Shape identifies which of the two accepted input layouts a document uses.
// It is resolved once at load time; downstream code only ever sees *Glossary.
type Shape int

const (
	MapShape Shape = iota
	ListShape
)

// Load reads a glossary file and normalizes it. JSON by default; .yaml/.yml
// files are decoded with YAML. Validation failures abort the whole load.
func Load(path string) (*Glossary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glossary file not found: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON normalizes a JSON glossary document of either shape.
func ParseJSON(data []byte) (*Glossary, error) {
	entries, _, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	if err := Validate(entries); err != nil {
		return nil, err
	}
	return New(entries), nil
}

// ParseYAML normalizes a YAML glossary document of either shape. An empty
// sequence is a valid zero-term glossary, same as the JSON path.
func ParseYAML(data []byte) (*Glossary, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse glossary YAML: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, ErrUnsupportedShape
	}

	switch root := doc.Content[0]; root.Kind {
	case yaml.SequenceNode:
		var list []Entry
		if err := root.Decode(&list); err != nil {
			return nil, fmt.Errorf("failed to parse glossary list: %w", err)
		}
		if err := Validate(list); err != nil {
			return nil, err
		}
		return New(list), nil
	case yaml.MappingNode:
		var m map[string]string
		if err := root.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to parse glossary map: %w", err)
		}
		entries := mapEntries(m)
		if err := Validate(entries); err != nil {
			return nil, err
		}
		return New(entries), nil
	default:
		return nil, ErrUnsupportedShape
	}
}

func decodeJSON(data []byte) ([]Entry, Shape, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, 0, ErrUnsupportedShape
	}

	switch trimmed[0] {
	case '[':
		var list []Entry
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, 0, fmt.Errorf("failed to parse glossary list: %w", err)
		}
		return list, ListShape, nil
	case '{':
		var m map[string]string
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, 0, fmt.Errorf("failed to parse glossary map: %w", err)
		}
		return mapEntries(m), MapShape, nil
	default:
		return nil, 0, ErrUnsupportedShape
	}
}

// mapEntries converts the map shape into entry records in sorted term order
// so loading is deterministic.
func mapEntries(m map[string]string) []Entry {
	terms := make([]string, 0, len(m))
	for t := range m {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	entries := make([]Entry, 0, len(terms))
	for _, t := range terms {
		entries = append(entries, Entry{Term: t, Definition: m[t]})
	}
	return entries
}
