package glossary

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Example is either a bare string or a label/URL pair in the source data.
type Example struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
}

func (e *Example) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Label = s
		return nil
	}
	type alias Example
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*e = Example(a)
	return nil
}

func (e *Example) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.Label = node.Value
		return nil
	}
	type alias Example
	var a alias
	if err := node.Decode(&a); err != nil {
		return err
	}
	*e = Example(a)
	return nil
}

// Entry is one normalized glossary record.
type Entry struct {
	Term         string    `json:"term" yaml:"term"`
	Definition   string    `json:"definition" yaml:"definition"`
	Tags         []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	RelatedTerms []string  `json:"related_terms,omitempty" yaml:"related_terms,omitempty"`
	Examples     []Example `json:"examples,omitempty" yaml:"examples,omitempty"`
	Source       string    `json:"source,omitempty" yaml:"source,omitempty"`
	LastUpdated  string    `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
	// Links is populated by enrichment, not by loading.
	Links []string `json:"links,omitempty" yaml:"links,omitempty"`
}

// Glossary is the canonical term -> definition mapping every downstream
// component consumes. Entries keep source order; the map wins on duplicates
// (later entries overwrite earlier ones).
type Glossary struct {
	entries []Entry
	byTerm  map[string]Entry
}

// New builds a Glossary from validated entries. Terms are trimmed; duplicate
// terms keep the last entry as the canonical one.
func New(entries []Entry) *Glossary {
	g := &Glossary{
		entries: make([]Entry, 0, len(entries)),
		byTerm:  make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		e.Term = strings.TrimSpace(e.Term)
		g.entries = append(g.entries, e)
		g.byTerm[e.Term] = e
	}
	return g
}

// Terms returns the distinct term set in sorted order.
func (g *Glossary) Terms() []string {
	terms := make([]string, 0, len(g.byTerm))
	for t := range g.byTerm {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// Definitions returns the canonical term -> definition map.
func (g *Glossary) Definitions() map[string]string {
	defs := make(map[string]string, len(g.byTerm))
	for t, e := range g.byTerm {
		defs[t] = e.Definition
	}
	return defs
}

// Entries returns the entries in source order.
func (g *Glossary) Entries() []Entry {
	out := make([]Entry, len(g.entries))
	copy(out, g.entries)
	return out
}

// Entry looks up the canonical entry for a term.
func (g *Glossary) Entry(term string) (Entry, bool) {
	e, ok := g.byTerm[term]
	return e, ok
}

// Len returns the number of distinct terms.
func (g *Glossary) Len() int {
	return len(g.byTerm)
}

// Violation records one validation failure: which entry, which field.
type Violation struct {
	Index int    `json:"index"` // 1-based entry position
	Field string `json:"field"`
}

func (v Violation) String() string {
	return fmt.Sprintf("entry %d missing %q", v.Index, v.Field)
}

// MalformedGlossaryError reports every violation found, not just the first.
type MalformedGlossaryError struct {
	Violations []Violation
}

func (e *MalformedGlossaryError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("glossary validation failed: %s", strings.Join(parts, "; "))
}

// Validate checks that every entry has a non-empty term and definition.
// It walks all entries before reporting so callers see the full list.
func Validate(entries []Entry) error {
	var violations []Violation
	for i, e := range entries {
		if strings.TrimSpace(e.Term) == "" {
			violations = append(violations, Violation{Index: i + 1, Field: "term"})
		}
		if strings.TrimSpace(e.Definition) == "" {
			violations = append(violations, Violation{Index: i + 1, Field: "definition"})
		}
	}
	if len(violations) > 0 {
		return &MalformedGlossaryError{Violations: violations}
	}
	return nil
}
