package links

import (
	"sort"
	"strings"

	"github.com/agenthands/termgraph/internal/core/model"
	"github.com/agenthands/termgraph/internal/glossary"
)

// DefaultSynonyms maps informal variants and abbreviations to canonical
// glossary term names. Keys are matched case-insensitively as substrings.
func DefaultSynonyms() map[string]string {
	return map[string]string{
		"neural nets": "Neural Network",
		"nn":          "Neural Network",
		"ml":          "Machine Learning",
		"ai":          "Artificial Intelligence",
		"dl":          "Deep Learning",
	}
}

// Extractor derives term-to-term references from definition text using three
// heuristics: substring matching, synonym expansion, and stemmed token
// matching. It is a bounded heuristic, not an entity linker.
type Extractor struct {
	Synonyms map[string]string
}

func NewExtractor(synonyms map[string]string) *Extractor {
	if synonyms == nil {
		synonyms = DefaultSynonyms()
	}
	return &Extractor{Synonyms: synonyms}
}

// Extract builds the link dictionary for a glossary. The glossary is read
// only; the result is a fresh value. Extraction is idempotent: repeated runs
// on the same glossary produce identical dictionaries.
func (e *Extractor) Extract(g *glossary.Glossary) model.LinkDictionary {
	terms := g.Terms()
	dict := make(model.LinkDictionary, len(terms))

	for _, term := range terms {
		entry, _ := g.Entry(term)
		dict[term] = e.extractOne(term, entry.Definition, terms)
	}
	return dict
}

// extractOne unions the three matching techniques for a single term. An
// empty definition yields an empty link set, not an error.
func (e *Extractor) extractOne(term, definition string, terms []string) []string {
	termLower := strings.ToLower(term)
	defLower := strings.ToLower(definition)

	found := make(map[string]struct{})

	// Phrase/substring match against every other known term.
	for _, candidate := range terms {
		candLower := strings.ToLower(candidate)
		if candLower == termLower {
			continue
		}
		if strings.Contains(defLower, candLower) {
			found[candidate] = struct{}{}
		}
	}

	// Synonym expansion. The canonical name is added even when it is not a
	// known term; the graph builder drops unknown references later.
	for synonym, canonical := range e.Synonyms {
		if !strings.Contains(defLower, synonym) {
			continue
		}
		if strings.ToLower(canonical) == termLower {
			continue
		}
		found[canonical] = struct{}{}
	}

	// Stemmed token match.
	tokens := make(map[string]struct{})
	for _, tok := range Tokenize(defLower) {
		tokens[Stem(tok)] = struct{}{}
	}
	for _, candidate := range terms {
		if strings.ToLower(candidate) == termLower {
			continue
		}
		if _, ok := tokens[Stem(candidate)]; ok {
			found[candidate] = struct{}{}
		}
	}

	out := make([]string, 0, len(found))
	for t := range found {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
