package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/termgraph/internal/core/graph"
	"github.com/agenthands/termgraph/internal/glossary"
)

func testGlossary() *glossary.Glossary {
	return glossary.New([]glossary.Entry{
		{Term: "Artificial Intelligence", Definition: "The study of intelligent agents."},
		{Term: "Machine Learning", Definition: "A subfield of artificial intelligence that learns from data."},
		{Term: "Neural Network", Definition: "A machine learning model inspired by the brain, often used in dl."},
		{Term: "Clustering", Definition: "Grouping similar items; a cluster holds related points."},
		{Term: "Cluster", Definition: "Groups similar items into clusters."},
	})
}

func TestExtract_SubstringMatch(t *testing.T) {
	dict := NewExtractor(nil).Extract(testGlossary())

	// "Machine Learning" mentions "artificial intelligence" verbatim.
	assert.Contains(t, dict["Machine Learning"], "Artificial Intelligence")
	// "Neural Network" mentions "machine learning".
	assert.Contains(t, dict["Neural Network"], "Machine Learning")
}

func TestExtract_SynonymExpansion(t *testing.T) {
	dict := NewExtractor(nil).Extract(testGlossary())

	// "dl" in the Neural Network definition expands to the canonical name
	// even though "Deep Learning" is not a glossary term. The graph builder
	// drops unknown references later.
	assert.Contains(t, dict["Neural Network"], "Deep Learning")
}

func TestExtract_StemmedTokenMatch(t *testing.T) {
	dict := NewExtractor(nil).Extract(testGlossary())

	// "cluster" in the Clustering definition stems to the term Cluster.
	assert.Contains(t, dict["Clustering"], "Cluster")
	// "clusters" in the Cluster definition stems to "cluster", which is also
	// the stem of the term Clustering, without any verbatim substring.
	assert.Contains(t, dict["Cluster"], "Clustering")
}

func TestExtract_SynonymCanonicalOutsideGlossary(t *testing.T) {
	// "Machine Learning using AI methods" links ML to AI twice over: the
	// substring match finds the known term AI, and the synonym table maps
	// "ai" to its canonical "Artificial Intelligence" even though that name
	// is not a glossary term. The dictionary keeps both; the unknown
	// canonical only disappears when the graph is built.
	g := glossary.New([]glossary.Entry{
		{Term: "AI", Definition: "The study of intelligent machines."},
		{Term: "ML", Definition: "Machine Learning using AI methods"},
	})

	dict := NewExtractor(nil).Extract(g)
	assert.Equal(t, []string{"AI", "Artificial Intelligence"}, dict["ML"])

	tg := graph.Build(g.Terms(), dict)
	assert.False(t, tg.HasNode("Artificial Intelligence"))
	assert.Equal(t, []string{"AI", "ML"}, tg.Nodes())
	assert.Equal(t, 1, tg.EdgeCount())
}

func TestExtract_NeverLinksTermToItself(t *testing.T) {
	dict := NewExtractor(nil).Extract(testGlossary())

	for term, linked := range dict {
		assert.NotContains(t, linked, term, "term %q links to itself", term)
	}
}

func TestExtract_EveryTermHasAnEntry(t *testing.T) {
	g := glossary.New([]glossary.Entry{
		{Term: "Isolated", Definition: "Mentions nothing at all."},
		{Term: "Other", Definition: "Also unrelated text."},
	})

	dict := NewExtractor(nil).Extract(g)

	require.Len(t, dict, 2)
	assert.Empty(t, dict["Isolated"])
	assert.Empty(t, dict["Other"])
	// Unlinked terms still have dictionary entries; they surface through
	// the empty link set, never a missing key.
	assert.Equal(t, []string{"Isolated", "Other"}, dict.UncoveredTerms())
}

func TestExtract_Idempotent(t *testing.T) {
	g := testGlossary()
	e := NewExtractor(nil)

	first := e.Extract(g)
	second := e.Extract(g)

	assert.Equal(t, first, second)
}

func TestExtract_LinksAreSorted(t *testing.T) {
	dict := NewExtractor(nil).Extract(testGlossary())

	for term, linked := range dict {
		assert.IsIncreasing(t, linked, "links for %q not sorted", term)
	}
}

func TestExtract_CustomSynonyms(t *testing.T) {
	g := glossary.New([]glossary.Entry{
		{Term: "Kubernetes", Definition: "Container orchestration."},
		{Term: "Deployment", Definition: "Rolls out workloads on k8s."},
	})

	dict := NewExtractor(map[string]string{"k8s": "Kubernetes"}).Extract(g)

	assert.Equal(t, []string{"Kubernetes"}, dict["Deployment"])
}

func TestStem(t *testing.T) {
	assert.Equal(t, "cluster", Stem("clustering"))
	assert.Equal(t, "cluster", Stem("clusters"))
	assert.Equal(t, "learn", Stem("learned"))
	assert.Equal(t, "graph", Stem("Graph"))
	// Only one suffix is stripped.
	assert.Equal(t, "process", Stem("processes"))
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("A machine-learning model, inspired by the brain!")
	assert.Equal(t, []string{"a", "machine", "learning", "model", "inspired", "by", "the", "brain"}, tokens)

	assert.Empty(t, Tokenize("  ...  "))
	assert.Equal(t, []string{"snake_case", "x2"}, Tokenize("snake_case x2"))
}
